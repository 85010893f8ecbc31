// Package snake is a headless snake game: the caller the pathfinder was
// written for. It owns the live obstacle set and turns it into Blocking
// predicates for each query.
package snake

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/pdrpinto/gridpath"
)

var (
	ErrBoardTooSmall = errors.New("board too small for snake")
	ErrInvalidBody   = errors.New("invalid snake body")
)

// Status is the state of a game.
type Status int

const (
	Running Status = iota
	Dead
	Won
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Dead:
		return "dead"
	case Won:
		return "won"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Game holds one snake on a board with one piece of food.
type Game struct {
	board   *gridpath.Board
	body    []gridpath.Cell
	heading gridpath.Direction
	food    gridpath.Cell
	hasFood bool
	score   int
	status  Status
	random  *rand.Rand
}

// New places a snake of the given length in the middle row, heading east,
// and spawns the first food.
func New(board *gridpath.Board, length int, seed uint64) (*Game, error) {
	if length < 1 || board.Width() < length+1 || board.Height() < 1 {
		return nil, fmt.Errorf("%w: %dx%d, length %d", ErrBoardTooSmall, board.Width(), board.Height(), length)
	}
	y := board.Height() / 2
	headX := (board.Width() + length) / 2
	if headX >= board.Width() {
		headX = board.Width() - 1
	}
	body := make([]gridpath.Cell, length)
	for i := range body {
		body[i] = gridpath.Cell{X: headX - i, Y: y}
	}
	for _, cell := range body {
		if _, ok := board.Tile(cell.X, cell.Y); !ok {
			return nil, fmt.Errorf("%w: spawn cell %s missing", ErrBoardTooSmall, cell)
		}
	}

	game := &Game{
		board:   board,
		body:    body,
		heading: gridpath.East,
		random:  rand.New(rand.NewSource(seed)),
	}
	game.spawnFood()
	return game, nil
}

// FromBody restores a game from an explicit body (head first) and food cell.
func FromBody(
	board *gridpath.Board,
	body []gridpath.Cell,
	heading gridpath.Direction,
	food gridpath.Cell,
	seed uint64,
) (*Game, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidBody)
	}
	occupied := make(map[gridpath.Cell]bool, len(body))
	for i, cell := range body {
		if _, ok := board.Tile(cell.X, cell.Y); !ok {
			return nil, fmt.Errorf("%w: segment %s is off the board", ErrInvalidBody, cell)
		}
		if occupied[cell] {
			return nil, fmt.Errorf("%w: segment %s overlaps", ErrInvalidBody, cell)
		}
		if i > 0 && gridpath.Manhattan(body[i-1], cell) != 1 {
			return nil, fmt.Errorf("%w: segment %s is detached", ErrInvalidBody, cell)
		}
		occupied[cell] = true
	}
	if _, ok := board.Tile(food.X, food.Y); !ok || occupied[food] {
		return nil, fmt.Errorf("%w: food %s", ErrInvalidBody, food)
	}
	return &Game{
		board:   board,
		body:    append([]gridpath.Cell(nil), body...),
		heading: heading,
		food:    food,
		hasFood: true,
		random:  rand.New(rand.NewSource(seed)),
	}, nil
}

func (g *Game) Board() *gridpath.Board      { return g.board }
func (g *Game) Head() gridpath.Cell         { return g.body[0] }
func (g *Game) Heading() gridpath.Direction { return g.heading }
func (g *Game) Score() int                  { return g.score }
func (g *Game) Status() Status              { return g.status }
func (g *Game) Length() int                 { return len(g.body) }

// Body returns a copy of the segments, head first.
func (g *Game) Body() []gridpath.Cell { return append([]gridpath.Cell(nil), g.body...) }

// Food returns the food cell; false once the board is full.
func (g *Game) Food() (gridpath.Cell, bool) { return g.food, g.hasFood }

// Step moves the snake one cell. A move straight back onto the neck keeps the
// current heading instead.
func (g *Game) Step(direction gridpath.Direction) Status {
	if g.status != Running {
		return g.status
	}
	if direction == gridpath.None || (len(g.body) > 1 && direction == g.heading.Opposite()) {
		direction = g.heading
	}
	g.heading = direction

	next := g.Head().Step(direction)
	if _, ok := g.board.Tile(next.X, next.Y); !ok {
		g.status = Dead
		return g.status
	}
	grows := g.hasFood && next == g.food

	// the tail leaves its cell on this tick unless the snake grows
	occupied := g.body
	if !grows {
		occupied = g.body[:len(g.body)-1]
	}
	for _, cell := range occupied {
		if cell == next {
			g.status = Dead
			return g.status
		}
	}

	if grows {
		g.body = append(g.body, gridpath.Cell{})
	}
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = next

	if grows {
		g.score++
		g.spawnFood()
	}
	return g.status
}

func (g *Game) spawnFood() {
	occupied := make(map[gridpath.Cell]bool, len(g.body))
	for _, cell := range g.body {
		occupied[cell] = true
	}
	var free []gridpath.Cell
	for _, cell := range g.board.Cells() {
		if !occupied[cell] {
			free = append(free, cell)
		}
	}
	if len(free) == 0 {
		g.hasFood = false
		g.status = Won
		return
	}
	g.food = free[g.random.Intn(len(free))]
	g.hasFood = true
}
