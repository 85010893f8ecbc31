package gridpath

import "fmt"

// Cell is a tile position on the grid.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Step returns the cell one move away in the given direction.
func (c Cell) Step(direction Direction) Cell {
	dx, dy := direction.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// DirectionTo returns the direction leading from c to an adjacent cell,
// or None if other is not one of its four neighbors.
func (c Cell) DirectionTo(other Cell) Direction {
	for _, direction := range Directions {
		if c.Step(direction) == other {
			return direction
		}
	}
	return None
}

// Manhattan returns |dx| + |dy| between two cells.
func Manhattan(a Cell, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Direction is an axis-aligned move.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// Directions lists the moves in expansion order. Tie-breaking between
// equally good paths depends on it.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the coordinate offset of a move. North decreases Y.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the reverse move.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "none"
}

// Terrain is the read-only grid the search runs over.
// Tile must report false for coordinates outside [0,Width) x [0,Height).
type Terrain interface {
	Width() int
	Height() int
	Tile(x int, y int) (Cell, bool)
}

// Blocking reports whether a cell is impassable for the current query.
// It is evaluated fresh for every neighbor check.
type Blocking func(cell Cell) bool

// Board is a rectangular Terrain, optionally with holes.
type Board struct {
	width  int
	height int
	holes  map[Cell]bool
}

// NewBoard returns a width x height board with every tile present.
func NewBoard(width int, height int) *Board {
	return &Board{width: width, height: height, holes: make(map[Cell]bool)}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Contains reports whether the cell lies inside the board bounds.
func (b *Board) Contains(cell Cell) bool {
	return cell.X >= 0 && cell.X < b.width && cell.Y >= 0 && cell.Y < b.height
}

func (b *Board) Tile(x int, y int) (Cell, bool) {
	cell := Cell{X: x, Y: y}
	if !b.Contains(cell) || b.holes[cell] {
		return Cell{}, false
	}
	return cell, true
}

// Remove punches a hole into the board; the tile no longer exists.
func (b *Board) Remove(cell Cell) {
	if b.Contains(cell) {
		b.holes[cell] = true
	}
}

// Cells returns every existing tile in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if cell, ok := b.Tile(x, y); ok {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}
