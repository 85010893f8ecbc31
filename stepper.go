package gridpath

import (
	"container/heap"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdrpinto/gridpath/internal"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Cell
	Open      []Cell
	Closed    []Cell
	Done      bool
	Found     bool
	Path      []Cell
	StepIndex int
}

// NodeState is a read-only view of one cell's search bookkeeping.
type NodeState struct {
	Cell      Cell
	G         int
	H         int
	F         int
	Parent    Cell
	HasParent bool
	Arrival   Direction
	Open      bool
	Closed    bool
}

// Stepper runs the search one expansion at a time.
// It is not safe for concurrent use.
type Stepper struct {
	terrain Terrain
	width   int
	height  int
	blocked Blocking
	start   Cell
	target  Cell
	logger  zerolog.Logger

	maxIterations int

	nodes    []node
	openSet  openSet
	closed   []Cell
	sequence int

	stepCount int
	done      bool
	found     bool
	path      []Cell
	goal      *node
}

// NewStepper allocates one node per tile and seeds the open set with start.
func NewStepper(
	terrain Terrain,
	start Cell,
	target Cell,
	blocked Blocking,
	options ...Option,
) (*Stepper, error) {
	searchOptions := applyOptions(options)

	width, height := terrain.Width(), terrain.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyTerrain, width, height)
	}
	// divide rather than multiply so huge dimensions cannot wrap around
	if height > MaxTiles/width {
		return nil, fmt.Errorf("%w: %dx%d", ErrTerrainTooLarge, width, height)
	}
	if blocked == nil {
		blocked = func(Cell) bool { return false }
	}

	s := &Stepper{
		terrain:       terrain,
		width:         width,
		height:        height,
		blocked:       blocked,
		start:         start,
		target:        target,
		logger:        searchOptions.Logger,
		maxIterations: searchOptions.MaxIterations,
		nodes:         make([]node, width*height),
		openSet:       make(openSet, 0),
	}
	if !s.exists(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !s.exists(target) {
		return nil, fmt.Errorf("%w: target %s", ErrOutOfBounds, target)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := s.index(x, y)
			s.nodes[id].init(id, Cell{X: x, Y: y}, target)
		}
	}

	heap.Init(&s.openSet)
	s.push(s.nodeAt(start))
	return s, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// It returns ErrIterationLimit when the configured cap is reached first.
func (s *Stepper) Step() (StepSnapshot, error) {
	current, err := s.advance()
	return s.snapshot(current), err
}

// run expands nodes until the search terminates.
func (s *Stepper) run() error {
	for !s.done {
		if _, err := s.advance(); err != nil {
			return err
		}
	}
	return nil
}

// advance expands one node and returns the cell it expanded.
func (s *Stepper) advance() (Cell, error) {
	if s.done {
		return s.goalCell(), nil
	}
	if s.openSet.Len() == 0 {
		s.done = true
		s.logger.Debug().
			Stringer("start", s.start).
			Stringer("target", s.target).
			Int("expanded", s.stepCount).
			Msg("open set exhausted, no route")
		return Cell{}, nil
	}
	if s.maxIterations > 0 && s.stepCount >= s.maxIterations {
		return Cell{}, fmt.Errorf("%w: %d expansions", ErrIterationLimit, s.stepCount)
	}

	s.stepCount++
	current := heap.Pop(&s.openSet).(*node)
	current.state = stateClosed
	s.closed = append(s.closed, current.cell)

	if current.cell == s.target {
		s.done = true
		s.found = true
		s.goal = current
		s.path = s.reconstruct(current)
		s.logger.Debug().
			Stringer("start", s.start).
			Stringer("target", s.target).
			Int("cost", current.g).
			Int("expanded", s.stepCount).
			Msg("route found")
		return current.cell, nil
	}

	for _, direction := range Directions {
		next := current.cell.Step(direction)
		if !s.exists(next) {
			continue
		}
		s.check(current, s.nodeAt(next), direction)
	}
	return current.cell, nil
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool { return s.done }

// Result returns the outcome of a finished search. Before the search is done
// it reports Found == false.
func (s *Stepper) Result() Result {
	result := Result{ExpandedNodes: s.stepCount}
	if !s.found {
		return result
	}
	result.Found = true
	result.Cost = s.goal.g
	result.Path = append([]Cell(nil), s.path...)
	if len(s.path) > 1 {
		result.Direction = s.nodeAt(s.path[1]).arrival
	}
	return result
}

// Node returns the bookkeeping of a cell, or false if the cell is off the grid.
func (s *Stepper) Node(cell Cell) (NodeState, bool) {
	if !s.inBounds(cell) {
		return NodeState{}, false
	}
	n := s.nodeAt(cell)
	state := NodeState{
		Cell:    n.cell,
		G:       n.g,
		H:       n.h,
		F:       n.f(),
		Arrival: n.arrival,
		Open:    n.state == stateOpen,
		Closed:  n.state == stateClosed,
	}
	if n.parent >= 0 {
		state.Parent = s.nodes[n.parent].cell
		state.HasParent = true
	}
	return state, true
}

func (s *Stepper) check(from *node, adjacent *node, direction Direction) {
	if s.blocked(adjacent.cell) || adjacent.state == stateClosed {
		return
	}
	if adjacent.state != stateOpen {
		adjacent.update(from, direction, StepCost)
		s.push(adjacent)
		return
	}
	if adjacent.relaxIfBetter(from, direction, StepCost) {
		heap.Fix(&s.openSet, adjacent.indexInQueue)
	}
}

func (s *Stepper) push(n *node) {
	n.state = stateOpen
	n.sequence = s.sequence
	s.sequence++
	heap.Push(&s.openSet, n)
}

func (s *Stepper) reconstruct(current *node) []Cell {
	ids := internal.ReconstructPath(current.id, func(id int) (int, bool) {
		parent := s.nodes[id].parent
		return parent, parent >= 0
	})
	path := make([]Cell, len(ids))
	for i, id := range ids {
		path[i] = s.nodes[id].cell
	}
	return path
}

func (s *Stepper) snapshot(current Cell) StepSnapshot {
	openCells := make([]Cell, 0, s.openSet.Len())
	for i := range s.nodes {
		if s.nodes[i].state == stateOpen {
			openCells = append(openCells, s.nodes[i].cell)
		}
	}
	snapshot := StepSnapshot{
		Current:   current,
		Open:      openCells,
		Closed:    append([]Cell(nil), s.closed...),
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
	}
	if s.found {
		snapshot.Path = append([]Cell(nil), s.path...)
	}
	return snapshot
}

func (s *Stepper) goalCell() Cell {
	if s.goal == nil {
		return Cell{}
	}
	return s.goal.cell
}

func (s *Stepper) inBounds(cell Cell) bool {
	return cell.X >= 0 && cell.X < s.width && cell.Y >= 0 && cell.Y < s.height
}

// exists asks the terrain, but never trusts it with out-of-range cells.
func (s *Stepper) exists(cell Cell) bool {
	if !s.inBounds(cell) {
		return false
	}
	_, ok := s.terrain.Tile(cell.X, cell.Y)
	return ok
}

func (s *Stepper) index(x int, y int) int { return y*s.width + x }

func (s *Stepper) nodeAt(cell Cell) *node { return &s.nodes[s.index(cell.X, cell.Y)] }
