package gridpath

// StepCost is the cost of one axis-aligned move. The heuristic uses the same unit.
const StepCost = 10

type nodeState uint8

const (
	stateUnvisited nodeState = iota
	stateOpen
	stateClosed
)

// node is the per-cell search bookkeeping. Nodes live in one arena slice
// per search; parent is an index into that slice.
type node struct {
	cell    Cell
	id      int
	g       int
	h       int
	parent  int
	arrival Direction

	state        nodeState
	sequence     int
	indexInQueue int
}

func (n *node) init(id int, cell Cell, target Cell) {
	n.cell = cell
	n.id = id
	n.g = 0
	n.h = StepCost * Manhattan(cell, target)
	n.parent = -1
	n.arrival = None
}

// update relaxes the node unconditionally. Used on first discovery.
func (n *node) update(from *node, direction Direction, cost int) {
	n.parent = from.id
	n.arrival = direction
	n.g = from.g + cost
}

// relaxIfBetter relaxes the node only if the path through from is strictly cheaper.
func (n *node) relaxIfBetter(from *node, direction Direction, cost int) bool {
	if from.g+cost >= n.g {
		return false
	}
	n.update(from, direction, cost)
	return true
}

func (n *node) f() int { return n.g + n.h }
