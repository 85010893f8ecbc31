package snake

import "github.com/pdrpinto/gridpath"

// BodyBlocking blocks every body cell except the tail, which is vacated on
// the next tick.
func BodyBlocking(g *Game) gridpath.Blocking {
	return BodyAfter(g, 1)
}

// BodyAfter blocks only the segments still occupied after the snake has made
// steps moves without growing. The body is copied, so the predicate stays
// valid while the game moves on.
func BodyAfter(g *Game, steps int) gridpath.Blocking {
	if steps < 0 {
		steps = 0
	}
	remaining := len(g.body) - steps
	if remaining < 0 {
		remaining = 0
	}
	occupied := make(map[gridpath.Cell]bool, remaining)
	for _, cell := range g.body[:remaining] {
		occupied[cell] = true
	}
	return func(cell gridpath.Cell) bool { return occupied[cell] }
}
