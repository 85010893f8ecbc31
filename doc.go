// Package gridpath finds the next move for an agent on a 4-connected grid.
//
// It exposes three entry points:
//
//   - Solve / FindDirection: run an A* search to completion and get a Result
//     or just the first move toward the target.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SolveAll: run independent queries (one per agent) on a worker pool.
//
// A search owns all of its state and is discarded when it returns. Obstacles
// are never stored in the terrain; each query supplies a Blocking predicate,
// so the same terrain serves "avoid the body now" and "avoid the body in N
// moves" queries against a moving snake.
package gridpath
