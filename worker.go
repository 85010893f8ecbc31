package gridpath

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one independent search, typically one agent's move for a tick.
type Query struct {
	Terrain Terrain
	Start   Cell
	Target  Cell
	Blocked Blocking
}

// SolveAll runs every query in its own search on a bounded pool of goroutines.
// Results are returned in query order. The first failing query cancels the
// ones not yet started and its error is returned.
func SolveAll(contextObject context.Context, queries []Query, options ...Option) ([]Result, error) {
	searchOptions := applyOptions(options)
	results := make([]Result, len(queries))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		if groupContext.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			result, err := Solve(query.Terrain, query.Start, query.Target, query.Blocked, options...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := contextObject.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
