package snake

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Stats summarises a finished or interrupted game.
type Stats struct {
	Ticks  int
	Score  int
	Length int
	Status Status
}

// RunOptions bounds a headless game.
type RunOptions struct {
	// Ticks caps the game length; zero runs until the game ends.
	Ticks int
	// Interval paces the ticks; zero runs as fast as possible.
	Interval time.Duration
}

// Run plays the game with the controller until it ends, the tick cap is
// reached or the context is cancelled.
func Run(ctx context.Context, g *Game, controller *Controller, logger zerolog.Logger, options RunOptions) (Stats, error) {
	var ticker *time.Ticker
	if options.Interval > 0 {
		ticker = time.NewTicker(options.Interval)
		defer ticker.Stop()
	}

	stats := Stats{Score: g.Score(), Length: g.Length(), Status: g.Status()}
	for g.Status() == Running && (options.Ticks <= 0 || stats.Ticks < options.Ticks) {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return stats, err
		}

		score := g.Score()
		status := g.Step(controller.Next(g))
		stats.Ticks++
		stats.Score = g.Score()
		stats.Length = g.Length()
		stats.Status = status

		if g.Score() > score {
			food, _ := g.Food()
			logger.Info().Int("tick", stats.Ticks).Int("score", g.Score()).Stringer("food", food).Msg("food eaten")
		}
	}

	logger.Info().
		Int("ticks", stats.Ticks).
		Int("score", stats.Score).
		Int("length", stats.Length).
		Stringer("status", stats.Status).
		Msg("run finished")
	return stats, nil
}
