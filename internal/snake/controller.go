package snake

import (
	"github.com/rs/zerolog"

	"github.com/pdrpinto/gridpath"
)

// Controller steers a snake toward the food.
type Controller struct {
	// Lookahead, when above 1, enables a second query that assumes the tail
	// has moved that many cells before the head gets there.
	Lookahead int

	logger  zerolog.Logger
	options []gridpath.Option
}

// NewController returns a controller; options are passed to every search.
func NewController(logger zerolog.Logger, lookahead int, options ...gridpath.Option) *Controller {
	return &Controller{Lookahead: lookahead, logger: logger, options: options}
}

// Next picks the direction for the coming tick.
func (c *Controller) Next(g *Game) gridpath.Direction {
	food, ok := g.Food()
	if !ok {
		return c.fallback(g)
	}

	direction, found, err := gridpath.FindDirection(g.Board(), g.Head(), food, BodyBlocking(g), c.options...)
	if err != nil {
		c.logger.Warn().Err(err).Stringer("head", g.Head()).Msg("search failed")
		return c.fallback(g)
	}
	if found && c.safe(g, direction) {
		return direction
	}

	if c.Lookahead > 1 {
		direction, found, err = gridpath.FindDirection(g.Board(), g.Head(), food, BodyAfter(g, c.Lookahead), c.options...)
		if err == nil && found && c.safe(g, direction) {
			c.logger.Debug().Stringer("direction", direction).Int("lookahead", c.Lookahead).Msg("route through vacating tail")
			return direction
		}
	}

	direction = c.fallback(g)
	c.logger.Debug().Stringer("head", g.Head()).Stringer("food", food).Stringer("direction", direction).Msg("no route to food, falling back")
	return direction
}

// fallback keeps going straight if that is safe, otherwise takes the first
// safe neighbor in expansion order. With nothing safe the heading is kept.
func (c *Controller) fallback(g *Game) gridpath.Direction {
	if c.safe(g, g.Heading()) {
		return g.Heading()
	}
	for _, direction := range gridpath.Directions {
		if c.safe(g, direction) {
			return direction
		}
	}
	return g.Heading()
}

func (c *Controller) safe(g *Game, direction gridpath.Direction) bool {
	if g.Length() > 1 && direction == g.Heading().Opposite() {
		return false
	}
	next := g.Head().Step(direction)
	if _, ok := g.Board().Tile(next.X, next.Y); !ok {
		return false
	}
	return !BodyBlocking(g)(next)
}
