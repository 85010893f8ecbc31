package gridpath

import (
	"errors"
	"runtime"

	"github.com/rs/zerolog"
)

var (
	// ErrOutOfBounds is returned when start or target is not a tile of the terrain.
	ErrOutOfBounds = errors.New("cell is not on the terrain")
	// ErrEmptyTerrain is returned for terrains without any tiles.
	ErrEmptyTerrain = errors.New("terrain has no tiles")
	// ErrTerrainTooLarge is returned when the terrain has more than MaxTiles tiles.
	ErrTerrainTooLarge = errors.New("terrain too large")
	// ErrIterationLimit is returned when WithMaxIterations cuts a search short.
	ErrIterationLimit = errors.New("iteration limit reached")
)

// MaxTiles bounds width*height of a searchable terrain.
const MaxTiles = 1 << 30

// Result contains the outcome of a search.
// Found == false with a nil error means no route exists under the given
// blocking predicate; that is an expected outcome, not a failure.
type Result struct {
	Direction     Direction
	Path          []Cell
	Cost          int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	MaxIterations   int
	Logger          zerolog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines SolveAll runs queries on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxIterations caps the number of node expansions. Zero means no cap.
func WithMaxIterations(maxIterations int) Option {
	return func(options *Options) { options.MaxIterations = maxIterations }
}

// WithLogger enables debug logging of search outcomes.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Logger:          zerolog.Nop(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Solve runs the A* search from start to target to completion.
//
// Only the four axis-aligned neighbors are considered, in North, East, South,
// West order, each move costing StepCost. Among open cells with equal f the
// one discovered first is expanded first, so results are deterministic.
func Solve(
	terrain Terrain,
	start Cell,
	target Cell,
	blocked Blocking,
	options ...Option,
) (Result, error) {
	stepper, err := NewStepper(terrain, start, target, blocked, options...)
	if err != nil {
		return Result{}, err
	}
	if err := stepper.run(); err != nil {
		return stepper.Result(), err
	}
	return stepper.Result(), nil
}

// FindDirection returns the first move of the cheapest route to target.
// ok is false when no route exists or start already equals target; the
// caller picks its own fallback then.
func FindDirection(
	terrain Terrain,
	start Cell,
	target Cell,
	blocked Blocking,
	options ...Option,
) (direction Direction, ok bool, err error) {
	result, err := Solve(terrain, start, target, blocked, options...)
	if err != nil {
		return None, false, err
	}
	if !result.Found || result.Direction == None {
		return None, false, nil
	}
	return result.Direction, true, nil
}
