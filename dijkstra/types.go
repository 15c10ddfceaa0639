package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start position out of bounds")

	// ErrStartBlocked indicates the start position is a wall.
	ErrStartBlocked = errors.New("dijkstra: start position is a wall")

	// ErrGoalOutOfBounds indicates the goal position lies outside the grid.
	ErrGoalOutOfBounds = errors.New("dijkstra: goal position out of bounds")

	// ErrGoalBlocked indicates the goal position is a wall.
	ErrGoalBlocked = errors.New("dijkstra: goal position is a wall")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Infinity is the recorded cost of a state the search never reached.
const Infinity int64 = math.MaxInt64

// Options configures the behavior of Solve.
//
// Start              – overrides the grid's start State when HasStart is set.
// Goal               – overrides the grid's goal Position when HasGoal is set.
// TrackPredecessors  – keep tie-aware predecessor sets and drain the queue.
// MaxCost            – states whose cost would exceed this cap are not explored.
//
//	Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	Start             maze.State
	HasStart          bool
	Goal              maze.Position
	HasGoal           bool
	TrackPredecessors bool
	MaxCost           int64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStart searches from s instead of the grid's start marker.
func WithStart(s maze.State) Option {
	return func(o *Options) {
		o.Start = s
		o.HasStart = true
	}
}

// WithGoal searches toward p instead of the grid's goal marker.
func WithGoal(p maze.Position) Option {
	return func(o *Options) {
		o.Goal = p
		o.HasGoal = true
	}
}

// WithTrackPredecessors keeps, for every state, all predecessors achieving
// its minimal cost, and runs the search until the queue is exhausted.
func WithTrackPredecessors() Option {
	return func(o *Options) {
		o.TrackPredecessors = true
	}
}

// WithMaxCost sets a cap on explored cost.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// grid markers, no predecessor tracking, no cost cap.
func DefaultOptions() Options {
	return Options{
		TrackPredecessors: false,
		MaxCost:           Infinity,
	}
}
