// Package astar defines the field contract, options and sentinel errors for
// the time-expanded A* search.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/coord"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnreachable indicates that the frontier was exhausted without
	// reaching the goal.
	ErrUnreachable = errors.New("astar: goal unreachable")

	// ErrOptionViolation indicates an invalid option argument.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrTooFewWaypoints indicates a Journey with fewer than two waypoints.
	ErrTooFewWaypoints = errors.New("astar: journey needs at least two waypoints")
)

// DefaultMaxSteps bounds the elapsed time of any explored state when no
// WithMaxSteps option is given.
const DefaultMaxSteps = 1 << 16

// Field is one immutable snapshot of a time-evolving environment.
//
// Advance returns the snapshot one time step later and must not modify the
// receiver. Open reports whether a position may be occupied during the
// snapshot's time step; out-of-bounds positions are not open.
type Field[F any] interface {
	Advance() F
	Open(p coord.Point) bool
}

// Periodic is implemented by fields whose evolution repeats. When the
// period is known, states at times t and t+Period are merged, which keeps
// the explored state space finite.
type Periodic interface {
	Period() int
}

// Heuristic estimates the remaining steps from a to b. It must never
// overestimate the true remaining distance for results to be optimal.
type Heuristic func(a, b coord.Point) int

// Manhattan is the admissible heuristic for unit-cost 4-directional moves.
func Manhattan(a, b coord.Point) int {
	return coord.Manhattan(a, b)
}

// Options configures one TimeExpanded search.
//
// MaxSteps – states older than this many steps are not expanded.
//
//	Must be > 0. Default is DefaultMaxSteps.
//
// OnExpand – hook called once for every expanded state with its position
//
//	and elapsed step count.
type Options struct {
	MaxSteps int
	OnExpand func(p coord.Point, elapsed int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring TimeExpanded.
type Option func(*Options)

// DefaultOptions returns Options with MaxSteps=DefaultMaxSteps and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: DefaultMaxSteps,
		OnExpand: func(coord.Point, int) {},
	}
}

// WithMaxSteps bounds the elapsed time of expanded states.
//
//	n > 0:  limit to n steps
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnExpand registers a callback run for every expanded state.
func WithOnExpand(fn func(p coord.Point, elapsed int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
