// Package tunnels defines the valve and network types and the sentinel
// errors for tunnel-network release planning.
package tunnels

import "errors"

// Sentinel errors returned by the tunnels package.
var (
	// ErrDuplicateValve indicates two valves sharing one name.
	ErrDuplicateValve = errors.New("tunnels: duplicate valve")

	// ErrUnknownLink indicates a tunnel leading to a valve that does not exist.
	ErrUnknownLink = errors.New("tunnels: link to unknown valve")

	// ErrNegativeRate indicates a valve with a negative flow rate.
	ErrNegativeRate = errors.New("tunnels: negative flow rate")

	// ErrUnknownValve indicates a query naming a valve that does not exist.
	ErrUnknownValve = errors.New("tunnels: unknown valve")

	// ErrNegativeBudget indicates a negative time budget.
	ErrNegativeBudget = errors.New("tunnels: negative time budget")

	// ErrTooManyValves indicates more valves with positive rate than fit in
	// an opened-set bitmask.
	ErrTooManyValves = errors.New("tunnels: too many valves with positive rate")

	// ErrBadLine indicates a scan line that does not describe a valve.
	ErrBadLine = errors.New("tunnels: malformed valve line")
)

// MaxUseful is the largest number of positive-rate valves a network may hold.
const MaxUseful = 64

// Valve is one named chamber. Rate is the pressure released per minute once
// opened; Links lists the valves reachable through one tunnel.
type Valve struct {
	Name  string   `yaml:"name"  validate:"required"`
	Rate  int      `yaml:"rate"  validate:"gte=0"`
	Links []string `yaml:"links" validate:"dive,required"`
}

// Options configures one release search.
//
// OnWalk – hook called once for every partial plan taken off the stack,
//
//	with the valve it stands at and the minutes left.
type Options struct {
	OnWalk func(at string, left int)
}

// Option represents a functional option for the release searches.
type Option func(*Options)

// DefaultOptions returns Options with a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnWalk: func(string, int) {},
	}
}

// WithOnWalk registers a callback run for every enumerated partial plan.
// A nil fn is ignored.
func WithOnWalk(fn func(at string, left int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWalk = fn
		}
	}
}
