// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over implicit graphs.
//
// The graph is never materialised: the caller supplies a successor
// function that, given a state, lists the states reachable in one move
// together with the move's non-negative cost. States may be anything
// comparable (grid points, valve names, composite structs).
//
// Options:
//
//	– Target:      stop at the first settled state matching a predicate.
//	– MaxDistance: optional cap; states farther than this are not recorded.
//	– ReturnPath:  if true, record predecessors for path reconstruction.
//	– OnSettle:    hook called once per settled (expanded) state.
//	– OnRelax:     hook called on every distance table update.
//
// Errors (sentinel):
//
//	– ErrNilSuccessors   if the successor function is nil.
//	– ErrNegativeWeight  if a successor edge reports a negative cost.
//	– ErrUnreachable     if a Target was requested and none was reached.
//	– ErrOptionViolation if an option was given an invalid argument.
//	– ErrNoPath          if PathTo is asked for a state that was not reached.
//
// Example usage:
//
//	res, err := dijkstra.Run(start, dijkstra.Unit(g.Successors(grid.Forward)),
//	    dijkstra.WithTarget(func(p coord.Point) bool { return p == goal }),
//	    dijkstra.WithReturnPath[coord.Point](),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist[goal])
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilSuccessors indicates that a nil successor function was passed to Run.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNegativeWeight indicates that a successor edge carried a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that the frontier was exhausted without
	// settling any state matching the requested target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrOptionViolation indicates an invalid option argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that PathTo was called for a state absent from the result.
	ErrNoPath = errors.New("dijkstra: no path to state")
)

// Edge is one outgoing move from a state: the destination and its cost.
type Edge[S comparable] struct {
	To     S
	Weight int
}

// Successors lists the outgoing moves of a state. It must be deterministic
// for the duration of one search.
type Successors[S comparable] func(s S) []Edge[S]

// Unit adapts an unweighted neighbour generator into Successors where every
// move costs 1.
func Unit[S comparable](next func(S) []S) Successors[S] {
	if next == nil {
		return nil
	}

	return func(s S) []Edge[S] {
		ns := next(s)
		out := make([]Edge[S], len(ns))
		for i, n := range ns {
			out[i] = Edge[S]{To: n, Weight: 1}
		}

		return out
	}
}

// Options configures one Dijkstra run.
//
// Target      – optional predicate; when set, the search stops at the first
//
//	settled state for which it returns true.
//
// MaxDistance – states whose distance would exceed this are not recorded.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// ReturnPath  – record predecessors in Result.Prev.
type Options[S comparable] struct {
	Target      func(S) bool
	MaxDistance int
	ReturnPath  bool
	OnSettle    func(s S, dist int)
	OnRelax     func(s S, dist int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Run.
type Option[S comparable] func(*Options[S])

// DefaultOptions returns Options with no target, no distance cap, no path
// recording and no-op hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Target:      nil,
		MaxDistance: math.MaxInt,
		ReturnPath:  false,
		OnSettle:    func(S, int) {},
		OnRelax:     func(S, int) {},
	}
}

// WithTarget stops the search at the first settled state matching pred.
// A nil pred is ignored.
func WithTarget[S comparable](pred func(S) bool) Option[S] {
	return func(o *Options[S]) {
		if pred != nil {
			o.Target = pred
		}
	}
}

// WithMaxDistance caps the explored distance.
//
//	d ≥ 0: states farther than d are neither recorded nor expanded
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.ReturnPath = true
	}
}

// WithOnSettle registers a callback run once for every expanded state.
func WithOnSettle[S comparable](fn func(s S, dist int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run whenever a state's recorded distance
// is set or lowered.
func WithOnRelax[S comparable](fn func(s S, dist int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Table maps each reached state to its shortest known distance from the source.
type Table[S comparable] map[S]int

// Nearest returns the reached state with the smallest distance among those
// matching pred. Ties are broken arbitrarily; the distance is exact.
func (t Table[S]) Nearest(pred func(S) bool) (S, int, bool) {
	var (
		best  S
		bestD = math.MaxInt
		found bool
	)
	for s, d := range t {
		if d < bestD && pred(s) {
			best, bestD, found = s, d, true
		}
	}
	if !found {
		return best, 0, false
	}

	return best, bestD, true
}

// Result holds the outcome of a Run:
//   - Dist:    distance table of every reached state.
//   - Prev:    predecessor map (nil unless ReturnPath).
//   - Target:  the settled target state when Found.
//   - Found:   whether a Target predicate was satisfied.
//   - Settled: number of expanded states.
type Result[S comparable] struct {
	Source  S
	Dist    Table[S]
	Prev    map[S]S
	Target  S
	Found   bool
	Settled int
}

// PathTo reconstructs the path source → dest from the predecessor map.
// Requires ReturnPath; returns ErrNoPath if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	if r.Prev == nil {
		return nil, fmt.Errorf("%w: predecessors not recorded (use WithReturnPath)", ErrNoPath)
	}
	// build reversed path
	path := []S{dest}
	for cur := dest; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrNoPath, cur)
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
