// Package bfs provides tunable options and error definitions
// for breadth‐first search over implicit graphs.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighbors is returned when no neighbour function is supplied.
	ErrNilNeighbors = errors.New("bfs: neighbour function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a state that was never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures Walk behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize Walk execution.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	// Receives the state and its depth from the start.
	OnEnqueue func(s S, depth int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(s S, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// Walk aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor S) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:            context.Background(),
		OnEnqueue:      func(S, int) {},
		OnDequeue:      func(S, int) {},
		OnVisit:        func(S, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ S) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, neighbor S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in edges) from the start.
//   - Parent: map from state to its predecessor in the BFS tree.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was discovered.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the path from the start state to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
