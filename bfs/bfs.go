// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores states in increasing distance from a start state,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	s     S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next    func(S) []S
	opts    Options[S]
	ctx     context.Context
	queue   []queueItem[S]
	head    int
	visited map[S]bool
	res     *Result[S]
}

// Walk runs breadth-first search from start, asking next for the
// neighbours of each visited state and applying any number of functional
// Options.
// Returns ErrNilNeighbors for a nil neighbour function, ErrOptionViolation
// for bad options, the context error on cancellation, or any user-supplied
// hook error. The partial Result is returned alongside errors.
func Walk[S comparable](start S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	w := &walker[S]{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[S]bool),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, 0, start, false)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks s visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent S, hasParent bool) {
	w.visited[s] = true
	w.res.Depth[s] = d
	if hasParent {
		w.res.Parent[s] = parent
	}
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem[S]{s: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.s, item.depth)
	return item
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.s)
	if err := w.opts.OnVisit(item.s, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.s, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.s) {
		if !w.opts.FilterNeighbor(item.s, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.s, true)
		}
	}
}
