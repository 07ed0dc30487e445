package frontier

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by PopMin and Peek on an empty queue. Drivers check
// Len before popping, so seeing it from a driver is an internal bug.
var ErrEmpty = errors.New("frontier: queue is empty")

// entry is one queued state with its priority and current heap slot.
type entry[S comparable] struct {
	state    S
	priority int
	index    int
}

// entries is the container/heap backing slice, ordered by priority.
type entries[S comparable] []*entry[S]

func (h entries[S]) Len() int           { return len(h) }
func (h entries[S]) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h entries[S]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push is called by heap.Push; x must be *entry[S].
func (h *entries[S]) Push(x any) {
	e := x.(*entry[S])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop is called by heap.Pop.
func (h *entries[S]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of distinct states.
// The zero value is not usable; call New.
type Queue[S comparable] struct {
	heap  entries[S]
	index map[S]*entry[S]
}

// New returns an empty Queue.
func New[S comparable]() *Queue[S] {
	return &Queue[S]{
		heap:  make(entries[S], 0, 64),
		index: make(map[S]*entry[S], 64),
	}
}

// PushOrImprove inserts s with the given priority, or lowers the priority of
// an already queued s when the new value is strictly smaller. It reports
// whether the queue changed.
func (q *Queue[S]) PushOrImprove(s S, priority int) bool {
	if e, ok := q.index[s]; ok {
		if priority >= e.priority {
			return false
		}
		e.priority = priority
		heap.Fix(&q.heap, e.index)

		return true
	}

	e := &entry[S]{state: s, priority: priority}
	heap.Push(&q.heap, e)
	q.index[s] = e

	return true
}

// PopMin removes and returns a state with the smallest priority.
func (q *Queue[S]) PopMin() (S, int, error) {
	if len(q.heap) == 0 {
		var zero S
		return zero, 0, ErrEmpty
	}
	e := heap.Pop(&q.heap).(*entry[S])
	delete(q.index, e.state)

	return e.state, e.priority, nil
}

// Peek returns the minimum entry without removing it.
func (q *Queue[S]) Peek() (S, int, error) {
	if len(q.heap) == 0 {
		var zero S
		return zero, 0, ErrEmpty
	}

	return q.heap[0].state, q.heap[0].priority, nil
}

// Priority returns the queued priority of s, if s is queued.
func (q *Queue[S]) Priority(s S) (int, bool) {
	e, ok := q.index[s]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Len returns the number of queued states.
func (q *Queue[S]) Len() int { return len(q.heap) }

// Empty reports whether the queue holds no states.
func (q *Queue[S]) Empty() bool { return len(q.heap) == 0 }
