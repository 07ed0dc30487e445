// Package dijkstra implements Dijkstra's shortest-path algorithm on implicit
// graphs with non-negative edge weights.
//
// Dijkstra computes the minimum-cost distance from a single source state to
// every reachable state. It processes states in order of increasing
// distance using a min-priority frontier, relaxing outgoing edges produced
// on demand by a successor function.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each state is expanded at most once.
//   - Each edge relaxation may insert into or improve the frontier: up to E operations.
//   - Space: O(V)
//   - O(V) for the distance table, optional predecessor map and frontier.
//
// Notes on implementation choices:
//
//   - Negative weights are detected during relaxation (the graph is implicit,
//     so there is no edge list to pre-scan) and abort the run.
//   - We stop exploring once the minimum distance in the frontier exceeds MaxDistance.
//   - The frontier supports decrease-key, but popped priorities are still
//     checked against the table: an entry worse than the recorded distance
//     is stale and skipped.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
)

// Run computes shortest distances from source over the implicit graph
// described by next. It accepts functional options to customise behaviour
// (Target, MaxDistance, ReturnPath, hooks).
//
// Returns:
//
//   - res.Dist: distance table of every reached state (source included, at 0).
//   - res.Prev: predecessor map if ReturnPath (nil otherwise).
//   - err: ErrNilSuccessors, ErrOptionViolation, ErrNegativeWeight, or
//     ErrUnreachable when a Target was requested and never settled.
//     On ErrUnreachable the fully explored result is still returned.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Run[S comparable](source S, next Successors[S], opts ...Option[S]) (*Result[S], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the successor function
	if next == nil {
		return nil, ErrNilSuccessors
	}

	// 3) Prepare the runner
	r := &runner[S]{
		next:    next,
		options: cfg,
		pq:      frontier.New[S](),
		res: &Result[S]{
			Source: source,
			Dist:   make(Table[S]),
		},
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[S]S)
	}

	// 4) Seed and run the main loop
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Target requested but never settled
	if cfg.Target != nil && !r.res.Found {
		return r.res, ErrUnreachable
	}

	return r.res, nil
}

// ShortestDistances runs an unweighted search from source and returns the
// full distance table. Every move produced by next costs 1.
func ShortestDistances[S comparable](source S, next func(S) []S) (Table[S], error) {
	res, err := Run(source, Unit(next))
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	next    Successors[S]      // Successor function; read-only within Run.
	options Options[S]         // Configuration options.
	pq      *frontier.Queue[S] // Min-priority frontier keyed by distance.
	res     *Result[S]         // Distance table, predecessors and counters.
}

// init records the source at distance 0 and pushes it onto the frontier.
func (r *runner[S]) init(source S) {
	r.res.Dist[source] = 0
	r.options.OnRelax(source, 0)
	r.pq.PushOrImprove(source, 0)
}

// process is the core loop. It repeatedly extracts the state with minimum
// distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable states settled).
//   - The minimum distance in the frontier exceeds MaxDistance.
//   - A state matching Target is settled.
func (r *runner[S]) process() error {
	cfg := r.options
	for !r.pq.Empty() {
		// 1) Pop the smallest-distance state.
		u, d, err := r.pq.PopMin()
		if err != nil {
			// Len was checked above; an empty pop here is an internal invariant violation.
			return fmt.Errorf("dijkstra: frontier: %w", err)
		}

		// 2) Skip stale entries whose priority is worse than the recorded distance.
		if d > r.res.Dist[u] {
			continue
		}

		// 3) Past the distance cap nothing further can be recorded.
		if d > cfg.MaxDistance {
			break
		}

		// 4) u is settled.
		r.res.Settled++
		cfg.OnSettle(u, d)
		if cfg.Target != nil && cfg.Target(u) {
			r.res.Target = u
			r.res.Found = true
			return nil
		}

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbour distances.
// Only strictly shorter candidates update the table, so recorded values
// never increase.
func (r *runner[S]) relax(u S, du int) error {
	for _, e := range r.next(u) {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}

		// du ≤ MaxDistance, so the subtraction cannot overflow; the sum then
		// stays within MaxDistance.
		if e.Weight > r.options.MaxDistance-du {
			continue
		}
		candidate := du + e.Weight
		if old, seen := r.res.Dist[e.To]; seen && candidate >= old {
			continue
		}

		r.res.Dist[e.To] = candidate
		if r.res.Prev != nil {
			r.res.Prev[e.To] = u
		}
		r.options.OnRelax(e.To, candidate)
		r.pq.PushOrImprove(e.To, candidate)
	}

	return nil
}
