// Package astar implements A* search over time-expanded state spaces: the
// environment itself changes every step, so a search vertex is a position
// together with the elapsed time.
//
// Each step the driver advances the field by one tick and offers five
// candidate moves: the four orthogonal directions plus waiting in place.
// A candidate is admitted only if it is open in the advanced snapshot.
//
// Complexity:
//
//   - Time:  O(S log S) for S explored (position, time) states.
//   - Space: O(S) for the frontier and closed set, plus one snapshot per
//     distinct elapsed time reached.
package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/frontier"
)

// state identifies a search vertex. slot is the elapsed time, reduced
// modulo the field period when the field is Periodic.
type state struct {
	pos  coord.Point
	slot int
}

// TimeExpanded finds the minimum number of steps to move from start to goal
// through the evolving field, starting at field's time step.
//
// Returns the step count and the field snapshot at the moment of arrival,
// so a following search can start from it (multi-leg trips through the
// same evolving field). Fails with ErrUnreachable when every reachable
// state within MaxSteps has been explored without reaching goal, or when
// start itself is not open in field.
func TimeExpanded[F Field[F]](start, goal coord.Point, field F, h Heuristic, opts ...Option) (int, F, error) {
	var zero F

	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, zero, cfg.err
	}
	if h == nil {
		return 0, zero, ErrNilHeuristic
	}
	// A start outside the field or covered at t=0 never enters the frontier.
	if !field.Open(start) {
		return 0, zero, fmt.Errorf("%w: start %v is not open", ErrUnreachable, start)
	}

	// 2) Detect periodic fields
	period := 0
	if p, ok := any(field).(Periodic); ok && p.Period() > 0 {
		period = p.Period()
	}

	// 3) Run
	s := &search[F]{
		goal:      goal,
		h:         h,
		options:   cfg,
		period:    period,
		snapshots: []F{field},
		pq:        frontier.New[state](),
		elapsed:   make(map[state]int),
		closed:    make(map[state]bool),
	}
	s.push(start, 0)

	return s.loop()
}

// search holds the mutable state for a single TimeExpanded execution.
type search[F Field[F]] struct {
	goal      coord.Point
	h         Heuristic
	options   Options
	period    int
	snapshots []F                    // snapshots[t] is the field after t steps
	pq        *frontier.Queue[state] // keyed by elapsed + heuristic
	elapsed   map[state]int          // best elapsed time per queued state
	closed    map[state]bool
}

// key builds the identity of (p, t).
func (s *search[F]) key(p coord.Point, t int) state {
	if s.period > 0 {
		return state{pos: p, slot: t % s.period}
	}

	return state{pos: p, slot: t}
}

// snapshot returns the field after t steps, advancing lazily. Earlier
// snapshots stay valid because Advance never mutates its receiver.
func (s *search[F]) snapshot(t int) F {
	for len(s.snapshots) <= t {
		s.snapshots = append(s.snapshots, s.snapshots[len(s.snapshots)-1].Advance())
	}

	return s.snapshots[t]
}

// push queues p at elapsed time t with priority t + h(p, goal).
func (s *search[F]) push(p coord.Point, t int) {
	k := s.key(p, t)
	if s.closed[k] {
		return
	}
	if s.pq.PushOrImprove(k, t+s.h(p, s.goal)) {
		s.elapsed[k] = t
	}
}

// loop pops the most promising state until the goal is reached or the
// frontier is exhausted.
func (s *search[F]) loop() (int, F, error) {
	var zero F
	for !s.pq.Empty() {
		// 1) Pop the state with the lowest elapsed + heuristic.
		k, _, err := s.pq.PopMin()
		if err != nil {
			return 0, zero, fmt.Errorf("astar: frontier: %w", err)
		}
		if s.closed[k] {
			continue
		}
		s.closed[k] = true
		t := s.elapsed[k]
		s.options.OnExpand(k.pos, t)

		// 2) Arrived: report steps and the snapshot at arrival.
		if k.pos == s.goal {
			return t, s.snapshot(t), nil
		}
		if t >= s.options.MaxSteps {
			continue
		}

		// 3) Advance the field and offer the four moves plus waiting.
		next := s.snapshot(t + 1)
		for _, d := range coord.Directions4 {
			if c := k.pos.Move(d); next.Open(c) {
				s.push(c, t+1)
			}
		}
		if next.Open(k.pos) {
			s.push(k.pos, t+1)
		}
	}

	return 0, zero, ErrUnreachable
}

// Journey chains TimeExpanded legs through consecutive waypoints. Each leg
// starts from the snapshot at which the previous leg arrived. It returns the
// total step count, the per-leg counts and the final arrival snapshot.
func Journey[F Field[F]](field F, h Heuristic, waypoints []coord.Point, opts ...Option) (int, []int, F, error) {
	if len(waypoints) < 2 {
		var zero F
		return 0, nil, zero, ErrTooFewWaypoints
	}

	cur := field
	total := 0
	legs := make([]int, 0, len(waypoints)-1)
	for i := 0; i+1 < len(waypoints); i++ {
		steps, arrival, err := TimeExpanded(waypoints[i], waypoints[i+1], cur, h, opts...)
		if err != nil {
			return total, legs, cur, fmt.Errorf("astar: leg %d %v→%v: %w", i+1, waypoints[i], waypoints[i+1], err)
		}
		legs = append(legs, steps)
		total += steps
		cur = arrival
	}

	return total, legs, cur, nil
}
