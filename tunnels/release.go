package tunnels

import (
	"fmt"
)

// walk is one immutable partial plan: standing at a valve with minutes left,
// a set of opened valves and the pressure they will release in total.
type walk struct {
	at       string
	left     int
	opened   uint64
	released int
}

// BestBySet returns, for every set of valves that can be opened within
// budget minutes starting at start, the best total release achievable by
// opening exactly that set. The empty set maps to 0.
//
// Moving through a tunnel and opening a valve each cost one minute. A valve
// opened with m minutes left releases rate × m.
//
// Plans are enumerated depth-first with an explicit stack; each plan is an
// immutable value, so no state is shared between branches.
func (n *Network) BestBySet(start string, budget int, opts ...Option) (map[uint64]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	dist, err := n.distanceTables(start)
	if err != nil {
		return nil, err
	}

	best := map[uint64]int{0: 0}
	stack := []walk{{at: start, left: budget}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cfg.OnWalk(w.at, w.left)

		if prev, ok := best[w.opened]; !ok || w.released > prev {
			best[w.opened] = w.released
		}

		for i, name := range n.useful {
			bit := uint64(1) << uint(i)
			if w.opened&bit != 0 {
				continue
			}
			d, ok := dist[w.at][name]
			if !ok {
				continue
			}
			left := w.left - d - 1
			if left <= 0 {
				continue
			}
			stack = append(stack, walk{
				at:       name,
				left:     left,
				opened:   w.opened | bit,
				released: w.released + n.valves[name].Rate*left,
			})
		}
	}

	return best, nil
}

// MaxRelease returns the best total release one agent can achieve within
// budget minutes starting at start.
func (n *Network) MaxRelease(start string, budget int, opts ...Option) (int, error) {
	best, err := n.BestBySet(start, budget, opts...)
	if err != nil {
		return 0, err
	}
	top := 0
	for _, r := range best {
		if r > top {
			top = r
		}
	}

	return top, nil
}

// MaxReleasePair returns the best total release two agents can achieve
// when both start at start with budget minutes and open disjoint sets.
func (n *Network) MaxReleasePair(start string, budget int, opts ...Option) (int, error) {
	best, err := n.BestBySet(start, budget, opts...)
	if err != nil {
		return 0, err
	}

	masks := make([]uint64, 0, len(best))
	for m := range best {
		masks = append(masks, m)
	}
	top := 0
	for i, a := range masks {
		for _, b := range masks[i:] {
			if a&b != 0 {
				continue
			}
			if r := best[a] + best[b]; r > top {
				top = r
			}
		}
	}

	return top, nil
}

// distanceTables runs the dijkstra driver from start and from every useful
// valve.
func (n *Network) distanceTables(start string) (map[string]map[string]int, error) {
	out := make(map[string]map[string]int, len(n.useful)+1)
	for _, from := range append([]string{start}, n.useful...) {
		if _, done := out[from]; done {
			continue
		}
		tbl, err := n.Distances(from)
		if err != nil {
			return nil, err
		}
		out[from] = tbl
	}

	return out, nil
}
