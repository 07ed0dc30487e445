package tunnels

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
)

// Network is an immutable set of valves joined by unit-length tunnels.
type Network struct {
	valves map[string]Valve
	names  []string       // every valve, sorted
	useful []string       // positive-rate valves, sorted; index = bit
	bit    map[string]int // useful valve → bit index
}

// New validates valves and builds a Network.
func New(valves ...Valve) (*Network, error) {
	n := &Network{
		valves: make(map[string]Valve, len(valves)),
		bit:    make(map[string]int),
	}
	for _, v := range valves {
		if _, dup := n.valves[v.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValve, v.Name)
		}
		if v.Rate < 0 {
			return nil, fmt.Errorf("%w: %q rate %d", ErrNegativeRate, v.Name, v.Rate)
		}
		v.Links = append([]string(nil), v.Links...)
		n.valves[v.Name] = v
		n.names = append(n.names, v.Name)
	}
	for _, v := range n.valves {
		for _, l := range v.Links {
			if _, ok := n.valves[l]; !ok {
				return nil, fmt.Errorf("%w: %q → %q", ErrUnknownLink, v.Name, l)
			}
		}
	}
	sort.Strings(n.names)
	for _, name := range n.names {
		if n.valves[name].Rate > 0 {
			n.useful = append(n.useful, name)
		}
	}
	if len(n.useful) > MaxUseful {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(n.useful), MaxUseful)
	}
	for i, name := range n.useful {
		n.bit[name] = i
	}

	return n, nil
}

var valveLine = regexp.MustCompile(`^Valve (\S+) has flow rate=(-?\d+); tunnels? leads? to valves? (.+)$`)

// Parse reads one valve per line in the form
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// and builds a Network. Blank lines are skipped.
func Parse(lines []string) (*Network, error) {
	var valves []Valve
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := valveLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, i+1, line)
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, i+1, err)
		}
		links := strings.Split(m[3], ",")
		for j := range links {
			links[j] = strings.TrimSpace(links[j])
		}
		valves = append(valves, Valve{Name: m[1], Rate: rate, Links: links})
	}

	return New(valves...)
}

// Valve returns the valve with the given name.
func (n *Network) Valve(name string) (Valve, bool) {
	v, ok := n.valves[name]
	return v, ok
}

// Names returns every valve name in sorted order.
func (n *Network) Names() []string {
	return append([]string(nil), n.names...)
}

// Useful returns the positive-rate valves in sorted order. The position of
// a name is its bit in opened-set masks.
func (n *Network) Useful() []string {
	return append([]string(nil), n.useful...)
}

// Mask returns the opened-set bitmask for the given valve names.
func (n *Network) Mask(names ...string) (uint64, error) {
	var m uint64
	for _, name := range names {
		i, ok := n.bit[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q has no positive rate", ErrUnknownValve, name)
		}
		m |= 1 << uint(i)
	}

	return m, nil
}

// links is the successor function handed to the dijkstra driver.
func (n *Network) links(name string) []string {
	return n.valves[name].Links
}

// Distances returns the tunnel hop count from the named valve to every
// valve reachable from it.
func (n *Network) Distances(from string) (dijkstra.Table[string], error) {
	if _, ok := n.valves[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValve, from)
	}

	return dijkstra.ShortestDistances(from, n.links)
}
