// Package tunnels plans pressure release in a network of valves joined by
// tunnels.
//
// Every valve has a flow rate; moving through one tunnel takes a minute and
// opening a valve takes a minute. Once opened, a valve releases its rate
// every remaining minute. Given a start valve and a time budget the package
// answers:
//
//   - MaxRelease: the best total release for one agent.
//   - MaxReleasePair: the best total for two agents working in parallel on
//     disjoint valve sets.
//   - BestBySet: the best release per exact opened set, the building block
//     of both.
//
// Only positive-rate valves are ever worth visiting, so the search jumps
// directly between them using hop counts from the dijkstra driver
// (Distances) instead of walking single tunnels.
package tunnels
