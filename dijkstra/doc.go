// Package dijkstra provides Dijkstra's shortest-path algorithm over
// implicit graphs with non-negative edge weights.
//
// Overview:
//
//   - Run computes the minimum-cost distance from one source state to all
//     reachable states in O((V + E) log V) time.
//   - The graph is described by a successor function, so grid cells, named
//     nodes or composite search states can be searched without building an
//     adjacency structure first.
//   - ShortestDistances is the unweighted convenience form: every move costs 1.
//
// When to use:
//
//   - Distance tables over static grids (e.g. elevation maps where a step is
//     only allowed when the climb is small enough).
//   - "Nearest cell of some kind" queries: run once from the fixed endpoint
//     over the reversed traversal rule, then Table.Nearest.
//   - Hop distances inside small named networks.
//
// Reverse searches:
//
//   - When the traversal rule is asymmetric, computing distance-to-a-goal
//     requires a successor function that evaluates the rule with the
//     endpoints swapped. See grid.Reverse.
//
// Key features:
//
//   - Target: stop at the first settled state matching a predicate.
//   - MaxDistance: stop exploration beyond a distance cap.
//   - ReturnPath: predecessor map and Result.PathTo.
//   - OnSettle / OnRelax hooks for metrics and tracing.
//
// Error handling (sentinel errors):
//
//   - ErrNilSuccessors, ErrNegativeWeight, ErrUnreachable,
//     ErrOptionViolation, ErrNoPath.
//
// API reference:
//
//	func Run[S comparable](source S, next Successors[S], opts ...Option[S]) (*Result[S], error)
//	func ShortestDistances[S comparable](source S, next func(S) []S) (Table[S], error)
package dijkstra
