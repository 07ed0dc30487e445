// Package astar provides heuristic shortest-path search through an
// environment that evolves over discrete time steps.
//
// Overview:
//
//   - A state is (position, elapsed time). The environment snapshot at a
//     state is a deterministic function of the elapsed time, so it is not
//     part of the state identity; the driver memoises one snapshot per
//     time step and hands the right one to neighbour generation.
//   - Successors of (p, t) are the four orthogonal moves and waiting at p,
//     each admitted only if open in the snapshot at t+1. Waiting matters:
//     without it the search fails whenever every move is momentarily
//     blocked.
//   - Priority is elapsed + heuristic. With an admissible heuristic (never
//     overestimating, e.g. Manhattan for unit moves) the first time the goal
//     is popped its elapsed time is minimal.
//
// Termination:
//
//   - Periodic fields (Period() > 0) merge times modulo the period, so the
//     state space is finite and exhaustion is detected.
//   - Any field is additionally bounded by MaxSteps.
//   - Exhaustion yields ErrUnreachable; there are no retries.
//
// Multi-leg trips:
//
//   - TimeExpanded returns the arrival snapshot. Feeding it into the next
//     call continues the same timeline; Journey does this for a list of
//     waypoints.
//
// API reference:
//
//	func TimeExpanded[F Field[F]](start, goal coord.Point, field F, h Heuristic, opts ...Option) (int, F, error)
//	func Journey[F Field[F]](field F, h Heuristic, waypoints []coord.Point, opts ...Option) (int, []int, F, error)
package astar
