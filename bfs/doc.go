// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (edge count) from a start state.
//   - The graph is a neighbour function func(S) []S over any comparable
//     state type; grid cells, voxels and named nodes all work.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance (edges) from start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a state is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - Reachable regions and flood fills: connected components of a grid,
//     the air around a voxel volume.
//
// Determinism
//
//	Neighbours are enqueued in the order the neighbour function lists them,
//	so a deterministic neighbour function gives a reproducible visit order.
//
// Complexity (V = reachable states, E = edges among them)
//
//   - Time:   O(V + E)   (each state and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Walk(start, next,
//		bfs.WithMaxDepth[coord.Point](10),
//		bfs.WithContext[coord.Point](ctx),
//	)
//	if err != nil {
//		// ErrNilNeighbors, ErrOptionViolation, ctx.Err(), or hook errors
//	}
//	path, _ := res.PathTo(goal)
package bfs
