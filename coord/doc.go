// Package coord provides the discrete coordinate model shared by every
// search engine in gridpath.
//
// What:
//
//   - Point:     2D integer coordinate (X = column, Y = row, Y grows down).
//   - Point3:    3D integer coordinate for voxel volumes.
//   - Direction: the four grid moves Up, Down, Left, Right.
//   - Axis:      the six 3D unit moves along ±X, ±Y, ±Z.
//
// All types are plain comparable values: copy them freely and use them as
// map keys. Translating a coordinate never fails, but the result may lie
// outside an environment; callers validate bounds before use.
//
// Distance:
//
//   - Manhattan distance is the sum of absolute component differences.
//     With unit-cost 4-directional moves it never overestimates the true
//     number of steps, so it is an admissible A* heuristic.
//
// Periodic movers:
//
//   - Wrap and WrapRange use floored modulo, so negative inputs wrap to
//     the far end of the range instead of producing negative remainders.
//
// Complexity: every operation is O(1).
package coord
