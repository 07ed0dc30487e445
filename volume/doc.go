// Package volume measures solids built from unit cubes on an integer 3D
// lattice.
//
// Two measurements are offered:
//
//   - SurfaceArea counts every cube face not shared with another cube.
//   - ExteriorSurfaceArea counts only faces reachable from outside. Air is
//     flooded breadth-first from a corner of the bounding box grown by one,
//     so enclosed pockets are excluded.
//
// The flood runs on the generic bfs walker and honours context
// cancellation.
package volume
