// Package grid treats a rectangular map of classified cells as the static
// environment of a shortest-path search.
//
// What:
//
//   - Grid wraps a [][]Cell; each Cell carries its source rune, a Class
//     (Open, Blocked, Marker) and an optional elevation.
//   - A Legend turns text rows into cells (MazeLegend, ElevationLegend).
//   - A StepRule (AnyStep, MaxClimb) decides which moves between elevations
//     are allowed; it is asymmetric, so Successors takes a Traversal to run
//     searches backwards from a goal.
//   - ConnectedComponents groups traversable cells into regions.
//
// Why:
//
//   - Terrain maps: "may climb at most one unit per step" routing.
//   - Mazes: plain open/blocked navigation.
//   - Reverse queries: one search from the goal answers "nearest start of
//     kind X" for every candidate start at once.
//
// Complexity:
//
//   - Classify, CanStep:      O(1).
//   - Successors (per call):  O(d), d = 4 or 8.
//   - ConnectedComponents:    O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: queried coordinate lies outside the grid. It is
//     absorbed by CanStep/Successors and never reaches a search driver.
//   - ErrUnknownRune: a strict legend met an unmapped rune.
//   - ErrBadStepRule: ParseStepRule could not read its input.
package grid
