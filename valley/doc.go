// Package valley implements the time-expanded environment of gridpath: a
// walled rectangle whose interior is crossed by blizzards that move one
// cell per minute and wrap around to the opposite side.
//
// Every Valley value is an immutable snapshot of one minute. Advance
// returns the next minute as a new snapshot and leaves the receiver
// untouched, so callers (and the A* driver) may hold and query any number
// of snapshots at once.
//
// Text format:
//
//	#.######
//	#>>.<^<#
//	#.<..<<#
//	#>v.><>#
//	#<^v^^>#
//	######.#
//
//   - '#' wall, '.' floor, '^' 'v' '<' '>' a blizzard on floor.
//   - The single gap in the top wall is the entrance, the single gap in the
//     bottom wall is the exit.
//
// Classification:
//
//   - Walls and cells holding one or more blizzards are grid.Blocked.
//   - Everything else inside the rectangle is grid.Open.
//   - Coordinates outside the rectangle yield grid.ErrOutOfBounds.
//
// Complexity:
//
//   - Advance: O(B) for B blizzards.
//   - Classify/Open: O(1).
//   - Period: the blizzard pattern repeats every lcm(interior width,
//     interior height) minutes.
package valley
