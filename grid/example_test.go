package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: reverse search from a goal
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Successors demonstrates distance-to-goal on an elevation map
// where each step may climb at most one unit.
//
// Scenario:
//
//   - S sits at elevation a, E at elevation z.
//   - One reverse search from E yields the distance from every cell to E.
//
// Complexity: O(W·H·log(W·H)).
func ExampleGrid_Successors() {
	rows := []string{
		"Sabqponm",
		"abcryxxl",
		"accszExk",
		"acctuvwj",
		"abdefghi",
	}
	opts := grid.DefaultOptions()
	opts.Rule = grid.MaxClimb(1)
	g, _ := grid.Parse(rows, grid.ElevationLegend(), opts)

	start, _ := g.Find('S')
	end, _ := g.Find('E')
	dist, _ := g.ShortestDistances(end, grid.Reverse)
	fmt.Println("steps from S to E:", dist[start])
	// Output: steps from S to E: 31
}
