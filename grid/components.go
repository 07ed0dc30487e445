package grid

import (
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/coord"
)

// ConnectedComponents finds all contiguous regions of traversable cells
// according to g.Conn connectivity. The StepRule is ignored: two adjacent
// traversable cells are connected regardless of elevation.
// Returns a slice of components; each component lists its points in BFS
// order starting from its first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]coord.Point {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]coord.Point

	// Row-major scan by index, so regions are found in reading order.
	for idx := range seen {
		p0 := g.Coordinate(idx)
		if seen[idx] || !g.cells[p0.Y][p0.X].Class.Traversable() {
			continue
		}
		// adjacent is non-nil and no options are passed, so Walk cannot fail.
		res, _ := bfs.Walk(p0, g.adjacent)
		for _, p := range res.Order {
			seen[g.index(p)] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// adjacent lists in-bounds traversable neighbours of p under g.Conn.
func (g *Grid) adjacent(p coord.Point) []coord.Point {
	offsets := g.NeighborOffsets()
	out := make([]coord.Point, 0, len(offsets))
	for _, d := range offsets {
		q := p.Add(d)
		if g.InBounds(q) && g.cells[q.Y][q.X].Class.Traversable() {
			out = append(out, q)
		}
	}

	return out
}
