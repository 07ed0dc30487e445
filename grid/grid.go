// Package grid provides the static environment used by the gridpath
// search drivers: a rectangular map of classified cells with optional
// elevations. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Classification queries with explicit out-of-bounds errors
//   - Direction-aware successor generation for Dijkstra
//   - Identification of connected traversable regions
package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/coord"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(cells [][]Cell, opts Options) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	own := make([][]Cell, h)
	for y := 0; y < h; y++ {
		own[y] = make([]Cell, w)
		copy(own[y], cells[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []coord.Point
	if opts.Conn == Conn8 {
		offsets = []coord.Point{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1}}
	} else {
		offsets = []coord.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Rule:            opts.Rule,
		Conn:            opts.Conn,
		cells:           own,
		neighborOffsets: offsets,
	}, nil
}

// Parse builds a Grid from text rows, resolving each rune through legend.
// Errors from the legend are wrapped with the offending position.
func Parse(rows []string, legend Legend, opts Options) (*Grid, error) {
	cells := make([][]Cell, len(rows))
	for y, line := range rows {
		runes := []rune(line)
		cells[y] = make([]Cell, len(runes))
		for x, r := range runes {
			c, err := legend.Cell(r)
			if err != nil {
				return nil, fmt.Errorf("grid: parse (%d,%d): %w", x, y, err)
			}
			cells[y][x] = c
		}
	}

	return New(cells, opts)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p coord.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cell returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Cell(p coord.Point) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
	}

	return g.cells[p.Y][p.X], nil
}

// Classify returns the class of the cell at p, or ErrOutOfBounds.
// The answer for a given p never changes.
func (g *Grid) Classify(p coord.Point) (Class, error) {
	c, err := g.Cell(p)
	if err != nil {
		return Blocked, err
	}

	return c.Class, nil
}

// Elevation returns the elevation of the cell at p, or ErrOutOfBounds.
func (g *Grid) Elevation(p coord.Point) (int, error) {
	c, err := g.Cell(p)
	if err != nil {
		return 0, err
	}

	return c.Elevation, nil
}

// Find returns the first cell in row-major order parsed from r.
func (g *Grid) Find(r rune) (coord.Point, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x].Rune == r {
				return coord.Point{X: x, Y: y}, true
			}
		}
	}

	return coord.Point{}, false
}

// Points returns every cell position matching pred, in row-major order.
func (g *Grid) Points(pred func(Cell) bool) []coord.Point {
	var out []coord.Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if pred(g.cells[y][x]) {
				out = append(out, coord.Point{X: x, Y: y})
			}
		}
	}

	return out
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() []coord.Point {
	return g.neighborOffsets
}

// CanStep reports whether the search may step from one cell to an adjacent
// one under the given traversal. Both cells must be in bounds and
// traversable; the StepRule is then applied as from → to for Forward and
// as to → from for Reverse. Out-of-bounds lookups simply yield false.
func (g *Grid) CanStep(from, to coord.Point, tr Traversal) bool {
	a, err := g.Cell(from)
	if err != nil || !a.Class.Traversable() {
		return false
	}
	b, err := g.Cell(to)
	if err != nil || !b.Class.Traversable() {
		return false
	}
	if tr == Reverse {
		return g.Rule.Allows(b.Elevation, a.Elevation)
	}

	return g.Rule.Allows(a.Elevation, b.Elevation)
}

// Successors returns a neighbour generator for the search drivers: for a
// position it lists every adjacent position reachable in one step under
// the traversal. Invalid neighbours are filtered out here and never reach
// the frontier.
func (g *Grid) Successors(tr Traversal) func(coord.Point) []coord.Point {
	offsets := g.NeighborOffsets()
	return func(p coord.Point) []coord.Point {
		out := make([]coord.Point, 0, len(offsets))
		for _, d := range offsets {
			q := p.Add(d)
			if g.CanStep(p, q, tr) {
				out = append(out, q)
			}
		}

		return out
	}
}

// String renders the grid using the runes it was parsed from.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Rune)
		}
	}

	return b.String()
}

// index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(p coord.Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row‑major index back to a point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) coord.Point {
	return coord.Point{X: idx % g.Width, Y: idx / g.Width}
}
