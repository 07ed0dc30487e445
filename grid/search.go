package grid

import (
	"fmt"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/dijkstra"
)

// Search runs the dijkstra driver from source over the grid's unit-cost
// moves under the given traversal. The source must be an in-bounds,
// traversable cell: otherwise ErrOutOfBounds or ErrNotTraversable is
// returned and nothing is searched.
func (g *Grid) Search(source coord.Point, tr Traversal, opts ...dijkstra.Option[coord.Point]) (*dijkstra.Result[coord.Point], error) {
	c, err := g.Cell(source)
	if err != nil {
		return nil, fmt.Errorf("grid: search source: %w", err)
	}
	if !c.Class.Traversable() {
		return nil, fmt.Errorf("%w: search source %v is %s", ErrNotTraversable, source, c.Class)
	}

	return dijkstra.Run(source, dijkstra.Unit(g.Successors(tr)), opts...)
}

// ShortestDistances returns the step count from source to every cell
// reachable under the traversal. With Reverse it is the distance from
// every cell to source.
func (g *Grid) ShortestDistances(source coord.Point, tr Traversal) (dijkstra.Table[coord.Point], error) {
	res, err := g.Search(source, tr)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}
