package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/tunnels"
	"github.com/katalvlaran/gridpath/valley"
	"github.com/katalvlaran/gridpath/volume"
)

var (
	// ErrUnknownKind indicates a job kind the runner cannot execute.
	ErrUnknownKind = errors.New("runner: unknown job kind")

	// ErrMarkerNotFound indicates a start or goal rune missing from the grid.
	ErrMarkerNotFound = errors.New("runner: marker not found")
)

// buildGrid parses the job's rows with its legend, rule and connectivity.
func buildGrid(job config.Job, lines []string) (*grid.Grid, error) {
	legend := grid.ElevationLegend()
	if job.Legend == "maze" {
		legend = grid.MazeLegend()
	}
	rule, err := grid.ParseStepRule(job.Rule)
	if err != nil {
		return nil, err
	}
	opts := grid.Options{Rule: rule, Conn: grid.Conn4}
	if job.Diagonal {
		opts.Conn = grid.Conn8
	}

	return grid.Parse(lines, legend, opts)
}

func traversalOf(job config.Job) grid.Traversal {
	if job.Traversal == "reverse" {
		return grid.Reverse
	}
	return grid.Forward
}

func find(g *grid.Grid, marker string) (coord.Point, error) {
	r := []rune(marker)
	if len(r) != 1 {
		return coord.Point{}, fmt.Errorf("%w: %q is not a single rune", ErrMarkerNotFound, marker)
	}
	p, ok := g.Find(r[0])
	if !ok {
		return coord.Point{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}

	return p, nil
}

// distances returns the step count between the start and goal markers.
func distances(job config.Job, lines []string) (int, int, error) {
	g, err := buildGrid(job, lines)
	if err != nil {
		return 0, 0, err
	}
	from, err := find(g, job.Start)
	if err != nil {
		return 0, 0, err
	}
	to, err := find(g, job.Goal)
	if err != nil {
		return 0, 0, err
	}

	res, err := g.Search(from, traversalOf(job),
		dijkstra.WithTarget(func(p coord.Point) bool { return p == to }))
	if err != nil {
		settled := 0
		if res != nil {
			settled = res.Settled
		}
		return 0, settled, err
	}

	return res.Dist[to], res.Settled, nil
}

// nearest returns the distance from the start marker to the closest cell
// whose rune is listed in job.Target.
func nearest(job config.Job, lines []string) (int, int, error) {
	g, err := buildGrid(job, lines)
	if err != nil {
		return 0, 0, err
	}
	from, err := find(g, job.Start)
	if err != nil {
		return 0, 0, err
	}

	res, err := g.Search(from, traversalOf(job))
	if err != nil {
		return 0, 0, err
	}
	_, d, ok := res.Dist.Nearest(func(p coord.Point) bool {
		c, err := g.Cell(p)
		return err == nil && strings.ContainsRune(job.Target, c.Rune)
	})
	if !ok {
		return 0, res.Settled, fmt.Errorf("%w: no cell in %q reachable", dijkstra.ErrUnreachable, job.Target)
	}

	return d, res.Settled, nil
}

// journey crosses the valley job.Legs times, alternating direction.
func journey(job config.Job, lines []string) (int, []int, int, error) {
	v, err := valley.Parse(lines)
	if err != nil {
		return 0, nil, 0, err
	}
	stops := []coord.Point{v.Entrance()}
	for i := 0; i < job.Legs; i++ {
		if i%2 == 0 {
			stops = append(stops, v.Exit())
		} else {
			stops = append(stops, v.Entrance())
		}
	}

	expanded := 0
	total, legs, _, err := astar.Journey(v, astar.Manhattan, stops,
		astar.WithOnExpand(func(coord.Point, int) { expanded++ }))

	return total, legs, expanded, err
}

// release plans valve opening for one or two agents. Expansions count the
// partial plans enumerated.
func release(job config.Job, lines []string) (int, int, error) {
	var (
		n   *tunnels.Network
		err error
	)
	if len(job.Valves) > 0 {
		n, err = tunnels.New(job.Valves...)
	} else {
		n, err = tunnels.Parse(lines)
	}
	if err != nil {
		return 0, 0, err
	}
	walks := 0
	count := tunnels.WithOnWalk(func(string, int) { walks++ })
	var best int
	if job.Agents == 2 {
		best, err = n.MaxReleasePair(job.Start, job.Budget, count)
	} else {
		best, err = n.MaxRelease(job.Start, job.Budget, count)
	}

	return best, walks, err
}

// surface measures a voxel volume, optionally only its exterior. Expansions
// count the voxels inspected, or the air cells flooded for the exterior.
func surface(ctx context.Context, job config.Job, lines []string) (int, int, error) {
	v, err := volume.Parse(lines)
	if err != nil {
		return 0, 0, err
	}
	if !job.Exterior {
		return v.SurfaceArea(), v.Len(), nil
	}
	ext, err := v.Exterior(ctx)
	if err != nil {
		return 0, 0, err
	}

	return v.FacesTouching(ext), len(ext), nil
}
