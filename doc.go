// Package gridpath is a toolbox of shortest-path and state-space searches
// over implicit graphs: static grids, grids that change every step, named
// tunnel networks and voxel volumes.
//
// 🚀 What is in the box?
//
//	• Coordinates: 2D points, 3D points, directions, floored wrap-around
//	• Environments: static grids with asymmetric step rules, blizzard valleys
//	  that evolve as immutable snapshots
//	• Frontier: generic indexed priority queue with decrease-key
//	• Searches: Dijkstra, breadth-first walks, time-expanded A* with waiting
//	• Planners: valve release over tunnel networks, voxel surface flood fill
//	• CLI: YAML job files, structured logs, Prometheus textfile metrics
//
// ✨ Design notes
//
//   - The graph is never materialised: every engine takes a successor
//     function and discovers states lazily.
//   - Every search owns its frontier and tables, so searches run in
//     parallel without locks.
//   - Sentinel errors per package, wrapped with %w and matched with errors.Is.
//
// Packages:
//
//	coord/      — Point, Point3, Direction, Axis, Wrap
//	grid/       — static Environment, Legend, StepRule, Traversal
//	valley/     — time-evolving blizzard Environment
//	frontier/   — Queue[S] priority queue
//	bfs/        — breadth-first Walk over any comparable state
//	dijkstra/   — Run, ShortestDistances, Table.Nearest
//	astar/      — TimeExpanded, Journey
//	tunnels/    — valve Network, MaxRelease, MaxReleasePair
//	volume/     — Volume, SurfaceArea, ExteriorSurfaceArea
//	config/     — job files, .env overrides, validation
//	instrument/ — Prometheus Recorder
//	runner/     — concurrent job execution
//	cmd/gridpath — command-line front end
//
// Quick ASCII example (elevation grid, climbs of at most one):
//
//	Sabqponm
//	abcryxxl
//	accszExk      S → E in 31 steps
//	acctuvwj
//	abdefghi
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
