// Package astar_test contains unit tests for the time-expanded A* driver.
// They cover the blizzard basin trip, chained legs versus one continuous
// simulation, forced waiting, unreachable goals and option validation.
package astar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/valley"
)

var basin = []string{
	"#.######",
	"#>>.<^<#",
	"#.<..<<#",
	"#>v.><>#",
	"#<^v^^>#",
	"######.#",
}

func pt(x, y int) coord.Point { return coord.Point{X: x, Y: y} }

// gate is a one-row corridor of length cells whose cell gateX is blocked
// on minutes with the given parity. It repeats every two minutes.
type gate struct {
	minute, length, gateX, parity int
}

func (g gate) Advance() gate {
	g.minute++
	return g
}

func (g gate) Open(p coord.Point) bool {
	if p.Y != 0 || p.X < 0 || p.X >= g.length {
		return false
	}
	return !(p.X == g.gateX && g.minute%2 == g.parity)
}

func (g gate) Period() int { return 2 }

// sealed is a non-periodic corridor whose last cell never opens.
type sealed struct{ minute int }

func (s sealed) Advance() sealed { return sealed{minute: s.minute + 1} }

func (s sealed) Open(p coord.Point) bool { return p.Y == 0 && p.X >= 0 && p.X < 3 }

func zero(coord.Point, coord.Point) int { return 0 }

// continuous walks every waypoint in one breadth-first simulation over
// (position, legs completed), advancing the field once per minute.
func continuous(t *testing.T, v *valley.Valley, stops []coord.Point) int {
	t.Helper()
	type state struct {
		p   coord.Point
		leg int
	}
	cur := map[state]bool{{p: stops[0]}: true}
	field := v
	for minute := 1; minute <= 10000; minute++ {
		field = field.Advance()
		next := make(map[state]bool)
		for s := range cur {
			cands := []coord.Point{s.p}
			for _, d := range coord.Directions4 {
				cands = append(cands, s.p.Move(d))
			}
			for _, c := range cands {
				if !field.Open(c) {
					continue
				}
				leg := s.leg
				if c == stops[leg+1] {
					leg++
				}
				if leg == len(stops)-1 {
					return minute
				}
				next[state{p: c, leg: leg}] = true
			}
		}
		cur = next
	}
	t.Fatalf("continuous simulation did not finish")
	return -1
}

func TestTimeExpanded_Basin(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	steps, arrival, err := astar.TimeExpanded(v.Entrance(), v.Exit(), v, astar.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, 18, steps)
	assert.Equal(t, 18, arrival.Minute())
	assert.Equal(t, 0, v.Minute(), "input snapshot must stay untouched")
}

func TestTimeExpanded_ZeroHeuristicAgrees(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	withH, _, err := astar.TimeExpanded(v.Entrance(), v.Exit(), v, astar.Manhattan)
	require.NoError(t, err)
	blind, _, err := astar.TimeExpanded(v.Entrance(), v.Exit(), v, zero)
	require.NoError(t, err)
	assert.Equal(t, blind, withH)
}

func TestJourney_Basin(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	stops := []coord.Point{v.Entrance(), v.Exit(), v.Entrance(), v.Exit()}
	total, legs, arrival, err := astar.Journey(v, astar.Manhattan, stops)
	require.NoError(t, err)
	assert.Equal(t, []int{18, 23, 13}, legs)
	assert.Equal(t, 54, total)
	assert.Equal(t, 54, arrival.Minute())
}

func TestJourney_MatchesContinuousSimulation(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	stops := []coord.Point{v.Entrance(), v.Exit(), v.Entrance(), v.Exit()}
	total, _, _, err := astar.Journey(v, astar.Manhattan, stops)
	require.NoError(t, err)
	assert.Equal(t, continuous(t, v, stops), total)
}

func TestTimeExpanded_LegFromAdvancedSnapshot(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	first, arrival, err := astar.TimeExpanded(v.Entrance(), v.Exit(), v, astar.Manhattan)
	require.NoError(t, err)

	back, _, err := astar.TimeExpanded(v.Exit(), v.Entrance(), arrival, astar.Manhattan)
	require.NoError(t, err)
	fresh, _, err := astar.TimeExpanded(v.Exit(), v.Entrance(), v.AdvanceN(first), astar.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, fresh, back)
	assert.Equal(t, 23, back)
}

func TestTimeExpanded_Gate(t *testing.T) {
	cases := []struct {
		name   string
		parity int
		want   int
	}{
		// gate shut at minute 2 when the mover would cross: one wait.
		{"ShutOnEven", 0, 5},
		// gate open whenever the mover arrives: straight walk.
		{"ShutOnOdd", 1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := gate{length: 5, gateX: 2, parity: tc.parity}
			steps, arrival, err := astar.TimeExpanded(pt(0, 0), pt(4, 0), g, astar.Manhattan)
			require.NoError(t, err)
			assert.Equal(t, tc.want, steps)
			assert.Equal(t, tc.want, arrival.minute)
		})
	}
}

func TestTimeExpanded_WaitsInPlace(t *testing.T) {
	g := gate{length: 5, gateX: 2, parity: 0}
	var trail []coord.Point
	_, _, err := astar.TimeExpanded(pt(0, 0), pt(4, 0), g, astar.Manhattan,
		astar.WithOnExpand(func(p coord.Point, elapsed int) {
			if p == pt(1, 0) && elapsed == 2 {
				trail = append(trail, p)
			}
		}))
	require.NoError(t, err)
	assert.Len(t, trail, 1, "the optimal route waits at x=1 during minute 2")
}

func TestTimeExpanded_StartIsGoal(t *testing.T) {
	g := gate{length: 5, gateX: 2}
	steps, arrival, err := astar.TimeExpanded(pt(3, 0), pt(3, 0), g, astar.Manhattan)
	require.NoError(t, err)
	assert.Equal(t, 0, steps)
	assert.Equal(t, 0, arrival.minute)
}

func TestTimeExpanded_Unreachable(t *testing.T) {
	t.Run("Periodic", func(t *testing.T) {
		// the corridor ends at x=1, so x=4 is never open.
		g := gate{length: 2, gateX: 1, parity: 0}
		_, _, err := astar.TimeExpanded(pt(0, 0), pt(4, 0), g, astar.Manhattan)
		assert.ErrorIs(t, err, astar.ErrUnreachable)
	})
	t.Run("MaxSteps", func(t *testing.T) {
		expanded := 0
		_, _, err := astar.TimeExpanded(pt(0, 0), pt(4, 0), sealed{}, astar.Manhattan,
			astar.WithMaxSteps(20),
			astar.WithOnExpand(func(coord.Point, int) { expanded++ }))
		assert.ErrorIs(t, err, astar.ErrUnreachable)
		// three cells over 21 time slots at most
		assert.LessOrEqual(t, expanded, 3*21)
	})
}

func TestTimeExpanded_StartNotOpen(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	cases := []struct {
		name        string
		start, goal coord.Point
	}{
		{"OutsideEqualsGoal", pt(-3, -3), pt(-3, -3)},
		{"Outside", pt(-3, -3), v.Exit()},
		{"Wall", pt(0, 0), v.Exit()},
		{"Blizzard", pt(1, 1), v.Exit()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expanded := 0
			steps, _, err := astar.TimeExpanded(tc.start, tc.goal, v, astar.Manhattan,
				astar.WithOnExpand(func(coord.Point, int) { expanded++ }))
			assert.ErrorIs(t, err, astar.ErrUnreachable)
			assert.Equal(t, 0, steps)
			assert.Zero(t, expanded, "nothing may be expanded from a closed start")
		})
	}
}

func TestTimeExpanded_Options(t *testing.T) {
	g := gate{length: 5, gateX: 2}

	_, _, err := astar.TimeExpanded(pt(0, 0), pt(4, 0), g, nil)
	assert.True(t, errors.Is(err, astar.ErrNilHeuristic))

	_, _, err = astar.TimeExpanded(pt(0, 0), pt(4, 0), g, astar.Manhattan, astar.WithMaxSteps(0))
	assert.True(t, errors.Is(err, astar.ErrOptionViolation))
}

func TestJourney_Errors(t *testing.T) {
	g := gate{length: 5, gateX: 2}

	_, _, _, err := astar.Journey(g, astar.Manhattan, []coord.Point{pt(0, 0)})
	assert.ErrorIs(t, err, astar.ErrTooFewWaypoints)

	total, legs, _, err := astar.Journey(g, astar.Manhattan, []coord.Point{pt(0, 0), pt(4, 0), pt(9, 0)})
	assert.ErrorIs(t, err, astar.ErrUnreachable)
	assert.Equal(t, []int{5}, legs)
	assert.Equal(t, 5, total)
}
