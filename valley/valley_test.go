package valley_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/grid"
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

var converge = []string{
	"#.####",
	"#>.<.#",
	"#....#",
	"####.#",
}

func pt(x, y int) coord.Point { return coord.Point{X: x, Y: y} }

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"TooSmall", []string{"#.#", "#.#"}, valley.ErrEmptyValley},
		{"Ragged", []string{"#.##", "#..#", "##.#", "#"}, valley.ErrNonRectangular},
		{"BadRune", []string{"#.##", "#x.#", "##.#"}, valley.ErrBadCell},
		{"NoEntrance", []string{"####", "#..#", "##.#"}, valley.ErrNoEntrance},
		{"NoExit", []string{"#.##", "#..#", "####"}, valley.ErrNoExit},
		{"BlizzardInGap", []string{"#>##", "#..#", "##.#"}, valley.ErrBlizzardOnBorder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valley.Parse(tc.rows)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestParse_RuneColumns: widths and error positions count runes, not bytes.
func TestParse_RuneColumns(t *testing.T) {
	// "é" is two bytes but one column; the row is as wide as the others.
	_, err := valley.Parse([]string{"#.##", "#.é#", "##.#"})
	require.True(t, errors.Is(err, valley.ErrBadCell), "got %v", err)
	assert.Contains(t, err.Error(), "at 2,1")

	_, err = valley.Parse([]string{"#.#", "#é#", "#.#"})
	assert.True(t, errors.Is(err, valley.ErrBadCell), "3 runes wide is a valid shape: got %v", err)

	_, err = valley.Parse([]string{"#é", "#..", "#.#"})
	assert.True(t, errors.Is(err, valley.ErrEmptyValley), "got %v", err)
}

func TestParse_Basin(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)
	assert.Equal(t, pt(1, 0), v.Entrance())
	assert.Equal(t, pt(6, 5), v.Exit())
	assert.Equal(t, 8, v.Width())
	assert.Equal(t, 6, v.Height())
	assert.Equal(t, 12, v.Period()) // lcm(6, 4)
	assert.Len(t, v.Blizzards(), 19)
	assert.Equal(t, 0, v.Minute())

	// render round-trips at minute 0
	assert.Equal(t, joinRows(basin), v.String())
}

func TestClassify(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	c, err := v.Classify(pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.Blocked, c, "wall")

	c, err = v.Classify(pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Blocked, c, "blizzard")

	c, err = v.Classify(pt(3, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Open, c, "floor")

	_, err = v.Classify(pt(1, -1))
	assert.True(t, errors.Is(err, grid.ErrOutOfBounds))
	assert.False(t, v.Open(pt(1, -1)))
	assert.True(t, v.Open(v.Entrance()))
	assert.True(t, v.Open(v.Exit()))
}

// TestAdvance_SharedCell: two blizzards entering the same cell keep it
// blocked and are both tracked.
func TestAdvance_SharedCell(t *testing.T) {
	v, err := valley.Parse(converge)
	require.NoError(t, err)

	next := v.Advance()
	assert.Equal(t, 2, next.BlizzardsAt(pt(2, 1)))
	c, err := next.Classify(pt(2, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Blocked, c)
	assert.Equal(t, "#.####\n#.2..#\n#....#\n####.#", next.String())

	// they separate again one minute later
	after := next.Advance()
	assert.Equal(t, 1, after.BlizzardsAt(pt(3, 1)))
	assert.Equal(t, 1, after.BlizzardsAt(pt(1, 1)))
	assert.Equal(t, 2, after.Minute())
}

func TestAdvance_Wraparound(t *testing.T) {
	v, err := valley.Parse([]string{
		"#.####",
		"#...>#",
		"#.^..#",
		"####.#",
	})
	require.NoError(t, err)

	next := v.Advance()
	assert.Equal(t, 1, next.BlizzardsAt(pt(1, 1)), "'>' leaves the right edge and re-enters at x=1")
	assert.Equal(t, 1, next.BlizzardsAt(pt(2, 1)))

	// '^' on the top interior row wraps to the bottom interior row (y=2)
	two := next.Advance()
	assert.Equal(t, 1, two.BlizzardsAt(pt(2, 2)))
	assert.Equal(t, 1, two.BlizzardsAt(pt(2, 1)), "'>' moved on to x=2")
}

// TestAdvance_SnapshotIsolation: advancing never changes what the older
// snapshot reports.
func TestAdvance_SnapshotIsolation(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)

	before := make(map[coord.Point]grid.Class)
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			c, _ := v.Classify(pt(x, y))
			before[pt(x, y)] = c
		}
	}
	render := v.String()

	later := v.AdvanceN(5)
	require.Equal(t, 5, later.Minute())

	for p, c := range before {
		got, _ := v.Classify(p)
		assert.Equal(t, c, got, "snapshot changed at %v", p)
	}
	assert.Equal(t, render, v.String())
	assert.Equal(t, 0, v.Minute())
}

func TestPeriod_Repeats(t *testing.T) {
	v, err := valley.Parse(basin)
	require.NoError(t, err)
	assert.Equal(t, v.String(), v.AdvanceN(v.Period()).String())
	assert.NotEqual(t, v.String(), v.AdvanceN(1).String())
	assert.Same(t, v, v.AdvanceN(0))
}

func joinRows(rows []string) string {
	out := ""
	for i, r := range rows {
		if i > 0 {
			out += "\n"
		}
		out += r
	}

	return out
}
