// Package grid defines core types, options, and sentinel errors
// for the static grid environment of gridpath.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/coord"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrUnknownRune indicates a rune the legend cannot classify.
	ErrUnknownRune = errors.New("grid: rune not in legend")
	// ErrBadStepRule indicates an unparsable step rule.
	ErrBadStepRule = errors.New("grid: invalid step rule")
	// ErrNotTraversable indicates a search source on a blocked cell.
	ErrNotTraversable = errors.New("grid: cell is not traversable")
)

// Class is the traversal classification of a cell.
type Class uint8

const (
	// Open cells may be entered.
	Open Class = iota
	// Blocked cells may never be entered.
	Blocked
	// Marker cells are traversable cells carrying a special meaning
	// (start, end, entrance...).
	Marker
)

// Traversable reports whether a cell of class c may be entered.
func (c Class) Traversable() bool {
	return c == Open || c == Marker
}

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	case Marker:
		return "marker"
	}

	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Cell is one grid square: the rune it was parsed from, its class and its
// elevation (0 when the legend does not assign one).
type Cell struct {
	Rune      rune
	Class     Class
	Elevation int
}

// Legend maps runes to cells when parsing text rows.
//
// Known holds explicit mappings. Runes missing from Known become a cell of
// class Fallback, unless Strict is set, in which case parsing fails with
// ErrUnknownRune.
type Legend struct {
	Known    map[rune]Cell
	Fallback Class
	Strict   bool
}

// Cell resolves r through the legend. The returned cell always carries r.
func (l Legend) Cell(r rune) (Cell, error) {
	if c, ok := l.Known[r]; ok {
		c.Rune = r
		return c, nil
	}
	if l.Strict {
		return Cell{}, fmt.Errorf("%w: %q", ErrUnknownRune, r)
	}

	return Cell{Rune: r, Class: l.Fallback}, nil
}

// MazeLegend classifies '#' as Blocked, '.' as Open and any other rune as
// a Marker.
func MazeLegend() Legend {
	return Legend{
		Known: map[rune]Cell{
			'#': {Class: Blocked},
			'.': {Class: Open},
		},
		Fallback: Marker,
	}
}

// ElevationLegend reads 'a'..'z' as Open cells at elevation 0..25, 'S' as a
// Marker at the elevation of 'a' and 'E' as a Marker at the elevation of 'z'.
// Any other rune is rejected.
func ElevationLegend() Legend {
	known := make(map[rune]Cell, 28)
	for r := 'a'; r <= 'z'; r++ {
		known[r] = Cell{Class: Open, Elevation: int(r - 'a')}
	}
	known['S'] = Cell{Class: Marker, Elevation: 0}
	known['E'] = Cell{Class: Marker, Elevation: 'z' - 'a'}

	return Legend{Known: known, Strict: true}
}

// StepKind tags the variant of a StepRule.
type StepKind uint8

const (
	// StepAny allows any move between traversable cells.
	StepAny StepKind = iota
	// StepMaxClimb allows a move when the destination is at most Limit
	// higher than the origin. Descents of any size are allowed.
	StepMaxClimb
)

// StepRule decides whether a single move between two elevations is
// permitted. It is a closed variant evaluated by Allows, so it can be
// compared, logged and loaded from configuration.
type StepRule struct {
	Kind  StepKind
	Limit int
}

// AnyStep returns the rule that ignores elevation.
func AnyStep() StepRule {
	return StepRule{Kind: StepAny}
}

// MaxClimb returns the rule permitting climbs of at most n.
func MaxClimb(n int) StepRule {
	return StepRule{Kind: StepMaxClimb, Limit: n}
}

// Allows reports whether moving from elevation from onto elevation to is
// permitted. The rule is not symmetric: Allows(a, b) may differ from
// Allows(b, a).
func (r StepRule) Allows(from, to int) bool {
	switch r.Kind {
	case StepMaxClimb:
		return to-from <= r.Limit
	default:
		return true
	}
}

// String renders the rule as accepted by ParseStepRule.
func (r StepRule) String() string {
	if r.Kind == StepMaxClimb {
		return "climb:" + strconv.Itoa(r.Limit)
	}

	return "any"
}

// ParseStepRule parses "any" (or "") and "climb:N".
func ParseStepRule(s string) (StepRule, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "any" {
		return AnyStep(), nil
	}
	if n, ok := strings.CutPrefix(s, "climb:"); ok {
		limit, err := strconv.Atoi(n)
		if err != nil {
			return StepRule{}, fmt.Errorf("%w: %q: %v", ErrBadStepRule, s, err)
		}

		return MaxClimb(limit), nil
	}

	return StepRule{}, fmt.Errorf("%w: %q", ErrBadStepRule, s)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Traversal selects which endpoint of a move the StepRule treats as origin.
type Traversal int

const (
	// Forward evaluates the rule for the move as written: from → to.
	Forward Traversal = iota
	// Reverse walks edges backwards: stepping from u to v in the search
	// corresponds to the real move v → u, so the rule is evaluated as
	// Allows(elev(v), elev(u)). Used to compute distance-to-a-goal.
	Reverse
)

// Options contains tunable parameters for a Grid.
type Options struct {
	// Rule decides which moves between traversable cells are permitted.
	Rule StepRule
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Rule=AnyStep and Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		Rule: AnyStep(),
		Conn: Conn4,
	}
}

// Grid is a static, rectangular environment. It is immutable once built.
// Width and Height define dimensions; cells[y][x] holds the cell at (x, y).
type Grid struct {
	Width, Height   int
	Rule            StepRule
	Conn            Connectivity
	cells           [][]Cell
	neighborOffsets []coord.Point
}
