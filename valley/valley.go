package valley

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for parsing.
var (
	// ErrEmptyValley indicates fewer than three rows or columns.
	ErrEmptyValley = errors.New("valley: need at least 3 rows and 3 columns")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("valley: all rows must have the same length")
	// ErrBadCell indicates a rune outside the valley alphabet.
	ErrBadCell = errors.New("valley: unknown cell rune")
	// ErrNoEntrance indicates the top wall has no gap.
	ErrNoEntrance = errors.New("valley: top wall has no entrance")
	// ErrNoExit indicates the bottom wall has no gap.
	ErrNoExit = errors.New("valley: bottom wall has no exit")
	// ErrBlizzardOnBorder indicates a blizzard outside the interior.
	ErrBlizzardOnBorder = errors.New("valley: blizzard outside the interior")
)

// Blizzard is a periodic mover: it advances one cell along Dir per minute.
type Blizzard struct {
	Pos coord.Point
	Dir coord.Direction
}

// Valley is one immutable snapshot of the field at a given minute.
type Valley struct {
	width, height int
	walls         map[coord.Point]struct{} // shared between snapshots, never written after Parse
	entrance      coord.Point
	exit          coord.Point
	blizzards     []Blizzard
	occupancy     map[coord.Point]int
	minute        int
}

// Parse builds the minute-0 snapshot from text rows.
func Parse(rows []string) (*Valley, error) {
	if len(rows) < 3 || utf8.RuneCountInString(rows[0]) < 3 {
		return nil, ErrEmptyValley
	}
	h, w := len(rows), utf8.RuneCountInString(rows[0])
	v := &Valley{
		width:  w,
		height: h,
		walls:  make(map[coord.Point]struct{}),
	}
	foundEntrance, foundExit := false, false

	for y, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, ErrNonRectangular
		}
		for x, r := range runes {
			p := coord.Point{X: x, Y: y}
			switch r {
			case '#':
				v.walls[p] = struct{}{}
			case '.':
				if y == 0 && !foundEntrance {
					v.entrance, foundEntrance = p, true
				}
				if y == h-1 && !foundExit {
					v.exit, foundExit = p, true
				}
			default:
				d, err := coord.ParseDirection(r)
				if err != nil {
					return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, r, p)
				}
				if !v.interior(p) {
					return nil, fmt.Errorf("%w: %v", ErrBlizzardOnBorder, p)
				}
				v.blizzards = append(v.blizzards, Blizzard{Pos: p, Dir: d})
			}
		}
	}
	if !foundEntrance {
		return nil, ErrNoEntrance
	}
	if !foundExit {
		return nil, ErrNoExit
	}
	v.occupancy = occupancyOf(v.blizzards)

	return v, nil
}

// interior reports whether p lies strictly inside the outer walls.
func (v *Valley) interior(p coord.Point) bool {
	return p.X > 0 && p.X < v.width-1 && p.Y > 0 && p.Y < v.height-1
}

// InBounds reports whether p lies within the rectangle, walls included.
func (v *Valley) InBounds(p coord.Point) bool {
	return p.X >= 0 && p.X < v.width && p.Y >= 0 && p.Y < v.height
}

// Classify returns the class of p in this snapshot: Blocked for walls and
// for cells holding at least one blizzard, Open otherwise.
func (v *Valley) Classify(p coord.Point) (grid.Class, error) {
	if !v.InBounds(p) {
		return grid.Blocked, fmt.Errorf("%w: %v in %dx%d", grid.ErrOutOfBounds, p, v.width, v.height)
	}
	if _, wall := v.walls[p]; wall {
		return grid.Blocked, nil
	}
	if v.occupancy[p] > 0 {
		return grid.Blocked, nil
	}

	return grid.Open, nil
}

// Open reports whether p can be occupied during this snapshot's minute.
// Out-of-bounds positions are simply not open.
func (v *Valley) Open(p coord.Point) bool {
	c, err := v.Classify(p)
	return err == nil && c.Traversable()
}

// Advance returns the snapshot one minute later. Each blizzard moves one
// cell along its direction and wraps inside the interior. The receiver is
// not modified; walls are shared read-only.
func (v *Valley) Advance() *Valley {
	moved := make([]Blizzard, len(v.blizzards))
	for i, b := range v.blizzards {
		moved[i] = Blizzard{Pos: v.step(b), Dir: b.Dir}
	}

	return &Valley{
		width:     v.width,
		height:    v.height,
		walls:     v.walls,
		entrance:  v.entrance,
		exit:      v.exit,
		blizzards: moved,
		occupancy: occupancyOf(moved),
		minute:    v.minute + 1,
	}
}

// AdvanceN applies Advance n times. n <= 0 returns the receiver.
func (v *Valley) AdvanceN(n int) *Valley {
	cur := v
	for i := 0; i < n; i++ {
		cur = cur.Advance()
	}

	return cur
}

// step computes the next position of b inside the interior.
func (v *Valley) step(b Blizzard) coord.Point {
	p := b.Pos.Move(b.Dir)

	return coord.Point{
		X: coord.WrapRange(p.X, 1, v.width-1),
		Y: coord.WrapRange(p.Y, 1, v.height-1),
	}
}

func occupancyOf(bs []Blizzard) map[coord.Point]int {
	occ := make(map[coord.Point]int, len(bs))
	for _, b := range bs {
		occ[b.Pos]++
	}

	return occ
}

// Period returns the number of minutes after which the blizzard pattern
// repeats: lcm(interior width, interior height).
func (v *Valley) Period() int {
	return lcm(v.width-2, v.height-2)
}

// Entrance returns the gap in the top wall.
func (v *Valley) Entrance() coord.Point { return v.entrance }

// Exit returns the gap in the bottom wall.
func (v *Valley) Exit() coord.Point { return v.exit }

// Minute returns how many times Advance was applied since Parse.
func (v *Valley) Minute() int { return v.minute }

// Width returns the number of columns, walls included.
func (v *Valley) Width() int { return v.width }

// Height returns the number of rows, walls included.
func (v *Valley) Height() int { return v.height }

// BlizzardsAt returns how many blizzards share cell p.
func (v *Valley) BlizzardsAt(p coord.Point) int {
	return v.occupancy[p]
}

// Blizzards returns a copy of the blizzard list.
func (v *Valley) Blizzards() []Blizzard {
	out := make([]Blizzard, len(v.blizzards))
	copy(out, v.blizzards)

	return out
}

// String renders the snapshot in the input format; a cell shared by
// several blizzards shows their count.
func (v *Valley) String() string {
	dir := make(map[coord.Point]coord.Direction, len(v.blizzards))
	for _, b := range v.blizzards {
		dir[b.Pos] = b.Dir
	}

	var sb strings.Builder
	for y := 0; y < v.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < v.width; x++ {
			p := coord.Point{X: x, Y: y}
			switch n := v.occupancy[p]; {
			case hasWall(v.walls, p):
				sb.WriteByte('#')
			case n == 1:
				sb.WriteRune(dir[p].Rune())
			case n > 1:
				fmt.Fprintf(&sb, "%d", n)
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

func hasWall(walls map[coord.Point]struct{}, p coord.Point) bool {
	_, ok := walls[p]
	return ok
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 1
	}

	return a / gcd(a, b) * b
}
