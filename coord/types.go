package coord

import (
	"errors"
	"fmt"
)

// ErrBadDirection indicates a rune that does not name a Direction.
var ErrBadDirection = errors.New("coord: unknown direction")

// Point is a 2D grid coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Point3 is a 3D coordinate.
type Point3 struct {
	X, Y, Z int
}

// Direction is one of the four orthogonal grid moves.
type Direction uint8

const (
	// Up decreases Y.
	Up Direction = iota
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// Directions4 lists all directions in a fixed order.
var Directions4 = [4]Direction{Up, Down, Left, Right}

// offsets is indexed by Direction.
var offsets = [4]Point{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Delta returns the unit vector of d.
func (d Direction) Delta() Point {
	return offsets[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Rune returns the arrow glyph used for d in text maps: ^ v < >.
func (d Direction) Rune() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '>'
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection maps an arrow glyph back to its Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return Up, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	case '>':
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDirection, r)
}

// Axis is one of the six 3D unit moves.
type Axis uint8

const (
	XMinus Axis = iota
	XPlus
	YMinus
	YPlus
	ZMinus
	ZPlus
)

// Axes6 lists all axis moves in a fixed order.
var Axes6 = [6]Axis{XMinus, XPlus, YMinus, YPlus, ZMinus, ZPlus}

var axisOffsets = [6]Point3{
	XMinus: {-1, 0, 0},
	XPlus:  {1, 0, 0},
	YMinus: {0, -1, 0},
	YPlus:  {0, 1, 0},
	ZMinus: {0, 0, -1},
	ZPlus:  {0, 0, 1},
}

// Delta returns the unit vector of a.
func (a Axis) Delta() Point3 {
	return axisOffsets[a]
}
