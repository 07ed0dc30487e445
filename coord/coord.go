package coord

import "fmt"

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Move translates p one step along d. The result may be out of bounds for
// any particular environment.
func (p Point) Move(d Direction) Point {
	return p.Add(d.Delta())
}

// Neighbors4 returns the four orthogonal neighbours of p in Directions4 order.
func (p Point) Neighbors4() [4]Point {
	var out [4]Point
	for i, d := range Directions4 {
		out[i] = p.Move(d)
	}

	return out
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String implements fmt.Stringer as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Manhattan is the package-level form of Point.Manhattan, shaped to be used
// directly as an A* heuristic.
func Manhattan(a, b Point) int {
	return a.Manhattan(b)
}

// Add returns p + q component-wise.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p - q component-wise.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Move translates p one step along a.
func (p Point3) Move(a Axis) Point3 {
	return p.Add(a.Delta())
}

// Neighbors returns the six face-adjacent neighbours of p in Axes6 order.
func (p Point3) Neighbors() [6]Point3 {
	var out [6]Point3
	for i, a := range Axes6 {
		out[i] = p.Move(a)
	}

	return out
}

// Manhattan returns the sum of absolute component differences.
func (p Point3) Manhattan(q Point3) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y) + abs(p.Z-q.Z)
}

// String implements fmt.Stringer as "x,y,z".
func (p Point3) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Wrap returns v mod m using floored division, so the result always lies
// in [0, m) even for negative v. Panics if m <= 0.
func Wrap(v, m int) int {
	if m <= 0 {
		panic(fmt.Sprintf("coord: Wrap modulus must be positive, got %d", m))
	}
	r := v % m
	if r < 0 {
		r += m
	}

	return r
}

// WrapRange maps v into the half-open range [lo, hi) with floored modulo.
// Periodic movers use it to re-enter the interior from the opposite side.
// Panics if hi <= lo.
func WrapRange(v, lo, hi int) int {
	return lo + Wrap(v-lo, hi-lo)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
