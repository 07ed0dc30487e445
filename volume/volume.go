// Package volume models a solid made of unit voxels and measures its
// surface, including the part of the surface reachable from outside.
package volume

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/coord"
)

// ErrBadVoxel indicates a scan line that is not an "x,y,z" triple.
var ErrBadVoxel = errors.New("volume: malformed voxel")

// Volume is a set of unit voxels with a running bounding box.
type Volume struct {
	cells    map[coord.Point3]struct{}
	min, max coord.Point3
}

// New builds a Volume from the given voxels. Duplicates are ignored.
func New(points ...coord.Point3) *Volume {
	v := &Volume{cells: make(map[coord.Point3]struct{}, len(points))}
	for _, p := range points {
		v.Add(p)
	}

	return v
}

// Parse reads one "x,y,z" voxel per line. Blank lines are skipped.
func Parse(lines []string) (*Volume, error) {
	v := New()
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadVoxel, i+1, line)
		}
		var xyz [3]int
		for j, s := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadVoxel, i+1, err)
			}
			xyz[j] = n
		}
		v.Add(coord.Point3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}

	return v, nil
}

// Add inserts p and reports whether it was new.
func (v *Volume) Add(p coord.Point3) bool {
	if _, ok := v.cells[p]; ok {
		return false
	}
	if len(v.cells) == 0 {
		v.min, v.max = p, p
	} else {
		v.min = coord.Point3{X: min(v.min.X, p.X), Y: min(v.min.Y, p.Y), Z: min(v.min.Z, p.Z)}
		v.max = coord.Point3{X: max(v.max.X, p.X), Y: max(v.max.Y, p.Y), Z: max(v.max.Z, p.Z)}
	}
	v.cells[p] = struct{}{}

	return true
}

// Contains reports whether p is a voxel of v.
func (v *Volume) Contains(p coord.Point3) bool {
	_, ok := v.cells[p]
	return ok
}

// Len returns the number of voxels.
func (v *Volume) Len() int { return len(v.cells) }

// Bounds returns the inclusive bounding box. ok is false for an empty volume.
func (v *Volume) Bounds() (lo, hi coord.Point3, ok bool) {
	return v.min, v.max, len(v.cells) > 0
}

// SurfaceArea counts voxel faces that do not touch another voxel,
// trapped air pockets included.
func (v *Volume) SurfaceArea() int {
	area := 0
	for p := range v.cells {
		for _, q := range p.Neighbors() {
			if !v.Contains(q) {
				area++
			}
		}
	}

	return area
}

// Exterior flood-fills the air around v inside its bounding box expanded
// by one in every direction, and returns the reached air cells. Air
// pockets sealed inside the volume are not part of the result.
func (v *Volume) Exterior(ctx context.Context) (map[coord.Point3]struct{}, error) {
	out := make(map[coord.Point3]struct{})
	if len(v.cells) == 0 {
		return out, nil
	}

	lo := v.min.Sub(coord.Point3{X: 1, Y: 1, Z: 1})
	hi := v.max.Add(coord.Point3{X: 1, Y: 1, Z: 1})
	inBox := func(p coord.Point3) bool {
		return p.X >= lo.X && p.X <= hi.X &&
			p.Y >= lo.Y && p.Y <= hi.Y &&
			p.Z >= lo.Z && p.Z <= hi.Z
	}
	air := func(p coord.Point3) []coord.Point3 {
		nbrs := make([]coord.Point3, 0, 6)
		for _, q := range p.Neighbors() {
			if inBox(q) && !v.Contains(q) {
				nbrs = append(nbrs, q)
			}
		}
		return nbrs
	}

	// lo lies outside the bounding box, so it is always air.
	res, err := bfs.Walk(lo, air, bfs.WithContext[coord.Point3](ctx))
	if err != nil {
		return nil, fmt.Errorf("volume: exterior flood: %w", err)
	}
	for _, p := range res.Order {
		out[p] = struct{}{}
	}

	return out, nil
}

// ExteriorSurfaceArea counts voxel faces that touch exterior air.
func (v *Volume) ExteriorSurfaceArea(ctx context.Context) (int, error) {
	ext, err := v.Exterior(ctx)
	if err != nil {
		return 0, err
	}

	return v.FacesTouching(ext), nil
}

// FacesTouching counts voxel faces whose neighbouring cell is in cells.
func (v *Volume) FacesTouching(cells map[coord.Point3]struct{}) int {
	area := 0
	for p := range v.cells {
		for _, q := range p.Neighbors() {
			if _, ok := cells[q]; ok {
				area++
			}
		}
	}

	return area
}
