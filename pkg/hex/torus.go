package hex

import "fmt"

// Torus describes a disc of the given radius whose opposite edges are glued
// together. Discs of radius R tile the plane with period lattice generated by
// the first two mirrors, so every coordinate has exactly one representative
// inside the disc.
type Torus struct {
	Radius int
}

// Mirrors returns the six images of the origin in the neighboring disc copies
// of the periodic tiling. The order is fixed and callers that need a
// first-match rule rely on it.
func (t Torus) Mirrors() [6]Coord {
	r := t.Radius
	return [6]Coord{
		Cube(-r, -r-1, 2*r+1),
		Cube(r+1, -2*r-1, r),
		Cube(2*r+1, -r, -r-1),
		Cube(r, r+1, -2*r-1),
		Cube(-r-1, 2*r+1, -r),
		Cube(-2*r-1, r, r+1),
	}
}

// Contains reports whether c lies on the disc itself.
func (t Torus) Contains(c Coord) bool { return InDisc(c, t.Radius) }

// Wrap returns the coordinate inside the disc that is equivalent to c under
// the tiling.
func (t Torus) Wrap(c Coord) Coord {
	if t.Contains(c) {
		return c
	}
	m := t.Mirrors()
	a, b := m[0], m[1]
	n := DiscSize(t.Radius)
	fa := floorDiv(c.Q*b.R-b.Q*c.R, n)
	fb := floorDiv(a.Q*c.R-a.R*c.Q, n)
	for i := fa - 1; i <= fa+2; i++ {
		for j := fb - 1; j <= fb+2; j++ {
			cand := c.Sub(a.Scale(i)).Sub(b.Scale(j))
			if t.Contains(cand) {
				return cand
			}
		}
	}
	panic(fmt.Sprintf("hex: no disc representative for %v at radius %d", c, t.Radius))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
