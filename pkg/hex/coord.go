// Package hex implements axial hexagonal coordinates and the wraparound
// tiling used to glue the edges of a hexagonal disc together.
package hex

import "fmt"

// Coord is an axial hex coordinate. The third cube component is S = -Q-R.
type Coord struct {
	Q int
	R int
}

// Origin is the center of every disc.
var Origin = Coord{}

// Directions lists the six axial neighbor offsets in counter-clockwise order.
var Directions = [6]Coord{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1}, {Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Cube builds a coordinate from its three cube components. It panics when the
// components do not sum to zero.
func Cube(q, r, s int) Coord {
	if q+r+s != 0 {
		panic(fmt.Sprintf("hex: cube components (%d,%d,%d) do not sum to zero", q, r, s))
	}
	return Coord{Q: q, R: r}
}

// S returns the implicit third cube component.
func (c Coord) S() int { return -c.Q - c.R }

// Add returns c+o.
func (c Coord) Add(o Coord) Coord { return Coord{Q: c.Q + o.Q, R: c.R + o.R} }

// Sub returns c-o.
func (c Coord) Sub(o Coord) Coord { return Coord{Q: c.Q - o.Q, R: c.R - o.R} }

// Scale multiplies c by k.
func (c Coord) Scale(k int) Coord { return Coord{Q: c.Q * k, R: c.R * k} }

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// Length is the hex distance from the origin.
func (c Coord) Length() int {
	return max(abs(c.Q), abs(c.R), abs(c.S()))
}

// String formats the coordinate in cube form.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S())
}

// Distance returns the hex distance between a and b.
func Distance(a, b Coord) int { return a.Sub(b).Length() }

// InDisc reports whether c lies within distance r of the origin.
func InDisc(c Coord, r int) bool { return c.Length() <= r }

// Ring returns the coordinates at exactly distance k from center, starting in
// direction 4 and walking counter-clockwise. Ring(c, 0) is just c.
func Ring(center Coord, k int) []Coord {
	if k <= 0 {
		return []Coord{center}
	}
	out := make([]Coord, 0, 6*k)
	cur := center.Add(Directions[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			out = append(out, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return out
}

// Disc returns every coordinate within distance r of center, ordered by Q then R.
func Disc(center Coord, r int) []Coord {
	if r < 0 {
		return nil
	}
	out := make([]Coord, 0, DiscSize(r))
	for q := -r; q <= r; q++ {
		for rr := max(-r, -q-r); rr <= min(r, -q+r); rr++ {
			out = append(out, center.Add(Coord{Q: q, R: rr}))
		}
	}
	return out
}

// DiscSize is the number of cells in a disc of radius r.
func DiscSize(r int) int {
	if r < 0 {
		return 0
	}
	return 3*r*r + 3*r + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
