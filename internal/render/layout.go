package render

import (
	"math"

	"hexlife/pkg/hex"
)

// Layout maps every pixel of a flat-top hex image to the cell it shows.
// The key set of a world never changes, so the table is built once.
type Layout struct {
	W, H  int
	Size  float64
	cells []int32
}

// NewLayout rasterizes coords (a disc around the origin) with hexes of the
// given corner radius. Pixels within margin of a hex edge stay background.
func NewLayout(coords []hex.Coord, size, margin float64) *Layout {
	radius := 0
	for _, c := range coords {
		radius = max(radius, c.Length())
	}
	w := int(math.Ceil(2 * (1.5*float64(radius) + 1) * size))
	h := int(math.Ceil(2 * (float64(radius) + 0.5) * math.Sqrt(3) * size))
	l := &Layout{W: w, H: h, Size: size, cells: make([]int32, w*h)}

	index := make(map[hex.Coord]int32, len(coords))
	for i, c := range coords {
		index[c] = int32(i)
	}
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, edge := PixelToHex(float64(x)+0.5-cx, float64(y)+0.5-cy, size)
			i, ok := index[c]
			if !ok || edge < margin {
				i = -1
			}
			l.cells[y*w+x] = i
		}
	}
	return l
}

// CellAt returns the cell index drawn at pixel (x, y), or -1 for background.
func (l *Layout) CellAt(x, y int) int {
	if x < 0 || y < 0 || x >= l.W || y >= l.H {
		return -1
	}
	return int(l.cells[y*l.W+x])
}

// HexToPixel returns the center of c relative to the image center.
func HexToPixel(c hex.Coord, size float64) (x, y float64) {
	x = size * 1.5 * float64(c.Q)
	y = size * math.Sqrt(3) * (float64(c.R) + float64(c.Q)/2)
	return x, y
}

// PixelToHex returns the hex containing the point (x, y) relative to the image
// center, and the point's distance in pixels to that hex's nearest edge.
func PixelToHex(x, y, size float64) (hex.Coord, float64) {
	q := (2.0 / 3.0 * x) / size
	r := (-1.0/3.0*x + math.Sqrt(3)/3.0*y) / size
	s := -q - r

	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	c := hex.Coord{Q: int(rq), R: int(rr)}

	fq, fr, fs := q-rq, r-rr, s-(-rq-rr)
	norm := max(math.Abs(fq-fr), math.Abs(fr-fs), math.Abs(fs-fq))
	return c, (1 - norm) * math.Sqrt(3) / 2 * size
}
