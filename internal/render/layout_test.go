package render

import (
	"math"
	"testing"

	"hexlife/pkg/hex"
	"hexlife/pkg/sims/hexlife"
)

func TestPixelRoundTrip(t *testing.T) {
	const size = 7.0
	apothem := math.Sqrt(3) / 2 * size
	for _, c := range hex.Disc(hex.Origin, 5) {
		x, y := HexToPixel(c, size)
		got, edge := PixelToHex(x, y, size)
		if got != c {
			t.Fatalf("PixelToHex(HexToPixel(%v)) = %v", c, got)
		}
		if math.Abs(edge-apothem) > 1e-9 {
			t.Fatalf("center of %v is %.3f from its edge, want %.3f", c, edge, apothem)
		}
	}
}

func TestPixelNearEdgeHasSmallEdgeDistance(t *testing.T) {
	const size = 10.0
	apothem := math.Sqrt(3) / 2 * size
	// Halfway to the east-south-east neighbor lies on the shared edge.
	x, y := HexToPixel(hex.Coord{Q: 1, R: 0}, size)
	_, edge := PixelToHex(x/2*0.98, y/2*0.98, size)
	if edge > 0.05*apothem {
		t.Fatalf("edge distance near boundary = %.3f", edge)
	}
}

func TestLayoutCoversEveryCell(t *testing.T) {
	coords := hex.Disc(hex.Origin, 3)
	l := NewLayout(coords, 7, 1)
	cx, cy := float64(l.W)/2, float64(l.H)/2
	for i, c := range coords {
		x, y := HexToPixel(c, l.Size)
		px, py := int(math.Floor(cx+x)), int(math.Floor(cy+y))
		if got := l.CellAt(px, py); got != i {
			t.Fatalf("center pixel of %v maps to %d, want %d", c, got, i)
		}
	}
	if got := l.CellAt(0, 0); got != -1 {
		t.Fatalf("corner pixel maps to cell %d", got)
	}
	if got := l.CellAt(-1, 5); got != -1 {
		t.Fatalf("out of bounds pixel maps to cell %d", got)
	}
}

func TestFillUsesPalette(t *testing.T) {
	coords := hex.Disc(hex.Origin, 2)
	l := NewLayout(coords, 6, 1)
	states := make([]hexlife.State, len(coords))
	for i := range states {
		states[i] = hexlife.State(i % 3)
	}
	palette := Palette(3)
	buf := make([]byte, 4*l.W*l.H)
	Fill(buf, l, states, palette)

	cx, cy := float64(l.W)/2, float64(l.H)/2
	for i, c := range coords {
		x, y := HexToPixel(c, l.Size)
		px, py := int(math.Floor(cx+x)), int(math.Floor(cy+y))
		base := (py*l.W + px) * 4
		want := palette[states[i]]
		if buf[base] != want.R || buf[base+1] != want.G || buf[base+2] != want.B || buf[base+3] != want.A {
			t.Fatalf("cell %v drawn as %v, want %v", c, buf[base:base+4], want)
		}
	}
	if buf[0] != Background.R || buf[3] != Background.A {
		t.Fatalf("corner pixel = %v, want background", buf[:4])
	}
}

func TestPaletteMatchesVitality(t *testing.T) {
	p := Palette(3)
	if len(p) != 3 || p[0] != OffColor {
		t.Fatalf("Palette(3) = %v", p)
	}
	if p[1].R != 190 || p[1].G != 3 || p[2].R != 210 || p[2].G != 24 {
		t.Fatalf("live colors = %v, %v", p[1], p[2])
	}
	if p := Palette(40); p[39].R != 255 || p[39].G != 255 {
		t.Fatalf("high vitality not clamped: %v", p[39])
	}
}
