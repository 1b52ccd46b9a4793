package hexlife

import (
	"errors"
	"testing"

	"hexlife/pkg/hex"
)

func TestBuildEdgeLookupRejectsSmallRadius(t *testing.T) {
	for _, r := range []int{0, -1, -5} {
		if _, err := BuildEdgeLookup(r); !errors.Is(err, ErrInvalidRadius) {
			t.Fatalf("BuildEdgeLookup(%d) err = %v", r, err)
		}
	}
}

func TestEdgeLookupCoversOuterRing(t *testing.T) {
	for r := 1; r <= 8; r++ {
		edges, err := BuildEdgeLookup(r)
		if err != nil {
			t.Fatal(err)
		}
		if len(edges) != 6*(r+1) {
			t.Fatalf("radius %d: %d entries, want %d", r, len(edges), 6*(r+1))
		}
		tor := hex.Torus{Radius: r}
		for from, to := range edges {
			if from.Length() != r+1 {
				t.Fatalf("radius %d: key %v not on outer ring", r, from)
			}
			if !hex.InDisc(to, r) {
				t.Fatalf("radius %d: %v maps to %v outside disc", r, from, to)
			}
			if w := tor.Wrap(from); w != to {
				t.Fatalf("radius %d: %v maps to %v, torus says %v", r, from, to, w)
			}
		}
	}
}

func TestOuterRingMatchesSingleMirror(t *testing.T) {
	for r := 1; r <= 8; r++ {
		mirrors := hex.Torus{Radius: r}.Mirrors()
		for _, c := range hex.Ring(hex.Origin, r+1) {
			hits := 0
			for _, m := range mirrors {
				if hex.Distance(c, m) <= r {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("radius %d: %v within reach of %d mirrors", r, c, hits)
			}
		}
	}
}

func TestEdgeLookupCorners(t *testing.T) {
	edges, err := BuildEdgeLookup(1)
	if err != nil {
		t.Fatal(err)
	}
	want := map[hex.Coord]hex.Coord{
		hex.Cube(2, 0, -2): hex.Cube(-1, 1, 0),
		hex.Cube(2, -2, 0): hex.Cube(0, 1, -1),
		hex.Cube(0, -2, 2): hex.Cube(1, 0, -1),
		hex.Cube(-2, 0, 2): hex.Cube(1, -1, 0),
		hex.Cube(-2, 2, 0): hex.Cube(0, -1, 1),
		hex.Cube(0, 2, -2): hex.Cube(-1, 0, 1),
	}
	for from, to := range want {
		if got := edges[from]; got != to {
			t.Fatalf("corner %v maps to %v, want %v", from, got, to)
		}
	}

	for r := 2; r <= 6; r++ {
		edges, _ := BuildEdgeLookup(r)
		tor := hex.Torus{Radius: r}
		for _, d := range hex.Directions {
			corner := d.Scale(r + 1)
			if got, want := edges[corner], tor.Wrap(corner); got != want {
				t.Fatalf("radius %d: corner %v maps to %v, want %v", r, corner, got, want)
			}
		}
	}
}

func TestEveryNeighborResolvesIntoDisc(t *testing.T) {
	for r := 1; r <= 8; r++ {
		edges, _ := BuildEdgeLookup(r)
		for _, c := range hex.Disc(hex.Origin, r) {
			for _, n := range c.Neighbors() {
				if hex.InDisc(n, r) {
					continue
				}
				to, ok := edges[n]
				if !ok {
					t.Fatalf("radius %d: neighbor %v of %v missing from lookup", r, n, c)
				}
				if !hex.InDisc(to, r) {
					t.Fatalf("radius %d: %v resolves to %v outside disc", r, n, to)
				}
			}
		}
	}
}
