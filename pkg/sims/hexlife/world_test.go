package hexlife

import (
	"errors"
	"slices"
	"testing"

	"hexlife/pkg/core"
	"hexlife/pkg/hex"
)

func newTestWorld(t *testing.T, radius int, rule string, seed int64) *World {
	t.Helper()
	w, err := New(Config{Radius: radius, Rule: MustParseRule(rule)}, core.NewRNG(seed).Source())
	if err != nil {
		t.Fatalf("New(radius=%d, rule=%s): %v", radius, rule, err)
	}
	return w
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	rule := MustParseRule("12/2/3")
	if _, err := New(Config{Radius: 0, Rule: rule}, nil); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("radius 0: err = %v", err)
	}
	bad := []Rule{
		{Survival: []int{2}, Birth: []int{2}, States: 1},
		{Survival: []int{9}, Birth: []int{2}, States: 3},
		{Survival: []int{2}, Birth: []int{-1}, States: 3},
	}
	for _, r := range bad {
		if _, err := New(Config{Radius: 3, Rule: r}, nil); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("rule %+v: err = %v", r, err)
		}
	}
}

func TestCardinalityIsStable(t *testing.T) {
	for r := 1; r <= 7; r++ {
		w := newTestWorld(t, r, "12/2/3", int64(r))
		want := 3*r*r + 3*r + 1
		if w.Len() != want || len(w.Cells()) != want {
			t.Fatalf("radius %d: %d cells, want %d", r, len(w.Cells()), want)
		}
		keys := slices.Clone(w.Coords())
		for i := 0; i < 5; i++ {
			w.Step()
		}
		if len(w.Cells()) != want {
			t.Fatalf("radius %d after steps: %d cells, want %d", r, len(w.Cells()), want)
		}
		if !slices.Equal(keys, w.Coords()) {
			t.Fatalf("radius %d: key set changed after stepping", r)
		}
	}
}

func TestSeedingIsFiftyFifty(t *testing.T) {
	w := newTestWorld(t, 20, "12/2/3", 1)
	on := 0
	for _, c := range w.Cells() {
		switch c.State {
		case Off:
		case On(2):
			on++
		default:
			t.Fatalf("cell %v seeded with %v, want Off or On(2)", c.Coord, c.State)
		}
	}
	frac := float64(on) / float64(w.Len())
	if frac < 0.4 || frac > 0.6 {
		t.Fatalf("seeded live fraction %.3f, want about 0.5", frac)
	}
}

func TestResetDeterministic(t *testing.T) {
	a := newTestWorld(t, 6, "12/2/3", 77)
	b := newTestWorld(t, 6, "12/2/3", 77)
	if !slices.Equal(a.States(), b.States()) {
		t.Fatal("same seed produced different initial grids")
	}
	a.Step()
	a.Reset(core.NewRNG(77).Source())
	if !slices.Equal(a.States(), b.States()) {
		t.Fatal("Reset with the construction seed did not restore the grid")
	}
	if a.Generation() != 0 {
		t.Fatalf("Generation after Reset = %d", a.Generation())
	}
	c := newTestWorld(t, 6, "12/2/3", 78)
	if slices.Equal(a.States(), c.States()) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestSetWrapsAndValidates(t *testing.T) {
	w := newTestWorld(t, 3, "12/2/3", 5)
	w.Clear()
	target := hex.Cube(2, -3, 1)
	mirror := hex.Torus{Radius: 3}.Mirrors()[4]
	if err := w.Set(target.Add(mirror), On(1)); err != nil {
		t.Fatal(err)
	}
	if s, ok := w.Cell(target); !ok || s != On(1) {
		t.Fatalf("Cell(%v) = %v, %v; want On(1)", target, s, ok)
	}
	if err := w.Set(target, On(3)); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Set(On(3)) err = %v, want ErrInvalidState", err)
	}
	if _, ok := w.Cell(hex.Cube(4, -4, 0)); ok {
		t.Fatal("Cell outside the disc reported ok")
	}
}

func TestRuleAccessorReturnsCopy(t *testing.T) {
	w := newTestWorld(t, 2, "12/2/3", 1)
	r := w.Rule()
	r.Survival[0] = 6
	r.States = 9
	if got := w.Rule().String(); got != "12/2/3" {
		t.Fatalf("world rule mutated through accessor: %s", got)
	}
	if w.Radius() != 2 {
		t.Fatalf("Radius() = %d", w.Radius())
	}
}

func TestCensus(t *testing.T) {
	w := newTestWorld(t, 5, "12/2/3", 3)
	for i := 0; i < 4; i++ {
		w.Step()
	}
	c := w.Census()
	if c.Generation != 4 {
		t.Fatalf("Generation = %d, want 4", c.Generation)
	}
	if len(c.Counts) != 3 {
		t.Fatalf("len(Counts) = %d, want 3", len(c.Counts))
	}
	if c.Alive()+c.Off() != w.Len() {
		t.Fatalf("census %v does not cover %d cells", c.Counts, w.Len())
	}
	w.Clear()
	if c := w.Census(); c.Alive() != 0 || c.Generation != 0 {
		t.Fatalf("census after Clear = %+v", c)
	}
}
