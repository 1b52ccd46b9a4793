package hexlife

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"

	"hexlife/pkg/core"
	"hexlife/pkg/hex"
)

// ErrInvalidState is returned by Set for states the rule cannot produce.
var ErrInvalidState = errors.New("hexlife: invalid state")

// Config describes a world. Radius and Rule are fixed for the world's
// lifetime. Workers > 1 spreads each step across that many goroutines.
type Config struct {
	Radius  int
	Rule    Rule
	Workers int
}

// Cell pairs a coordinate with its state.
type Cell struct {
	Coord hex.Coord
	State State
}

// World holds a hexagonal disc of cells whose opposite edges are glued
// together, and advances it one generation at a time.
type World struct {
	radius  int
	rule    Rule
	torus   hex.Torus
	workers int

	survival countMask
	birth    countMask
	maxAge   State

	coords []hex.Coord
	index  map[hex.Coord]int
	edges  map[hex.Coord]hex.Coord
	nbrs   [][6]int32

	cur []State
	nxt []State
	gen uint64
}

// New builds a world and seeds every cell independently with either Off or
// full vitality. A nil rng seeds from system entropy.
func New(cfg Config, rng *rand.Rand) (*World, error) {
	if cfg.Radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, cfg.Radius)
	}
	if err := cfg.Rule.Validate(); err != nil {
		return nil, err
	}
	edges, err := BuildEdgeLookup(cfg.Radius)
	if err != nil {
		return nil, err
	}

	coords := hex.Disc(hex.Origin, cfg.Radius)
	w := &World{
		radius:   cfg.Radius,
		rule:     cfg.Rule.clone(),
		torus:    hex.Torus{Radius: cfg.Radius},
		workers:  max(cfg.Workers, 1),
		survival: maskOf(cfg.Rule.Survival),
		birth:    maskOf(cfg.Rule.Birth),
		maxAge:   cfg.Rule.MaxAge(),
		coords:   coords,
		index:    make(map[hex.Coord]int, len(coords)),
		edges:    edges,
		nbrs:     make([][6]int32, len(coords)),
		cur:      make([]State, len(coords)),
		nxt:      make([]State, len(coords)),
	}
	for i, c := range coords {
		w.index[c] = i
	}
	w.linkNeighbors()
	w.Reset(rng)
	return w, nil
}

// linkNeighbors resolves every cell's six neighbors through the edge lookup
// once, so stepping never touches a coordinate outside the grid.
func (w *World) linkNeighbors() {
	for i, c := range w.coords {
		for k, n := range c.Neighbors() {
			j, ok := w.index[resolve(w.edges, n)]
			if !ok {
				panic(fmt.Sprintf("hexlife: neighbor %v of %v has no cell at radius %d", n, c, w.radius))
			}
			w.nbrs[i][k] = int32(j)
		}
	}
}

// Reset reseeds every cell 50/50 between Off and full vitality and rewinds the
// generation counter. A nil rng seeds from system entropy.
func (w *World) Reset(rng *rand.Rand) {
	if rng == nil {
		rng = core.NewEntropyRNG().Source()
	}
	for i := range w.cur {
		if rng.IntN(2) == 1 {
			w.cur[i] = w.maxAge
		} else {
			w.cur[i] = Off
		}
	}
	w.gen = 0
}

// Clear sets every cell Off and rewinds the generation counter.
func (w *World) Clear() {
	clear(w.cur)
	w.gen = 0
}

// Radius returns the disc radius.
func (w *World) Radius() int { return w.radius }

// Rule returns a copy of the active rule.
func (w *World) Rule() Rule { return w.rule.clone() }

// Len returns the number of cells, 3R²+3R+1.
func (w *World) Len() int { return len(w.coords) }

// Generation counts completed steps since construction, Reset or Clear.
func (w *World) Generation() uint64 { return w.gen }

// Cell returns the state at c. ok is false when c is not on the disc.
func (w *World) Cell(c hex.Coord) (State, bool) {
	i, ok := w.index[c]
	if !ok {
		return Off, false
	}
	return w.cur[i], true
}

// Set overwrites the state at c. Coordinates off the disc are wrapped onto it
// first, so patterns can be stamped across the seams.
func (w *World) Set(c hex.Coord, s State) error {
	if s > w.maxAge {
		return fmt.Errorf("%w: %v exceeds %v for rule %v", ErrInvalidState, s, w.maxAge, w.rule)
	}
	w.cur[w.index[w.torus.Wrap(c)]] = s
	return nil
}

// Neighbors returns the six neighbors of c after edge resolution. ok is false
// when c is not on the disc.
func (w *World) Neighbors(c hex.Coord) ([6]hex.Coord, bool) {
	var out [6]hex.Coord
	i, ok := w.index[c]
	if !ok {
		return out, false
	}
	for k, j := range w.nbrs[i] {
		out[k] = w.coords[j]
	}
	return out, true
}

// Cells returns a copy of the latest generation.
func (w *World) Cells() []Cell {
	out := make([]Cell, len(w.coords))
	for i, c := range w.coords {
		out[i] = Cell{Coord: c, State: w.cur[i]}
	}
	return out
}

// States exposes the latest generation in Coords order without copying. The
// slice is reused by the next Step and must not be modified.
func (w *World) States() []State { return w.cur }

// Coords lists the disc coordinates in the order used by States.
func (w *World) Coords() []hex.Coord { return w.coords }

// EdgeLookup returns a copy of the wraparound table.
func (w *World) EdgeLookup() map[hex.Coord]hex.Coord { return maps.Clone(w.edges) }
