package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 so callers can choose
// between a reproducible seed and system entropy.
type RNG struct {
	r    *rand.Rand
	seed uint64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: uint64(seed)}
}

// NewEntropyRNG creates an RNG seeded from the runtime's entropy source.
func NewEntropyRNG() *RNG {
	seed := rand.Uint64()
	return &RNG{r: rand.New(rand.NewPCG(seed, rand.Uint64())), seed: seed}
}

// Seeded returns NewRNG(seed), or an entropy-seeded RNG when seed is zero.
func Seeded(seed int64) *RNG {
	if seed == 0 {
		return NewEntropyRNG()
	}
	return NewRNG(seed)
}

// Seed reports the primary seed, useful for logging a run so it can be replayed
// with NewRNG. Entropy RNGs are not reproducible from it.
func (r *RNG) Seed() uint64 { return r.seed }

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }
