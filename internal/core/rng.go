package core

import "math/rand/v2"

// DefaultSeed seeds the fallback generator used when no RNG is supplied.
const DefaultSeed int64 = 0x5eed

// RNG is the random source used to shuffle lattice tables.
type RNG interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// PCG is a thin wrapper around math/rand/v2 for deterministic seeding.
type PCG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (p *PCG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return p.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (p *PCG) Source() *rand.Rand { return p.r }

// OrDefault returns r, or a generator seeded with DefaultSeed when r is nil.
func OrDefault(r RNG) RNG {
	if r == nil {
		return NewRNG(DefaultSeed)
	}
	return r
}
