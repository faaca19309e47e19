package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. All stochastic decisions in a simulation must flow through one
// RNG so a seed fully determines the run.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Float32 returns a uniform value in [0, 1).
func (r *RNG) Float32() float32 { return r.r.Float32() }

// IntN returns a uniform int in [0, n). n must be positive.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Chance reports true with probability p. Probabilities at or below 0
// never fire and never consume randomness; likewise at or above 1 they
// always fire.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Byte returns a uniform value across the full uint8 range.
func (r *RNG) Byte() uint8 {
	return uint8(r.r.IntN(256))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
