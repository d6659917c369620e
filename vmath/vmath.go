// Package vmath provides the 2D float vector helpers and the seeded
// random source used by the simulation. All functions operate on scalar
// (x, y) pairs to keep call sites allocation-free.
package vmath

import "math"

// Epsilon is the minimum distance substituted for degenerate geometry
// (coincident centers, zero-length vectors) to keep normals finite.
const Epsilon = 1e-9

// Tau is one full rotation in radians.
const Tau = 2 * math.Pi

// --- Randomness ---

// FastRand is a xorshift64 generator. Not cryptographic; exists so that a
// run is reproducible from a single uint64 seed and so the simulation does
// not depend on global rand state.
type FastRand struct {
	state uint64
}

// NewFastRand returns a generator seeded with the given value.
// A zero seed is remapped since xorshift has a zero fixed point.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [min, max).
func (r *FastRand) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
