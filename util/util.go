// Package util provides seeded sample generation for tests and benchmarks.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Uint64s generates num random 64-bit values using the given RNG.
// Narrower samples are obtained by truncation at the call site.
func (r *RNG) Uint64s(num int) []uint64 {
	s := make([]uint64, num)
	for i := range s {
		s[i] = r.rand.Uint64()
	}
	return s
}

// Bytes generates num random bytes using the given RNG.
func (r *RNG) Bytes(num int) []byte {
	b := make([]byte, num)
	for i := range b {
		b[i] = byte(r.rand.Uint64())
	}
	return b
}
