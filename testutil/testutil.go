// Package testutil provides deterministic random data generation for
// tests.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG is a mutex-guarded seeded random source, safe for concurrent use
// from parallel subtests.
type RNG struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRNG creates a seeded RNG.
func NewRNG(seed int64) *RNG {
	return &RNG{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rnd.Float64()
}

// Intn returns a uniform value in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rnd.Intn(n)
}

// FillUniform fills dst with uniform values in [0, 1).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range dst {
		dst[i] = r.rnd.Float64()
	}
}

// Coordinate is a random (row, col, value) triple.
type Coordinate struct {
	Row   int
	Col   int
	Value float64
}

// Coordinates generates n random coordinate triples within the given
// dimensions. Values are nonzero. Duplicate coordinates may occur.
func (r *RNG) Coordinates(n, rows, cols int) []Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Coordinate, n)
	for i := range out {
		out[i] = Coordinate{
			Row:   r.rnd.Intn(rows),
			Col:   r.rnd.Intn(cols),
			Value: r.rnd.Float64() + 0.5,
		}
	}
	return out
}
