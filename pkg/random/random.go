// Package random isolates every random decision the simulation makes behind a
// small interface so tests can replay exact sequences.
package random

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation consumes
type Source interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// New returns a Source seeded with seed
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a Source seeded from the wall clock
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

// IntRange returns an integer in [lo, hi], both inclusive
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Uniform returns a float in [lo, hi)
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Chance reports true with probability p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
