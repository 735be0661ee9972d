package rng

import (
	"math/rand"
	"time"
)

// Generator provides simple random numbers
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Float64 returns a random number in [0.0,1.0)
	Float64() float64

	// Int63 returns a non-negative random int64
	Int63() int64
}

// New returns a seeded generator
// If seed is 0, the current time is used
func New(seed int64) Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Fixed always returns the same values. It is only useful for tests that need to
// force a specific branch of a probabilistic decision.
type Fixed struct {
	Float float64
	Int   int
}

// Intn returns Int bounded by n
func (f Fixed) Intn(n int) int {
	if f.Int >= n {
		return n - 1
	}

	return f.Int
}

// Float64 returns Float
func (f Fixed) Float64() float64 {
	return f.Float
}

// Int63 returns Int
func (f Fixed) Int63() int64 {
	return int64(f.Int)
}
