package game

import (
	"math/rand"
	"time"
)

// Rand is the source of every random decision in the simulation.
// *rand.Rand satisfies it; tests can plug in a fixed sequence.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// NewRand returns a seeded random source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
