package simulator

import (
	"math/rand"
	"time"
)

// RandomSource yields uniform draws in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// FixedSource returns the same draw every time.
type FixedSource float64

func (f FixedSource) Float64() float64 { return float64(f) }

// NewSeededSource returns a math/rand source. A zero seed uses the clock.
func NewSeededSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
