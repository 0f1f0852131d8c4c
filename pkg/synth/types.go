package synth

import (
	"math/rand"
	"time"
)

// Clock abstracts wall time for deterministic testing.
type Clock interface {
	Now() time.Time
}

// Rand abstracts the random source so generators can be driven by
// deterministic stand-ins in tests.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

type RealRand struct{ *rand.Rand }

func (r RealRand) Intn(n int) int   { return r.Rand.Intn(n) }
func (r RealRand) Float64() float64 { return r.Rand.Float64() }

// NewRand returns a seeded source. The same seed reproduces the same
// draw sequence, which is what makes generated batches reproducible.
func NewRand(seed int64) RealRand {
	return RealRand{rand.New(rand.NewSource(seed))}
}

// uniform draws from U(min, max).
func uniform(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// randomLetter draws an uppercase ASCII letter.
func randomLetter(r Rand) string {
	return string(rune('A' + r.Intn(26)))
}
