package testutils

import "time"

// FixedClock pins Now to a chosen instant.
type FixedClock struct {
	Current time.Time
}

func (c FixedClock) Now() time.Time { return c.Current }

// ScriptedRand replays fixed sequences of draws. When a sequence runs out
// the last value repeats, so short scripts stay valid for long batches.
type ScriptedRand struct {
	Ints   []int
	Floats []float64

	ipos int
	fpos int
}

func (r *ScriptedRand) Intn(n int) int {
	if n <= 0 || len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[r.ipos]
	if r.ipos < len(r.Ints)-1 {
		r.ipos++
	}
	return v % n
}

func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[r.fpos]
	if r.fpos < len(r.Floats)-1 {
		r.fpos++
	}
	return v
}
