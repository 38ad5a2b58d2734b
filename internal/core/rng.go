package core

import "math/rand/v2"

// Rand is the source of randomness consumed by simulation rules.
type Rand interface {
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the stream from the provided seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// IntRange returns a uniform integer in [lo, hi]. When hi <= lo it returns lo.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Sequence replays a fixed list of draws, cycling when exhausted. Draws that
// fall outside the requested range are clamped into it.
type Sequence struct {
	vals []int
	pos  int
}

// NewSequence returns a Sequence that yields vals in order.
func NewSequence(vals ...int) *Sequence {
	return &Sequence{vals: vals}
}

// IntRange returns the next scripted value clamped to [lo, hi].
func (s *Sequence) IntRange(lo, hi int) int {
	if len(s.vals) == 0 {
		return lo
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int { return s.pos }
