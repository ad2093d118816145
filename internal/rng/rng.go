package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a reproducible generator backed by math/rand
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a Seeded generator
// A seed of 0 will use the current time
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Sequence replays a fixed list of values, wrapping around when exhausted.
// Each value is reduced modulo n, which makes it handy for tests.
type Sequence struct {
	Values []int
	pos    int
}

// NewSequence returns a new Sequence
func NewSequence(values ...int) *Sequence {
	return &Sequence{Values: values}
}

// Intn returns the next value in the sequence modulo n
func (s *Sequence) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}

	v := s.Values[s.pos%len(s.Values)]
	s.pos++

	if v < 0 {
		v = -v
	}

	return v % n
}

// Calls returns how many values have been consumed
func (s *Sequence) Calls() int {
	return s.pos
}
