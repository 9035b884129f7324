// Package rng supplies the pseudo-random numbers used by traffic decisions
// and respawns. Everything random in a race draws from one Source so that a
// seed reproduces the run.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation needs.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// New returns a seeded source.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewFromTime seeds from the wall clock, for interactive play.
func NewFromTime() (Source, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Sequence replays a fixed list of draws, each reduced modulo n. It wraps
// around when exhausted. Used to script decisions in tests.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn implements Source.
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
