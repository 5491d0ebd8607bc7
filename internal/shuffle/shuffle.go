// Package shuffle provides reproducible permutations for quiz and chat
// sessions.
package shuffle

import (
	"math/rand/v2"
	"time"
)

// Shuffler permutes n elements by calling swap.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// FisherYates is a seeded Fisher–Yates shuffler. Not safe for concurrent use.
type FisherYates struct {
	rng *rand.Rand
}

// NewSeeded returns a shuffler whose sequence depends only on seed.
func NewSeeded(seed int64) *FisherYates {
	s := uint64(seed)
	return &FisherYates{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

func (f *FisherYates) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := f.rng.IntN(i + 1)
		swap(i, j)
	}
}

// Identity leaves the order unchanged.
type Identity struct{}

func (Identity) Shuffle(int, func(i, j int)) {}

// Source hands out shufflers for new sessions. A zero seed draws from the
// clock; any other seed makes the n-th shuffler deterministic.
type Source struct {
	seed int64
	n    int64
}

func NewSource(seed int64) *Source {
	return &Source{seed: seed}
}

// Next returns the shuffler for the next session.
func (s *Source) Next() Shuffler {
	if s.seed == 0 {
		return NewSeeded(time.Now().UnixNano())
	}
	s.n++
	return NewSeeded(s.seed + s.n)
}

// Slice shuffles xs in place.
func Slice[T any](sh Shuffler, xs []T) {
	sh.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}
