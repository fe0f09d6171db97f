package util

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Rand is the slice of *math/rand.Rand the game draws from.
type Rand interface {
	Intn(n int) int
}

// RandRange draws uniformly from [lo, hi).
func RandRange(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

func Choice[A any](rng Rand, items []A) A {
	return items[rng.Intn(len(items))]
}

// SequenceRand replays a fixed list of draws, each reduced modulo n. Once
// the list runs out every draw is 0.
type SequenceRand struct {
	draws []int
	next  int
}

func NewSequenceRand(draws ...int) *SequenceRand {
	return &SequenceRand{draws: draws}
}

func (s *SequenceRand) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	if s.next >= len(s.draws) {
		return 0
	}
	d := s.draws[s.next]
	s.next++
	return Mod(d, n)
}

// Mod is a modulo that never returns a negative value for positive m.
func Mod[A constraints.Integer](a A, m A) A {
	return ((a % m) + m) % m
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "could not create %s", dir)
	}
	return nil
}
