package random

import (
	"github.com/go-loremipsum/loremipsum"
	"golang.org/x/exp/rand"
)

// Source is seeded random source with own lorem ipsum generator.
// It is not safe for concurrent use.
type Source struct {
	rnd *rand.Rand
	gen *loremipsum.LoremIpsum
}

// New returns source seeded by seed.
// The same seed produces the same sequence of values and words.
func New(seed int64) *Source {
	s := &Source{
		rnd: rand.New(rand.NewSource(uint64(seed))),
		gen: loremipsum.NewWithSeed(seed),
	}
	return s
}

// Value returns random value in range of [a[0],a[1]].
// The width is counted in uint64, so any a[0] <= a[1] is valid,
// including whole int range.
func (s *Source) Value(a []int) int {
	m, n := a[0], a[1]
	width := uint64(n) - uint64(m) + 1
	if width == 0 { // whole 64 bit range
		return int(s.rnd.Uint64())
	}
	return int(uint64(m) + s.rnd.Uint64n(width))
}

// Intn returns random value in range of [min,max]
func (s *Source) Intn(min, max int) int {
	return s.Value([]int{min, max})
}

// Float returns random value in range of [min,max)
func (s *Source) Float(min, max float64) float64 {
	return min + s.rnd.Float64()*(max-min)
}

// Digits returns string of n random decimal digits
func (s *Source) Digits(n int) string {
	const digit = "0123456789"
	b := make([]byte, n)
	for x := range b {
		b[x] = digit[s.rnd.Intn(len(digit))]
	}
	return string(b)
}

// ElementOf returns random element of a using source s
func ElementOf[T any](s *Source, a []T) T {
	return a[s.Intn(0, len(a)-1)]
}
