// Package random isolates pseudo-random generation behind a seedable
// source so tests can supply a deterministic seed.
package random

import "math/rand"

// Source yields pseudo-random values for generated display data.
type Source interface {
	// Intn returns a non-negative value in [0, n).
	Intn(n int) int
	// Pick returns a random element of choices, or "" when empty.
	Pick(choices []string) string
}

type seeded struct {
	rng *rand.Rand
}

// NewSeeded builds a Source from a fixed seed. Equal seeds produce
// equal sequences.
func NewSeeded(seed int64) Source {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

func (s *seeded) Pick(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return choices[s.rng.Intn(len(choices))]
}
