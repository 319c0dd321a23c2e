// Package synthetic produces placeholder fines, taxes and benefits that stand in for
// registries the application cannot reach.
package synthetic

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the randomness the generator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a goroutine-safe PCG source. A zero seed seeds from the clock.
func NewSource(seed int64) Source {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}

	return &lockedSource{rnd: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}
