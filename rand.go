package fractree

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the randomness source used for seed placement and branch growth.
// Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// lockedRand serializes access to a *rand.Rand, which is not safe for
// concurrent use. The seed store may be appended to from an input goroutine
// while the driving goroutine grows branches.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// NewRand returns a PCG-backed Rand seeded with seed. Equal seeds produce
// equal sequences.
func NewRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeRand returns a Rand seeded from the wall clock.
func NewTimeRand() Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}
