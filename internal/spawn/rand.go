package spawn

import (
	"math/rand"
	"sync"
)

// Rand is the subset of math/rand the engine draws from. Injected so tests
// can seed a fixed sequence.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// lockedRand guards a *rand.Rand so concurrent allocations can share one
// source.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand returns a goroutine-safe Rand seeded with the given value.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
