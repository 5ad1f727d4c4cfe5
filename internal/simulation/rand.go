package simulation

import (
	"math/rand"
	"sync"
	"time"
)

// Rand supplies the random draws the simulators make. The interface is
// deliberately small so tests can swap in a seeded source.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// lockedRand guards a rand.Rand with a mutex so concurrent simulators can
// share a single source. The top-level math/rand functions do the same, but
// wrapping our own source keeps seeding injectable.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// NewRand returns a time-seeded source safe for concurrent use.
func NewRand() Rand {
	return NewSeededRand(time.Now().UnixNano())
}

// NewSeededRand returns a deterministic source for reproducible runs.
func NewSeededRand(seed int64) Rand {
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

// uniform draws from [min, max).
func uniform(rng Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// intBetween draws an integer from [min, max], both ends inclusive.
func intBetween(rng Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
