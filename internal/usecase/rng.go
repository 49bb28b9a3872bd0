package usecase

import (
	"math/rand"
	"sync"
	"time"
)

// RandFactory hands out independent rand.Rand instances from one seeded
// source. math/rand.Rand is not safe for concurrent use, so every simulation
// unit (a schedule draw, a prediction trial) gets its own instance; a fixed
// seed makes whole runs reproducible in tests.
type RandFactory struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRandFactory seeds the factory. A zero seed falls back to wall-clock
// seeding for production use.
func NewRandFactory(seed int64) *RandFactory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandFactory{src: rand.New(rand.NewSource(seed))}
}

func (f *RandFactory) New() *rand.Rand {
	f.mu.Lock()
	defer f.mu.Unlock()
	return rand.New(rand.NewSource(f.src.Int63()))
}
