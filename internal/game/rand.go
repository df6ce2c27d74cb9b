package game

import (
	"math/rand"
	"sync"
)

// Rand supplies the event-spawn roll. Injected like Clock so tests can
// script exactly when an event fires and which one.
type Rand interface {
	Float64() float64
}

type RealRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func NewRealRand(seed int64) *RealRand {
	return &RealRand{src: rand.New(rand.NewSource(seed))}
}

func (r *RealRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// FakeRand returns queued rolls in order, then 1.0 forever (never triggers).
type FakeRand struct {
	mu    sync.Mutex
	rolls []float64
}

func NewFakeRand(rolls ...float64) *FakeRand {
	return &FakeRand{rolls: rolls}
}

func (r *FakeRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rolls) == 0 {
		return 1.0
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v
}

func (r *FakeRand) Queue(rolls ...float64) {
	r.mu.Lock()
	r.rolls = append(r.rolls, rolls...)
	r.mu.Unlock()
}
