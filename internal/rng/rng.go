package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is the single random collaborator of the outcome generators.
// Implementations must be uniform; tests inject scripted sources to
// force outcomes.
type Source interface {
	Float64() float64
	Intn(n int) int
	Perm(n int) []int
}

type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source seeded from the operating system's entropy pool.
// There is no safe fallback outcome, so a seeding failure is returned
// to the caller and should abort startup.
func New() (Source, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("seed random source: %w", err)
	}
	seed := int64(binary.BigEndian.Uint64(b[:]))
	return &locked{r: rand.New(rand.NewSource(seed))}, nil
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *locked) Perm(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Perm(n)
}
