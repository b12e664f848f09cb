// Package generator provides the randomness used to pick secret words.
package generator

import (
	"math/rand"
	"time"
)

// Generator is a non-cryptographic random source owned by one caller.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed for reproducible picks.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}
