// Package generator builds randomized multiplication problems.
package generator

import (
	"math/rand"
	"time"
)

// Generator produces random factor pairs.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed for reproducible runs.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Factors returns two independent values drawn uniformly from [min, max].
func (g *Generator) Factors(min, max int) (int, int) {
	span := max - min + 1
	return min + g.rnd.Intn(span), min + g.rnd.Intn(span)
}
