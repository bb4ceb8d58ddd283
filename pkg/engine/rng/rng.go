// Package rng provides the injected randomness source used by generation,
// content distribution and combat. Callers never reach for the global
// math/rand state; a Source is passed in so tests can substitute a
// deterministic or scripted implementation.
package rng

import (
	"math/rand"
	"time"
)

// Source is the minimal randomness contract the game needs.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewSeeded returns a Source backed by math/rand with the given seed.
// Two Sources with the same seed produce the same sequence.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() Source {
	return NewSeeded(time.Now().UnixNano())
}

// Sample draws k distinct ints from [0, n) uniformly at random, in draw
// order. It runs a Fisher-Yates prefix over the full index range, so the
// result is an unbiased sample without replacement.
func Sample(src Source, n, k int) []int {
	if k < 0 || k > n {
		return nil
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:k]
}

// Choice returns one element of items chosen uniformly at random.
// Panics if items is empty, matching Intn's contract.
func Choice[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Between returns a uniform int in [lo, hi], inclusive on both ends.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
