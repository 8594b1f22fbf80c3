// Package random provides the deterministic random source used by the
// distribution engine and orchestrator. All randomness in the core funnels
// through a Source so that a fixed seed reproduces a full playthrough.
package random

import "math/rand"

// Source is the minimal random interface the core consumes. *Rand satisfies
// it, as does any test double.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// Rand is a seeded deterministic random source.
type Rand struct {
	seed int64
	src  *rand.Rand
}

// New creates a deterministic source from a seed.
func New(seed int64) *Rand {
	return &Rand{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Intn returns a uniform value in [0, n).
func (r *Rand) Intn(n int) int {
	return r.src.Intn(n)
}

// Percent rolls a percentage check: true with probability chance/100.
// Chances at or below 0 never pass; 100 and above always pass.
func Percent(src Source, chance int) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	return src.Intn(100) < chance
}

// IntBetween returns a uniform value in [lo, hi] inclusive.
func IntBetween(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
