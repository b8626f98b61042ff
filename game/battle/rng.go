package battle

import (
	"math/rand"
	"time"
)

// RNG wraps a seedable random source. Every roll in the turn pipeline
// goes through this handle so a transition is reproducible under a
// fixed seed in tests.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG over the given source. A nil source seeds from
// the wall clock (production behavior).
func NewRNG(r *rand.Rand) *RNG {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RNG{r: r}
}

// Chance returns true with probability p (clamped to [0,1]).
func (g *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

// Between returns a uniform int in [lo, hi] inclusive.
func (g *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Intn returns a uniform int in [0, n).
func (g *RNG) Intn(n int) int { return g.r.Intn(n) }

// Variance returns the damage random factor, uniform in [0.85, 1.0].
func (g *RNG) Variance() float64 { return 0.85 + g.r.Float64()*0.15 }
