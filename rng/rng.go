package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// Source is the random capability injected into the lattice and the
// Swendsen-Wang passes.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Bernoulli reports true with probability p, consuming one draw.
	Bernoulli(p float64) bool
}

// Rand is a deterministic Source. The zero value is not usable; use New.
type Rand struct {
	r    *rand.Rand
	seed int64
}

// New returns a deterministic stream.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return &Rand{r: rand.New(rand.NewSource(s)), seed: s}
}

// Seed returns the effective seed of the stream.
func (r *Rand) Seed() int64 { return r.seed }

// Float64 returns a uniform value in [0,1).
func (r *Rand) Float64() float64 { return r.r.Float64() }

// Bernoulli reports whether a uniform draw falls below p.
// p ≤ 0 never succeeds and p ≥ 1 always succeeds; one draw is consumed either way.
func (r *Rand) Bernoulli(p float64) bool { return r.r.Float64() < p }

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Notes:
//   - SplitMix64 finalizer constants; small input changes give well-spread outputs.
//   - Pure function of (parent, stream), so stream k of a given parent is the same
//     no matter which worker ends up running it.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates the independent stream number `stream` of the parent seed.
// A parent of 0 is replaced by DefaultSeed first.
//
// Usage: call during setup (one per temperature), never in hot loops.
func Derive(parent int64, stream uint64) *Rand {
	if parent == 0 {
		parent = DefaultSeed
	}
	return New(DeriveSeed(parent, stream))
}
