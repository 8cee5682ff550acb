package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvising/rng"
)

// TestNew_ZeroSeedPolicy checks that seed 0 and DefaultSeed produce the same stream.
func TestNew_ZeroSeedPolicy(t *testing.T) {
	a, b := rng.New(0), rng.New(rng.DefaultSeed)
	assert.Equal(t, rng.DefaultSeed, a.Seed())
	for i := 0; i < 16; i++ {
		require.Equal(t, b.Float64(), a.Float64(), "draw %d", i)
	}
}

// TestBernoulli_Boundaries verifies p=0 never fires, p=1 always fires.
func TestBernoulli_Boundaries(t *testing.T) {
	r := rng.New(42)
	for i := 0; i < 1000; i++ {
		assert.False(t, r.Bernoulli(0))
		assert.True(t, r.Bernoulli(1))
	}
}

// TestBernoulli_ConsumesOneDraw locks the draw accounting the cluster pass depends on.
func TestBernoulli_ConsumesOneDraw(t *testing.T) {
	a, b := rng.New(7), rng.New(7)
	a.Bernoulli(0)
	a.Bernoulli(1)
	b.Float64()
	b.Float64()
	assert.Equal(t, b.Float64(), a.Float64())
}

// TestDerive_Independence checks determinism per stream id and separation between ids.
func TestDerive_Independence(t *testing.T) {
	s1, s1again, s2 := rng.Derive(99, 1), rng.Derive(99, 1), rng.Derive(99, 2)
	assert.Equal(t, s1.Seed(), s1again.Seed())
	assert.NotEqual(t, s1.Seed(), s2.Seed())
	assert.Equal(t, rng.Derive(0, 3).Seed(), rng.Derive(rng.DefaultSeed, 3).Seed())

	x, y := s1.Float64(), s2.Float64()
	assert.NotEqual(t, x, y)
}

// TestBernoulli_Frequency is a loose sanity check of the success rate.
func TestBernoulli_Frequency(t *testing.T) {
	const n = 20000
	r := rng.New(2024)
	hits := 0
	for i := 0; i < n; i++ {
		if r.Bernoulli(0.25) {
			hits++
		}
	}
	assert.InDelta(t, 0.25, float64(hits)/n, 0.02)
}
