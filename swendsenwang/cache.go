package swendsenwang

import "github.com/katalvlaran/lvising/rng"

// flipCache memoizes one uniform draw per cluster for the current sweep.
// value[i] is meaningful only while drawn[i] is set; a draw of exactly 0.0
// is a valid cached value.
type flipCache struct {
	value []float64
	drawn []bool
}

func newFlipCache(n int) *flipCache {
	return &flipCache{value: make([]float64, n), drawn: make([]bool, n)}
}

// draw returns the cached value of cluster, drawing it from src on first use.
func (c *flipCache) draw(cluster int, src rng.Source) float64 {
	if !c.drawn[cluster] {
		c.value[cluster] = src.Float64()
		c.drawn[cluster] = true
	}

	return c.value[cluster]
}

func (c *flipCache) reset() {
	for i := range c.drawn {
		c.drawn[i] = false
		c.value[i] = 0
	}
}
