package swendsenwang_test

import (
	"testing"

	"github.com/katalvlaran/lvising/lattice"
	"github.com/katalvlaran/lvising/rng"
)

// scriptSource replays a fixed list of uniform draws and fails the test when
// more draws are requested than scripted.
type scriptSource struct {
	t     *testing.T
	draws []float64
	next  int
}

func newScript(t *testing.T, draws ...float64) *scriptSource {
	return &scriptSource{t: t, draws: draws}
}

func (s *scriptSource) Float64() float64 {
	if s.next >= len(s.draws) {
		s.t.Fatalf("script exhausted after %d draws", len(s.draws))
	}
	v := s.draws[s.next]
	s.next++
	return v
}

func (s *scriptSource) Bernoulli(p float64) bool { return s.Float64() < p }

func (s *scriptSource) remaining() int { return len(s.draws) - s.next }

// countingSource wraps a Source and counts calls per method.
type countingSource struct {
	rng.Source
	floats, bernoullis int
}

func (c *countingSource) Float64() float64 {
	c.floats++
	return c.Source.Float64()
}

func (c *countingSource) Bernoulli(p float64) bool {
	c.bernoullis++
	return c.Source.Bernoulli(p)
}

// torusComponents labels the connected components of equal spins on the
// periodic lattice with a BFS and returns the component id of every site
// (row-major) and the number of components.
func torusComponents(l *lattice.Lattice) ([]int, int) {
	rows, cols := l.Shape()
	comp := make([]int, rows*cols)
	for i := range comp {
		comp[i] = -1
	}
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	n := 0
	for start := range comp {
		if comp[start] >= 0 {
			continue
		}
		comp[start] = n
		queue := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			r, c := l.Coordinate(queue[qi])
			for _, d := range offsets {
				nr, nc := (r+d[0]+rows)%rows, (c+d[1]+cols)%cols
				vi := l.Index(nr, nc)
				if comp[vi] < 0 && l.At(nr, nc) == l.At(r, c) {
					comp[vi] = n
					queue = append(queue, vi)
				}
			}
		}
		n++
	}
	return comp, n
}

func mustPolarized(t *testing.T, rows, cols int) *lattice.Lattice {
	t.Helper()
	l, err := lattice.NewPolarized(rows, cols)
	if err != nil {
		t.Fatalf("NewPolarized(%d,%d): %v", rows, cols, err)
	}
	return l
}
