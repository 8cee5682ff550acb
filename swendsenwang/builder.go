package swendsenwang

import (
	"math"

	"github.com/katalvlaran/lvising/lattice"
	"github.com/katalvlaran/lvising/rng"
)

// RunSweep performs the cluster-building raster pass over spins.
//
// For each site (y,x) with spin s, in row-major order:
//  1. left = s(y,x-1) if x>0 else 0, above = s(y-1,x) if y>0 else 0.
//  2. s==left and a draw succeeds:
//     if also s==above and a second draw succeeds, label = Union(above, left),
//     else label = Find(left).
//     Otherwise s==above and a draw succeeds: label = Find(above).
//     Otherwise the site seeds a new class.
//  3. Bottom row: if s equals the top-row spin of the same column and a draw
//     succeeds, union with it. Last column: same with the first-column spin
//     of the same row. Both results overwrite the site's label.
//  4. energy += −J·s·(right+below, periodic); magnetization += s.
//
// It returns the total energy and |Σs|. The label grid and forest stay
// populated for FlipAndMeasure. A pass over state left by an earlier pass
// resets it first.
//
// Errors: ErrShapeMismatch, ErrProbability.
// Complexity: O(rows×cols×depth).
func (a *Algorithm) RunSweep(spins *lattice.Lattice, src rng.Source, probaAdd float64) (energy, magnetization float64, err error) {
	if err = a.checkShape(spins); err != nil {
		return 0, 0, err
	}
	if math.IsNaN(probaAdd) || probaAdd < 0 || probaAdd > 1 {
		return 0, 0, ErrProbability
	}
	if a.forest.Created() > 0 {
		a.Reset()
	}

	var (
		bondSum int // Σ s·(right+below)
		spinSum int
		lastRow = a.rows - 1
		lastCol = a.cols - 1
	)
	for y := 0; y < a.rows; y++ {
		for x := 0; x < a.cols; x++ {
			s := spins.At(y, x)

			var left, above lattice.Spin // 0 never equals a real spin
			if x > 0 {
				left = spins.At(y, x-1)
			}
			if y > 0 {
				above = spins.At(y-1, x)
			}

			switch {
			case s == left && src.Bernoulli(probaAdd):
				leftLabel := a.labels.At(y, x-1)
				if s == above && src.Bernoulli(probaAdd) {
					a.labels.Set(y, x, a.forest.Union(a.labels.At(y-1, x), leftLabel))
				} else {
					a.labels.Set(y, x, a.forest.Find(leftLabel))
				}
			case s == above && src.Bernoulli(probaAdd):
				a.labels.Set(y, x, a.forest.Find(a.labels.At(y-1, x)))
			default:
				a.labels.Set(y, x, a.forest.CreateClass())
			}

			if y == lastRow && s == spins.At(0, x) && src.Bernoulli(probaAdd) {
				a.mergePeriodic(y, x, 0, x)
			}
			if x == lastCol && s == spins.At(y, 0) && src.Bernoulli(probaAdd) {
				a.mergePeriodic(y, x, y, 0)
			}

			bondSum += int(s) * spins.NeighborSumRightBelowPeriodic(y, x)
			spinSum += int(s)
		}
	}

	return -a.coupling * float64(bondSum), math.Abs(float64(spinSum)), nil
}

// mergePeriodic unions (y,x) with its wrap partner and stores the root at (y,x).
func (a *Algorithm) mergePeriodic(y, x, py, px int) {
	root := a.forest.Union(a.labels.At(y, x), a.labels.At(py, px))
	a.labels.Set(y, x, root)
}
