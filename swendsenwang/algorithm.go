package swendsenwang

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvising/lattice"
	"github.com/katalvlaran/lvising/unionfind"
)

// Algorithm holds the per-temperature Swendsen-Wang state: cluster labels,
// the disjoint-set forest, the per-cluster flip cache and the Fourier kernel.
// It is not safe for concurrent use; one Algorithm per goroutine.
type Algorithm struct {
	rows, cols     int
	coupling       float64
	measureFourier bool

	labels  *Labels
	forest  *unionfind.Forest
	flips   *flipCache
	kernel  []complex128 // exp(i·qx·x), qx = 2π/cols
	qx      float64
	fourier float64 // 1/sqrt(rows·cols)
}

// New returns an Algorithm for rows×cols lattices.
// Returns ErrEmptyLattice if rows or cols < 1, ErrCoupling if opts.Coupling
// is zero, NaN or infinite.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, opts Options) (*Algorithm, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyLattice
	}
	if opts.Coupling == 0 || math.IsNaN(opts.Coupling) || math.IsInf(opts.Coupling, 0) {
		return nil, ErrCoupling
	}
	n := rows * cols
	qx := 2 * math.Pi / float64(cols)
	kernel := make([]complex128, cols)
	for x := range kernel {
		kernel[x] = cmplx.Exp(complex(0, qx*float64(x)))
	}

	return &Algorithm{
		rows:           rows,
		cols:           cols,
		coupling:       opts.Coupling,
		measureFourier: opts.MeasureFourier,
		labels:         NewLabels(rows, cols),
		forest:         unionfind.New(n),
		flips:          newFlipCache(n),
		kernel:         kernel,
		qx:             qx,
		fourier:        1 / math.Sqrt(float64(n)),
	}, nil
}

// Shape returns (rows, cols).
func (a *Algorithm) Shape() (rows, cols int) { return a.rows, a.cols }

// Coupling returns J.
func (a *Algorithm) Coupling() float64 { return a.coupling }

// Qx returns the smallest non-zero wavevector 2π/cols.
func (a *Algorithm) Qx() float64 { return a.qx }

// MeasureFourier reports whether FlipAndMeasure accumulates Fourier amplitudes.
func (a *Algorithm) MeasureFourier() bool { return a.measureFourier }

// SetMeasureFourier toggles Fourier accumulation, e.g. off while thermalizing.
func (a *Algorithm) SetMeasureFourier(on bool) { a.measureFourier = on }

// Labels exposes the label grid of the current sweep. Callers must not mutate it.
func (a *Algorithm) Labels() *Labels { return a.labels }

// Cluster returns the canonical cluster label of (row,col) for the current sweep.
func (a *Algorithm) Cluster(row, col int) int { return a.forest.Find(a.labels.At(row, col)) }

// Clusters returns the number of distinct clusters built by the last RunSweep.
func (a *Algorithm) Clusters() int { return a.forest.Roots() }

// Reset restores labels, forest and flip cache to their freshly built state.
// Complexity: O(rows×cols).
func (a *Algorithm) Reset() {
	a.flips.reset()
	a.forest.Reset()
	a.labels.Reset()
}

// BondProbability returns 1 − exp(−2J/T), the Swendsen-Wang probability of
// activating a bond between two equal neighbouring spins, clamped to [0,1].
// Bonds only join equal spins, so J<0 yields 0: no bonds are ever activated.
func BondProbability(coupling, temperature float64) float64 {
	p := 1 - math.Exp(-2*coupling/temperature)
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	}

	return p
}

func (a *Algorithm) checkShape(l *lattice.Lattice) error {
	if l == nil {
		return ErrShapeMismatch
	}
	rows, cols := l.Shape()
	if rows != a.rows || cols != a.cols {
		return ErrShapeMismatch
	}

	return nil
}
