package swendsenwang

import "errors"

// Sentinel errors for Swendsen-Wang operations.
var (
	// ErrEmptyLattice indicates rows or cols is smaller than one.
	ErrEmptyLattice = errors.New("swendsenwang: rows and cols must be at least one")
	// ErrShapeMismatch indicates the lattice shape differs from the algorithm's.
	ErrShapeMismatch = errors.New("swendsenwang: lattice shape does not match")
	// ErrProbability indicates a bond probability that is NaN or outside [0,1].
	ErrProbability = errors.New("swendsenwang: bond probability must lie in [0,1]")
	// ErrCoupling indicates a zero, NaN or infinite coupling constant.
	ErrCoupling = errors.New("swendsenwang: coupling must be finite and non-zero")
)

// FlipThreshold is the cluster flip probability: a cluster flips when its
// draw is below this value.
const FlipThreshold = 0.5

// Options configures an Algorithm.
//
// Fields:
//   - Coupling       — the exchange constant J used for the energy. The bond
//     probability comes from BondProbability(J, T), which is 0 for J<0.
//   - MeasureFourier — accumulate the spin-field Fourier amplitudes in FlipAndMeasure.
type Options struct {
	Coupling       float64
	MeasureFourier bool
}

// DefaultOptions returns Options{Coupling: 1, MeasureFourier: false}.
func DefaultOptions() Options {
	return Options{
		Coupling:       1,
		MeasureFourier: false,
	}
}
