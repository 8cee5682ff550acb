package params

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrZeroStep indicates an Arange step of zero.
	ErrZeroStep = errors.New("params: arange step must be non-zero")
	// ErrStepDirection indicates a step whose sign does not lead from start to stop.
	ErrStepDirection = errors.New("params: arange step must point from start to stop")
	// ErrPoints indicates a Linspace with fewer than two points.
	ErrPoints = errors.New("params: linspace needs at least two points")
)

// Arange returns start, start+step, ... with round(|stop−start|/|step|) values;
// stop itself is excluded whenever the range divides evenly.
// start == stop yields an empty grid for a positive step.
func Arange(start, stop, step float64) ([]float64, error) {
	if step == 0 || math.IsNaN(step) {
		return nil, ErrZeroStep
	}
	dir := 1.0
	if stop < start {
		dir = -1
	}
	if math.Signbit(step) != math.Signbit(dir) {
		return nil, ErrStepDirection
	}
	n := int(math.Round(math.Abs(stop-start) / math.Abs(step)))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrPoints
	}

	return floats.Span(make([]float64, n), start, stop), nil
}

// DefaultSteps returns the thermalization and measurement sweep counts
// used for an L×L lattice when a campaign does not set them.
func DefaultSteps(l int) (therm, measure int) {
	switch {
	case l <= 64:
		return 500_000, 500_000
	case l <= 128:
		return 100_000, 100_000
	default:
		return 10_000, 10_000
	}
}
