package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrEmptyLattice indicates rows or cols is smaller than one.
	ErrEmptyLattice = errors.New("lattice: rows and cols must be at least one")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("lattice: all rows must have the same length")
	// ErrInvalidSpin indicates a value that is neither +1 nor -1.
	ErrInvalidSpin = errors.New("lattice: spin values must be +1 or -1")
)

// Spin is a single Ising spin, Up or Down.
type Spin int8

const (
	// Up is the +1 spin.
	Up Spin = 1
	// Down is the -1 spin.
	Down Spin = -1
)

// Lattice is a rows×cols spin configuration, stored row-major.
// It is mutated in place by Flip and Randomize.
type Lattice struct {
	rows, cols int
	spins      []Spin
}
