package lattice

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvising/rng"
)

// NewPolarized returns a rows×cols lattice with every spin Up.
// Returns ErrEmptyLattice if rows or cols < 1.
// Complexity: O(rows×cols).
func NewPolarized(rows, cols int) (*Lattice, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyLattice
	}
	spins := make([]Spin, rows*cols)
	for i := range spins {
		spins[i] = Up
	}

	return &Lattice{rows: rows, cols: cols, spins: spins}, nil
}

// NewRandomized returns a polarized lattice passed once through Randomize.
func NewRandomized(rows, cols int, src rng.Source) (*Lattice, error) {
	l, err := NewPolarized(rows, cols)
	if err != nil {
		return nil, err
	}
	l.Randomize(src)

	return l, nil
}

// From2D builds a lattice from values[row][col], deep-copying the input.
// Returns ErrEmptyLattice, ErrNonRectangular or ErrInvalidSpin.
func From2D(values [][]int) (*Lattice, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyLattice
	}
	rows, cols := len(values), len(values[0])
	spins := make([]Spin, 0, rows*cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			switch v {
			case 1:
				spins = append(spins, Up)
			case -1:
				spins = append(spins, Down)
			default:
				return nil, ErrInvalidSpin
			}
		}
	}

	return &Lattice{rows: rows, cols: cols, spins: spins}, nil
}

// Shape returns (rows, cols).
func (l *Lattice) Shape() (rows, cols int) { return l.rows, l.cols }

// Len returns the number of sites.
func (l *Lattice) Len() int { return len(l.spins) }

// InBounds reports whether (row,col) lies within the lattice.
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// Index maps (row,col) to its row-major index.
func (l *Lattice) Index(row, col int) int { return row*l.cols + col }

// Coordinate converts a row-major index back to (row,col).
func (l *Lattice) Coordinate(idx int) (row, col int) { return idx / l.cols, idx % l.cols }

// At returns the spin at (row,col). It panics when (row,col) is out of range.
func (l *Lattice) At(row, col int) Spin {
	l.mustBeInBounds(row, col)
	return l.spins[row*l.cols+col]
}

// AtPeriodic returns the spin at (row,col) with both indices wrapped onto the torus.
func (l *Lattice) AtPeriodic(row, col int) Spin {
	return l.spins[wrap(row, l.rows)*l.cols+wrap(col, l.cols)]
}

// Flip negates the spin at (row,col) in place.
func (l *Lattice) Flip(row, col int) {
	l.mustBeInBounds(row, col)
	l.spins[row*l.cols+col] = -l.spins[row*l.cols+col]
}

// NeighborSumRightBelow returns At(row+1,col) + At(row,col+1) without wraparound.
// The caller guarantees both neighbours are in range.
func (l *Lattice) NeighborSumRightBelow(row, col int) int {
	return int(l.At(row+1, col)) + int(l.At(row, col+1))
}

// NeighborSumRightBelowPeriodic is NeighborSumRightBelow on the torus.
func (l *Lattice) NeighborSumRightBelowPeriodic(row, col int) int {
	return int(l.AtPeriodic(row+1, col)) + int(l.AtPeriodic(row, col+1))
}

// Randomize flips every site independently with probability 1/2,
// consuming exactly one draw per site in row-major order.
func (l *Lattice) Randomize(src rng.Source) {
	for i := range l.spins {
		if src.Bernoulli(0.5) {
			l.spins[i] = -l.spins[i]
		}
	}
}

// Magnetization returns the signed sum of all spins.
func (l *Lattice) Magnetization() int {
	m := 0
	for _, s := range l.spins {
		m += int(s)
	}

	return m
}

// Energy returns -j·Σ s·(right+below) over all sites with periodic boundaries,
// i.e. every nearest-neighbour bond of the torus counted once.
// Complexity: O(rows×cols).
func (l *Lattice) Energy(j float64) float64 {
	e := 0
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			e += int(l.spins[row*l.cols+col]) * l.NeighborSumRightBelowPeriodic(row, col)
		}
	}

	return -j * float64(e)
}

// Clone returns a deep copy.
func (l *Lattice) Clone() *Lattice {
	spins := make([]Spin, len(l.spins))
	copy(spins, l.spins)

	return &Lattice{rows: l.rows, cols: l.cols, spins: spins}
}

// Values returns the spins as a fresh [][]int, row-major.
func (l *Lattice) Values() [][]int {
	out := make([][]int, l.rows)
	for row := range out {
		out[row] = make([]int, l.cols)
		for col := range out[row] {
			out[row][col] = int(l.spins[row*l.cols+col])
		}
	}

	return out
}

// String renders the lattice with '+' for Up and '-' for Down, one row per line.
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow(l.rows * (l.cols + 1))
	for row := 0; row < l.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < l.cols; col++ {
			if l.spins[row*l.cols+col] == Up {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
		}
	}

	return b.String()
}

func (l *Lattice) mustBeInBounds(row, col int) {
	if !l.InBounds(row, col) {
		panic(fmt.Sprintf("lattice: site (%d,%d) out of range for %dx%d", row, col, l.rows, l.cols))
	}
}

// wrap maps i onto [0,n). Offsets of ±1 take the branch-only path.
func wrap(i, n int) int {
	switch {
	case i >= n:
		i -= n
	case i < 0:
		i += n
	default:
		return i
	}
	if i >= 0 && i < n {
		return i
	}
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
