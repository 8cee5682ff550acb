// File: lattice/lattice_test.go
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvising/lattice"
	"github.com/katalvlaran/lvising/rng"
)

// TestNewPolarized_Shape checks dimensions and the all-Up initial state.
func TestNewPolarized_Shape(t *testing.T) {
	l, err := lattice.NewPolarized(3, 5)
	require.NoError(t, err)

	rows, cols := l.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, 15, l.Len())
	assert.Equal(t, 15, l.Magnetization())
}

// TestConstructors_Errors covers the sentinel errors.
func TestConstructors_Errors(t *testing.T) {
	_, err := lattice.NewPolarized(0, 4)
	assert.ErrorIs(t, err, lattice.ErrEmptyLattice)
	_, err = lattice.NewPolarized(4, -1)
	assert.ErrorIs(t, err, lattice.ErrEmptyLattice)
	_, err = lattice.From2D(nil)
	assert.ErrorIs(t, err, lattice.ErrEmptyLattice)
	_, err = lattice.From2D([][]int{{1, 1}, {1}})
	assert.ErrorIs(t, err, lattice.ErrNonRectangular)
	_, err = lattice.From2D([][]int{{1, 0}})
	assert.ErrorIs(t, err, lattice.ErrInvalidSpin)
}

// TestAtPeriodic_Wraps verifies wraparound for ±1 offsets and larger ones.
//
//	+ -
//	- -
//	+ +
func TestAtPeriodic_Wraps(t *testing.T) {
	l, err := lattice.From2D([][]int{
		{1, -1},
		{-1, -1},
		{1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, l.At(2, 0), l.AtPeriodic(-1, 0))
	assert.Equal(t, l.At(0, 1), l.AtPeriodic(3, 1))
	assert.Equal(t, l.At(1, 1), l.AtPeriodic(1, -1))
	assert.Equal(t, l.At(1, 0), l.AtPeriodic(1, 2))
	assert.Equal(t, l.At(0, 1), l.AtPeriodic(-6, 7))
	assert.Equal(t, l.At(1, 0), l.AtPeriodic(10, -4))
}

// TestAt_OutOfRangePanics locks the invariant-violation behaviour.
func TestAt_OutOfRangePanics(t *testing.T) {
	l, _ := lattice.NewPolarized(2, 2)
	assert.Panics(t, func() { l.At(2, 0) })
	assert.Panics(t, func() { l.At(0, -1) })
	assert.Panics(t, func() { l.Flip(0, 2) })
	// (0,2) would alias (1,0) in row-major storage if it were not rejected.
	assert.Panics(t, func() { l.NeighborSumRightBelow(0, 1) })
}

// TestFlip_Involution checks that flipping twice restores the spin.
func TestFlip_Involution(t *testing.T) {
	l, _ := lattice.NewPolarized(2, 3)
	l.Flip(1, 2)
	assert.Equal(t, lattice.Down, l.At(1, 2))
	assert.Equal(t, 4, l.Magnetization())
	l.Flip(1, 2)
	assert.Equal(t, lattice.Up, l.At(1, 2))
}

// TestNeighborSums compares the raw and periodic right/below sums.
func TestNeighborSums(t *testing.T) {
	l, err := lattice.From2D([][]int{
		{1, -1, 1},
		{-1, 1, 1},
	})
	require.NoError(t, err)

	// (0,0): below=-1, right=-1.
	assert.Equal(t, -2, l.NeighborSumRightBelow(0, 0))
	assert.Equal(t, -2, l.NeighborSumRightBelowPeriodic(0, 0))
	// (1,2): below wraps to (0,2)=+1, right wraps to (1,0)=-1.
	assert.Equal(t, 0, l.NeighborSumRightBelowPeriodic(1, 2))
}

// TestEnergy_Polarized2x2 is the analytic periodic case: 4 sites × (-J·2).
func TestEnergy_Polarized2x2(t *testing.T) {
	l, _ := lattice.NewPolarized(2, 2)
	assert.Equal(t, -8.0, l.Energy(1))
	assert.Equal(t, 8.0, l.Energy(-1))
}

// TestEnergy_Checkerboard is the antiferromagnetic ground state on a 4×4 torus.
func TestEnergy_Checkerboard(t *testing.T) {
	values := make([][]int, 4)
	for r := range values {
		values[r] = make([]int, 4)
		for c := range values[r] {
			if (r+c)%2 == 0 {
				values[r][c] = 1
			} else {
				values[r][c] = -1
			}
		}
	}
	l, err := lattice.From2D(values)
	require.NoError(t, err)
	assert.Equal(t, 32.0, l.Energy(1))
	assert.Equal(t, 0, l.Magnetization())
}

// TestRandomize_Deterministic checks one draw per site and seed determinism.
func TestRandomize_Deterministic(t *testing.T) {
	a, err := lattice.NewRandomized(8, 8, rng.New(5))
	require.NoError(t, err)
	b, err := lattice.NewRandomized(8, 8, rng.New(5))
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())

	// Reproduce by hand: site i is Down iff draw i < 0.5.
	src := rng.New(5)
	for i := 0; i < a.Len(); i++ {
		row, col := a.Coordinate(i)
		want := lattice.Up
		if src.Bernoulli(0.5) {
			want = lattice.Down
		}
		require.Equal(t, want, a.At(row, col), "site %d", i)
	}
}

// TestClone_Independent ensures Clone does not share storage.
func TestClone_Independent(t *testing.T) {
	a, _ := lattice.NewPolarized(2, 2)
	b := a.Clone()
	b.Flip(0, 0)
	assert.Equal(t, lattice.Up, a.At(0, 0))
	assert.Equal(t, "-+\n++", b.String())
}

// TestIndexCoordinate_RoundTrip checks the row-major helpers.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	l, _ := lattice.NewPolarized(3, 4)
	for i := 0; i < l.Len(); i++ {
		r, c := l.Coordinate(i)
		assert.True(t, l.InBounds(r, c))
		assert.Equal(t, i, l.Index(r, c))
	}
}
