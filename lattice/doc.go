// Package lattice stores a rectangular 2D Ising spin configuration with
// periodic-boundary-aware accessors.
//
// What:
//
//   - Lattice wraps a rows×cols grid of ±1 spins, stored row-major.
//   - At / Flip address sites raw; AtPeriodic wraps indices (torus).
//   - NeighborSumRightBelow(Periodic) returns the right+below neighbour sum that
//     the cluster pass uses for the bond energy (each bond counted once).
//   - Randomize flips every site independently with probability 1/2.
//
// Invariants:
//
//   - Every site holds exactly Up or Down; there is no uninitialized state.
//   - Out-of-range raw access is a programming error and panics.
//
// Complexity:
//
//   - At, AtPeriodic, Flip, neighbour sums: O(1).
//   - Randomize, Magnetization, Energy, Clone: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyLattice: rows or cols < 1.
//   - ErrNonRectangular: From2D rows of differing lengths.
//   - ErrInvalidSpin: From2D value other than +1 or -1.
package lattice
