// Package swendsenwang implements the Swendsen-Wang cluster update for the
// 2D Ising model on a periodic square lattice.
//
// 🚀 What is a sweep?
//
//  1. Build: one raster pass (top-to-bottom, left-to-right) decides which bonds
//     between equal neighbouring spins are activated, with probability
//     p = 1 − exp(−2J/T), and labels the resulting clusters with a
//     Hoshen-Kopelman style scheme backed by a unionfind.Forest. The same pass
//     accumulates the bond energy and the magnetization.
//  2. Flip: every cluster draws one uniform value (memoized per cluster) and
//     flips all its spins when the value is below 1/2. Optionally the pass
//     accumulates the spin field's Fourier amplitudes at q=0 and q=(2π/Lx,0).
//  3. Reset: labels, forest and flip cache go back to their initial state.
//
// Boundaries:
//
//	Left and above neighbours are tested during the pass (a 0 sentinel spin
//	disables them on the first column and first row). The periodic bonds are
//	tested additively on the bottom row (to the top row, same column) and on
//	the last column (to the first column, same row).
//
// Draw order (reproducible for a fixed seed):
//
//	left → above-given-left | above-only → bottom wrap → right wrap,
//	each draw taken only when the two spins are equal.
//
// Usage:
//
//	alg, _ := swendsenwang.New(rows, cols, swendsenwang.DefaultOptions())
//	p := swendsenwang.BondProbability(1, temperature)
//	energy, mag, _ := alg.RunSweep(spins, src, p)
//	q0, qx, _ := alg.FlipAndMeasure(spins, src)
//	alg.Reset()
//
// Complexity: O(rows×cols×depth) per sweep, memory O(rows×cols).
package swendsenwang
