// Package lvising simulates the two-dimensional Ising model on a periodic
// square lattice with the Swendsen-Wang cluster algorithm.
//
// What is inside?
//
//	• Lattice: ±1 spins on a rows×cols torus, energy and magnetization
//	• Union-find: label forest whose roots are the smallest label of each class
//	• Swendsen-Wang: one raster pass builds all clusters, one draw per cluster flips them
//	• Observables: running sums → energy density, magnetisation, specific heat,
//	  susceptibility, correlation length
//	• Simulation: independent temperatures in parallel, reproducible per seed
//
// Packages:
//
//	rng/          — seeded random source, Bernoulli draws, per-stream derivation
//	lattice/      — spin lattice with periodic neighbours
//	unionfind/    — disjoint-set forest over cluster labels
//	swendsenwang/ — cluster build, flip, and Fourier amplitudes of one sweep
//	observables/  — accumulator and physical estimators
//	simulation/   — per-temperature driver, worker pool, prometheus metrics
//	params/       — parameter files and temperature grids
//	results/      — results table writer/reader and plots
//	cmd/lvising/  — command-line entry point
//
// Quick ASCII example (2×2, '+' up, '-' down):
//
//	+ +      one bond cluster {(0,0),(0,1)}
//	- -      one bond cluster {(1,0),(1,1)}
//
// Each cluster flips as a whole with probability ½.
//
//	go install github.com/katalvlaran/lvising/cmd/lvising@latest
package lvising
