// Package simulation drives independent Swendsen-Wang runs, one per
// temperature, on a fixed pool of worker goroutines.
//
// What:
//
//   - Config: lattice shape, sweep counts, temperatures, coupling, seed, workers.
//   - ClampTemperatures: non-positive or NaN temperatures become
//     MinimumTemperature with a logged warning.
//   - Run: per temperature, a randomized lattice is thermalized for ThermSteps
//     sweeps and measured for MeasureSteps sweeps; the measurements are reduced
//     to observables.Estimates.
//   - Metrics: optional prometheus collectors for sweeps and run durations.
//
// Determinism:
//
//	Temperature i always uses rng.Derive(Seed, i), so the results do not depend
//	on the number of workers or on scheduling.
//
// Concurrency:
//
//	Temperatures share nothing but the read-only Config; each worker owns its
//	lattice, algorithm and random stream. Results are gathered by index.
package simulation
