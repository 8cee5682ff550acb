// Package rng provides the random-number capability consumed by the
// Swendsen-Wang engine and the lattice.
//
// What:
//
//   - Source: the minimal interface the simulation needs (uniform floats in
//     [0,1) and Bernoulli draws).
//   - Rand: a deterministic Source backed by math/rand.
//   - New / Derive / DeriveSeed: seed policy and independent per-worker streams.
//
// Determinism:
//
//	Same seed ⇒ identical stream on every platform. Seed 0 maps to DefaultSeed,
//	nothing in this package reads the clock. Callers that want a time-based seed
//	choose it explicitly.
//
// Draw accounting:
//
//	Bernoulli consumes exactly one Float64 draw, whatever p is. The cluster pass
//	relies on this to keep the draw order reproducible for a fixed seed.
//
// Concurrency:
//
//	Rand is NOT goroutine-safe. Give every worker its own stream via Derive.
package rng
