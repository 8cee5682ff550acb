// Package observables accumulates per-sweep measurements of one temperature
// and reduces them to the physical estimators of the 2D Ising model.
//
// Accumulated sums (over the measurement phase):
//
//	E, E², |M|, M², q0², Re(qx)², Im(qx)²
//
// Estimators (N = rows·cols, averages over the measured sweeps):
//
//	energy density   = ⟨E⟩/N
//	magnetisation    = ⟨|M|⟩/N
//	specific heat    = (⟨E²⟩ − ⟨E⟩²) / (T²·N)
//	susceptibility   = (⟨M²⟩ − ⟨|M|⟩²) / (T·N)
//	S(q0)            = ⟨q0²⟩
//	S(qx)            = ⟨Re(qx)²⟩ + ⟨Im(qx)²⟩
//	correlation len. = sqrt(|S(q0)/S(qx) − 1|) / qx
//
// The correlation length is only reported when S(q0) ≠ 0 and S(qx) == 0,
// otherwise it is 0. See CorrelationLength.
package observables
