package swendsenwang

import (
	"github.com/katalvlaran/lvising/lattice"
	"github.com/katalvlaran/lvising/rng"
)

// FlipAndMeasure flips every cluster built by the last RunSweep with
// probability FlipThreshold.
//
// Each site resolves its canonical cluster (Find(label)-1 indexes the cache);
// the first site of a cluster draws one uniform value which every later site
// of the same cluster reuses. A site flips when that value is below
// FlipThreshold.
//
// When MeasureFourier is on, the post-flip spins are accumulated into
//
//	q0 = Σ s / sqrt(N)
//	qx = Σ s·exp(i·qx·x) / sqrt(N),  qx = 2π/cols
//
// otherwise both are returned as zero.
//
// Errors: ErrShapeMismatch.
// Complexity: O(rows×cols×depth).
func (a *Algorithm) FlipAndMeasure(spins *lattice.Lattice, src rng.Source) (q0 float64, qx complex128, err error) {
	if err = a.checkShape(spins); err != nil {
		return 0, 0, err
	}

	for y := 0; y < a.rows; y++ {
		for x := 0; x < a.cols; x++ {
			cluster := a.forest.Find(a.labels.At(y, x)) - 1
			if a.flips.draw(cluster, src) < FlipThreshold {
				spins.Flip(y, x)
			}

			if a.measureFourier {
				s := a.fourier * float64(spins.At(y, x))
				q0 += s
				qx += complex(s, 0) * a.kernel[x]
			}
		}
	}

	return q0, qx, nil
}

// Sweep runs RunSweep, FlipAndMeasure and Reset in sequence.
func (a *Algorithm) Sweep(spins *lattice.Lattice, src rng.Source, probaAdd float64) (Measurement, error) {
	energy, mag, err := a.RunSweep(spins, src, probaAdd)
	if err != nil {
		return Measurement{}, err
	}
	q0, qx, err := a.FlipAndMeasure(spins, src)
	if err != nil {
		return Measurement{}, err
	}
	a.Reset()

	return Measurement{Energy: energy, Magnetization: mag, Q0: q0, Qx: qx}, nil
}

// Measurement is what one sweep reports: the energy and |magnetization| of
// the configuration the clusters were built on, and the Fourier amplitudes of
// the configuration after the flip.
type Measurement struct {
	Energy        float64
	Magnetization float64
	Q0            float64
	Qx            complex128
}
