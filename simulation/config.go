package simulation

import (
	"errors"
	"log"
	"math"
	"runtime"
)

// MinimumTemperature replaces non-positive or NaN temperatures.
const MinimumTemperature = 1e-6

// Sentinel configuration errors, reported by Validate before any sweep runs.
var (
	// ErrLatticeSize indicates rows or cols smaller than one.
	ErrLatticeSize = errors.New("simulation: rows and cols must be at least one")
	// ErrSteps indicates negative thermalization or non-positive measurement steps.
	ErrSteps = errors.New("simulation: therm steps must be >= 0 and measure steps > 0")
	// ErrNoTemperatures indicates an empty temperature list.
	ErrNoTemperatures = errors.New("simulation: at least one temperature is required")
	// ErrTemperature indicates a non-positive, NaN or infinite temperature.
	ErrTemperature = errors.New("simulation: temperatures must be positive and finite")
	// ErrCoupling indicates a zero, NaN or infinite coupling constant.
	ErrCoupling = errors.New("simulation: coupling must be finite and non-zero")
	// ErrWorkers indicates a negative worker count.
	ErrWorkers = errors.New("simulation: workers must be >= 0")
)

// Config describes one simulation campaign.
type Config struct {
	Rows, Cols               int       // lattice shape
	ThermSteps               int       // sweeps discarded before measuring
	MeasureSteps             int       // sweeps accumulated per temperature
	Temperatures             []float64 // one independent run each
	Coupling                 float64   // exchange constant J
	MeasureCorrelationLength bool      // accumulate Fourier amplitudes while measuring
	Seed                     int64     // parent seed; 0 ⇒ rng.DefaultSeed
	Workers                  int       // 0 ⇒ runtime.NumCPU()
}

// DefaultConfig returns a 32×32 lattice, 1000+1000 sweeps, J=1, no temperatures.
func DefaultConfig() Config {
	return Config{
		Rows:         32,
		Cols:         32,
		ThermSteps:   1000,
		MeasureSteps: 1000,
		Coupling:     1,
	}
}

// Validate checks every field and returns the first sentinel error found.
// Temperatures must already be clamped (see ClampTemperatures).
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return ErrLatticeSize
	}
	if c.ThermSteps < 0 || c.MeasureSteps < 1 {
		return ErrSteps
	}
	if len(c.Temperatures) == 0 {
		return ErrNoTemperatures
	}
	for _, t := range c.Temperatures {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return ErrTemperature
		}
	}
	if c.Coupling == 0 || math.IsNaN(c.Coupling) || math.IsInf(c.Coupling, 0) {
		return ErrCoupling
	}
	if c.Workers < 0 {
		return ErrWorkers
	}

	return nil
}

// workers returns the effective pool size, never more than the temperatures.
func (c Config) workers() int {
	n := c.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}
	if n > len(c.Temperatures) {
		n = len(c.Temperatures)
	}

	return n
}

// ClampTemperatures returns a copy of temps where every zero, negative or NaN
// value is replaced by MinimumTemperature. Each substitution is logged on
// logger when it is non-nil.
func ClampTemperatures(temps []float64, logger *log.Logger) []float64 {
	out := make([]float64, len(temps))
	for i, t := range temps {
		if math.IsNaN(t) || t <= 0 {
			if logger != nil {
				logger.Printf("warning: temperature[%d]=%v replaced by %v", i, t, MinimumTemperature)
			}
			t = MinimumTemperature
		}
		out[i] = t
	}

	return out
}
