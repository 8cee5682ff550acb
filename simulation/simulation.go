package simulation

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvising/lattice"
	"github.com/katalvlaran/lvising/observables"
	"github.com/katalvlaran/lvising/rng"
	"github.com/katalvlaran/lvising/swendsenwang"
)

// ctxCheckEvery is the number of sweeps between two cancellation checks.
const ctxCheckEvery = 64

// Result is the outcome of one temperature.
type Result struct {
	Temperature float64
	Averages    observables.Averages
	Estimates   observables.Estimates
	Elapsed     time.Duration
}

// Option customizes Run.
type Option func(*runner)

// WithLogger sets the logger used for per-temperature progress lines.
// The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records sweeps and durations on m.
func WithMetrics(m *Metrics) Option {
	return func(r *runner) { r.metrics = m }
}

type runner struct {
	cfg     Config
	logger  *log.Logger
	metrics *Metrics
}

// Run simulates every temperature of cfg and returns the results in the same
// order as cfg.Temperatures.
//
// Steps:
//  1. Validate cfg; configuration errors are returned before any work starts.
//  2. Start cfg.Workers goroutines (NumCPU by default) reading temperature
//     indices from a channel.
//  3. Each index runs independently with rng.Derive(cfg.Seed, index).
//  4. The first failure cancels the remaining work and is returned.
//
// ctx is checked between sweeps; cancellation returns ctx.Err() wrapped.
func Run(ctx context.Context, cfg Config, opts ...Option) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &runner{cfg: cfg, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(r)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		results  = make([]Result, len(cfg.Temperatures))
		jobs     = make(chan int)
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for w := 0; w < cfg.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := r.runTemperature(runCtx, i)
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				results[i] = res
			}
		}()
	}

feed:
	for i := range cfg.Temperatures {
		select {
		case jobs <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "simulation: run interrupted")
	}

	return results, nil
}

// runTemperature thermalizes and measures temperature index i.
func (r *runner) runTemperature(ctx context.Context, i int) (Result, error) {
	start := time.Now()
	r.metrics.start()
	defer func() { r.metrics.done(time.Since(start).Seconds()) }()

	cfg := r.cfg
	temp := cfg.Temperatures[i]
	src := rng.Derive(cfg.Seed, uint64(i))

	spins, err := lattice.NewRandomized(cfg.Rows, cfg.Cols, src)
	if err != nil {
		return Result{}, errors.Wrapf(err, "temperature %v", temp)
	}
	alg, err := swendsenwang.New(cfg.Rows, cfg.Cols, swendsenwang.Options{Coupling: cfg.Coupling})
	if err != nil {
		return Result{}, errors.Wrapf(err, "temperature %v", temp)
	}
	p := swendsenwang.BondProbability(alg.Coupling(), temp)

	for s := 0; s < cfg.ThermSteps; s++ {
		if s%ctxCheckEvery == 0 && ctx.Err() != nil {
			return Result{}, errors.Wrapf(ctx.Err(), "temperature %v: thermalization", temp)
		}
		if _, err = alg.Sweep(spins, src, p); err != nil {
			return Result{}, errors.Wrapf(err, "temperature %v: thermalization sweep %d", temp, s)
		}
	}
	r.metrics.addSweeps(phaseThermalization, cfg.ThermSteps)

	alg.SetMeasureFourier(cfg.MeasureCorrelationLength)
	var acc observables.Accumulator
	for s := 0; s < cfg.MeasureSteps; s++ {
		if s%ctxCheckEvery == 0 && ctx.Err() != nil {
			return Result{}, errors.Wrapf(ctx.Err(), "temperature %v: measurement", temp)
		}
		m, err := alg.Sweep(spins, src, p)
		if err != nil {
			return Result{}, errors.Wrapf(err, "temperature %v: measurement sweep %d", temp, s)
		}
		acc.Add(observables.Sample{
			Energy:        m.Energy,
			Magnetization: m.Magnetization,
			Q0:            m.Q0,
			Qx:            m.Qx,
		})
	}
	r.metrics.addSweeps(phaseMeasurement, cfg.MeasureSteps)

	avg, err := acc.Averages()
	if err != nil {
		return Result{}, errors.Wrapf(err, "temperature %v", temp)
	}
	est, err := observables.Estimate(avg, temp, cfg.Rows, cfg.Cols)
	if err != nil {
		return Result{}, errors.Wrapf(err, "temperature %v", temp)
	}

	elapsed := time.Since(start)
	r.logger.Printf("T=%.4g done in %s: e=%.6g m=%.6g c=%.6g chi=%.6g",
		temp, elapsed.Round(time.Millisecond), est.EnergyDensity, est.Magnetisation, est.SpecificHeat, est.Susceptibility)

	return Result{Temperature: temp, Averages: avg, Estimates: est, Elapsed: elapsed}, nil
}

// Estimates extracts the estimators of results, in order.
func Estimates(results []Result) []observables.Estimates {
	out := make([]observables.Estimates, len(results))
	for i, res := range results {
		out[i] = res.Estimates
	}

	return out
}
