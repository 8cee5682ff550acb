// Command lvising runs a Swendsen-Wang temperature scan described by a
// parameter file and writes the results table.
//
//	lvising [-metrics-addr :9090] [-plot-dir DIR] [-seed N] [-workers N] parameter_file
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvising/params"
	"github.com/katalvlaran/lvising/results"
	"github.com/katalvlaran/lvising/simulation"
)

type options struct {
	metricsAddr string
	plotDir     string
	plotFormat  string
	seed        int64
	workers     int
	paramFile   string
	set         map[string]bool
}

func main() {
	logger := log.New(os.Stderr, "lvising: ", log.LstdFlags)

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logger.Fatalf("%+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, opts, logger); err != nil {
		stop()
		logger.Fatalf("%+v", err)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("lvising", flag.ContinueOnError)
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address (e.g. :9090)")
	fs.StringVar(&o.plotDir, "plot-dir", "", "write one plot per observable into this directory")
	fs.StringVar(&o.plotFormat, "plot-format", results.DefaultPlotFormat, "plot file format (png, svg, pdf)")
	fs.Int64Var(&o.seed, "seed", 0, "parent random seed (overrides the parameter file)")
	fs.IntVar(&o.workers, "workers", 0, "temperatures simulated in parallel, 0 = all CPUs")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: lvising [flags] parameter_file\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return o, errors.New("exactly one parameter file is required")
	}
	o.paramFile = fs.Arg(0)
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	return o, nil
}

func run(ctx context.Context, o options, logger *log.Logger) error {
	p, err := params.Load(o.paramFile)
	if err != nil {
		return err
	}
	params.ApplyEnv(p)
	if o.set["seed"] {
		p.Seed = o.seed
	}
	if o.set["workers"] {
		p.Workers = o.workers
	}
	if o.plotDir != "" {
		p.PlotDir = o.plotDir
	}
	p.Temperatures = simulation.ClampTemperatures(p.Temperatures, logger)

	runOpts := []simulation.Option{simulation.WithLogger(logger)}
	if o.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		runOpts = append(runOpts, simulation.WithMetrics(simulation.NewMetrics(reg)))
		serveMetrics(o.metricsAddr, reg, logger)
	}

	logger.Printf("%dx%d lattice, %d temperatures, %d+%d sweeps, J=%g",
		p.Rows, p.Cols, len(p.Temperatures), p.ThermSteps, p.MeasureSteps, p.Coupling)

	start := time.Now()
	res, err := simulation.Run(ctx, p.Config, runOpts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Printf("Time taken: %ds", int64(elapsed/time.Second))

	err = results.WriteFile(p.OutputFile, p.Temperatures, simulation.Estimates(res), elapsed, p.MeasureCorrelationLength)
	if err != nil {
		return errors.WithMessage(err, p.OutputFile)
	}
	logger.Printf("results written to %s", p.OutputFile)

	if p.PlotDir == "" {
		return nil
	}
	table, err := results.ReadFile(p.OutputFile)
	if err != nil {
		return err
	}
	paths, err := results.SavePlots(table, p.PlotDir, o.plotFormat)
	if err != nil {
		return err
	}
	logger.Printf("%d plots written to %s", len(paths), p.PlotDir)

	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("metrics server: %v", err)
		}
	}()
	logger.Printf("metrics on http://%s/metrics", addr)
}
