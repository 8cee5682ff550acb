package simulation

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecorded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 4, 4
	cfg.ThermSteps, cfg.MeasureSteps = 5, 7
	cfg.Temperatures = []float64{1, 2}

	_, err := Run(context.Background(), cfg, WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.sweeps.WithLabelValues(phaseThermalization)))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.sweeps.WithLabelValues(phaseMeasurement)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inflight))

	n, err := testutil.GatherAndCount(reg, "lvising_temperature_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.start()
		m.addSweeps(phaseMeasurement, 3)
		m.done(1)
	})
}

func TestWorkers(t *testing.T) {
	cfg := Config{Temperatures: []float64{1, 2}, Workers: 8}
	assert.Equal(t, 2, cfg.workers())
	cfg.Workers = 1
	assert.Equal(t, 1, cfg.workers())
	cfg.Workers = 0
	assert.LessOrEqual(t, cfg.workers(), 2)
	assert.GreaterOrEqual(t, cfg.workers(), 1)
}
