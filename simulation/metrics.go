package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	phaseThermalization = "thermalization"
	phaseMeasurement    = "measurement"
)

// Metrics groups the prometheus collectors updated by Run.
// Labels are bounded: phase is one of two values, temperatures are not labels.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	sweeps   *prometheus.CounterVec
	inflight prometheus.Gauge
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// reg may be nil, in which case the collectors are created unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		sweeps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvising_sweeps_total",
			Help: "Swendsen-Wang sweeps performed",
		}, []string{"phase"}), // "thermalization", "measurement"
		inflight: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvising_temperatures_in_flight",
			Help: "Temperatures currently being simulated",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvising_temperature_duration_seconds",
			Help:    "Wall time of one temperature run",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
	}
}

func (m *Metrics) addSweeps(phase string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.sweeps.WithLabelValues(phase).Add(float64(n))
}

func (m *Metrics) start() {
	if m == nil {
		return
	}
	m.inflight.Inc()
}

func (m *Metrics) done(seconds float64) {
	if m == nil {
		return
	}
	m.inflight.Dec()
	m.duration.Observe(seconds)
}
