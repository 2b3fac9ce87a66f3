// This file defines the Prometheus instruments recorded per addition run.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder bundles the Prometheus instruments tracking adder executions.
// It owns a private registry so tests and embedders can scrape it without
// touching the global default registry.
type Recorder struct {
	registry *prometheus.Registry

	additionsTotal  *prometheus.CounterVec
	additionSeconds *prometheus.HistogramVec
	operandBits     prometheus.Gauge
}

// NewRecorder creates a Recorder with all instruments registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		additionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bitadd",
			Name:      "additions_total",
			Help:      "Number of completed additions by adder and outcome.",
		}, []string{"adder", "outcome"}),
		additionSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bitadd",
			Name:      "addition_duration_seconds",
			Help:      "Wall-clock duration of additions by adder.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 16),
		}, []string{"adder"}),
		operandBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bitadd",
			Name:      "operand_width_bits",
			Help:      "Width in bits of the most recent operands.",
		}),
	}

	r.registry.MustRegister(r.additionsTotal, r.additionSeconds, r.operandBits)
	return r
}

// ObserveAddition records one adder execution.
//
// Parameters:
//   - adderName: The adder identifier (e.g. "sequential").
//   - widthBits: The operand width in bits.
//   - d: The execution duration.
//   - err: The execution error, nil on success.
func (r *Recorder) ObserveAddition(adderName string, widthBits int, d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.additionsTotal.WithLabelValues(adderName, outcome).Inc()
	r.additionSeconds.WithLabelValues(adderName).Observe(d.Seconds())
	r.operandBits.Set(float64(widthBits))
}

// Registry exposes the underlying registry for scraping and tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
