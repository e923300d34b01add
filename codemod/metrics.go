package codemod

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// File statuses used as metric label values
const (
	StatusChanged   = "changed"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// Metrics holds codemod counters on a private registry
type Metrics struct {
	Registry *prometheus.Registry

	// files counts processed files by status
	files *prometheus.CounterVec
	// rewrites counts applied rewrites by rule
	rewrites *prometheus.CounterVec
	// passes tracks rule passes needed to reach a fixed point
	passes prometheus.Histogram
	// duration tracks per file transformation latency
	duration prometheus.Histogram
}

// NewMetrics creates metrics registered on a new registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		Registry: registry,
		files: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dequery_files_total",
			Help: "Total processed files by status",
		}, []string{"status"}),
		rewrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dequery_rewrites_total",
			Help: "Total applied rewrites by rule",
		}, []string{"rule"}),
		passes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dequery_passes",
			Help:    "Rule passes per file",
			Buckets: []float64{1, 2, 3, 5, 10, 20},
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dequery_file_duration_seconds",
			Help:    "File transformation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		}),
	}
}

// Observe records a file result
func (m *Metrics) Observe(result *Result, elapsed time.Duration) {
	if m == nil || result == nil {
		return
	}
	m.files.WithLabelValues(result.Status()).Inc()
	for name, count := range result.Changes {
		m.rewrites.WithLabelValues(name).Add(float64(count))
	}
	if result.Passes > 0 {
		m.passes.Observe(float64(result.Passes))
	}
	m.duration.Observe(elapsed.Seconds())
}

// Failed records a file that could not be processed
func (m *Metrics) Failed() {
	if m == nil {
		return
	}
	m.files.WithLabelValues(StatusFailed).Inc()
}

// WriteToTextfile writes metrics in the text exposition format, suitable for node exporter textfile collection
func (m *Metrics) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.Registry)
}
