// Package instrument records Prometheus metrics for search runs.
//
// Each Recorder owns a private registry, so several recorders (one per CLI
// invocation, one per test) never collide on metric names.
package instrument

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "gridpath"
	searchSubsystem  = "search"
)

// Result labels.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultError       = "error"
)

// Recorder holds the search metrics.
type Recorder struct {
	registry *prometheus.Registry

	// RunsTotal counts search runs by engine and result.
	RunsTotal *prometheus.CounterVec

	// ExpansionsTotal counts expanded states by engine.
	ExpansionsTotal *prometheus.CounterVec

	// DurationSeconds observes wall-clock time per run by engine.
	DurationSeconds *prometheus.HistogramVec

	// ActiveJobs tracks jobs currently executing.
	ActiveJobs prometheus.Gauge
}

// New creates a Recorder backed by a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "runs_total",
				Help:      "Total search runs by engine and result",
			},
			[]string{"engine", "result"},
		),
		ExpansionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "expansions_total",
				Help:      "Total states expanded by engine",
			},
			[]string{"engine"},
		),
		DurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "duration_seconds",
				Help:      "Search run duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"engine"},
		),
		ActiveJobs: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: searchSubsystem,
				Name:      "active_jobs",
				Help:      "Number of jobs currently executing",
			},
		),
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one finished run.
//
// Inputs:
//
//	engine - "dijkstra", "astar", "bfs" or "release".
//	result - one of ResultFound, ResultUnreachable, ResultError.
//	expansions - states expanded during the run.
//	elapsed - wall-clock duration of the run.
func (r *Recorder) Observe(engine, result string, expansions int, elapsed time.Duration) {
	r.RunsTotal.WithLabelValues(engine, result).Inc()
	if expansions > 0 {
		r.ExpansionsTotal.WithLabelValues(engine).Add(float64(expansions))
	}
	r.DurationSeconds.WithLabelValues(engine).Observe(elapsed.Seconds())
}

// Track increments ActiveJobs and returns the matching decrement.
func (r *Recorder) Track() func() {
	r.ActiveJobs.Inc()
	return r.ActiveJobs.Dec
}

// WriteTextfile dumps every metric in the text exposition format, suitable
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("instrument: write %s: %w", path, err)
	}

	return nil
}
