// Package metrics defines Prometheus metrics for the trace service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "visualizer_runs_total",
		Help: "Total algorithm runs, labelled by algorithm and outcome.",
	}, []string{"algorithm", "status"})

	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "visualizer_run_duration_seconds",
		Help:    "Wall-clock duration of one algorithm run.",
		Buckets: prometheus.DefBuckets,
	}, []string{"algorithm"})

	TraceSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "visualizer_trace_steps",
		Help:    "Steps recorded per successful run.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	GraphReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "visualizer_graph_reloads_total",
		Help: "Graph file reloads triggered by the watcher.",
	})
)
