package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every honeybee collector.
// A dedicated registry keeps Go runtime collectors out of the textfile output.
var Registry = prometheus.NewRegistry()

var (
	// 1. Graph Size (Gauges)
	// Set once after the link pairs have been loaded.
	GraphNodes = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "honeybee_graph_nodes",
			Help: "Number of distinct sites in the loaded graph",
		},
	)

	GraphEdges = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "honeybee_graph_edges",
			Help: "Number of links in the loaded graph, duplicates included",
		},
	)

	// 2. Visit Events (Counter)
	// Dequeues for "bfs", landings for "walk".
	VisitsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "honeybee_visits_total",
			Help: "Total number of visit events recorded by the engines",
		},
		[]string{"mode"},
	)

	// 3. Engine Runs (Counter)
	// result is "ok" or "unknown_start".
	EngineRunsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "honeybee_engine_runs_total",
			Help: "Total number of engine invocations",
		},
		[]string{"mode", "result"},
	)

	// 4. Engine Duration (Histogram)
	EngineDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "honeybee_engine_duration_seconds",
			Help:    "Duration of a single engine invocation in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"mode"},
	)
)

// WriteTextfile dumps the registry to path in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
