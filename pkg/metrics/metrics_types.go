// Package metrics exposes run metrics through a Prometheus registry that is
// written to a node-exporter textfile when the run ends.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphNodesTotal     prometheus.Gauge
	GraphEdgesTotal     prometheus.Gauge
	GraphSelfLoopsTotal prometheus.Gauge
	GraphDuplicateArcs  prometheus.Gauge
	GraphSCCTotal       prometheus.Gauge
	GraphLargestSCCSize prometheus.Gauge
	GraphWCCTotal       prometheus.Gauge

	// Analysis Metrics
	StepsTotal            *prometheus.CounterVec
	StepDuration          *prometheus.HistogramVec
	AverageClustering     prometheus.Gauge
	CommunitiesTotal      prometheus.Gauge
	CommunityAverageSize  prometheus.Gauge
	CommunityModularity   prometheus.Gauge
	LabelPropagationIters prometheus.Gauge

	// System Metrics
	RunDurationSeconds prometheus.Gauge
	GoRoutines         prometheus.Gauge
	MemoryAllocBytes   prometheus.Gauge
	MemorySysBytes     prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initAnalysisMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
