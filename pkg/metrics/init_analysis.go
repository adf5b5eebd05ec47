package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.StepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netanalysis_steps_total",
			Help: "Total number of pipeline steps executed",
		},
		[]string{"step", "status"},
	)

	r.StepDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netanalysis_step_duration_seconds",
			Help:    "Pipeline step duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4min
		},
		[]string{"step"},
	)

	r.AverageClustering = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_average_clustering_coefficient",
			Help: "Average directed clustering coefficient",
		},
	)

	r.CommunitiesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_communities_total",
			Help: "Number of communities found by label propagation",
		},
	)

	r.CommunityAverageSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_community_average_size",
			Help: "Mean number of nodes per community",
		},
	)

	r.CommunityModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_community_modularity",
			Help: "Directed modularity of the community partition",
		},
	)

	r.LabelPropagationIters = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_label_propagation_iterations",
			Help: "Sweeps label propagation ran before stopping",
		},
	)
}
