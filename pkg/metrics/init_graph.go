package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_graph_nodes_total",
			Help: "Number of nodes in the loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_graph_edges_total",
			Help: "Number of distinct arcs in the loaded graph",
		},
	)

	r.GraphSelfLoopsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_graph_self_loops_total",
			Help: "Number of self-loop arcs in the loaded graph",
		},
	)

	r.GraphDuplicateArcs = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_graph_duplicate_arcs_total",
			Help: "Number of input rows that repeated an existing arc",
		},
	)

	r.GraphSCCTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_graph_strongly_connected_components_total",
			Help: "Number of strongly connected components",
		},
	)

	r.GraphLargestSCCSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_graph_largest_scc_size",
			Help: "Number of nodes in the largest strongly connected component",
		},
	)

	r.GraphWCCTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netanalysis_graph_weakly_connected_components_total",
			Help: "Number of weakly connected components",
		},
	)
}
