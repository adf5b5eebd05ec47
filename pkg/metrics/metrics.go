package metrics

import (
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
)

// RecordStep records a pipeline step with its outcome and duration
func (r *Registry) RecordStep(step string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.StepsTotal.WithLabelValues(step, status).Inc()
	r.StepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// UpdateGraphMetrics records the size of the loaded graph
func (r *Registry) UpdateGraphMetrics(stats graph.Statistics) {
	r.GraphNodesTotal.Set(float64(stats.NodeCount))
	r.GraphEdgesTotal.Set(float64(stats.EdgeCount))
	r.GraphSelfLoopsTotal.Set(float64(stats.SelfLoops))
	r.GraphDuplicateArcs.Set(float64(stats.DuplicateArcs))
}

// UpdateComponentMetrics records connectivity of the loaded graph
func (r *Registry) UpdateComponentMetrics(scc, largestSCC, wcc int) {
	r.GraphSCCTotal.Set(float64(scc))
	r.GraphLargestSCCSize.Set(float64(largestSCC))
	r.GraphWCCTotal.Set(float64(wcc))
}

// UpdateCommunityMetrics records the community detection summary
func (r *Registry) UpdateCommunityMetrics(count int, averageSize, modularity float64, iterations int) {
	r.CommunitiesTotal.Set(float64(count))
	r.CommunityAverageSize.Set(averageSize)
	r.CommunityModularity.Set(modularity)
	r.LabelPropagationIters.Set(float64(iterations))
}

// UpdateSystemMetrics samples runtime statistics
func (r *Registry) UpdateSystemMetrics(runDuration time.Duration) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.RunDurationSeconds.Set(runDuration.Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(mem.Alloc))
	r.MemorySysBytes.Set(float64(mem.Sys))
}

// WriteTextfile writes every metric in the Prometheus text format.
// The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
