// Package pipeline runs the analysis end to end: load, analyse, print, draw.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netanalysis/pkg/algorithms"
	"github.com/dd0wney/cluso-netanalysis/pkg/config"
	"github.com/dd0wney/cluso-netanalysis/pkg/graph"
	"github.com/dd0wney/cluso-netanalysis/pkg/ingest"
	"github.com/dd0wney/cluso-netanalysis/pkg/logging"
	"github.com/dd0wney/cluso-netanalysis/pkg/metrics"
	"github.com/dd0wney/cluso-netanalysis/pkg/parallel"
	"github.com/dd0wney/cluso-netanalysis/pkg/report"
	"github.com/dd0wney/cluso-netanalysis/pkg/visualization"
)

// Step names used in logs and metrics
const (
	StepLoad        = "load"
	StepClustering  = "clustering"
	StepCentrality  = "centrality"
	StepCommunities = "communities"
	StepLayout      = "layout"
)

// Results holds everything a run computed
type Results struct {
	RunID                string
	Graph                *graph.Graph
	AverageClustering    float64
	Centrality           *algorithms.CentralityResult
	Communities          *algorithms.CommunityDetectionResult
	CommunityCount       int
	AverageCommunitySize float64
	Visualization        *visualization.Visualization
}

// Pipeline executes one analysis run
type Pipeline struct {
	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
	out     io.Writer
	runID   string
}

// New creates a pipeline. A nil logger discards logs and a nil registry
// gets a private one.
func New(cfg *config.Config, logger logging.Logger, reg *metrics.Registry, out io.Writer) *Pipeline {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	runID := uuid.NewString()
	return &Pipeline{
		cfg:     cfg,
		logger:  logger.With(logging.Component("pipeline"), logging.RunID(runID)),
		metrics: reg,
		out:     out,
		runID:   runID,
	}
}

// Run executes a full analysis run and prints the report to out
func Run(ctx context.Context, cfg *config.Config, logger logging.Logger, reg *metrics.Registry, out io.Writer) error {
	_, err := New(cfg, logger, reg, out).Execute(ctx)
	return err
}

// analysis is one independent computation over the loaded graph
type analysis struct {
	name string
	run  func(ctx context.Context, g *graph.Graph, res *Results) error
	err  error
}

// Execute runs every step and returns the computed results. Analyses may run
// concurrently but their output is always printed in step order; printing
// stops at the first failed step.
func (p *Pipeline) Execute(ctx context.Context) (*Results, error) {
	start := time.Now()
	p.logger.Info("analysis started",
		logging.Path(p.cfg.Input.Path),
		logging.Bool("parallel", p.cfg.Analysis.Parallel),
	)

	res := &Results{RunID: p.runID}

	err := p.step(ctx, StepLoad, func(ctx context.Context) error {
		g, err := p.load()
		res.Graph = g
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepLoad, err)
	}

	analyses := []*analysis{
		{name: StepClustering, run: p.clustering},
		{name: StepCentrality, run: p.centrality},
		{name: StepCommunities, run: p.communities},
	}
	if p.cfg.Plot.Enabled {
		analyses = append(analyses, &analysis{name: StepLayout, run: p.layout})
	}

	if err := p.runAnalyses(ctx, res, analyses); err != nil {
		return nil, err
	}

	out := report.NewWriter(p.out)
	for _, a := range analyses {
		if a.err != nil {
			return nil, fmt.Errorf("%s: %w", a.name, a.err)
		}
		p.print(out, a.name, res)
		if err := out.Err(); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}
	}

	if res.Visualization != nil {
		if err := p.draw(res.Visualization); err != nil {
			return nil, fmt.Errorf("%s: %w", StepLayout, err)
		}
	}

	elapsed := time.Since(start)
	p.metrics.UpdateSystemMetrics(elapsed)
	if path := p.cfg.Metrics.Textfile; path != "" {
		if err := p.metrics.WriteTextfile(path); err != nil {
			return nil, err
		}
		p.logger.Info("metrics written", logging.Path(path))
	}

	p.logger.Info("analysis finished", logging.Latency(elapsed))
	return res, nil
}

func (p *Pipeline) runAnalyses(ctx context.Context, res *Results, analyses []*analysis) error {
	g := res.Graph

	if !p.cfg.Analysis.Parallel {
		for _, a := range analyses {
			a.err = p.step(ctx, a.name, func(ctx context.Context) error {
				return a.run(ctx, g, res)
			})
			if a.err != nil {
				break
			}
		}
		return nil
	}

	// Each analysis writes disjoint fields of res
	pool, err := parallel.NewWorkerPool(len(analyses))
	if err != nil {
		return err
	}
	for _, a := range analyses {
		pool.Submit(func() error {
			a.err = p.step(ctx, a.name, func(ctx context.Context) error {
				return a.run(ctx, g, res)
			})
			return nil
		})
	}
	return pool.Wait()
}

// step runs fn with a step-scoped timer and records its outcome
func (p *Pipeline) step(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := p.logger.With(logging.Step(name))
	logger.Debug("step started")
	timer := logging.StartTimer(logger, "step completed")

	err := fn(ctx)

	var elapsed time.Duration
	if err != nil {
		elapsed = timer.EndError(err)
	} else {
		elapsed = timer.End()
	}
	p.metrics.RecordStep(name, err, elapsed)
	return err
}

func (p *Pipeline) load() (*graph.Graph, error) {
	table, err := ingest.LoadEdgeTable(p.cfg.Input.Path, ingest.Format(p.cfg.Input.Format))
	if err != nil {
		return nil, err
	}

	g := table.BuildGraph()
	stats := g.GetStatistics()
	p.metrics.UpdateGraphMetrics(stats)
	p.logger.Info("graph built",
		logging.Int("rows", table.Len()),
		logging.Uint64("nodes", stats.NodeCount),
		logging.Uint64("edges", stats.EdgeCount),
		logging.Uint64("self_loops", stats.SelfLoops),
		logging.Uint64("duplicate_arcs", stats.DuplicateArcs),
	)

	scc := algorithms.StronglyConnectedComponents(g)
	wcc := algorithms.WeaklyConnectedComponents(g)
	largest := 0
	if scc.Largest != nil {
		largest = scc.Largest.Size
	}
	p.metrics.UpdateComponentMetrics(len(scc.Communities), largest, len(wcc.Communities))
	p.logger.Info("graph connectivity",
		logging.Int("strongly_connected", len(scc.Communities)),
		logging.Int("largest_scc", largest),
		logging.Int("weakly_connected", len(wcc.Communities)),
	)
	return g, nil
}

func (p *Pipeline) clustering(_ context.Context, g *graph.Graph, res *Results) error {
	avg, err := algorithms.AverageClusteringCoefficient(g)
	if err != nil {
		return err
	}
	res.AverageClustering = avg
	p.metrics.AverageClustering.Set(avg)
	return nil
}

func (p *Pipeline) centrality(ctx context.Context, g *graph.Graph, res *Results) error {
	opts := algorithms.CentralityOptions{
		Workers: p.cfg.Analysis.Workers,
		TopN:    p.cfg.Analysis.TopN,
		Eigenvector: algorithms.EigenvectorOptions{
			MaxIterations: p.cfg.Analysis.EigenvectorMaxIterations,
			Tolerance:     p.cfg.Analysis.EigenvectorTolerance,
		},
	}

	result, err := algorithms.ComputeAllCentrality(ctx, g, opts)
	if err != nil {
		return err
	}
	res.Centrality = result
	return nil
}

func (p *Pipeline) communities(ctx context.Context, g *graph.Graph, res *Results) error {
	result, err := algorithms.LabelPropagation(ctx, g, algorithms.LabelPropagationOptions{
		Seed:          p.cfg.Analysis.Seed,
		MaxIterations: p.cfg.Analysis.MaxLPAIterations,
	})
	if err != nil {
		return err
	}

	count, mean := algorithms.CommunityStats(result)
	res.Communities = result
	res.CommunityCount = count
	res.AverageCommunitySize = mean

	p.metrics.UpdateCommunityMetrics(count, mean, result.Modularity, result.Iterations)
	p.logger.Info("communities detected",
		logging.Count(count),
		logging.Float64("modularity", result.Modularity),
		logging.Int("iterations", result.Iterations),
		logging.Bool("converged", result.Converged),
	)
	return nil
}

func (p *Pipeline) layout(_ context.Context, g *graph.Graph, res *Results) error {
	layout, err := visualization.NewLayout(p.cfg.Plot.Layout, &visualization.LayoutConfig{
		Width:      1,
		Height:     1,
		Padding:    0.02,
		Iterations: p.cfg.Plot.Iterations,
		Seed:       p.cfg.Analysis.Seed,
	})
	if err != nil {
		return err
	}

	viz, err := visualization.NewVisualization(g, p.cfg.Plot.SubsetNodes, layout)
	if err != nil {
		return err
	}
	res.Visualization = viz
	return nil
}

func (p *Pipeline) print(out *report.Writer, name string, res *Results) {
	switch name {
	case StepClustering:
		out.Clustering(res.AverageClustering)
	case StepCentrality:
		out.Centrality(res.Centrality)
	case StepCommunities:
		if p.cfg.Analysis.PrintCommunities {
			out.Communities(res.Communities.Communities)
		}
		out.CommunitySummary(res.CommunityCount, res.AverageCommunitySize)
	}
}

// draw renders the figure and the optional layout JSON
func (p *Pipeline) draw(viz *visualization.Visualization) error {
	opts := visualization.DefaultRenderOptions()
	opts.WidthInches = p.cfg.Plot.WidthInches
	opts.Title = p.cfg.Plot.Title

	if err := visualization.Render(viz, p.cfg.Plot.Output, opts); err != nil {
		return err
	}
	p.logger.Info("figure written",
		logging.Path(p.cfg.Plot.Output),
		logging.Int("nodes", len(viz.Nodes)),
		logging.Int("edges", len(viz.Edges)),
	)

	if path := p.cfg.Plot.LayoutJSON; path != "" {
		data, err := viz.ExportJSON()
		if err != nil {
			return fmt.Errorf("failed to export layout: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write layout: %w", err)
		}
		p.logger.Info("layout written", logging.Path(path))
	}
	return nil
}
