package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dd0wney/cluso-netanalysis/pkg/config"
	"github.com/dd0wney/cluso-netanalysis/pkg/logging"
	"github.com/dd0wney/cluso-netanalysis/pkg/metrics"
	"github.com/dd0wney/cluso-netanalysis/pkg/pipeline"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Edge list to analyse (default Wiki-Vote.csv)")
	format := flag.String("format", "", "Input format: csv or snap")
	output := flag.String("output", "", "Figure output path, .png or .svg (default wiki-vote-subset.png)")
	seed := flag.Uint64("seed", 42, "Seed for label propagation and layout")
	parallel := flag.Bool("parallel", true, "Run independent analyses concurrently")
	noPlot := flag.Bool("no-plot", false, "Skip the subset drawing")
	metricsFile := flag.String("metrics", "", "Write Prometheus metrics to this textfile")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	// Flags override the file only when given explicitly
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input.Path = *input
		case "format":
			cfg.Input.Format = *format
		case "output":
			cfg.Plot.Output = *output
		case "seed":
			cfg.Analysis.Seed = *seed
		case "parallel":
			cfg.Analysis.Parallel = *parallel
		case "no-plot":
			cfg.Plot.Enabled = !*noPlot
		case "metrics":
			cfg.Metrics.Textfile = *metricsFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = pipeline.Run(ctx, cfg, logger, metrics.DefaultRegistry(), os.Stdout)
	stop()
	if err != nil {
		logger.Error("analysis failed", logging.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
