// Package config loads and validates the analysis configuration.
//
// Values are layered: Defaults, then an optional YAML file, then command-line
// overrides applied by the caller before Validate.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-netanalysis/pkg/validation"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full analysis configuration
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Plot     PlotConfig     `yaml:"plot"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	LogLevel string         `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// InputConfig selects the edge list
type InputConfig struct {
	Path   string `yaml:"path" validate:"required"`
	Format string `yaml:"format" validate:"oneof=csv snap"`
}

// AnalysisConfig tunes the algorithms
type AnalysisConfig struct {
	Seed                     uint64  `yaml:"seed"`
	TopN                     int     `yaml:"top_n" validate:"min=1"`
	Parallel                 bool    `yaml:"parallel"`
	Workers                  int     `yaml:"workers" validate:"min=0"` // 0 means GOMAXPROCS
	MaxLPAIterations         int     `yaml:"max_lpa_iterations" validate:"min=0"`
	EigenvectorMaxIterations int     `yaml:"eigenvector_max_iterations" validate:"min=1"`
	EigenvectorTolerance     float64 `yaml:"eigenvector_tolerance" validate:"gt=0"`
	PrintCommunities         bool    `yaml:"print_communities"`
}

// PlotConfig controls the subset drawing
type PlotConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Layout      string  `yaml:"layout" validate:"oneof=spring circular hierarchical"`
	Output      string  `yaml:"output"`
	LayoutJSON  string  `yaml:"layout_json"`
	SubsetNodes int     `yaml:"subset_nodes" validate:"min=1"`
	Iterations  int     `yaml:"iterations" validate:"min=1"`
	WidthInches float64 `yaml:"width_inches" validate:"gt=0"`
	Title       string  `yaml:"title"`
}

// MetricsConfig controls the Prometheus textfile export
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Defaults returns the configuration of the stock Wiki-Vote run
func Defaults() *Config {
	return &Config{
		Input: InputConfig{
			Path:   "Wiki-Vote.csv",
			Format: "csv",
		},
		Analysis: AnalysisConfig{
			Seed:                     42,
			TopN:                     5,
			Parallel:                 true,
			EigenvectorMaxIterations: 100,
			EigenvectorTolerance:     1e-6,
			PrintCommunities:         true,
		},
		Plot: PlotConfig{
			Enabled:     true,
			Layout:      "spring",
			Output:      "wiki-vote-subset.png",
			SubsetNodes: 1000,
			Iterations:  50,
			WidthInches: 12,
			Title:       "Subset of Nodes Visualization from Wiki-Vote Dataset",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns Defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and reports all failures together
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Plot.Enabled && c.Plot.Output == "" {
		return fmt.Errorf("%w: plot.output: required when plot is enabled", ErrInvalidConfig)
	}
	return nil
}
