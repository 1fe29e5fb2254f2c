package refit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dwhalen/refit/fit"
)

// Config holds the process-wide fitting defaults. It is an explicit value
// passed into construction, never package state, so concurrent jobs with
// different configurations (for example different minimum sizes) are safe.
type Config struct {
	// MinFontSize is the readability floor. Any positive value is accepted.
	MinFontSize float64 `yaml:"min_font_size"`

	// LineHeightFactor models standard leading; must be >= 1.0.
	LineHeightFactor float64 `yaml:"line_height_factor"`

	// SizeStep is the font-size search resolution.
	SizeStep float64 `yaml:"size_step"`

	// LinearScan forces the fixed-decrement size scan instead of binary
	// search. See fit.FitConfig.
	LinearScan bool `yaml:"linear_scan"`

	// CharMetrics selects the font-data-free measurement model instead of
	// PDF core-font metrics.
	CharMetrics bool `yaml:"char_metrics"`

	// Workers bounds page-level parallelism in PlanDocument.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MinFontSize:      6.0,
		LineHeightFactor: 1.2,
		SizeStep:         0.5,
		LinearScan:       false,
		CharMetrics:      false,
		Workers:          1,
	}
}

// LoadConfig reads a YAML configuration file, applying defaults for any
// omitted field.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.MinFontSize <= 0 {
		return fmt.Errorf("min_font_size must be positive, got %v", c.MinFontSize)
	}
	if c.LineHeightFactor < 1.0 {
		return fmt.Errorf("line_height_factor must be >= 1.0, got %v", c.LineHeightFactor)
	}
	if c.SizeStep <= 0 {
		return fmt.Errorf("size_step must be positive, got %v", c.SizeStep)
	}
	return nil
}

func (c Config) fitConfig() fit.FitConfig {
	return fit.FitConfig{
		MinFontSize:      c.MinFontSize,
		LineHeightFactor: c.LineHeightFactor,
		SizeStep:         c.SizeStep,
		LinearScan:       c.LinearScan,
	}
}
