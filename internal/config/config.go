// Package config loads benchmark settings from an optional YAML file.
// A missing file is not an error: defaults cover every field, and flags on
// the CLI override whatever the file supplies.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akarpov/votebench/internal/generator"
)

// DefaultPath is where Load looks when the caller does not override it.
const DefaultPath = ".votebench.yaml"

// Config holds the file-configurable benchmark settings.
type Config struct {
	// Sizes are the input lengths the bench command runs by default.
	Sizes []int `yaml:"sizes"`

	// WarmupIterations are unmeasured runs before measurement.
	WarmupIterations int `yaml:"warmup_iterations"`

	// MeasureIterations are the measured runs per input size.
	MeasureIterations int `yaml:"measure_iterations"`

	// Seed drives synthetic input generation.
	Seed int64 `yaml:"seed"`

	// CSVPath is where the bench command writes its results file.
	CSVPath string `yaml:"csv_path"`

	// DBPath is the benchmark history database. Empty disables history.
	DBPath string `yaml:"db_path"`
}

// Default returns the built-in settings: the classic size ladder, five
// warmup and ten measured iterations, seed 42.
func Default() *Config {
	return &Config{
		Sizes:             []int{100, 1000, 10000, 100000},
		WarmupIterations:  5,
		MeasureIterations: 10,
		Seed:              generator.DefaultSeed,
		CSVPath:           "boyer_moore_results.csv",
		DBPath:            ".votebench.db",
	}
}

// Load reads the config file at path, overlaying it onto the defaults.
// A missing file returns the defaults unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field the file can set.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes must list at least one input size")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("sizes must be positive (got %d)", s)
		}
	}
	if c.WarmupIterations < 0 {
		return fmt.Errorf("warmup_iterations cannot be negative (got %d)", c.WarmupIterations)
	}
	if c.MeasureIterations <= 0 {
		return fmt.Errorf("measure_iterations must be positive (got %d)", c.MeasureIterations)
	}
	return nil
}
