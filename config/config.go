// Package config - YAML run configuration for the nms tools.
package config

import (
	"os"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/go-nms/suppress"
)

// Config holds everything the command-line tools need for one run. The
// core suppressor stays permissive about its inputs; finiteness checks
// live here, at the configuration boundary.
type Config struct {
	// ScoreThreshold is the exclusive minimum score.
	ScoreThreshold float32 `yaml:"score_threshold"`
	// IoUThreshold is the exclusive overlap bound.
	IoUThreshold float32 `yaml:"iou_threshold"`
	// Workers is the number of classes suppressed concurrently.
	Workers int `yaml:"workers"`
	// Colors maps class labels to "#RRGGBB" render colors.
	Colors map[string]string `yaml:"colors"`
	// DefaultColor is used for labels without a Colors entry.
	DefaultColor string `yaml:"default_color"`
}

// Default returns the built-in configuration: keep every positively
// scored box, suppress only near-duplicates, serial, white boxes.
func Default() *Config {
	return &Config{
		ScoreThreshold: 0.0,
		IoUThreshold:   1.0,
		Workers:        1,
		DefaultColor:   "#FFFFFF",
	}
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the suppressor would silently mishandle.
func (c *Config) Validate() error {
	if math32.IsNaN(c.ScoreThreshold) || math32.IsInf(c.ScoreThreshold, 0) {
		return errors.New("score_threshold must be finite")
	}
	if math32.IsNaN(c.IoUThreshold) || math32.IsInf(c.IoUThreshold, 0) {
		return errors.New("iou_threshold must be finite")
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Suppression projects the run configuration onto the core's Config.
func (c *Config) Suppression() *suppress.Config {
	return &suppress.Config{
		ScoreThreshold: c.ScoreThreshold,
		IoUThreshold:   c.IoUThreshold,
		Workers:        c.Workers,
	}
}
