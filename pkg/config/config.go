// Package config loads and saves the application configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bverret/parasurf/pkg/scene"
)

// Config holds user-tunable application settings.
type Config struct {
	// Default subdivision counts applied to scene entries that don't
	// declare their own. Must be within [1, scene.MaxSegments].
	SegmentsU int `yaml:"segments_u"`
	SegmentsV int `yaml:"segments_v"`

	// ExportDir is where STL exports land when the frontend passes a bare
	// file name.
	ExportDir string `yaml:"export_dir"`

	// Palette is the list of hex colors cycled across scene entries.
	Palette []string `yaml:"palette"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SegmentsU: scene.DefaultSegments,
		SegmentsV: scene.DefaultSegments,
		ExportDir: ".",
		Palette: []string{
			"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
			"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
		},
	}
}

// Load reads a config file. A missing file is not an error: the defaults
// are returned so a fresh install works without any setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings against the ranges the tessellation host
// accepts.
func (c *Config) Validate() error {
	if c.SegmentsU < 1 || c.SegmentsU > scene.MaxSegments {
		return fmt.Errorf("segments_u %d out of range [1, %d]", c.SegmentsU, scene.MaxSegments)
	}
	if c.SegmentsV < 1 || c.SegmentsV > scene.MaxSegments {
		return fmt.Errorf("segments_v %d out of range [1, %d]", c.SegmentsV, scene.MaxSegments)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	return nil
}
