// Package models defines data structures for configuration and reporting.
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for a word count run.
// Values come from CLI flags, optionally seeded from a YAML file via --config.
type Config struct {
	Files          []string `yaml:"files,omitempty"`
	Mode           Mode     `yaml:"-"`
	Workers        int      `yaml:"workers,omitempty"`
	OutputDir      string   `yaml:"output_dir,omitempty"`
	Manifest       string   `yaml:"manifest,omitempty"`
	DetectLanguage bool     `yaml:"detect_language,omitempty"`
	Top            int      `yaml:"top,omitempty"`
	Quiet          bool     `yaml:"quiet,omitempty"`
}

// DefaultConfig returns a config that writes to the current directory and uses
// one worker per available CPU.
func DefaultConfig() *Config {
	return &Config{
		Workers:   DefaultWorkerCount(),
		OutputDir: ".",
	}
}

// DefaultWorkerCount reports the hardware concurrency, never less than 1.
func DefaultWorkerCount() int {
	return max(runtime.NumCPU(), 1)
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	config.Normalize()
	return config, nil
}

// Normalize clamps values that would otherwise stall or misdirect a run.
func (c *Config) Normalize() {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Top < 0 {
		c.Top = 0
	}
}
