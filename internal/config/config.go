// Package config handles the optional YAML configuration for report
// generation. Everything has a default; a missing config file is not an
// error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/codepal/secreport/pkg/pathutil"
)

// Config controls one report-generation run.
type Config struct {
	// Project is the name stamped into the report metadata.
	Project string `yaml:"project"`
	// Version is the project version stamped into the report metadata.
	Version string `yaml:"version"`
	// ResultsDir is the scan-results root the loaders read from.
	ResultsDir string `yaml:"results_dir"`
	// OutputDir is where the report files are written.
	OutputDir string `yaml:"output_dir"`
	// Formats lists the report formats to produce.
	Formats []string `yaml:"formats"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Project:    "unknown",
		Version:    "0.0.0",
		ResultsDir: "scan-results",
		OutputDir:  ".",
		Formats:    []string{"json", "html", "pdf"},
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	validPath, err := pathutil.ValidateConfigPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(validPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills empty fields from Default.
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Project == "" {
		c.Project = defaults.Project
	}
	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.ResultsDir == "" {
		c.ResultsDir = defaults.ResultsDir
	}
	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
	if len(c.Formats) == 0 {
		c.Formats = defaults.Formats
	}
}

// Validate checks the requested formats. "pdf" is accepted here even
// though it is not a registered renderer; it is produced by converting the
// HTML output when a backend is installed.
func (c *Config) Validate() error {
	for _, format := range c.Formats {
		switch format {
		case "json", "html", "pdf":
		default:
			return fmt.Errorf("unknown report format %q", format)
		}
	}
	return nil
}

// WantsFormat reports whether the given format was requested.
func (c *Config) WantsFormat(name string) bool {
	for _, format := range c.Formats {
		if format == name {
			return true
		}
	}
	return false
}
