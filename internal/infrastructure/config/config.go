// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for prototypes configuration.
	DefaultConfigDir = ".prototypes"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultFormat is the default output format.
	DefaultFormat = "json"
	// DefaultIndent is the default indent width for rendered output.
	DefaultIndent = 2
)

// Environment variables that override the config file.
const (
	EnvDatasetsDir = "PROTOTYPES_DATASETS_DIR"
	EnvFormat      = "PROTOTYPES_FORMAT"
	EnvIndent      = "PROTOTYPES_INDENT"
)

// Formats lists the supported output formats.
var Formats = []string{"json", "yaml", "text"}

// Config holds the CLI configuration (read-only after load).
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets"`
	Output   OutputConfig   `yaml:"output"`
}

// DatasetsConfig controls where dataset fixtures are read from.
type DatasetsConfig struct {
	// Dir holds override fixture files. Empty uses the embedded fixtures only.
	// A relative path is resolved against the directory holding .prototypes.
	Dir string `yaml:"dir"`
}

// OutputConfig controls how prompt results are rendered.
type OutputConfig struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultFormat,
			Indent: DefaultIndent,
		},
	}
}

// Load loads configuration from the .prototypes directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Usable without init.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv(EnvDatasetsDir); dir != "" {
		c.Datasets.Dir = dir
	}
	if format := os.Getenv(EnvFormat); format != "" {
		c.Output.Format = format
	}
	if indent := os.Getenv(EnvIndent); indent != "" {
		n, err := strconv.Atoi(indent)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvIndent, err)
		}
		c.Output.Indent = n
	}
	return nil
}

// Validate checks the config for values the CLI cannot use.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(c.Output.Format)
	if !IsFormat(c.Output.Format) {
		return fmt.Errorf("invalid output format %q (valid: %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return fmt.Errorf("invalid output indent %d (must be 0-8)", c.Output.Indent)
	}
	return nil
}

// DatasetsDir returns the override fixture directory resolved against basePath,
// or "" when none is configured.
func (c *Config) DatasetsDir(basePath string) string {
	if c.Datasets.Dir == "" || filepath.IsAbs(c.Datasets.Dir) {
		return c.Datasets.Dir
	}
	return filepath.Join(basePath, c.Datasets.Dir)
}

// IsFormat checks if format is a supported output format.
func IsFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// ConfigDir returns the path to the .prototypes config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
