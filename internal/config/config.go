// Package config loads csvmanifest configuration from an optional YAML
// file, falling back to defaults when no file is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/csvmanifest/internal/manifest"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = ".csvmanifest.yaml"

// Config represents csvmanifest configuration options.
type Config struct {
	// DataDir is the directory scanned for data files. Empty means
	// derive it from the executable location (see manifest.DefaultDataDir).
	DataDir string `yaml:"data_dir"`

	// ManifestName is the filename of the generated manifest.
	ManifestName string `yaml:"manifest_name"`

	// Suffix selects the files to list (e.g. ".csv").
	Suffix string `yaml:"suffix"`

	// LogLevel sets console verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogDir enables per-run log files when set.
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		DataDir:      "",
		ManifestName: manifest.DefaultName,
		Suffix:       manifest.DefaultSuffix,
		LogLevel:     "info",
		LogDir:       "",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .csvmanifest.yaml in the
// given directory, returning defaults when the file is absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultFileName))
}

// normalize fills cleared fields back in with defaults and validates
// the fields that have structural constraints.
func (c *Config) normalize() error {
	if c.ManifestName == "" {
		c.ManifestName = manifest.DefaultName
	}
	if strings.ContainsRune(c.ManifestName, os.PathSeparator) {
		return fmt.Errorf("manifest_name must be a bare filename, got %q", c.ManifestName)
	}

	if c.Suffix == "" {
		c.Suffix = manifest.DefaultSuffix
	}
	if !strings.HasPrefix(c.Suffix, ".") {
		c.Suffix = "." + c.Suffix
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return nil
}
