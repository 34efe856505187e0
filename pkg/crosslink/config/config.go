// Package config reads the engine's YAML configuration and builds the
// components it describes.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/corpuskit/crosslink/pkg/crosslink/internalerr"
)

// Backends recognized by StoreConfig.Backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// StoreConfig selects where the occurrence index is persisted.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Config is the full engine configuration.
type Config struct {
	DataDir   string      `yaml:"data_dir"`
	OutputDir string      `yaml:"output_dir"`
	Wordlist  string      `yaml:"wordlist"`
	Store     StoreConfig `yaml:"store"`

	MinSources int      `yaml:"min_sources"`
	MinCount   int      `yaml:"min_count"`
	Labels     []string `yaml:"labels"`
	Stopwords  []string `yaml:"stopwords"`
	Workers    int      `yaml:"workers"`
}

// Default returns the configuration used when no file is given: publish
// a term once two documents attest it with three total mentions.
func Default() Config {
	return Config{
		MinSources: 2,
		MinCount:   3,
		Workers:    runtime.NumCPU(),
		Store:      StoreConfig{Backend: BackendJSON},
	}
}

// Load reads a YAML config file, layering it over the defaults. Callers
// validate after applying any overrides of their own.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the parts of the configuration the engine cannot
// repair with a default.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is required", internalerr.ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is required", internalerr.ErrInvalidConfig)
	}
	if c.MinSources < 1 {
		return fmt.Errorf("%w: min_sources must be at least 1", internalerr.ErrInvalidConfig)
	}
	if c.MinCount < 1 {
		return fmt.Errorf("%w: min_count must be at least 1", internalerr.ErrInvalidConfig)
	}
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown store backend %q", internalerr.ErrInvalidConfig, c.Store.Backend)
	}
	if c.Store.Backend == BackendSQLite && c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is required for the sqlite backend", internalerr.ErrInvalidConfig)
	}
	return nil
}
