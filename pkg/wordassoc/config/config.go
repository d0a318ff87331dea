// Package config loads model configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordassoc/pkg/wordassoc/internalerr"
)

// Config describes a corpus and how to count it.
type Config struct {
	// Corpus is the path to the line-delimited tokenized text file.
	Corpus string `yaml:"corpus"`

	// Window is the co-occurrence window radius. Omitted or zero means
	// the default radius.
	Window int `yaml:"window"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for usable values.
func (c *Config) Validate() error {
	if c.Corpus == "" {
		return fmt.Errorf("%w: corpus path is required", internalerr.ErrInvalidConfig)
	}
	if c.Window < 0 {
		return fmt.Errorf("%w: window must be non-negative, got %d", internalerr.ErrInvalidConfig, c.Window)
	}
	return nil
}
