// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Ontology is the path to a skill ontology JSON file. Empty uses the
	// built-in ontology.
	Ontology string `json:"ontology,omitempty"`

	// Weights overrides the ranking weight blend. Keys must be known weight
	// names and values must be in [0,1]; the full blend must sum to 1.0
	// (enforced by the ranking layer before any scoring runs).
	Weights map[string]float64 `json:"weights,omitempty" validate:"omitempty,dive,gte=0,lte=1"`

	// Verbose enables debug-level logging.
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Ontology != "" {
		if _, err := os.Stat(c.Ontology); os.IsNotExist(err) {
			return fmt.Errorf("config error: ontology file not found: %s", c.Ontology)
		}
	}

	return nil
}
