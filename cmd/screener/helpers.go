package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/ontology"
)

// environment bundles the shared dependencies every command needs:
// configuration, the structured logger, and the skill ontology.
type environment struct {
	cfg    *config.Config
	log    *zap.Logger
	skills *ontology.Ontology
}

// buildEnvironment resolves flags and the optional config file into the
// shared command environment. Flag values win over config file values.
func buildEnvironment() (*environment, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagOntology != "" {
		cfg.Ontology = flagOntology
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	skills := ontology.Default()
	if cfg.Ontology != "" {
		skills, err = ontology.Load(cfg.Ontology, log)
		if err != nil {
			return nil, err
		}
	}

	return &environment{cfg: cfg, log: log, skills: skills}, nil
}

// writeJSON marshals v with indentation and writes it to path, or to stdout
// when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
