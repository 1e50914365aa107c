package main

import (
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-prose/internal/config"
	"github.com/alnah/go-prose/internal/hints"
)

const envPrefix = "PROSE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PROSE_CONFIG: config file name or path
	Mode       string // PROSE_MODE: full or lite
	Format     string // PROSE_FORMAT: html, json, yaml
	InputDir   string // PROSE_INPUT_DIR: default input directory
	OutputDir  string // PROSE_OUTPUT_DIR: default output directory
	Workers    int    // PROSE_WORKERS: parallel workers
	Style      string // PROSE_STYLE: page style name
	AssetsDir  string // PROSE_ASSETS_DIR: custom asset directory
}

// knownEnvVars lists valid PROSE_* environment variables.
var knownEnvVars = map[string]bool{
	"PROSE_CONFIG":     true,
	"PROSE_MODE":       true,
	"PROSE_FORMAT":     true,
	"PROSE_INPUT_DIR":  true,
	"PROSE_OUTPUT_DIR": true,
	"PROSE_WORKERS":    true,
	"PROSE_STYLE":      true,
	"PROSE_ASSETS_DIR": true,
}

// knownEnvNames returns the recognized variable names, sorted.
func knownEnvNames() []string {
	return slices.Sorted(maps.Keys(knownEnvVars))
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable PROSE_WORKERS is logged and ignored.
func loadEnvConfig(logger zerolog.Logger) *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PROSE_CONFIG"),
		Mode:       os.Getenv("PROSE_MODE"),
		Format:     os.Getenv("PROSE_FORMAT"),
		InputDir:   os.Getenv("PROSE_INPUT_DIR"),
		OutputDir:  os.Getenv("PROSE_OUTPUT_DIR"),
		Style:      os.Getenv("PROSE_STYLE"),
		AssetsDir:  os.Getenv("PROSE_ASSETS_DIR"),
	}

	if workers := os.Getenv("PROSE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		} else {
			logger.Warn().Str("value", workers).Msg("ignoring invalid PROSE_WORKERS")
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized PROSE_* variable
// in environ, to catch typos like PROSE_FORMATS.
func warnUnknownEnvVars(logger zerolog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("var", name).Msg("unknown environment variable (typo?)" + hints.ForUnknownEnv(knownEnvNames()))
		}
	}
}

// applyEnvConfig overlays set environment values on cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Mode != "" {
		cfg.Mode = env.Mode
	}
	if env.Format != "" {
		cfg.Format = env.Format
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.AssetsDir != "" {
		cfg.Page.AssetsDir = env.AssetsDir
	}
}
