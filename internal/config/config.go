package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"

	"github.com/alnah/go-prose/internal/fileutil"
	"github.com/alnah/go-prose/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under $XDG_CONFIG_HOME holding named configs.
const AppDirName = "go-prose"

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxExtensionLength = 16   // ".prose", ".txt"
	MaxExtensions      = 32
	MaxWorkers         = 32
	MaxAssetNameLength = 64
	MaxLangLength      = 35 // BCP 47 tags
)

// Recognized values for mode and format, lower case.
var (
	Modes   = []string{"full", "lite"}
	Formats = []string{"html", "json", "yaml"}
)

// DefaultExtensions are matched when walking an input directory.
var DefaultExtensions = []string{".prose", ".txt"}

// Config holds all configuration for rendering.
type Config struct {
	Mode    string       `yaml:"mode"`    // "full" or "lite" (empty = full)
	Format  string       `yaml:"format"`  // "html", "json", "yaml" (empty = html)
	Workers int          `yaml:"workers"` // 0 = auto
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Page    PageConfig   `yaml:"page"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Extensions []string `yaml:"extensions"` // Matched when walking a directory (empty = DefaultExtensions)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PageConfig defines standalone HTML page options.
type PageConfig struct {
	Standalone bool   `yaml:"standalone"` // Wrap HTML output in a full page
	Style      string `yaml:"style"`      // Style name, or "none" (empty = default)
	Layout     string `yaml:"layout"`     // Layout name (empty = page)
	Lang       string `yaml:"lang"`       // <html lang> (empty = en)
	AssetsDir  string `yaml:"assetsDir"`  // Custom styles/ and layouts/ (empty = built-in only)
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateChoice("mode", c.Mode, Modes); err != nil {
		return err
	}
	if err := validateChoice("format", c.Format, Formats); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("page.style", c.Page.Style, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.layout", c.Page.Layout, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.lang", c.Page.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.assetsDir", c.Page.AssetsDir, MaxPathLength); err != nil {
		return err
	}

	if len(c.Input.Extensions) > MaxExtensions {
		return fmt.Errorf("%w: input.extensions: %d entries, max %d", ErrInvalidValue, len(c.Input.Extensions), MaxExtensions)
	}
	for i, ext := range c.Input.Extensions {
		field := fmt.Sprintf("input.extensions[%d]", i)
		if err := validateFieldLength(field, ext, MaxExtensionLength); err != nil {
			return err
		}
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
		}
	}

	return nil
}

// Extensions returns the normalized input extensions, or DefaultExtensions when none are set.
func (c *Config) Extensions() []string {
	if len(c.Input.Extensions) == 0 {
		return slices.Clone(DefaultExtensions)
	}
	exts := make([]string, 0, len(c.Input.Extensions))
	for _, ext := range c.Input.Extensions {
		exts = append(exts, fileutil.NormalizeExtension(ext))
	}
	return exts
}

// validateChoice accepts an empty value or one of choices, case-insensitively.
func validateChoice(fieldName, value string, choices []string) error {
	if value == "" || slices.Contains(choices, strings.ToLower(value)) {
		return nil
	}
	return fmt.Errorf("%w: %s: %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(choices, " or "))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration rendering HTML in full mode.
func DefaultConfig() *Config {
	return &Config{
		Mode:   "full",
		Format: "html",
		Input:  InputConfig{Extensions: slices.Clone(DefaultExtensions)},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// current directory, then $XDG_CONFIG_HOME/go-prose/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if xdg.ConfigHome != "" {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(xdg.ConfigHome, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
