package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// writeConfig writes content to dir/name and returns the path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// useConfigHome points xdg.ConfigHome at dir for the duration of the test.
// Not parallel-safe: xdg paths are process-wide.
func useConfigHome(t *testing.T, dir string) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Mode != "full" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "full")
	}
	if cfg.Format != "html" {
		t.Errorf("Format = %q, want %q", cfg.Format, "html")
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if !slices.Equal(cfg.Input.Extensions, DefaultExtensions) {
		t.Errorf("Input.Extensions = %v, want %v", cfg.Input.Extensions, DefaultExtensions)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"empty value", "", 10, false},
		{"at limit", "1234567890", 10, false},
		{"over limit", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test", tt.value, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Value and length checks
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "zero config", cfg: Config{}},
		{name: "lite mode", cfg: Config{Mode: "lite"}},
		{name: "mode is case-insensitive", cfg: Config{Mode: "LITE"}},
		{name: "yaml format", cfg: Config{Format: "yaml"}},
		{name: "max workers", cfg: Config{Workers: MaxWorkers}},
		{name: "custom extensions", cfg: Config{Input: InputConfig{Extensions: []string{".prose", "txt"}}}},
		{name: "unknown mode", cfg: Config{Mode: "fancy"}, wantErr: ErrInvalidValue},
		{name: "unknown format", cfg: Config{Format: "pdf"}, wantErr: ErrInvalidValue},
		{name: "negative workers", cfg: Config{Workers: -1}, wantErr: ErrInvalidValue},
		{name: "too many workers", cfg: Config{Workers: MaxWorkers + 1}, wantErr: ErrInvalidValue},
		{
			name:    "extension with separator",
			cfg:     Config{Input: InputConfig{Extensions: []string{"../x"}}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "empty extension",
			cfg:     Config{Input: InputConfig{Extensions: []string{""}}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "extension too long",
			cfg:     Config{Input: InputConfig{Extensions: []string{"." + strings.Repeat("x", MaxExtensionLength)}}},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "standalone page",
			cfg:  Config{Page: PageConfig{Standalone: true, Style: "plain", Layout: "page", Lang: "fr"}},
		},
		{
			name:    "page style too long",
			cfg:     Config{Page: PageConfig{Style: strings.Repeat("s", MaxAssetNameLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "page lang too long",
			cfg:     Config{Page: PageConfig{Lang: strings.Repeat("l", MaxLangLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output dir too long",
			cfg:     Config{Output: OutputConfig{DefaultDir: strings.Repeat("d", MaxPathLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Extensions(t *testing.T) {
	t.Parallel()

	t.Run("defaults when unset", func(t *testing.T) {
		t.Parallel()

		cfg := Config{}
		if got := cfg.Extensions(); !slices.Equal(got, DefaultExtensions) {
			t.Errorf("Extensions() = %v, want %v", got, DefaultExtensions)
		}
	})

	t.Run("normalizes configured extensions", func(t *testing.T) {
		t.Parallel()

		cfg := Config{Input: InputConfig{Extensions: []string{"TXT", ".Prose"}}}
		want := []string{".txt", ".prose"}
		if got := cfg.Extensions(); !slices.Equal(got, want) {
			t.Errorf("Extensions() = %v, want %v", got, want)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading, strict parsing, and search order
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "blog.yaml", `mode: lite
format: json
workers: 4
input:
  defaultDir: "posts"
  extensions: [".prose"]
output:
  defaultDir: "public"
page:
  standalone: true
  style: none
  assetsDir: "theme"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Mode != "lite" {
			t.Errorf("Mode = %q, want %q", cfg.Mode, "lite")
		}
		if cfg.Format != "json" {
			t.Errorf("Format = %q, want %q", cfg.Format, "json")
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
		if cfg.Input.DefaultDir != "posts" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "posts")
		}
		if !slices.Equal(cfg.Input.Extensions, []string{".prose"}) {
			t.Errorf("Input.Extensions = %v, want [.prose]", cfg.Input.Extensions)
		}
		if cfg.Output.DefaultDir != "public" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "public")
		}
		if !cfg.Page.Standalone || cfg.Page.Style != "none" || cfg.Page.AssetsDir != "theme" {
			t.Errorf("Page = %+v, want standalone with style none and assetsDir theme", cfg.Page)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "mode: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "mode: lite\nstyle: fancy\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid mode returns ErrInvalidValue", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "mode.yaml", "mode: fancy\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("file permissions are not enforced")
		}

		path := writeConfig(t, t.TempDir(), "unreadable.yaml", "mode: lite\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(path, 0o600)

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("LoadConfig() error = nil, want read error")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, should not be ErrConfigNotFound", err)
		}
	})

	t.Run("name resolves in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "blog.yml", "format: yaml\n")
		t.Chdir(dir)
		useConfigHome(t, t.TempDir())

		cfg, err := LoadConfig("blog")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Format != "yaml" {
			t.Errorf("Format = %q, want %q", cfg.Format, "yaml")
		}
	})

	t.Run("name resolves in XDG config home", func(t *testing.T) {
		home := t.TempDir()
		if err := os.MkdirAll(filepath.Join(home, AppDirName), 0o755); err != nil {
			t.Fatal(err)
		}
		writeConfig(t, filepath.Join(home, AppDirName), "blog.yaml", "mode: lite\n")
		t.Chdir(t.TempDir())
		useConfigHome(t, home)

		cfg, err := LoadConfig("blog")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Mode != "lite" {
			t.Errorf("Mode = %q, want %q", cfg.Mode, "lite")
		}
	})

	t.Run("missing name lists searched paths", func(t *testing.T) {
		home := t.TempDir()
		t.Chdir(t.TempDir())
		useConfigHome(t, home)

		_, err := LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		for _, want := range []string{"missing.yaml", "missing.yml", filepath.Join(home, AppDirName, "missing.yaml")} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error = %q, want containing %q", err, want)
			}
		}
	})
}

func TestSearchPaths(t *testing.T) {
	home := t.TempDir()
	useConfigHome(t, home)

	want := []string{
		"blog.yaml",
		"blog.yml",
		filepath.Join(home, AppDirName, "blog.yaml"),
		filepath.Join(home, AppDirName, "blog.yml"),
	}
	if got := SearchPaths("blog"); !slices.Equal(got, want) {
		t.Errorf("SearchPaths() = %v, want %v", got, want)
	}
}
