// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ConfigDirName is the per-user config directory searched for named configs.
const ConfigDirName = "go-prose"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ConfigDirName) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoTitle returns hints for documents whose id cannot be derived.
func ForNoTitle() string {
	return formatHints([]string{
		"underline the first line with === to give the document a title",
		"or pass --id",
	})
}

// ForInvalidID returns hints for rejected ids.
func ForInvalidID() string {
	return format("ids may only contain lowercase letters, digits and hyphens")
}

// ForUnknownFormat returns hints listing the supported output formats.
func ForUnknownFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidMode returns hints for unknown render modes.
func ForInvalidMode() string {
	return format("mode must be full or lite; use --lite for untrusted input")
}

// ForUnknownEnv returns a hint naming the recognized environment variables.
func ForUnknownEnv(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("recognized: " + strings.Join(known, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
