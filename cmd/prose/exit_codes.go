package main

import (
	"errors"
	"os"

	"github.com/alnah/go-prose"
	"github.com/alnah/go-prose/internal/config"
	"github.com/alnah/go-prose/internal/hints"
)

// Exit codes for the prose CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Everything rendered
	ExitGeneral = 1 // General/unexpected error, or some files failed
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrIDWithBatch) ||
		errors.Is(err, ErrStandaloneFormat) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, prose.ErrInvalidID) ||
		errors.Is(err, prose.ErrInvalidMode) ||
		errors.Is(err, prose.ErrUnknownFormat) ||
		errors.Is(err, prose.ErrNoTitle) ||
		errors.Is(err, prose.ErrEmptyInput) ||
		errors.Is(err, prose.ErrInputTooLarge) ||
		errors.Is(err, prose.ErrStyleNotFound) ||
		errors.Is(err, prose.ErrLayoutNotFound) ||
		errors.Is(err, prose.ErrInvalidAssetName) ||
		errors.Is(err, prose.ErrLayoutRender) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
// Config lookup hints are attached where the config name is known.
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, prose.ErrNoTitle):
		return hints.ForNoTitle()
	case errors.Is(err, prose.ErrInvalidID):
		return hints.ForInvalidID()
	case errors.Is(err, prose.ErrUnknownFormat):
		formats := make([]string, len(prose.Formats))
		for i, f := range prose.Formats {
			formats[i] = string(f)
		}
		return hints.ForUnknownFormat(formats)
	case errors.Is(err, prose.ErrInvalidMode):
		return hints.ForInvalidMode()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
