package prose

import (
	"fmt"
	"strings"

	"github.com/alnah/go-prose/internal/pipeline"
)

// Mode selects which pipeline stages run. The zero value is Full.
type Mode = pipeline.Mode

const (
	// Full trusts embedded HTML and renders headers.
	Full = pipeline.Full
	// Lite escapes HTML, skips headers and marks links nofollow.
	// Use it for untrusted input such as comments.
	Lite = pipeline.Lite
)

// ParseMode converts "full" or "lite" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return Full, nil
	case "lite":
		return Lite, nil
	default:
		return Full, fmt.Errorf("%w: %q (must be full or lite)", ErrInvalidMode, s)
	}
}

// Format selects the serialization written by Document.Encode.
type Format string

// Output formats.
const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatHTML, FormatJSON, FormatYAML}

// ParseFormat converts a format name (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatHTML, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".html"
	}
}
