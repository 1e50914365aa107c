package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Lines holding only spaces or tabs
	whitespaceOnlyLine = regexp.MustCompile(`(?m)^[ \t]+$`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace trims the buffer, converts line endings to "\n",
// empties whitespace-only lines, collapses runs of 3+ newlines to exactly
// two and appends a single trailing blank line.
func NormalizeWhitespace(text string) string {
	text = normalizeLineEndings(text)
	text = strings.TrimSpace(text)
	text = whitespaceOnlyLine.ReplaceAllString(text, "")
	text = compressBlankLines(text)
	return text + "\n\n"
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// compressBlankLines limits consecutive newlines to 2.
func compressBlankLines(text string) string {
	return multipleBlankLines.ReplaceAllString(text, "\n\n")
}
