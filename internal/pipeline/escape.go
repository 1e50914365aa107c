package pipeline

import "strings"

// Entities produced by EscapeHTML. Later stages that look for quotes or
// angle brackets also accept these forms so lite mode keeps working.
const (
	escapedQuote = "&quot;"
	escapedLT    = "&lt;"
	escapedGT    = "&gt;"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", escapedLT,
	">", escapedGT,
	`"`, escapedQuote,
	"'", "&#39;",
)

// EscapeHTML escapes &, <, >, " and ' across the whole buffer.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
