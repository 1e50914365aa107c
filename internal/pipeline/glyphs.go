package pipeline

import "github.com/dlclark/regexp2"

// Glyph definitions.
const (
	Ellipsis       = "&#8230;"
	Emdash         = "&mdash;"
	Endash         = "&ndash;"
	Multiply       = "&times;"
	Divide         = "&divide;"
	Trademark      = "&#8482;"
	Registered     = "&reg;"
	Copyright      = "&copy;"
	Backslash      = "&#92;"
	HorizontalRule = "<hr />"
)

// glyphRule replaces every match of pattern with replacement.
type glyphRule struct {
	name        string
	pattern     *regexp2.Regexp
	replacement string
}

// glyphTable is applied strictly in order. Comments go before everything
// else, the em-dash rule must precede the en-dash rule, and the ellipsis
// must be collapsed before the arithmetic rules look at the digits.
var glyphTable = []glyphRule{
	// Comments
	{"line comment", mustCompile(`^[ \t]*//[^\n]*\n`, regexp2.Multiline), ""},
	{"trailing comment", mustCompile(`[ \t]*(?<![:/])//[^\n]*`, regexp2.None), ""},
	{"block comment", mustCompile(`/\*.*?\*/`, regexp2.Singleline), ""},

	// Metadata
	{"metadata", mustCompile(`^@\w+: *[^\n]+\n`, regexp2.Multiline), ""},

	// Horizontal rules, with a blank line (or the buffer edge) on each side
	{"rule", mustCompile(`(?<=\A|\n\n)[ \t]*[-=+]+[ \t]*(?=\n\n|\n?\z)`, regexp2.None), HorizontalRule},

	// em-dash and en-dash
	{"em-dash", mustCompile(`( ?)--( ?)`, regexp2.None), "${1}" + Emdash + "${2}"},
	{"en-dash", mustCompile(`(?<=\s)-(?=\s)`, regexp2.None), Endash},

	// ...
	{"ellipsis", mustCompile(`\b( )?\.{3}`, regexp2.None), "${1}" + Ellipsis},

	// Arithmetic: 2 x 3, 6 / 2
	{"multiply", mustCompile(`(\d+)( ?)x( ?)(?=\d)`, regexp2.None), "${1}${2}" + Multiply + "${3}"},
	{"divide", mustCompile(`(\d+)( ?)/( ?)(?=\d)`, regexp2.None), "${1}${2}" + Divide + "${3}"},

	// (tm) (r) and (c)
	{"trademark", mustCompile(`(?:\b )?[(\[]tm[\])]`, regexp2.IgnoreCase), Trademark},
	{"registered", mustCompile(`(?:\b )?[(\[]r[\])]`, regexp2.IgnoreCase), Registered},
	{"copyright", mustCompile(`(?:\b )?[(\[]c[\])]`, regexp2.IgnoreCase), Copyright},

	// Blockquotes
	{"quote line", mustCompile(`^(?:<<|`+escapedLT+escapedLT+`) ?(.+?) ?(?:>>|`+escapedGT+escapedGT+`)[ \t]*$`, regexp2.Multiline), "<blockquote>$1</blockquote>"},
	{"indented quote", mustCompile(`(?<=\n\n)[ \t]+(.+?)(?=\n\n)`, regexp2.Singleline), "<blockquote>$1</blockquote>"},
}

// SubstituteGlyphs applies the glyph table to text.
func SubstituteGlyphs(text string) string {
	for _, rule := range glyphTable {
		text = replace(rule.pattern, text, rule.replacement)
	}
	return text
}
