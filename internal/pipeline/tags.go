package pipeline

import "github.com/dlclark/regexp2"

// tagRule wraps delimiter-enclosed spans in an inline tag.
type tagRule struct {
	delimiter string
	tag       string
	pattern   *regexp2.Regexp
}

// tagTable is evaluated in order. When spans overlap, the earlier
// delimiter claims its span first.
var tagTable = []tagRule{
	newTagRule("*", "strong"),
	newTagRule("_", "em"),
	newTagRule(`"`, "q"),
	newTagRule("%", "code"),
	newTagRule("-", "del"),
}

// newTagRule builds the span pattern for delimiter. The opening delimiter
// must follow a non-word, non-backslash character and the closing one must
// precede a non-word character. Both boundary characters are left in place.
// The content is non-greedy and never contains a newline, a tab or the
// delimiter itself.
func newTagRule(delimiter, tag string) tagRule {
	d := regexp2.Escape(delimiter)
	expr := `(?<=[^\w\\])` + d + `([^\n\t` + d + `]+?)` + d + `(?=[^\w])`
	return tagRule{
		delimiter: delimiter,
		tag:       tag,
		pattern:   mustCompile(expr, regexp2.None),
	}
}

// ParseTags applies every tag rule to text.
func ParseTags(text string) string {
	for _, rule := range tagTable {
		text = replace(rule.pattern, text, "<"+rule.tag+">$1</"+rule.tag+">")
	}
	return text
}
