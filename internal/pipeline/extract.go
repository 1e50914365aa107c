package pipeline

import "github.com/dlclark/regexp2"

// @key: value, or @key: "value"
var metadataPattern = mustCompile(`^@(\w+): *"?(.+?)"?$`, regexp2.Multiline)

// MatchTitle returns the text of the first "=" underlined line. The input is
// normalized first, so CRLF input and a missing final newline still match.
func MatchTitle(text string) (string, bool) {
	return submatch(titlePattern, NormalizeWhitespace(text), 1)
}

// ScanMetadata collects every @key: value line. Surrounding quotes are
// stripped from values and a repeated key keeps its last value.
func ScanMetadata(text string) map[string]string {
	data := make(map[string]string)

	m, err := metadataPattern.FindStringMatch(normalizeLineEndings(text))
	for err == nil && m != nil {
		data[m.GroupByNumber(1).String()] = m.GroupByNumber(2).String()
		m, err = metadataPattern.FindNextMatch(m)
	}

	return data
}
