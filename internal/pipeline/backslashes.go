package pipeline

import "strings"

// ResolveBackslashes turns every `\\` into a literal backslash entity and
// then drops the remaining single backslashes.
func ResolveBackslashes(text string) string {
	text = strings.ReplaceAll(text, `\\`, Backslash)
	return strings.ReplaceAll(text, `\`, "")
}
