package pipeline

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

var (
	// Title
	// =====
	titlePattern = mustCompile(`^(.+?)[ \t]*\n=+[ \t]*\n+`, regexp2.Multiline)

	// Header
	// ------
	underlinePattern = mustCompile(`^(.+?)[ \t]*\n-+[ \t]*\n+`, regexp2.Multiline)

	// ## Header ##
	hashPattern = mustCompile(`^(#{1,6})(?!#)[ \t]*(.+?)[ \t]*#*\n+`, regexp2.Multiline)
)

// hashLevelOffset shifts hash headers below the two underline forms, so
// "#" is h3 and "######" is h8.
const hashLevelOffset = 2

// ExtractHeaders rewrites the three header forms in order: "=" underlines
// become h1, "-" underlines become h2 and hash headers become h3 and below.
// Each header is followed by exactly one blank line.
func ExtractHeaders(text string) string {
	text = replace(titlePattern, text, "<h1>$1</h1>\n\n")
	text = replace(underlinePattern, text, "<h2>$1</h2>\n\n")
	return replaceFunc(hashPattern, text, func(m regexp2.Match) string {
		level := len(m.GroupByNumber(1).String()) + hashLevelOffset
		return fmt.Sprintf("<h%d>%s</h%d>\n\n", level, m.GroupByNumber(2).String(), level)
	})
}
