package pipeline

import (
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single backtracking match. Rules that exceed it are
// treated as not matching, which keeps every stage total.
const matchTimeout = 2 * time.Second

// mustCompile compiles a rule pattern and applies the package match timeout.
func mustCompile(expr string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, opts)
	re.MatchTimeout = matchTimeout
	return re
}

// replace substitutes every match of re in text. On a timeout the input is
// returned unchanged.
func replace(re *regexp2.Regexp, text, replacement string) string {
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// replaceFunc is replace with a computed replacement.
func replaceFunc(re *regexp2.Regexp, text string, eval regexp2.MatchEvaluator) string {
	out, err := re.ReplaceFunc(text, eval, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// submatch returns capture group n of the first match of re in text.
func submatch(re *regexp2.Regexp, text string, n int) (string, bool) {
	m, err := re.FindStringMatch(text)
	if err != nil || m == nil {
		return "", false
	}
	return m.GroupByNumber(n).String(), true
}
