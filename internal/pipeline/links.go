package pipeline

import "github.com/dlclark/regexp2"

// quote matches a double quote as typed or as left behind by EscapeHTML.
const quote = `(?:"|` + escapedQuote + `)`

var (
	// "label":http://url. The label never crosses a quote in either form.
	labelledLinkPattern = mustCompile(quote+`((?:(?!`+escapedQuote+`)[^"\n])+?)`+quote+`:(https?://[^\s]+)`, regexp2.None)

	// ":http://url at the start of a line
	bareLinkPattern = mustCompile(`^`+quote+`:(https?://[^\s]+)`, regexp2.Multiline)
)

// ParseLinks rewrites "label":url into an anchor labelled with label, and a
// line starting with ":url into an anchor labelled with the URL itself.
func ParseLinks(text string) string {
	return parseLinks(text, "")
}

// ParseLinksNoFollow is ParseLinks with rel='nofollow' on every anchor.
func ParseLinksNoFollow(text string) string {
	return parseLinks(text, "rel='nofollow' ")
}

func parseLinks(text, attrs string) string {
	text = replace(labelledLinkPattern, text, "<a "+attrs+"href='$2'>$1</a>")
	return replace(bareLinkPattern, text, "<a "+attrs+"href='$1'>$1</a>")
}
