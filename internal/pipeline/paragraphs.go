package pipeline

import (
	"regexp"
	"strings"
)

// markupTag matches an opening, closing or self-closing tag and captures
// the closing slash, the element name and the self-closing slash.
var markupTag = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9]*)\b[^>]*?(/?)>`)

// WrapParagraphs splits text on blank lines and wraps every block in <p>
// unless a single element spans the whole block or the block is a
// horizontal rule. Blocks are joined with a single newline.
func WrapParagraphs(text string) string {
	blocks := strings.Split(text, "\n\n")
	out := make([]string, 0, len(blocks))

	for _, block := range blocks {
		block = strings.Trim(block, "\n")
		switch {
		case block == "":
			continue
		case block == HorizontalRule, isEnclosed(block):
			out = append(out, block)
		default:
			out = append(out, "<p>"+block+"</p>")
		}
	}

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

// isEnclosed reports whether block opens with an element whose matching
// closing tag is the last thing in the block. Nested elements of the same
// name are balanced.
func isEnclosed(block string) bool {
	tags := markupTag.FindAllStringSubmatchIndex(block, -1)
	if len(tags) == 0 || tags[0][0] != 0 {
		return false
	}
	first := tags[0]
	if first[3] > first[2] || first[7] > first[6] {
		return false // starts with a closing or self-closing tag
	}
	name := block[first[4]:first[5]]

	depth := 0
	for _, tag := range tags {
		if block[tag[4]:tag[5]] != name || tag[7] > tag[6] {
			continue
		}
		if tag[3] == tag[2] {
			depth++
			continue
		}
		depth--
		if depth == 0 {
			return tag[1] == len(block)
		}
	}
	return false
}
