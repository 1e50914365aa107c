package pipeline

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// listFamily is one marker kind. A run of list lines never mixes families.
type listFamily struct {
	tag    string
	marker *regexp2.Regexp
}

// listFamilies is checked in order against the first line of a run.
var listFamilies = []listFamily{
	{tag: "ul", marker: mustCompile(`^- +(.+)$`, regexp2.None)},
	{tag: "ol", marker: mustCompile(`^\d+\. +(.+)$`, regexp2.None)},
}

// item returns the content of line with the marker and its spaces removed.
func (f listFamily) item(line string) (string, bool) {
	return submatch(f.marker, line, 1)
}

// ParseLists wraps every maximal run of list lines in a <ul> or <ol>. The
// first line of a run fixes its family; the run ends at the first line that
// does not carry a marker of that family.
func ParseLists(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		family, ok := detectFamily(lines[i])
		if !ok {
			out = append(out, lines[i])
			i++
			continue
		}

		out = append(out, "<"+family.tag+">")
		for ; i < len(lines); i++ {
			content, ok := family.item(lines[i])
			if !ok {
				break
			}
			out = append(out, "\t<li>"+content+"</li>")
		}
		out = append(out, "</"+family.tag+">")
	}

	return strings.Join(out, "\n")
}

func detectFamily(line string) (listFamily, bool) {
	for _, f := range listFamilies {
		if _, ok := f.item(line); ok {
			return f, true
		}
	}
	return listFamily{}, false
}
