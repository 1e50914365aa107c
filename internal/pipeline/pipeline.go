package pipeline

import "slices"

// Mode selects which stages run.
type Mode int

const (
	// Full renders headers and trusts embedded HTML.
	Full Mode = iota
	// Lite escapes HTML, skips headers and marks links nofollow.
	Lite
)

// String returns "full" or "lite".
func (m Mode) String() string {
	if m == Lite {
		return "lite"
	}
	return "full"
}

// Predicate reports whether a stage applies to a mode.
type Predicate func(Mode) bool

// Always applies in every mode.
func Always(Mode) bool { return true }

// FullOnly applies in full mode.
func FullOnly(m Mode) bool { return m == Full }

// LiteOnly applies in lite mode.
func LiteOnly(m Mode) bool { return m == Lite }

// Transform is a pure text rewrite.
type Transform func(string) string

// Stage is one named step of the pipeline.
type Stage struct {
	Name      string
	Applies   Predicate
	Transform Transform
}

// Fold threads text through every stage whose predicate matches mode. A nil
// predicate is treated as Always.
func Fold(stages []Stage, mode Mode, text string) string {
	for _, s := range stages {
		if s.Applies != nil && !s.Applies(mode) {
			continue
		}
		text = s.Transform(text)
	}
	return text
}

var defaultStages = []Stage{
	{Name: "whitespace", Applies: Always, Transform: NormalizeWhitespace},
	{Name: "html", Applies: LiteOnly, Transform: EscapeHTML},
	{Name: "headers", Applies: FullOnly, Transform: ExtractHeaders},
	{Name: "links", Applies: FullOnly, Transform: ParseLinks},
	{Name: "links-nofollow", Applies: LiteOnly, Transform: ParseLinksNoFollow},
	{Name: "lists", Applies: Always, Transform: ParseLists},
	{Name: "glyphs", Applies: Always, Transform: SubstituteGlyphs},
	{Name: "paragraphs", Applies: Always, Transform: WrapParagraphs},
	{Name: "tags", Applies: Always, Transform: ParseTags},
	{Name: "backslashes", Applies: Always, Transform: ResolveBackslashes},
}

// DefaultStages returns a copy of the standard stage order.
func DefaultStages() []Stage {
	return slices.Clone(defaultStages)
}

// Pipeline is an immutable ordered list of stages.
type Pipeline struct {
	stages []Stage
}

// New creates a Pipeline running stages in the given order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: slices.Clone(stages)}
}

// Default creates a Pipeline with the standard stage order.
func Default() *Pipeline {
	return &Pipeline{stages: defaultStages}
}

// Render folds text through the pipeline for mode.
func (p *Pipeline) Render(text string, mode Mode) string {
	return Fold(p.stages, mode, text)
}

// Stages returns a copy of the pipeline's stages.
func (p *Pipeline) Stages() []Stage {
	return slices.Clone(p.stages)
}

// Applicable returns the names of the stages that run for mode, in order.
func (p *Pipeline) Applicable(mode Mode) []string {
	var names []string
	for _, s := range p.stages {
		if s.Applies == nil || s.Applies(mode) {
			names = append(names, s.Name)
		}
	}
	return names
}
