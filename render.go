package prose

import "github.com/alnah/go-prose/internal/pipeline"

// Stage is one named, mode-gated step of a rendering pipeline.
type Stage = pipeline.Stage

// Pipeline is an ordered list of stages.
type Pipeline = pipeline.Pipeline

// defaultPipeline is immutable and shared by every render.
var defaultPipeline = pipeline.Default()

// Render converts text to an HTML fragment using the default stages.
// It never fails: constructs that do not match are left as text.
func Render(text string, mode Mode) string {
	return defaultPipeline.Render(text, mode)
}

// DefaultStages returns a copy of the default stage order, for callers
// building a custom pipeline with NewPipeline.
func DefaultStages() []Stage {
	return pipeline.DefaultStages()
}

// NewPipeline creates a pipeline running stages in the given order.
func NewPipeline(stages ...Stage) *Pipeline {
	return pipeline.New(stages...)
}

// Stage predicates.
var (
	Always   = pipeline.Always
	FullOnly = pipeline.FullOnly
	LiteOnly = pipeline.LiteOnly
)
