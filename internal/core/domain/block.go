package domain

// DiagramBlock is a fenced diagram block discovered inside a note.
type DiagramBlock struct {
	// ID is the unique identifier assigned at discovery time.
	ID string

	// NoteURI is the location of the note the block was found in.
	NoteURI string

	// Substance is the block body with the surrounding fences removed,
	// otherwise preserved byte-for-byte.
	Substance string

	// StartLine is the 1-based line of the opening fence.
	StartLine int

	// EndLine is the 1-based line of the closing fence, or the last
	// line of the note when the fence is unterminated.
	EndLine int
}

// RenderStage identifies the compiler pipeline stage a result came from.
type RenderStage string

const (
	// StageResolve covers trio resolution (parse, alias lookup, fetch).
	StageResolve RenderStage = "resolve"

	// StageCompile covers compilation of the trio.
	StageCompile RenderStage = "compile"

	// StageOptimize covers layout optimization.
	StageOptimize RenderStage = "optimize"

	// StageRender covers SVG emission.
	StageRender RenderStage = "render"
)

// RenderResult is the per-block outcome of the render pipeline.
// Exactly one of SVG or Failure is populated: on a compile or optimize
// failure the human-readable description is carried in Failure and is
// displayed in place of the diagram.
type RenderResult struct {
	// Block is the block this result belongs to.
	Block DiagramBlock

	// SVG is the rendered output when the pipeline succeeded.
	SVG string

	// Failure is the human-readable failure text when it did not.
	Failure string

	// FailedStage records where the pipeline stopped, empty on success.
	FailedStage RenderStage

	// Cached is true when the SVG came from the render cache.
	Cached bool
}

// Failed returns true if the block did not render.
func (r RenderResult) Failed() bool {
	return r.FailedStage != ""
}
