package driven

import "context"

// DocumentFetcher resolves an opaque document reference to its body.
//
// Fetch never fails from the caller's point of view: on any failure
// (empty reference, missing document, read error) it returns the empty
// string after reporting the failure through its Diagnostics sink. An
// empty reference is a failure, not a silent no-op. The trio assembler
// relies on this contract to always produce a complete Trio shape.
type DocumentFetcher interface {
	// Fetch returns the document body for a reference, or "" on failure.
	Fetch(ctx context.Context, ref string) string
}

// FetchFunc adapts a function to the DocumentFetcher interface.
type FetchFunc func(ctx context.Context, ref string) string

// Fetch calls the underlying function.
func (f FetchFunc) Fetch(ctx context.Context, ref string) string {
	return f(ctx, ref)
}

// Diagnostics is the side channel fetchers report failures through.
// Reports surface at the point of use (inline in rendered output or on
// stderr); they are never raised as errors to the resolution caller.
type Diagnostics interface {
	// Report records a failure for the given reference.
	Report(ref, message string)
}

// DiagnosticsFunc adapts a function to the Diagnostics interface.
type DiagnosticsFunc func(ref, message string)

// Report calls the underlying function.
func (f DiagnosticsFunc) Report(ref, message string) {
	f(ref, message)
}
