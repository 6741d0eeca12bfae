package driving

import (
	"context"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

// RenderService runs the full per-note pipeline: block discovery, trio
// resolution, and the three-stage compiler contract.
type RenderService interface {
	// RenderNote renders every diagram block in a note. Block failures
	// are isolated: a failed block carries its failure text in the
	// result and never prevents sibling blocks from rendering.
	RenderNote(ctx context.Context, noteURI, text string) ([]domain.RenderResult, error)

	// RenderBlock renders a single block's substance.
	RenderBlock(ctx context.Context, block domain.DiagramBlock) domain.RenderResult
}
