package services

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
	"github.com/adityakanu/penrose-vault/internal/logger"
)

// Ensure RenderPipeline implements the interface.
var _ driving.RenderService = (*RenderPipeline)(nil)

// RenderPipeline runs the per-note render pipeline: block discovery,
// trio resolution, and the three-stage compiler contract.
type RenderPipeline struct {
	blocks   driving.BlockService
	resolver driving.TrioResolver
	compiler driven.Compiler
	cache    driven.RenderCache
}

// NewRenderPipeline creates a new render pipeline.
// The cache may be nil, in which case every block recompiles.
func NewRenderPipeline(
	blocks driving.BlockService,
	resolver driving.TrioResolver,
	compiler driven.Compiler,
	cache driven.RenderCache,
) *RenderPipeline {
	return &RenderPipeline{
		blocks:   blocks,
		resolver: resolver,
		compiler: compiler,
		cache:    cache,
	}
}

// RenderNote renders every diagram block in a note.
//
// Each block's resolution and compilation is isolated: a failed block
// carries its failure text in the result and never prevents sibling
// blocks from rendering.
func (p *RenderPipeline) RenderNote(ctx context.Context, noteURI, text string) ([]domain.RenderResult, error) {
	if p.compiler == nil {
		return nil, domain.ErrCompilerUnavailable
	}

	found := p.blocks.Discover(noteURI, text)
	results := make([]domain.RenderResult, 0, len(found))
	for _, block := range found {
		results = append(results, p.RenderBlock(ctx, block))
	}
	return results, nil
}

// RenderBlock renders a single block's substance.
//
// The compiler contract is strict: optimize is never invoked after a
// failed compile, nor render after a failed optimize. A stage failure's
// human-readable description is substituted for the SVG output.
func (p *RenderPipeline) RenderBlock(ctx context.Context, block domain.DiagramBlock) domain.RenderResult {
	trio := p.resolver.Resolve(ctx, block.Substance)
	key := trioKey(trio)

	if p.cache != nil {
		if svg, ok, err := p.cache.Get(ctx, key); err == nil && ok {
			logger.Debug("render cache hit for block %s", block.ID)
			return domain.RenderResult{Block: block, SVG: svg, Cached: true}
		}
	}

	prog, err := p.compiler.Compile(ctx, trio)
	if err != nil {
		return failure(block, domain.StageCompile, err)
	}

	layout, err := p.compiler.Optimize(ctx, prog)
	if err != nil {
		return failure(block, domain.StageOptimize, err)
	}

	svg, err := p.compiler.Render(ctx, layout)
	if err != nil {
		return failure(block, domain.StageRender, err)
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, key, svg); err != nil {
			logger.Warn("render cache write failed: %v", err)
		}
	}

	return domain.RenderResult{Block: block, SVG: svg}
}

// failure builds the per-block failure result displayed in place of a
// diagram.
func failure(block domain.DiagramBlock, stage domain.RenderStage, err error) domain.RenderResult {
	logger.Debug("block %s failed at %s: %v", block.ID, stage, err)
	return domain.RenderResult{
		Block:       block,
		Failure:     err.Error(),
		FailedStage: stage,
	}
}

// trioKey derives the cache key from the trio's full content.
// Field lengths are mixed into the hash so adjacent fields can never
// alias each other.
func trioKey(trio domain.Trio) string {
	h := sha256.New()
	for _, field := range []string{trio.Substance, trio.Domain, trio.Style, trio.Variation} {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(field)))
		h.Write(n[:])
		h.Write([]byte(field))
	}
	return hex.EncodeToString(h.Sum(nil))
}
