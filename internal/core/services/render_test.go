package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakanu/penrose-vault/internal/adapters/driven/storage/memory"
	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
)

// fakeCompiler scripts per-stage outcomes and records stage invocations.
type fakeCompiler struct {
	compileErr  error
	optimizeErr error
	renderErr   error
	svg         string
	stages      []domain.RenderStage
}

func (c *fakeCompiler) Compile(_ context.Context, trio domain.Trio) (driven.CompiledProgram, error) {
	c.stages = append(c.stages, domain.StageCompile)
	if c.compileErr != nil {
		return nil, c.compileErr
	}
	return driven.CompiledProgram("prog:" + trio.Substance), nil
}

func (c *fakeCompiler) Optimize(_ context.Context, prog driven.CompiledProgram) (driven.OptimizedLayout, error) {
	c.stages = append(c.stages, domain.StageOptimize)
	if c.optimizeErr != nil {
		return nil, c.optimizeErr
	}
	return driven.OptimizedLayout(prog), nil
}

func (c *fakeCompiler) Render(_ context.Context, _ driven.OptimizedLayout) (string, error) {
	c.stages = append(c.stages, domain.StageRender)
	if c.renderErr != nil {
		return "", c.renderErr
	}
	return c.svg, nil
}

func newPipeline(compiler driven.Compiler, cache driven.RenderCache) *RenderPipeline {
	resolver := NewTrioService(newFakeFetcher(map[string]string{
		"D": "domain body",
		"S": "style body",
	}), aliasStore())
	return NewRenderPipeline(NewBlockDiscovery(), resolver, compiler, cache)
}

func TestRenderPipeline_RenderNote(t *testing.T) {
	compiler := &fakeCompiler{svg: "<svg/>"}
	pipeline := newPipeline(compiler, nil)

	note := "```penrose\n-- domain: D\n-- style: S\n```\n"
	results, err := pipeline.RenderNote(context.Background(), "note.md", note)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Failed())
	assert.Equal(t, "<svg/>", results[0].SVG)
	assert.Equal(t, []domain.RenderStage{domain.StageCompile, domain.StageOptimize, domain.StageRender}, compiler.stages)
}

func TestRenderPipeline_NilCompiler(t *testing.T) {
	pipeline := newPipeline(nil, nil)

	_, err := pipeline.RenderNote(context.Background(), "note.md", "```penrose\nSet A\n```")

	assert.ErrorIs(t, err, domain.ErrCompilerUnavailable)
}

func TestRenderPipeline_CompileFailureSkipsLaterStages(t *testing.T) {
	compiler := &fakeCompiler{compileErr: &domain.StageError{
		Stage:   domain.StageCompile,
		Message: "unknown type Vector at line 3",
		Err:     domain.ErrCompileFailed,
	}}
	pipeline := newPipeline(compiler, nil)

	result := pipeline.RenderBlock(context.Background(), domain.DiagramBlock{ID: "b1", Substance: "Set A"})

	assert.True(t, result.Failed())
	assert.Equal(t, domain.StageCompile, result.FailedStage)
	assert.Equal(t, "unknown type Vector at line 3", result.Failure)
	assert.Empty(t, result.SVG)
	assert.Equal(t, []domain.RenderStage{domain.StageCompile}, compiler.stages,
		"optimize must not run after a failed compile")
}

func TestRenderPipeline_OptimizeFailureSkipsRender(t *testing.T) {
	compiler := &fakeCompiler{optimizeErr: &domain.StageError{
		Stage:   domain.StageOptimize,
		Message: "layout did not converge",
		Err:     domain.ErrOptimizeFailed,
	}}
	pipeline := newPipeline(compiler, nil)

	result := pipeline.RenderBlock(context.Background(), domain.DiagramBlock{ID: "b1", Substance: "Set A"})

	assert.Equal(t, domain.StageOptimize, result.FailedStage)
	assert.Equal(t, "layout did not converge", result.Failure)
	assert.Equal(t, []domain.RenderStage{domain.StageCompile, domain.StageOptimize}, compiler.stages,
		"render must not run after a failed optimize")
}

func TestRenderPipeline_BlockFailuresAreIsolated(t *testing.T) {
	// First block compiles, second block's substance triggers failure.
	compiler := &scriptedCompiler{failSubstance: "bad"}
	pipeline := newPipeline(compiler, nil)

	note := "```penrose\ngood\n```\n```penrose\nbad\n```\n"
	results, err := pipeline.RenderNote(context.Background(), "note.md", note)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
}

func TestRenderPipeline_CacheHitSkipsCompile(t *testing.T) {
	compiler := &fakeCompiler{svg: "<svg/>"}
	cache := memory.NewRenderCache()
	pipeline := newPipeline(compiler, cache)

	block := domain.DiagramBlock{ID: "b1", Substance: "-- variation: 9\nSet A"}

	first := pipeline.RenderBlock(context.Background(), block)
	require.False(t, first.Failed())
	assert.False(t, first.Cached)

	second := pipeline.RenderBlock(context.Background(), block)
	require.False(t, second.Failed())
	assert.True(t, second.Cached)
	assert.Equal(t, first.SVG, second.SVG)

	// Three stage calls total: the second render came from cache.
	assert.Len(t, compiler.stages, 3)
}

func TestRenderPipeline_VariationBustsCacheKey(t *testing.T) {
	compiler := &fakeCompiler{svg: "<svg/>"}
	cache := memory.NewRenderCache()
	pipeline := newPipeline(compiler, cache)

	_ = pipeline.RenderBlock(context.Background(), domain.DiagramBlock{Substance: "-- variation: 1\nSet A"})
	result := pipeline.RenderBlock(context.Background(), domain.DiagramBlock{Substance: "-- variation: 2\nSet A"})

	assert.False(t, result.Cached, "a different variation is a different trio")
	assert.Equal(t, 2, cache.Len())
}

// scriptedCompiler fails compilation only for a specific substance.
type scriptedCompiler struct {
	failSubstance string
}

func (c *scriptedCompiler) Compile(_ context.Context, trio domain.Trio) (driven.CompiledProgram, error) {
	if trio.Substance == c.failSubstance {
		return nil, &domain.StageError{
			Stage:   domain.StageCompile,
			Message: "parse error",
			Err:     domain.ErrCompileFailed,
		}
	}
	return driven.CompiledProgram(trio.Substance), nil
}

func (c *scriptedCompiler) Optimize(_ context.Context, prog driven.CompiledProgram) (driven.OptimizedLayout, error) {
	return driven.OptimizedLayout(prog), nil
}

func (c *scriptedCompiler) Render(_ context.Context, _ driven.OptimizedLayout) (string, error) {
	return "<svg/>", nil
}
