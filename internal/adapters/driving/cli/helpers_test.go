package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/adityakanu/penrose-vault/internal/adapters/driven/storage/memory"
	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
	"github.com/adityakanu/penrose-vault/internal/core/services"
)

// stubCompiler is a compiler that renders a fixed SVG, or fails the
// compile stage for substances containing "broken".
type stubCompiler struct{}

func (stubCompiler) Compile(_ context.Context, trio domain.Trio) (driven.CompiledProgram, error) {
	if strings.Contains(trio.Substance, "broken") {
		return nil, &domain.StageError{Stage: domain.StageCompile, Message: "unexpected token"}
	}
	return driven.CompiledProgram("prog"), nil
}

func (stubCompiler) Optimize(_ context.Context, _ driven.CompiledProgram) (driven.OptimizedLayout, error) {
	return driven.OptimizedLayout("layout"), nil
}

func (stubCompiler) Render(_ context.Context, _ driven.OptimizedLayout) (string, error) {
	return "<svg>test</svg>", nil
}

// setupTestServices wires the package-level services against in-memory
// adapters and a stub compiler, returning a cleanup that restores the
// previous wiring.
func setupTestServices() func() {
	prevSettings := settingsService
	prevTrio := trioResolver
	prevBlocks := blockService
	prevRender := renderService
	prevCache := renderCache

	settings := services.NewSettingsService(memory.NewConfigStore())
	settings.PutAlias("chem", domain.AliasEntry{ //nolint:errcheck
		Domain: "chemistry/molecules.domain",
		Style:  "chemistry/ball-and-stick.style",
	})

	fetcher := driven.FetchFunc(func(_ context.Context, ref string) string {
		return fmt.Sprintf("body of %s", ref)
	})

	settingsService = settings
	trioResolver = services.NewTrioService(fetcher, settings)
	blockService = services.NewBlockDiscovery()
	renderCache = memory.NewRenderCache()
	renderService = services.NewRenderPipeline(blockService, trioResolver, stubCompiler{}, renderCache)

	return func() {
		settingsService = prevSettings
		trioResolver = prevTrio
		blockService = prevBlocks
		renderService = prevRender
		renderCache = prevCache
	}
}

var _ driving.SettingsService = (*services.SettingsService)(nil)
