package driven

import (
	"context"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

// CompiledProgram is the opaque output of the compile stage.
// Its structure belongs to the external compiler service.
type CompiledProgram []byte

// OptimizedLayout is the opaque output of the optimize stage.
type OptimizedLayout []byte

// Compiler is the external Penrose compiler service, invoked in three
// strict stages. Callers must not invoke Optimize after a failed Compile,
// nor Render after a failed Optimize. Stage failures are returned as
// *domain.StageError carrying the service's human-readable description.
type Compiler interface {
	// Compile turns a trio into a compiled program.
	Compile(ctx context.Context, trio domain.Trio) (CompiledProgram, error)

	// Optimize runs layout optimization on a compiled program.
	Optimize(ctx context.Context, prog CompiledProgram) (OptimizedLayout, error)

	// Render emits SVG for an optimized layout.
	Render(ctx context.Context, layout OptimizedLayout) (string, error)
}
