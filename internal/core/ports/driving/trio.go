package driving

import (
	"context"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

// TrioResolver assembles the diagram bundle for a piece of diagram source.
type TrioResolver interface {
	// Resolve parses annotations out of the source text, resolves any
	// alias against the alias table, fetches the referenced domain and
	// style bodies, and returns the completed trio. It always returns a
	// complete Trio shape; per-field fetch failures leave the field
	// empty and are reported through the diagnostics side channel.
	Resolve(ctx context.Context, substance string) domain.Trio

	// Metadata parses annotations without fetching. Useful for
	// inspection surfaces (the `trio` CLI command, MCP tools).
	Metadata(substance string) domain.Metadata
}
