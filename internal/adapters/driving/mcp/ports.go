package mcp

import (
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Trio resolves diagram source into a compiler-ready trio.
	Trio driving.TrioResolver

	// Blocks discovers diagram blocks inside notes.
	Blocks driving.BlockService

	// Render runs the full render pipeline.
	Render driving.RenderService

	// Settings exposes the alias table.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Trio == nil {
		return ErrMissingTrioResolver
	}
	// Blocks, Render and Settings are optional; the matching tools and
	// resources degrade gracefully when absent.
	return nil
}
