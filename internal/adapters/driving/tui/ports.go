// Package tui provides an interactive terminal alias editor.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Settings manages the alias table.
	Settings driving.SettingsService

	// Trio parses annotations for the inspection pane. Optional.
	Trio driving.TrioResolver
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
