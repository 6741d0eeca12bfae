package driven

import "github.com/adityakanu/penrose-vault/internal/core/domain"

// AliasStore provides read-only access to the alias table during
// resolution. Lookup is synchronous: implementations are in-memory maps
// or settings views, never remote calls. Mutation is a host concern and
// lives on the driving side (SettingsService).
type AliasStore interface {
	// Resolve looks up an alias by name.
	Resolve(name string) (domain.AliasEntry, bool)

	// All returns a copy of the current alias table.
	All() domain.AliasTable
}
