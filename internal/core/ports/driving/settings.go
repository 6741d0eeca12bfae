package driving

import "github.com/adityakanu/penrose-vault/internal/core/domain"

// SettingsService manages application settings, including the alias
// table. All alias mutation goes through here; the resolution pipeline
// only ever sees a read-only AliasStore view.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetVaultPath updates the vault root directory.
	SetVaultPath(path string) error

	// SetCompilerURL updates the compiler service endpoint.
	SetCompilerURL(url string) error

	// SetRemote configures the GitHub library fetcher.
	SetRemote(enabled bool, token string) error

	// Aliases returns the current alias table.
	Aliases() (domain.AliasTable, error)

	// PutAlias adds or replaces an alias entry.
	PutAlias(name string, entry domain.AliasEntry) error

	// RemoveAlias deletes an alias entry.
	RemoveAlias(name string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
