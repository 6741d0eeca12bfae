package services

import (
	"fmt"
	"strings"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
)

// Ensure SettingsService implements the interfaces.
var (
	_ driving.SettingsService = (*SettingsService)(nil)
	_ driven.AliasStore       = (*SettingsService)(nil)
)

// Config keys for settings storage.
const (
	keyVaultPath     = "vault.path"
	keyCompilerURL   = "compiler.base_url"
	keyRemoteEnabled = "remote.enabled"
	keyRemoteToken   = "remote.token"
	keyCacheEnabled  = "cache.enabled"
	aliasPrefix      = "aliases"
)

// SettingsService manages application settings on top of a ConfigStore.
// It doubles as the read-only AliasStore view the resolution pipeline
// consumes: resolution reads the table, only the host surfaces mutate it.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Vault: domain.VaultSettings{
			Path: s.configStore.GetString(keyVaultPath),
		},
		Compiler: domain.CompilerSettings{
			BaseURL: s.getString(keyCompilerURL, defaults.Compiler.BaseURL),
		},
		Remote: domain.RemoteSettings{
			Enabled: s.configStore.GetBool(keyRemoteEnabled),
			Token:   s.configStore.GetString(keyRemoteToken),
		},
		Cache: domain.CacheSettings{
			Enabled: s.getBool(keyCacheEnabled, defaults.Cache.Enabled),
		},
		Aliases: s.readAliases(),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyVaultPath, settings.Vault.Path); err != nil {
		return fmt.Errorf("saving vault path: %w", err)
	}
	if err := s.configStore.Set(keyCompilerURL, settings.Compiler.BaseURL); err != nil {
		return fmt.Errorf("saving compiler url: %w", err)
	}
	if err := s.configStore.Set(keyRemoteEnabled, settings.Remote.Enabled); err != nil {
		return fmt.Errorf("saving remote enabled: %w", err)
	}
	if err := s.configStore.Set(keyRemoteToken, settings.Remote.Token); err != nil {
		return fmt.Errorf("saving remote token: %w", err)
	}
	if err := s.configStore.Set(keyCacheEnabled, settings.Cache.Enabled); err != nil {
		return fmt.Errorf("saving cache enabled: %w", err)
	}
	for name, entry := range settings.Aliases {
		if err := s.PutAlias(name, entry); err != nil {
			return err
		}
	}
	return nil
}

// SetVaultPath updates the vault root directory.
func (s *SettingsService) SetVaultPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: vault path is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyVaultPath, path)
}

// SetCompilerURL updates the compiler service endpoint.
func (s *SettingsService) SetCompilerURL(url string) error {
	if url == "" {
		return fmt.Errorf("%w: compiler url is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyCompilerURL, url)
}

// SetRemote configures the GitHub library fetcher.
func (s *SettingsService) SetRemote(enabled bool, token string) error {
	if err := s.configStore.Set(keyRemoteEnabled, enabled); err != nil {
		return err
	}
	return s.configStore.Set(keyRemoteToken, token)
}

// Aliases returns the current alias table.
func (s *SettingsService) Aliases() (domain.AliasTable, error) {
	return s.readAliases(), nil
}

// PutAlias adds or replaces an alias entry.
func (s *SettingsService) PutAlias(name string, entry domain.AliasEntry) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: alias name is empty", domain.ErrInvalidInput)
	}
	if entry.Domain == "" || entry.Style == "" {
		return fmt.Errorf("%w: alias %q needs both domain and style references", domain.ErrInvalidInput, name)
	}
	if err := s.configStore.Set(aliasKey(name, "domain"), entry.Domain); err != nil {
		return err
	}
	return s.configStore.Set(aliasKey(name, "style"), entry.Style)
}

// RemoveAlias deletes an alias entry.
func (s *SettingsService) RemoveAlias(name string) error {
	if _, ok := s.readAliases()[name]; !ok {
		return fmt.Errorf("%w: alias %q", domain.ErrNotFound, name)
	}
	if err := s.configStore.Delete(aliasKey(name, "domain")); err != nil {
		return err
	}
	return s.configStore.Delete(aliasKey(name, "style"))
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Resolve implements driven.AliasStore for the resolution pipeline.
func (s *SettingsService) Resolve(name string) (domain.AliasEntry, bool) {
	return s.readAliases().Resolve(name)
}

// All implements driven.AliasStore.
func (s *SettingsService) All() domain.AliasTable {
	return s.readAliases()
}

// readAliases reconstructs the alias table from dot-notation keys.
func (s *SettingsService) readAliases() domain.AliasTable {
	table := domain.AliasTable{}
	for _, key := range s.configStore.Keys(aliasPrefix) {
		// Key shape: aliases.<name>.<field>
		rest := strings.TrimPrefix(key, aliasPrefix+".")
		idx := strings.LastIndex(rest, ".")
		if idx <= 0 {
			continue
		}
		name, field := rest[:idx], rest[idx+1:]
		entry := table[name]
		switch field {
		case "domain":
			entry.Domain = s.configStore.GetString(key)
		case "style":
			entry.Style = s.configStore.GetString(key)
		default:
			continue
		}
		table[name] = entry
	}
	return table
}

// getString reads a key with a fallback default.
func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

// getBool reads a boolean key with a fallback default.
func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}

// aliasKey builds the config key for an alias field.
func aliasKey(name, field string) string {
	return fmt.Sprintf("%s.%s.%s", aliasPrefix, name, field)
}
