package domain

const unknownDescription = "Unknown"

// FetcherType identifies how document references are resolved to bodies.
type FetcherType string

// Available fetcher types.
const (
	// FetcherVault resolves references against the local vault root.
	FetcherVault FetcherType = "vault"

	// FetcherGitHub resolves github:// references against a repository
	// of shared diagram libraries.
	FetcherGitHub FetcherType = "github"
)

// IsValid returns true if the fetcher type is recognised.
func (f FetcherType) IsValid() bool {
	switch f {
	case FetcherVault, FetcherGitHub:
		return true
	default:
		return false
	}
}

// RequiresToken returns true if this fetcher needs an access token.
func (f FetcherType) RequiresToken() bool {
	return f == FetcherGitHub
}

// String returns the string representation.
func (f FetcherType) String() string {
	return string(f)
}

// Description returns a human-readable description of the fetcher.
func (f FetcherType) Description() string {
	switch f {
	case FetcherVault:
		return "Vault (local files)"
	case FetcherGitHub:
		return "GitHub (shared diagram libraries)"
	default:
		return unknownDescription
	}
}

// VaultSettings holds local vault configuration.
type VaultSettings struct {
	// Path is the vault root directory.
	Path string
}

// IsConfigured returns true if a vault root is set.
func (v VaultSettings) IsConfigured() bool {
	return v.Path != ""
}

// CompilerSettings holds the external Penrose compiler endpoint.
type CompilerSettings struct {
	// BaseURL is the HTTP endpoint of the compiler service.
	BaseURL string
}

// IsConfigured returns true if a compiler endpoint is set.
func (c CompilerSettings) IsConfigured() bool {
	return c.BaseURL != ""
}

// RemoteSettings holds the optional GitHub library fetcher configuration.
type RemoteSettings struct {
	// Enabled indicates whether github:// references are resolved.
	Enabled bool

	// Token is the access token for private repositories.
	Token string
}

// CacheSettings holds render cache configuration.
type CacheSettings struct {
	// Enabled indicates whether rendered SVGs are cached.
	Enabled bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Vault holds local vault settings.
	Vault VaultSettings

	// Compiler holds the external compiler endpoint settings.
	Compiler CompilerSettings

	// Remote holds the GitHub fetcher settings.
	Remote RemoteSettings

	// Cache holds render cache settings.
	Cache CacheSettings

	// Aliases is the user-maintained alias table.
	Aliases AliasTable
}

// DefaultAppSettings returns settings with sensible defaults.
// The vault path is left unconfigured; users must set it explicitly.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Vault: VaultSettings{},
		Compiler: CompilerSettings{
			BaseURL: "http://localhost:8775",
		},
		Remote: RemoteSettings{},
		Cache: CacheSettings{
			Enabled: true,
		},
		Aliases: AliasTable{},
	}
}

// AllFetcherTypes returns all available fetcher types.
func AllFetcherTypes() []FetcherType {
	return []FetcherType{
		FetcherVault,
		FetcherGitHub,
	}
}
