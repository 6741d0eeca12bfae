package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	_, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("vault.path", "/notes"))

	// A fresh store must see the value.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/notes", reloaded.GetString("vault.path"))
}

func TestConfigStore_AliasTableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("aliases.foo.domain", "vectors.domain"))
	require.NoError(t, store.Set("aliases.foo.style", "euclidean.style"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "vectors.domain", reloaded.GetString("aliases.foo.domain"))
	assert.Equal(t, "euclidean.style", reloaded.GetString("aliases.foo.style"))
	assert.Equal(t,
		[]string{"aliases.foo.domain", "aliases.foo.style"},
		reloaded.Keys("aliases"))
}

func TestConfigStore_SavesNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("aliases.foo.domain", "d"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[aliases.foo]", "dot keys are written as nested tables")
}

func TestConfigStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("remote.token", "secret"))

	require.NoError(t, store.Delete("remote.token"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	_, ok := reloaded.Get("remote.token")
	assert.False(t, ok)
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("cache.enabled", true))

	assert.True(t, store.GetBool("cache.enabled"))
	assert.False(t, store.GetBool("missing"))
}

func TestUnflattenMap(t *testing.T) {
	flat := map[string]any{
		"vault.path":         "/notes",
		"aliases.foo.domain": "d",
		"aliases.foo.style":  "s",
	}

	nested := unflattenMap(flat)

	aliases, ok := nested["aliases"].(map[string]any)
	require.True(t, ok)
	foo, ok := aliases["foo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "d", foo["domain"])
	assert.Equal(t, "s", foo["style"])
}
