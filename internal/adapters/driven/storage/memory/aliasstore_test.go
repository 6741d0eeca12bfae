package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

func TestAliasStore_Resolve(t *testing.T) {
	store := NewAliasStore(domain.AliasTable{
		"foo": {Domain: "vectors.domain", Style: "euclidean.style"},
	})

	entry, ok := store.Resolve("foo")

	assert.True(t, ok)
	assert.Equal(t, "vectors.domain", entry.Domain)
	assert.Equal(t, "euclidean.style", entry.Style)

	_, ok = store.Resolve("missing")
	assert.False(t, ok)
}

func TestAliasStore_AllReturnsCopy(t *testing.T) {
	store := NewAliasStore(domain.AliasTable{
		"foo": {Domain: "d", Style: "s"},
	})

	table := store.All()
	table["foo"] = domain.AliasEntry{Domain: "mutated", Style: "mutated"}

	entry, _ := store.Resolve("foo")
	assert.Equal(t, "d", entry.Domain, "mutating the returned table must not affect the store")
}
