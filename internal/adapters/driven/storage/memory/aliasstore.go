package memory

import (
	"sync"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
)

// Ensure AliasStore implements the interface.
var _ driven.AliasStore = (*AliasStore)(nil)

// AliasStore is an in-memory implementation of driven.AliasStore.
type AliasStore struct {
	mu    sync.RWMutex
	table domain.AliasTable
}

// NewAliasStore creates an alias store seeded with the given table.
func NewAliasStore(table domain.AliasTable) *AliasStore {
	if table == nil {
		table = domain.AliasTable{}
	}
	return &AliasStore{table: table}
}

// Resolve looks up an alias by name.
func (s *AliasStore) Resolve(name string) (domain.AliasEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Resolve(name)
}

// All returns a copy of the current alias table.
func (s *AliasStore) All() domain.AliasTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.AliasTable, len(s.table))
	for name, entry := range s.table {
		out[name] = entry
	}
	return out
}

// Put adds or replaces an entry. Test helper; production mutation goes
// through the settings service.
func (s *AliasStore) Put(name string, entry domain.AliasEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[name] = entry
}
