package services

import (
	"context"
	"sync"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
	"github.com/adityakanu/penrose-vault/internal/logger"
)

// Ensure TrioService implements the interface.
var _ driving.TrioResolver = (*TrioService)(nil)

// TrioService assembles diagram trios: parse annotations, resolve the
// alias table, fetch the referenced domain and style bodies.
type TrioService struct {
	fetcher driven.DocumentFetcher
	aliases driven.AliasStore
}

// NewTrioService creates a new trio service.
func NewTrioService(fetcher driven.DocumentFetcher, aliases driven.AliasStore) *TrioService {
	return &TrioService{
		fetcher: fetcher,
		aliases: aliases,
	}
}

// Metadata parses annotations out of diagram source without fetching.
func (s *TrioService) Metadata(substance string) domain.Metadata {
	var table domain.AliasTable
	if s.aliases != nil {
		table = s.aliases.All()
	}
	return ParseAnnotations(substance, table)
}

// Resolve assembles the trio for a piece of diagram source.
//
// The two fetches are independent: neither depends on the other's
// outcome, so they run concurrently. A failed fetch has already been
// reported through the fetcher's diagnostics side channel and leaves
// its field empty; the trio shape is always complete so the downstream
// compiler can raise its own missing-document diagnostics.
func (s *TrioService) Resolve(ctx context.Context, substance string) domain.Trio {
	meta := s.Metadata(substance)

	logger.Debug("resolving trio: domain=%q style=%q variation=%q alias=%q",
		meta.Domain, meta.Style, meta.Variation, meta.AliasName)

	var wg sync.WaitGroup
	var domainBody, styleBody string

	wg.Add(2)
	go func() {
		defer wg.Done()
		domainBody = s.fetcher.Fetch(ctx, meta.Domain)
	}()
	go func() {
		defer wg.Done()
		styleBody = s.fetcher.Fetch(ctx, meta.Style)
	}()
	wg.Wait()

	return domain.Trio{
		Substance: substance,
		Domain:    domainBody,
		Style:     styleBody,
		Variation: meta.Variation,
	}
}
