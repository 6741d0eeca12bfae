// Package fetch composes the document fetchers behind a single
// DocumentFetcher, routing each reference by its scheme.
package fetch

import (
	"context"

	"github.com/adityakanu/penrose-vault/internal/adapters/driven/github"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
)

// Ensure Router implements the interface.
var _ driven.DocumentFetcher = (*Router)(nil)

// Router dispatches github:// references to the remote fetcher and
// everything else to the local one. The never-fail fetch contract is
// inherited from the underlying fetchers.
type Router struct {
	local  driven.DocumentFetcher
	remote driven.DocumentFetcher
}

// NewRouter creates a router over the local fetcher and an optional
// remote one. With a nil remote, github:// references fall through to
// the local fetcher, which reports them as not found.
func NewRouter(local, remote driven.DocumentFetcher) *Router {
	return &Router{local: local, remote: remote}
}

// Fetch returns the document body for a reference, or "" on failure.
func (r *Router) Fetch(ctx context.Context, ref string) string {
	if r.remote != nil && github.Handles(ref) {
		return r.remote.Fetch(ctx, ref)
	}
	return r.local.Fetch(ctx, ref)
}
