package memory

import (
	"context"
	"sync"

	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
)

// Ensure RenderCache implements the interface.
var _ driven.RenderCache = (*RenderCache)(nil)

// RenderCache is an in-memory implementation of driven.RenderCache.
type RenderCache struct {
	mu   sync.RWMutex
	svgs map[string]string
}

// NewRenderCache creates a new in-memory render cache.
func NewRenderCache() *RenderCache {
	return &RenderCache{
		svgs: make(map[string]string),
	}
}

// Get returns the cached SVG for a trio key, if present.
func (c *RenderCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	svg, ok := c.svgs[key]
	return svg, ok, nil
}

// Put stores a rendered SVG under a trio key.
func (c *RenderCache) Put(_ context.Context, key, svg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.svgs[key] = svg
	return nil
}

// Purge removes all cached renders.
func (c *RenderCache) Purge(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.svgs = make(map[string]string)
	return nil
}

// Close is a no-op for the in-memory cache.
func (c *RenderCache) Close() error {
	return nil
}

// Len returns the number of cached entries. Test helper.
func (c *RenderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.svgs)
}
