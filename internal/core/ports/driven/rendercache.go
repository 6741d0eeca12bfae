package driven

import "context"

// RenderCache stores rendered SVGs keyed by a content hash of the trio.
// A cache hit skips compile, optimize, and render for an unchanged block.
type RenderCache interface {
	// Get returns the cached SVG for a trio key, if present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores a rendered SVG under a trio key.
	Put(ctx context.Context, key, svg string) error

	// Purge removes all cached renders.
	Purge(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
