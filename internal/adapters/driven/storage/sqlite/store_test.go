package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_PutAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "key-1", "<svg>one</svg>"))

	svg, ok, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<svg>one</svg>", svg)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PutUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "key-1", "<svg>old</svg>"))

	require.NoError(t, store.Put(ctx, "key-1", "<svg>new</svg>"))

	svg, ok, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "<svg>new</svg>", svg)
}

func TestStore_Purge(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "key-1", "<svg/>"))
	require.NoError(t, store.Put(ctx, "key-2", "<svg/>"))

	require.NoError(t, store.Purge(ctx))

	_, ok, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(context.Background(), "key-1", "<svg/>"))
	require.NoError(t, first.Close())

	// Reopening must not re-run applied migrations or lose data.
	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	svg, ok, err := second.Get(context.Background(), "key-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<svg/>", svg)
}
