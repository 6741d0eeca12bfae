package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"golang.org/x/time/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDiagnostics captures reported fetch failures.
type recordingDiagnostics struct {
	mu      sync.Mutex
	reports []string
}

func (d *recordingDiagnostics) Report(ref, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reports = append(d.reports, ref+": "+message)
}

func (d *recordingDiagnostics) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.reports)
}

func TestHandles(t *testing.T) {
	assert.True(t, Handles("github://acme/diagrams/vectors.domain"))
	assert.False(t, Handles("vectors.domain"))
	assert.False(t, Handles(""))
}

func TestSplitRef(t *testing.T) {
	t.Run("valid reference", func(t *testing.T) {
		owner, repo, path, ok := splitRef("github://acme/diagrams/lib/vectors.domain")

		require.True(t, ok)
		assert.Equal(t, "acme", owner)
		assert.Equal(t, "diagrams", repo)
		assert.Equal(t, "lib/vectors.domain", path)
	})

	t.Run("missing path", func(t *testing.T) {
		_, _, _, ok := splitRef("github://acme/diagrams")
		assert.False(t, ok)
	})

	t.Run("not a github reference", func(t *testing.T) {
		_, _, _, ok := splitRef("vectors.domain")
		assert.False(t, ok)
	})
}

// newTestFetcher points the go-github client at a local test server.
func newTestFetcher(t *testing.T, handler http.Handler, diags *recordingDiagnostics) *Fetcher {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	fetcher := NewFetcher("", diags)
	fetcher.limiter = rate.NewLimiter(rate.Inf, 1)

	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	fetcher.gh.BaseURL = base
	return fetcher
}

func TestFetcher_Fetch(t *testing.T) {
	diags := &recordingDiagnostics{}
	fetcher := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Path, "/repos/acme/diagrams/contents/vectors.domain")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":     "file",
			"encoding": "base64",
			"name":     "vectors.domain",
			"path":     "vectors.domain",
			"content":  base64.StdEncoding.EncodeToString([]byte("type Vector")),
		})
	}), diags)

	body := fetcher.Fetch(context.Background(), "github://acme/diagrams/vectors.domain")

	assert.Equal(t, "type Vector", body)
	assert.Equal(t, 0, diags.count())
}

func TestFetcher_Fetch_Failures(t *testing.T) {
	diags := &recordingDiagnostics{}
	fetcher := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}), diags)
	ctx := context.Background()

	t.Run("missing file reports and returns empty", func(t *testing.T) {
		body := fetcher.Fetch(ctx, "github://acme/diagrams/missing.domain")

		assert.Empty(t, body)
		assert.Equal(t, 1, diags.count())
	})

	t.Run("malformed reference", func(t *testing.T) {
		before := diags.count()

		body := fetcher.Fetch(ctx, "github://acme")

		assert.Empty(t, body)
		assert.Equal(t, before+1, diags.count())
	})

	t.Run("empty reference", func(t *testing.T) {
		before := diags.count()

		body := fetcher.Fetch(ctx, "")

		assert.Empty(t, body)
		assert.Equal(t, before+1, diags.count())
	})
}
