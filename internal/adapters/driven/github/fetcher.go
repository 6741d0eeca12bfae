// Package github resolves github:// references to files in shared
// diagram library repositories.
//
// Reference shape: github://owner/repo/path/to/file. Teams keep common
// domain and style documents in a repository and point aliases at
// github:// references instead of copying the files into every vault.
package github

import (
	"context"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
	"github.com/adityakanu/penrose-vault/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

const (
	// refPrefix marks references this fetcher handles.
	refPrefix = "github://"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// fetchRate throttles content requests well below the
	// authenticated API limit (5000/hour).
	fetchRate = 1.2
)

// Fetcher resolves github:// references through the GitHub contents API.
type Fetcher struct {
	gh          *gh.Client
	limiter     *rate.Limiter
	diagnostics driven.Diagnostics
}

// NewFetcher creates a GitHub fetcher. The token may be empty for
// public repositories. A nil diagnostics sink falls back to the verbose
// logger.
func NewFetcher(token string, diagnostics driven.Diagnostics) *Fetcher {
	if diagnostics == nil {
		diagnostics = driven.DiagnosticsFunc(func(ref, message string) {
			logger.Warn("fetch %q: %s", ref, message)
		})
	}

	var client *gh.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc := oauth2.NewClient(context.Background(), ts)
		tc.Timeout = DefaultTimeout
		client = gh.NewClient(tc)
	} else {
		client = gh.NewClient(nil)
	}

	return &Fetcher{
		gh:          client,
		limiter:     rate.NewLimiter(rate.Limit(fetchRate), 1),
		diagnostics: diagnostics,
	}
}

// Handles reports whether a reference belongs to this fetcher.
func Handles(ref string) bool {
	return strings.HasPrefix(ref, refPrefix)
}

// Fetch returns the file body for a github:// reference, or "" on
// failure. The never-fail contract of driven.DocumentFetcher applies:
// failures are reported through diagnostics, never returned.
func (f *Fetcher) Fetch(ctx context.Context, ref string) string {
	if ref == "" {
		f.diagnostics.Report(ref, "empty document reference")
		return ""
	}

	owner, repo, path, ok := splitRef(ref)
	if !ok {
		f.diagnostics.Report(ref, "malformed github reference, want github://owner/repo/path")
		return ""
	}

	if err := f.limiter.Wait(ctx); err != nil {
		f.diagnostics.Report(ref, "fetch cancelled: "+err.Error())
		return ""
	}

	content, _, _, err := f.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		f.diagnostics.Report(ref, "github fetch failed: "+err.Error())
		return ""
	}
	if content == nil {
		f.diagnostics.Report(ref, "reference is a directory, not a file")
		return ""
	}

	body, err := content.GetContent()
	if err != nil {
		f.diagnostics.Report(ref, "decoding content failed: "+err.Error())
		return ""
	}
	return body
}

// splitRef parses github://owner/repo/path/to/file.
func splitRef(ref string) (owner, repo, path string, ok bool) {
	rest := strings.TrimPrefix(ref, refPrefix)
	if rest == ref {
		return "", "", "", false
	}
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
