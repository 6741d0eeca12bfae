// Package vault resolves document references against a local note vault.
package vault

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
	"github.com/adityakanu/penrose-vault/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

// Fetcher reads domain and style documents from the vault root.
//
// It honours the never-fail fetch contract: every failure (empty
// reference, escape above the root, missing file, read error) is
// reported through the diagnostics sink and yields "".
type Fetcher struct {
	root        string
	diagnostics driven.Diagnostics
}

// NewFetcher creates a fetcher rooted at the vault directory.
// A nil diagnostics sink falls back to the verbose logger.
func NewFetcher(root string, diagnostics driven.Diagnostics) *Fetcher {
	if diagnostics == nil {
		diagnostics = driven.DiagnosticsFunc(func(ref, message string) {
			logger.Warn("fetch %q: %s", ref, message)
		})
	}
	return &Fetcher{root: root, diagnostics: diagnostics}
}

// Fetch returns the document body for a reference, or "" on failure.
// References resolve relative to the vault root; a reference without an
// extension also tries the vault-style ".md" shorthand.
func (f *Fetcher) Fetch(ctx context.Context, ref string) string {
	if err := ctx.Err(); err != nil {
		f.diagnostics.Report(ref, "fetch cancelled: "+err.Error())
		return ""
	}
	if ref == "" {
		f.diagnostics.Report(ref, "empty document reference")
		return ""
	}

	path, ok := f.resolve(ref)
	if !ok {
		f.diagnostics.Report(ref, "reference escapes the vault root")
		return ""
	}

	body, err := readFirst(path, path+".md")
	if err != nil {
		if os.IsNotExist(err) {
			f.diagnostics.Report(ref, "file not found at reference")
		} else {
			f.diagnostics.Report(ref, "read failed: "+err.Error())
		}
		return ""
	}
	return body
}

// resolve joins the reference onto the root and rejects path escapes.
func (f *Fetcher) resolve(ref string) (string, bool) {
	path := filepath.Join(f.root, filepath.FromSlash(ref))
	rel, err := filepath.Rel(f.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}

// readFirst returns the contents of the first path that reads cleanly.
func readFirst(paths ...string) (string, error) {
	var lastErr error
	for _, p := range paths {
		body, err := os.ReadFile(p)
		if err == nil {
			return string(body), nil
		}
		lastErr = err
	}
	return "", lastErr
}
