package vault

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/adityakanu/penrose-vault/internal/logger"
)

// defaultDebounce coalesces editor write bursts into one re-render.
const defaultDebounce = 250 * time.Millisecond

// Watcher watches the vault for markdown changes and emits the changed
// note paths, debounced per file.
type Watcher struct {
	root     string
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher creates a watcher for the vault root.
func NewWatcher(root string) *Watcher {
	return &Watcher{
		root:     root,
		debounce: defaultDebounce,
		pending:  make(map[string]*time.Timer),
	}
}

// Watch blocks until the context is cancelled, invoking onChange with
// the path of each changed markdown file. New subdirectories are picked
// up as they appear.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := addRecursive(fw, w.root); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(fw, event, onChange)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("vault watch error: %v", err)
		}
	}
}

// handle routes a single fsnotify event.
func (w *Watcher) handle(fw *fsnotify.Watcher, event fsnotify.Event, onChange func(path string)) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(fw, event.Name); err != nil {
				logger.Warn("watching new directory %s: %v", event.Name, err)
			}
			return
		}
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}
	if !isMarkdown(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path := event.Name
	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		onChange(path)
	})
}

// addRecursive registers a directory tree with the fsnotify watcher.
// Hidden directories (dotfiles) are skipped, matching vault conventions.
func addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

// isMarkdown reports whether a path looks like a vault note.
func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
