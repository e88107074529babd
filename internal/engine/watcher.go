package engine

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/raido/internal/vault"
)

// Watch starts an fsnotify watcher on the vault root and processes file
// change events until ctx is cancelled. Create, remove, and rename events
// feed the change coalescer, which releases one propagation pass per quiet
// period; write events on Markdown files feed the flag scanner directly.
//
// New directories created at runtime are automatically added to the watch
// list. The watcher is only armed after the initial directory registration
// completes, so no startup event storm reaches the coalescer.
func (e *Engine) Watch(ctx context.Context, root string, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	co := NewCoalescer(debounce)
	defer co.Stop()

	e.logger.Info("watcher: started",
		slog.String("root", root),
		slog.Duration("debounce", debounce))

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("watcher: stopped")
			return nil

		case <-co.C():
			folders := co.Drain()
			e.logger.Debug("watcher: flushing pending folders", slog.Int("count", len(folders)))
			for _, folder := range folders {
				e.PropagateUp(folder, true)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name
			// Skip hidden entries, including our own in-flight temp files.
			if strings.HasPrefix(filepath.Base(absPath), ".") {
				continue
			}
			rel, relErr := filepath.Rel(root, absPath)
			if relErr != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			switch {
			case ev.Op&fsnotify.Create != 0:
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						e.logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						e.logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
				}
				co.Add(vault.Parent(rel))

			case ev.Op&fsnotify.Write != 0:
				if !strings.HasSuffix(rel, ".md") {
					continue
				}
				if scanErr := e.ScanDocument(rel); scanErr != nil {
					e.logger.Warn("watcher: scan failed",
						slog.String("path", rel),
						slog.String("error", scanErr.Error()))
				}

			case ev.Op&fsnotify.Remove != 0:
				co.Add(vault.Parent(rel))

			case ev.Op&fsnotify.Rename != 0:
				// fsnotify fires Rename on the OLD path only. The new path
				// arrives as a separate Create event (if it stays within a
				// watched dir), which enqueues the new parent then.
				co.Add(vault.Parent(rel))
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return w.Add(path)
		}
		return nil
	})
}
