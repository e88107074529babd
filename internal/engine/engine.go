// Package engine wires the index machinery together: flag scanning of
// edited documents, tree regeneration, upward propagation, and the
// debounced file-watcher loop that drives it all.
package engine

import (
	"errors"
	"log/slog"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/checksum"
	"github.com/starford/raido/internal/marker"
	"github.com/starford/raido/internal/patch"
	"github.com/starford/raido/internal/render"
	"github.com/starford/raido/internal/settings"
	"github.com/starford/raido/internal/vault"
)

// Notify is called after a folder note has been rewritten on disk.
type Notify func(kind marker.Kind, notePath string)

// Engine owns the regeneration logic. All methods run on the caller's
// goroutine; the watcher loop is the only long-lived caller.
type Engine struct {
	vault  vault.Provider
	store  *settings.Store
	logger *slog.Logger
	notify Notify
}

// New creates an engine. notify may be nil.
func New(v vault.Provider, st *settings.Store, logger *slog.Logger, notify Notify) *Engine {
	return &Engine{vault: v, store: st, logger: logger, notify: notify}
}

// Preview renders a folder's tree without touching any document.
func (e *Engine) Preview(folder string) (string, error) {
	return render.New(e.vault, e.store.Current()).Folder(folder)
}

// Regenerate re-renders folder's tree into its folder note, if that note
// exists and carries a marker of either kind. It returns the regenerated
// kind, or marker.None when nothing was done.
func (e *Engine) Regenerate(folder string) (marker.Kind, error) {
	s := e.store.Current()

	notePath := vault.FolderNotePath(folder, s.Convention())
	if notePath == "" {
		return marker.None, nil
	}
	data, err := e.vault.Read(notePath)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return marker.None, nil
		}
		return marker.None, err
	}
	kind := s.Markers().Classify(string(data))
	if kind == marker.None {
		return marker.None, nil
	}
	return kind, e.patchNote(folder, notePath, string(data), kind, s)
}

// patchNote renders folder's tree and splices it into note text already
// known to carry a marker.
func (e *Engine) patchNote(folder, notePath, text string, kind marker.Kind, s *settings.Settings) error {
	tree, err := render.New(e.vault, s).Folder(folder)
	if err != nil {
		return err
	}

	patched, err := patch.Apply(text, tree, s.Markers())
	if err != nil {
		// A prior classification guaranteed an anchor; a broken block is an
		// internal invariant failure. Log and leave the document untouched.
		e.logger.Warn("engine: patch aborted",
			slog.String("note", notePath),
			slog.String("error", err.Error()))
		return nil
	}

	if checksum.Sum([]byte(patched)) == checksum.Sum([]byte(text)) {
		return nil
	}
	if err := e.vault.Write(notePath, []byte(patched)); err != nil {
		return err
	}

	e.logger.Debug("engine: note regenerated",
		slog.String("note", notePath), slog.String("kind", kind.String()))
	if e.notify != nil {
		e.notify(kind, notePath)
	}
	return nil
}

// FullPass regenerates every marked folder note in the vault, depth-first.
// Used at startup and after a settings change.
func (e *Engine) FullPass() error {
	s := e.store.Current()
	return e.fullPass("", s)
}

func (e *Engine) fullPass(folder string, s *settings.Settings) error {
	if folder != "" {
		if s.IgnoreMatch(folder) {
			return nil
		}
		if _, err := e.Regenerate(folder); err != nil {
			e.logger.Warn("engine: full pass regenerate failed",
				slog.String("folder", folder), slog.String("error", err.Error()))
		}
	}
	children, err := e.vault.Children(folder)
	if err != nil {
		return err
	}
	for _, c := range children {
		if c.Kind != vault.KindFolder {
			continue
		}
		if err := e.fullPass(c.Path, s); err != nil {
			return err
		}
	}
	return nil
}
