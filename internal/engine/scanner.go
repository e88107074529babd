package engine

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/marker"
	"github.com/starford/raido/internal/patch"
	"github.com/starford/raido/internal/vault"
)

// Error comments written over a misplaced trigger token. These are the
// user-facing error channel: they show up in the user's own editor.
const (
	rootErrorComment     = "%% Error: indexes cannot be generated for the vault root. %%"
	mismatchErrorComment = "%% Error: this note is not the folder note of its folder; rename it to match. %%"
)

// ScanDocument inspects a just-modified document for a bare trigger token.
// A token in a valid folder note triggers generation and upward
// propagation; a token anywhere else is overwritten with an explanatory
// error comment. Only the first token line is ever considered.
func (e *Engine) ScanDocument(docPath string) error {
	s := e.store.Current()
	set := s.Markers()

	data, err := e.vault.Read(docPath)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	text := string(data)

	kind := marker.None
	for _, line := range strings.Split(text, "\n") {
		if k, ok := set.MatchToken(line); ok {
			kind = k
			break
		}
	}
	if kind == marker.None {
		return nil
	}

	folder, err := e.resolveFolderNote(docPath, s.Convention())
	switch {
	case err == nil:
		e.logger.Info("engine: trigger token found",
			slog.String("note", docPath), slog.String("kind", kind.String()))
		if err := e.patchNote(folder, docPath, text, kind, s); err != nil {
			return err
		}
		e.PropagateUp(folder, false)
		return nil

	case errors.Is(err, apperr.ErrRootIndex):
		e.logger.Info("engine: trigger token rejected at vault root",
			slog.String("note", docPath))
		return e.writeErrorComment(docPath, text, set, rootErrorComment)

	case errors.Is(err, apperr.ErrNotFolderNote):
		e.logger.Info("engine: trigger token in non-folder-note document",
			slog.String("note", docPath))
		return e.writeErrorComment(docPath, text, set, mismatchErrorComment)

	default:
		return err
	}
}

// resolveFolderNote returns the folder docPath represents under conv, or a
// placement error: ErrRootIndex for root-level documents, ErrNotFolderNote
// for a naming mismatch.
func (e *Engine) resolveFolderNote(docPath string, conv vault.Convention) (string, error) {
	folder, ok := vault.BoundFolder(docPath, conv)
	if ok && conv == vault.ConventionOutside {
		n, err := e.vault.Stat(folder)
		if err != nil || n.Kind != vault.KindFolder {
			ok = false
		}
	}
	if ok {
		return folder, nil
	}
	if vault.Parent(docPath) == "" {
		return "", apperr.ErrRootIndex
	}
	return "", apperr.ErrNotFolderNote
}

func (e *Engine) writeErrorComment(docPath, text string, set marker.Set, comment string) error {
	replaced, ok := patch.ReplaceTokenLine(text, set, comment)
	if !ok {
		return nil
	}
	return e.vault.Write(docPath, []byte(replaced))
}
