package engine

import (
	"log/slog"

	"github.com/starford/raido/internal/marker"
	"github.com/starford/raido/internal/vault"
)

// Match is the tagged result of an upward marker search: the folder whose
// note carries a marker, the note's path, and the marker kind.
type Match struct {
	Kind   marker.Kind
	Folder string
	Note   string
}

// searchUp walks from folder toward the vault root and returns the first
// folder whose note carries a marker of either kind. The second result is
// false when the walk reaches the root without a match.
func (e *Engine) searchUp(folder string) (Match, bool) {
	s := e.store.Current()
	set := s.Markers()

	for f := folder; ; f = vault.Parent(f) {
		note := vault.FolderNotePath(f, s.Convention())
		if note != "" {
			if data, err := e.vault.Read(note); err == nil {
				if kind := set.Classify(string(data)); kind != marker.None {
					return Match{Kind: kind, Folder: f, Note: note}, true
				}
			}
		}
		if f == "" {
			return Match{}, false
		}
	}
}

// PropagateUp finds the nearest marked folder note at or above folder,
// regenerates it, then repeats one level above the matched folder. The
// chain runs to the root, innermost first; each regeneration is
// independent and idempotent, so overlapping triggers just converge.
func (e *Engine) PropagateUp(folder string, includeSelf bool) {
	cur := folder
	if !includeSelf {
		if cur == "" {
			return
		}
		cur = vault.Parent(cur)
	}

	for {
		m, ok := e.searchUp(cur)
		if !ok {
			return
		}
		if _, err := e.Regenerate(m.Folder); err != nil {
			e.logger.Warn("engine: propagation regenerate failed",
				slog.String("folder", m.Folder), slog.String("error", err.Error()))
		}
		if m.Folder == "" {
			return
		}
		cur = vault.Parent(m.Folder)
	}
}
