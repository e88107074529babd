package render

import (
	"sort"

	"github.com/starford/raido/internal/parser"
	"github.com/starford/raido/internal/vault"
)

type entry struct {
	node vault.Node
	name string
	meta parser.Meta
}

// sortChildren orders a folder's children: explicitly prioritized entries
// first (ascending priority), then the rest, ties and the unprioritized
// bulk in locale-aware numeric name order ("Ch2" before "Ch10").
func (r *Renderer) sortChildren(children []vault.Node) []entry {
	entries := make([]entry, 0, len(children))
	for _, c := range children {
		e := entry{node: c, name: c.Name}
		switch c.Kind {
		case vault.KindDocument:
			e.name = c.Base()
			if c.IsMarkdown() {
				e.meta = r.meta(c.Path)
			}
		case vault.KindFolder:
			if notePath := vault.FolderNotePath(c.Path, r.set.Convention()); notePath != "" {
				e.meta = r.meta(notePath)
			}
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.meta.HasPriority && !b.meta.HasPriority:
			return true
		case !a.meta.HasPriority && b.meta.HasPriority:
			return false
		case a.meta.HasPriority && b.meta.HasPriority && a.meta.Priority != b.meta.Priority:
			return a.meta.Priority < b.meta.Priority
		}
		return r.coll.CompareString(a.name, b.name) < 0
	})
	return entries
}
