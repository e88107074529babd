// Package render produces the textual tree block for a folder: filtered,
// ordered, linked, and indented per the active settings.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/starford/raido/internal/marker"
	"github.com/starford/raido/internal/parser"
	"github.com/starford/raido/internal/settings"
	"github.com/starford/raido/internal/vault"
)

// Renderer renders folder trees. Not safe for concurrent use (the collator
// is stateful); the engine is single-threaded anyway.
type Renderer struct {
	vault vault.Provider
	set   *settings.Settings
	coll  *collate.Collator
}

// New creates a renderer bound to a provider and a settings snapshot.
func New(p vault.Provider, s *settings.Settings) *Renderer {
	return &Renderer{
		vault: p,
		set:   s,
		coll:  collate.New(language.Und, collate.Numeric, collate.Loose),
	}
}

// Folder renders the full tree for a folder. The result carries no leading
// or trailing newline; an empty string means nothing was renderable.
func (r *Renderer) Folder(folder string) (string, error) {
	node, err := r.vault.Stat(folder)
	if err != nil {
		return "", err
	}
	if node.Kind != vault.KindFolder {
		return "", fmt.Errorf("render: %s is not a folder", folder)
	}
	text, _, err := r.render(folder, node, 0, true)
	return text, err
}

// render walks one node depth-first, pre-order. The bool result is false
// when the node contributes nothing (ignored, filtered, or empty).
func (r *Renderer) render(root string, n vault.Node, depth int, isTop bool) (string, bool, error) {
	if n.Path != "" && r.set.IgnoreMatch(n.Path) {
		return "", false, nil
	}
	if n.Kind == vault.KindDocument {
		line, ok := r.documentLine(root, n, depth)
		return line, ok, nil
	}
	return r.folder(root, n, depth, isTop)
}

func (r *Renderer) folder(root string, n vault.Node, depth int, isTop bool) (string, bool, error) {
	notePath := vault.FolderNotePath(n.Path, r.set.Convention())
	noteText, hasNote := r.readNote(notePath)

	showOwn := !n.IsRoot() && (!isTop || r.set.ShowEnclosingNote)

	var lines []string
	if showOwn {
		lines = append(lines, r.folderLine(root, n, notePath, hasNote, depth))
	}

	// An Index-marked folder note is itself a populated or pending index:
	// link to it and stop. A Subindex note renders its own block but does
	// not halt this tree, so descent continues past it.
	if !isTop && hasNote {
		if r.set.StopAtFolderNotes || r.set.Markers().Classify(noteText) == marker.Index {
			return strings.Join(lines, "\n"), true, nil
		}
	}

	children, err := r.vault.Children(n.Path)
	if err != nil {
		return "", false, err
	}
	children = r.excludeFolderNotes(n, children)
	entries := r.sortChildren(children)

	childDepth := depth
	if showOwn {
		childDepth = depth + 1
	}
	for _, e := range entries {
		text, ok, err := r.render(root, e.node, childDepth, false)
		if err != nil {
			return "", false, err
		}
		if ok && text != "" {
			lines = append(lines, text)
		}
	}

	if len(lines) == 0 {
		return "", false, nil
	}
	return strings.Join(lines, "\n"), true, nil
}

// excludeFolderNotes drops each folder's representative note from the
// listing it would be double-represented in: the folder's own note under
// the inside convention, a subfolder's note under the outside convention.
func (r *Renderer) excludeFolderNotes(n vault.Node, children []vault.Node) []vault.Node {
	if r.set.ShowFolderNotes {
		return children
	}
	conv := r.set.Convention()

	folders := make(map[string]struct{})
	for _, c := range children {
		if c.Kind == vault.KindFolder {
			folders[c.Path] = struct{}{}
		}
	}

	out := children[:0]
	for _, c := range children {
		if c.Kind == vault.KindDocument {
			if bound, ok := vault.BoundFolder(c.Path, conv); ok {
				switch conv {
				case vault.ConventionInside:
					if bound == n.Path {
						continue
					}
				case vault.ConventionOutside:
					if _, sibling := folders[bound]; sibling {
						continue
					}
				}
			}
		}
		out = append(out, c)
	}
	return out
}

func (r *Renderer) documentLine(root string, n vault.Node, depth int) (string, bool) {
	if !n.IsMarkdown() {
		if !r.set.ShowNonMarkdown {
			return "", false
		}
		return r.bullet(depth, n.Name), true
	}
	return r.bullet(depth, r.link(root, n)), true
}

func (r *Renderer) folderLine(root string, n vault.Node, notePath string, hasNote bool, depth int) string {
	if hasNote {
		return r.bullet(depth, "**"+r.link(root, vault.Document(notePath))+"**")
	}
	return r.bullet(depth, "**"+n.Name+"**")
}

func (r *Renderer) bullet(depth int, text string) string {
	return strings.Repeat(r.set.Indent(), depth) + "- " + text
}

// link renders a Markdown document reference in the configured style.
func (r *Renderer) link(root string, n vault.Node) string {
	title := ""
	if r.set.UseTitleMetadata {
		title = r.meta(n.Path).Title
	}

	if r.set.UseWikiLinks {
		if title != "" && title != n.Base() {
			return "[[" + n.Base() + "|" + title + "]]"
		}
		return "[[" + n.Base() + "]]"
	}

	text := title
	if text == "" {
		text = n.Base()
	}
	return "[" + text + "](" + relativeURL(root, n.Path) + ")"
}

// relativeURL percent-encodes a vault path segment-by-segment, relative to
// the rendered root folder.
func relativeURL(root, path string) string {
	rel := path
	if root != "" {
		rel = strings.TrimPrefix(path, root+"/")
	}
	segs := strings.Split(rel, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return "./" + strings.Join(segs, "/")
}

func (r *Renderer) readNote(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	data, err := r.vault.Read(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (r *Renderer) meta(path string) parser.Meta {
	data, err := r.vault.Read(path)
	if err != nil {
		return parser.Meta{}
	}
	return parser.Extract(data)
}
