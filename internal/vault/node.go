// Package vault defines the file-tree view of a Markdown vault: the
// Document/Folder node model, folder-note binding arithmetic, and the
// Provider abstraction over the underlying file system.
package vault

import (
	"path"
	"strings"
)

// Kind discriminates the two node variants.
type Kind int

const (
	// KindDocument is a leaf file.
	KindDocument Kind = iota
	// KindFolder is an internal directory node.
	KindFolder
)

// Convention selects where a folder's representative note lives.
type Convention string

const (
	// ConventionInside binds folder a/b to a/b/b.md.
	ConventionInside Convention = "inside"
	// ConventionOutside binds folder a/b to a/b.md.
	ConventionOutside Convention = "outside"
)

// Node is a read-only view of one vault entry. Paths are vault-relative,
// slash-separated; the empty path is the vault root folder. Nodes are
// re-resolved from the Provider on every pass, never cached across passes.
type Node struct {
	Kind Kind
	Path string
	Name string
}

// Document builds a document node from its vault-relative path.
func Document(p string) Node {
	return Node{Kind: KindDocument, Path: p, Name: path.Base(p)}
}

// Folder builds a folder node from its vault-relative path.
func Folder(p string) Node {
	n := Node{Kind: KindFolder, Path: p}
	if p != "" {
		n.Name = path.Base(p)
	}
	return n
}

// Base returns the node name without its extension.
func (n Node) Base() string {
	return strings.TrimSuffix(n.Name, path.Ext(n.Name))
}

// Ext returns the extension including the leading dot, or "".
func (n Node) Ext() string {
	return path.Ext(n.Name)
}

// IsMarkdown reports whether the node is a Markdown document.
func (n Node) IsMarkdown() bool {
	return n.Kind == KindDocument && strings.EqualFold(n.Ext(), ".md")
}

// IsRoot reports whether the node is the vault root folder.
func (n Node) IsRoot() bool {
	return n.Kind == KindFolder && n.Path == ""
}

// Parent returns the vault-relative path of the folder containing p.
// The parent of a top-level entry is "" (the root); Parent("") is "".
func Parent(p string) string {
	if p == "" {
		return ""
	}
	dir := path.Dir(p)
	if dir == "." {
		return ""
	}
	return dir
}

// FolderNotePath returns the path of the document representing folder under
// the given convention, or "" when no such document can exist (the root
// folder under the inside convention, any folder path under a malformed
// convention). Existence is not checked; this is pure path arithmetic.
func FolderNotePath(folder string, conv Convention) string {
	switch conv {
	case ConventionInside:
		if folder == "" {
			return ""
		}
		return folder + "/" + path.Base(folder) + ".md"
	case ConventionOutside:
		if folder == "" {
			return ""
		}
		return folder + ".md"
	default:
		return ""
	}
}

// BoundFolder returns the folder path a Markdown document would represent
// under the given convention. The second result is false when the document's
// name can never bind (non-Markdown, or inside-convention name mismatch).
// Callers must still verify the candidate folder exists for the outside
// convention.
func BoundFolder(doc string, conv Convention) (string, bool) {
	n := Document(doc)
	if !n.IsMarkdown() {
		return "", false
	}
	switch conv {
	case ConventionInside:
		parent := Parent(doc)
		if parent == "" {
			return "", false
		}
		if n.Base() != path.Base(parent) {
			return "", false
		}
		return parent, true
	case ConventionOutside:
		parent := Parent(doc)
		if parent == "" {
			return n.Base(), true
		}
		return parent + "/" + n.Base(), true
	default:
		return "", false
	}
}
