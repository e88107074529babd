package vault

import "testing"

func TestParent(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"a.md", ""},
		{"a/b.md", "a"},
		{"a/b/c", "a/b"},
	}
	for _, c := range cases {
		if got := Parent(c.in); got != c.want {
			t.Errorf("Parent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFolderNotePath(t *testing.T) {
	if got := FolderNotePath("topics/go", ConventionInside); got != "topics/go/go.md" {
		t.Errorf("inside: got %q", got)
	}
	if got := FolderNotePath("topics/go", ConventionOutside); got != "topics/go.md" {
		t.Errorf("outside: got %q", got)
	}
	if got := FolderNotePath("", ConventionInside); got != "" {
		t.Errorf("root inside: got %q, want empty", got)
	}
	if got := FolderNotePath("", ConventionOutside); got != "" {
		t.Errorf("root outside: got %q, want empty", got)
	}
}

func TestBoundFolder_Inside(t *testing.T) {
	if f, ok := BoundFolder("topics/go/go.md", ConventionInside); !ok || f != "topics/go" {
		t.Errorf("got %q, %v", f, ok)
	}
	if _, ok := BoundFolder("topics/go/notes.md", ConventionInside); ok {
		t.Error("name mismatch should not bind")
	}
	if _, ok := BoundFolder("go.md", ConventionInside); ok {
		t.Error("root-level document should not bind inside")
	}
	if _, ok := BoundFolder("topics/go/go.txt", ConventionInside); ok {
		t.Error("non-markdown should not bind")
	}
}

func TestBoundFolder_Outside(t *testing.T) {
	if f, ok := BoundFolder("topics/go.md", ConventionOutside); !ok || f != "topics/go" {
		t.Errorf("got %q, %v", f, ok)
	}
	if f, ok := BoundFolder("go.md", ConventionOutside); !ok || f != "go" {
		t.Errorf("root-level outside: got %q, %v", f, ok)
	}
}

func TestNodeAccessors(t *testing.T) {
	d := Document("a/Note File.md")
	if d.Base() != "Note File" {
		t.Errorf("Base = %q", d.Base())
	}
	if d.Ext() != ".md" {
		t.Errorf("Ext = %q", d.Ext())
	}
	if !d.IsMarkdown() {
		t.Error("IsMarkdown = false")
	}
	if Document("a/img.png").IsMarkdown() {
		t.Error("png counted as markdown")
	}
	if !Folder("").IsRoot() {
		t.Error("empty folder path should be root")
	}
	if Folder("a").IsRoot() {
		t.Error("non-empty folder path is not root")
	}
}
