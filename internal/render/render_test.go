package render

import (
	"strings"
	"testing"

	"github.com/starford/raido/internal/settings"
	"github.com/starford/raido/internal/testutil"
	"github.com/starford/raido/internal/vault"
)

func renderer(t *testing.T, dir string, s settings.Settings) *Renderer {
	t.Helper()
	store, err := vault.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return New(store, testutil.Store(t, s).Current())
}

func TestRenderBasicTree(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/note.md", "hi")
	testutil.WriteFile(t, dir, "A/B/deep.md", "deep")

	got, err := renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatalf("Folder: %v", err)
	}
	want := strings.Join([]string{
		"- **B**",
		"\t- [[deep]]",
		"- [[note]]",
	}, "\n")
	if got != want {
		t.Errorf("tree mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/x.md", "x")
	testutil.WriteFile(t, dir, "A/B/y.md", "y")

	r := renderer(t, dir, settings.Default())
	first, err := r.Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("renders differ:\n%s\n---\n%s", first, second)
	}
}

// A Subindex-marked folder note is a pass-through: the ancestor's tree
// descends past it. An Index-marked one halts descent at its folder.
func TestBoundaryAsymmetry(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% Begin Index %%\n\n%% End Index %%\n")
	testutil.WriteFile(t, dir, "A/B/B.md", "%% Begin Subindex %%\n\n%% End Subindex %%\n")
	testutil.WriteFile(t, dir, "A/B/C/file.md", "leaf")

	got, err := renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "[[file]]") {
		t.Errorf("subindex must not stop descent; tree:\n%s", got)
	}

	// Flip B's note to Index: descent must now stop at the link to B.
	testutil.WriteFile(t, dir, "A/B/B.md", "%% Begin Index %%\n\n%% End Index %%\n")
	got, err = renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "[[file]]") {
		t.Errorf("index must stop descent; tree:\n%s", got)
	}
	if !strings.Contains(got, "**[[B]]**") {
		t.Errorf("stopped folder must still be linked; tree:\n%s", got)
	}
}

func TestBareTokenAlsoStopsDescent(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/B/B.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/B/C/file.md", "leaf")

	got, err := renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "[[file]]") {
		t.Errorf("pending index (bare token) must stop descent; tree:\n%s", got)
	}
}

func TestStopAtFolderNotesSetting(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/B/B.md", "no marker at all")
	testutil.WriteFile(t, dir, "A/B/inner.md", "x")

	s := settings.Default()
	s.StopAtFolderNotes = true
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "[[inner]]") {
		t.Errorf("stop_at_folder_notes must halt at every folder note; tree:\n%s", got)
	}
}

func TestNumericSortOrder(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/Ch1.md", "")
	testutil.WriteFile(t, dir, "A/Ch10.md", "")
	testutil.WriteFile(t, dir, "A/Ch2.md", "")

	got, err := renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	want := "- [[Ch1]]\n- [[Ch2]]\n- [[Ch10]]"
	if got != want {
		t.Errorf("numeric sort wrong:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrioritySortsAheadOfName(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/Alpha.md", "")
	testutil.WriteFile(t, dir, "A/Zeta.md", "---\npriority: 1\n---\n")

	got, err := renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	want := "- [[Zeta]]\n- [[Alpha]]"
	if got != want {
		t.Errorf("priority sort wrong:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestIgnoreFilter(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/keep.md", "")
	testutil.WriteFile(t, dir, "A/drafts/wip.md", "")

	s := settings.Default()
	s.IgnorePaths = []string{`/drafts`}
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "drafts") || strings.Contains(got, "wip") {
		t.Errorf("ignored path leaked into tree:\n%s", got)
	}
	if got != "- [[keep]]" {
		t.Errorf("tree = %q", got)
	}
}

func TestPathLinksPercentEncoded(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/Sub Folder/My Note.md", "")

	s := settings.Default()
	s.UseWikiLinks = false
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "[My Note](./Sub%20Folder/My%20Note.md)") {
		t.Errorf("path link not encoded relative to root:\n%s", got)
	}
}

func TestTitleMetadataOverridesLinkText(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/note.md", "---\ntitle: Fancy Title\n---\n")

	s := settings.Default()
	s.UseTitleMetadata = true
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if got != "- [[note|Fancy Title]]" {
		t.Errorf("wiki alias wrong: %q", got)
	}

	s.UseWikiLinks = false
	got, err = renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if got != "- [Fancy Title](./note.md)" {
		t.Errorf("path link text wrong: %q", got)
	}
}

func TestNonMarkdownFiles(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/scan.pdf", "binary")

	got, err := renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("non-markdown hidden by default, got %q", got)
	}

	s := settings.Default()
	s.ShowNonMarkdown = true
	got, err = renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if got != "- scan.pdf" {
		t.Errorf("non-markdown line = %q", got)
	}
}

func TestShowFolderNotesInListing(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/x.md", "")

	s := settings.Default()
	s.ShowFolderNotes = true
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "[[A]]") {
		t.Errorf("folder note should be listed when enabled:\n%s", got)
	}
}

func TestShowEnclosingNote(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/x.md", "")

	s := settings.Default()
	s.ShowEnclosingNote = true
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	want := "- **[[A]]**\n\t- [[x]]"
	if got != want {
		t.Errorf("enclosing note tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmptySubfolderRendersNameOnly(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.Mkdir(t, dir, "A/Empty")

	got, err := renderer(t, dir, settings.Default()).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	if got != "- **Empty**" {
		t.Errorf("empty folder line = %q", got)
	}
}

func TestOutsideConvention(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/B.md", "sub note, no marker")
	testutil.WriteFile(t, dir, "A/B/inner.md", "")

	s := settings.Default()
	s.FolderNoteMode = string(vault.ConventionOutside)
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	// B.md represents folder A/B: it appears as the bold folder link, not as
	// a separate document bullet.
	want := "- **[[B]]**\n\t- [[inner]]"
	if got != want {
		t.Errorf("outside convention tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSpaceIndentation(t *testing.T) {
	dir, _ := testutil.TestVault(t)
	testutil.WriteFile(t, dir, "A/A.md", "%% index %%\n")
	testutil.WriteFile(t, dir, "A/B/x.md", "")

	s := settings.Default()
	s.UseSpaceIndentation = true
	s.SpaceIndentationWidth = 4
	got, err := renderer(t, dir, s).Folder("A")
	if err != nil {
		t.Fatal(err)
	}
	want := "- **B**\n    - [[x]]"
	if got != want {
		t.Errorf("space indent tree:\ngot:\n%q\nwant:\n%q", got, want)
	}
}
