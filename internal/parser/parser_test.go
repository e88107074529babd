package parser

import "testing"

func TestExtractTitleAndPriority(t *testing.T) {
	data := []byte("---\ntitle: Chapter One\npriority: 2\n---\n\n# Body\n")
	m := Extract(data)
	if m.Title != "Chapter One" {
		t.Errorf("Title = %q", m.Title)
	}
	if !m.HasPriority || m.Priority != 2 {
		t.Errorf("Priority = %v (has %v)", m.Priority, m.HasPriority)
	}
}

func TestExtractFloatPriority(t *testing.T) {
	m := Extract([]byte("---\npriority: 1.5\n---\nbody"))
	if !m.HasPriority || m.Priority != 1.5 {
		t.Errorf("Priority = %v (has %v)", m.Priority, m.HasPriority)
	}
}

func TestExtractNoFrontmatter(t *testing.T) {
	m := Extract([]byte("# Just a heading\n\ntext"))
	if m.Title != "" || m.HasPriority {
		t.Errorf("expected zero meta, got %+v", m)
	}
}

func TestExtractUnclosedFrontmatter(t *testing.T) {
	m := Extract([]byte("---\ntitle: Broken\n"))
	if m.Title != "" {
		t.Errorf("unclosed frontmatter should yield zero meta, got %+v", m)
	}
}

func TestExtractInvalidYAML(t *testing.T) {
	m := Extract([]byte("---\n: : :\n---\nbody"))
	if m.Title != "" || m.HasPriority {
		t.Errorf("invalid YAML should yield zero meta, got %+v", m)
	}
}

func TestExtractNonNumericPriorityIgnored(t *testing.T) {
	m := Extract([]byte("---\npriority: high\n---\nbody"))
	if m.HasPriority {
		t.Error("string priority should be ignored")
	}
}
