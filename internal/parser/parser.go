// Package parser extracts display metadata from Markdown frontmatter.
package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta holds the frontmatter fields the renderer cares about: an optional
// display title and an optional numeric sort priority.
type Meta struct {
	Title       string
	Priority    float64
	HasPriority bool
}

// Extract parses the leading YAML frontmatter of raw Markdown bytes and
// returns its title and priority fields. Missing or malformed frontmatter
// yields a zero Meta; metadata is best-effort by design.
func Extract(data []byte) Meta {
	fm := splitFrontmatter(data)
	if fm == nil {
		return Meta{}
	}

	var m Meta
	if t, ok := fm["title"]; ok {
		if s, ok := t.(string); ok {
			m.Title = strings.TrimSpace(s)
		}
	}
	if p, ok := fm["priority"]; ok {
		switch v := p.(type) {
		case int:
			m.Priority = float64(v)
			m.HasPriority = true
		case float64:
			m.Priority = v
			m.HasPriority = true
		}
	}
	return m
}

// splitFrontmatter returns the YAML frontmatter map (between leading ---
// delimiters), or nil when none is present or it fails to parse.
func splitFrontmatter(data []byte) map[string]interface{} {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil
	}

	var fm map[string]interface{}
	if err := yaml.Unmarshal(rest[:idx], &fm); err != nil {
		return nil
	}
	return fm
}
