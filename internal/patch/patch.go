// Package patch locates a generated block (or a bare trigger token) inside
// free-form document text and splices a freshly rendered tree over it,
// leaving the surrounding text untouched.
package patch

import (
	"fmt"
	"strings"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/marker"
)

// Apply replaces the first generated block or bare trigger token in doc
// with a block wrapping tree. The block kind is taken from the matched
// line, so a document keeps the kind it was marked with. Returns
// apperr.ErrNoAnchor when the document carries neither anchor form.
func Apply(doc, tree string, set marker.Set) (string, error) {
	lines := strings.Split(doc, "\n")

	start := -1
	var kind marker.Kind
	firstTime := false
	for i, line := range lines {
		if k, ok := set.MatchToken(line); ok {
			start, kind, firstTime = i, k, true
			break
		}
		if k, ok := set.MatchLine(line); ok {
			start, kind = i, k
			break
		}
	}
	if start < 0 {
		return "", apperr.ErrNoAnchor
	}

	end := start
	if !firstTime {
		end = -1
		want := kind.End()
		for j := start + 1; j < len(lines); j++ {
			_, rest := marker.StripQuote(lines[j])
			if strings.TrimSpace(rest) == want {
				end = j
				break
			}
		}
		if end < 0 {
			// A prior scan promised a complete block; never half-patch.
			return "", fmt.Errorf("patch: begin sentinel at line %d has no matching end sentinel", start+1)
		}
	}

	block := buildBlock(tree, kind, lines[start], firstTime)

	out := make([]string, 0, len(lines)-(end-start+1)+len(block))
	out = append(out, lines[:start]...)
	out = append(out, block...)
	out = append(out, lines[end+1:]...)
	return strings.Join(out, "\n"), nil
}

// buildBlock assembles the replacement lines: begin sentinel, tree, one
// blank line, end sentinel. When the anchor line sits inside a blockquote,
// every line is re-wrapped with its quote prefix, and a first-time
// generation gains a callout header.
func buildBlock(tree string, kind marker.Kind, anchorLine string, firstTime bool) []string {
	block := []string{kind.Begin()}
	if tree != "" {
		block = append(block, strings.Split(tree, "\n")...)
	}
	block = append(block, "", kind.End())

	prefix, _ := marker.StripQuote(anchorLine)
	if !strings.Contains(prefix, ">") {
		return block
	}

	wrapped := make([]string, 0, len(block)+1)
	if firstTime {
		wrapped = append(wrapped, strings.TrimRight(prefix+kind.Callout(), " "))
	}
	for _, line := range block {
		wrapped = append(wrapped, strings.TrimRight(prefix+line, " "))
	}
	return wrapped
}

// ReplaceTokenLine swaps the first bare trigger-token line for replacement,
// used to surface in-document error comments. The bool result reports
// whether a token line was found.
func ReplaceTokenLine(doc string, set marker.Set, replacement string) (string, bool) {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if _, ok := set.MatchToken(line); ok {
			lines[i] = replacement
			return strings.Join(lines, "\n"), true
		}
	}
	return doc, false
}
