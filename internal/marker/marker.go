// Package marker defines the two generated-block kinds, their boundary
// sentinels, and text classification over configured trigger tokens.
//
// An Index block halts an ancestor's tree descent at its own folder; a
// Subindex block renders its own tree but lets ancestors list straight
// through it. That asymmetry is the whole point of having two kinds.
package marker

import "strings"

// Kind identifies a generated-block kind.
type Kind int

const (
	// None means no marker is present.
	None Kind = iota
	// Index is the primary kind: it stops upward flattening at its folder.
	Index
	// Subindex is the secondary kind: ancestors descend past it.
	Subindex
)

// Boundary sentinels are fixed per kind regardless of the configured
// trigger tokens, so previously generated blocks stay locatable after a
// token change.
const (
	beginIndex    = "%% Begin Index %%"
	endIndex      = "%% End Index %%"
	beginSubindex = "%% Begin Subindex %%"
	endSubindex   = "%% End Subindex %%"
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Index:
		return "Index"
	case Subindex:
		return "Subindex"
	default:
		return "None"
	}
}

// Begin returns the begin sentinel line for the kind.
func (k Kind) Begin() string {
	if k == Subindex {
		return beginSubindex
	}
	return beginIndex
}

// End returns the end sentinel line for the kind.
func (k Kind) End() string {
	if k == Subindex {
		return endSubindex
	}
	return endIndex
}

// Callout returns the callout header injected when a block is first
// generated inside a quoted region.
func (k Kind) Callout() string {
	if k == Subindex {
		return "[!subindex]"
	}
	return "[!index]"
}

// Set carries the configured bare trigger tokens for both kinds.
type Set struct {
	IndexToken    string
	SubindexToken string
}

// Token returns the bare trigger token for the kind.
func (s Set) Token(k Kind) string {
	if k == Subindex {
		return s.SubindexToken
	}
	return s.IndexToken
}

// StripQuote splits a leading blockquote prefix ("> ", possibly nested)
// from a line, returning the prefix and the remainder.
func StripQuote(line string) (prefix, rest string) {
	i := 0
	for i < len(line) {
		switch line[i] {
		case '>', ' ', '\t':
			i++
		default:
			return line[:i], line[i:]
		}
	}
	return line, ""
}

// lineIs reports whether a document line carries want, ignoring leading
// blockquote prefixes and surrounding whitespace.
func lineIs(line, want string) bool {
	_, rest := StripQuote(line)
	return strings.TrimSpace(rest) == want
}

// MatchLine classifies a single document line against the set: it reports
// the kind whose bare token or begin sentinel the line carries.
func (s Set) MatchLine(line string) (Kind, bool) {
	switch {
	case lineIs(line, s.IndexToken), lineIs(line, beginIndex):
		return Index, true
	case lineIs(line, s.SubindexToken), lineIs(line, beginSubindex):
		return Subindex, true
	}
	return None, false
}

// MatchToken reports the kind whose bare trigger token the line carries.
// Sentinels do not match; this is the flag-scanner predicate.
func (s Set) MatchToken(line string) (Kind, bool) {
	switch {
	case lineIs(line, s.IndexToken):
		return Index, true
	case lineIs(line, s.SubindexToken):
		return Subindex, true
	}
	return None, false
}

// Classify reports the strongest marker present anywhere in text: Index if
// any line carries the Index token or begin sentinel, else Subindex
// likewise, else None.
func (s Set) Classify(text string) Kind {
	foundSub := false
	for _, line := range strings.Split(text, "\n") {
		switch {
		case lineIs(line, s.IndexToken), lineIs(line, beginIndex):
			return Index
		case lineIs(line, s.SubindexToken), lineIs(line, beginSubindex):
			foundSub = true
		}
	}
	if foundSub {
		return Subindex
	}
	return None
}

// Reserved reports whether a candidate trigger token collides with a fixed
// boundary sentinel of either kind.
func Reserved(token string) bool {
	switch token {
	case beginIndex, endIndex, beginSubindex, endSubindex:
		return true
	}
	return false
}
