// Package settings holds the index-generation configuration record and an
// atomically swapped, persisted store for it.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/starford/raido/internal/marker"
	"github.com/starford/raido/internal/vault"
)

// Settings is the flat index-generation configuration record. It is treated
// as an immutable value once normalized; mutations go through Store.Update,
// which swaps a fresh pointer.
type Settings struct {
	IndexToken            string   `yaml:"index_token" json:"index_token"`
	SubindexToken         string   `yaml:"subindex_token" json:"subindex_token"`
	FolderNoteMode        string   `yaml:"folder_note_mode" json:"folder_note_mode"`
	StopAtFolderNotes     bool     `yaml:"stop_at_folder_notes" json:"stop_at_folder_notes"`
	ShowFolderNotes       bool     `yaml:"show_folder_notes" json:"show_folder_notes"`
	ShowNonMarkdown       bool     `yaml:"show_non_markdown" json:"show_non_markdown"`
	ShowEnclosingNote     bool     `yaml:"show_enclosing_note" json:"show_enclosing_note"`
	UseWikiLinks          bool     `yaml:"use_wiki_links" json:"use_wiki_links"`
	UseTitleMetadata      bool     `yaml:"use_title_metadata" json:"use_title_metadata"`
	UseSpaceIndentation   bool     `yaml:"use_space_indentation" json:"use_space_indentation"`
	SpaceIndentationWidth int      `yaml:"space_indentation_width" json:"space_indentation_width"`
	IgnorePaths           []string `yaml:"ignore_paths" json:"ignore_paths"`

	ignoreRes []*regexp.Regexp
}

// Default returns the settings record with every field at its default.
func Default() Settings {
	return Settings{
		IndexToken:            "%% index %%",
		SubindexToken:         "%% subindex %%",
		FolderNoteMode:        string(vault.ConventionInside),
		UseWikiLinks:          true,
		SpaceIndentationWidth: 2,
	}
}

// Validate checks the structural shape of the record. Token-shape failures
// are not surfaced here; Normalize reverts those per-field instead.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.FolderNoteMode, validation.Required,
			validation.In(string(vault.ConventionInside), string(vault.ConventionOutside))),
		validation.Field(&s.SpaceIndentationWidth, validation.Min(1), validation.Max(16)),
	)
}

// Normalize reverts individually invalid fields to their defaults (logging
// each rejection), compiles the ignore patterns, and drops patterns that do
// not compile. A bad field never blocks the rest of the record.
func (s *Settings) Normalize(logger *slog.Logger) {
	def := Default()

	if bad, reason := badToken(s.IndexToken); bad {
		logger.Warn("settings: index token rejected, reverting to default",
			slog.String("token", s.IndexToken), slog.String("reason", reason))
		s.IndexToken = def.IndexToken
	}
	if bad, reason := badToken(s.SubindexToken); bad {
		logger.Warn("settings: subindex token rejected, reverting to default",
			slog.String("token", s.SubindexToken), slog.String("reason", reason))
		s.SubindexToken = def.SubindexToken
	}
	if s.SubindexToken == s.IndexToken {
		logger.Warn("settings: subindex token equals index token, reverting to default",
			slog.String("token", s.SubindexToken))
		s.SubindexToken = def.SubindexToken
	}
	if s.FolderNoteMode != string(vault.ConventionInside) && s.FolderNoteMode != string(vault.ConventionOutside) {
		logger.Warn("settings: unknown folder note mode, reverting to default",
			slog.String("mode", s.FolderNoteMode))
		s.FolderNoteMode = def.FolderNoteMode
	}
	if s.SpaceIndentationWidth < 1 || s.SpaceIndentationWidth > 16 {
		logger.Warn("settings: space indentation width out of range, reverting to default",
			slog.Int("width", s.SpaceIndentationWidth))
		s.SpaceIndentationWidth = def.SpaceIndentationWidth
	}

	s.ignoreRes = s.ignoreRes[:0]
	for _, pat := range s.IgnorePaths {
		re, err := regexp.Compile(pat)
		if err != nil {
			logger.Warn("settings: ignore pattern rejected",
				slog.String("pattern", pat), slog.String("error", err.Error()))
			continue
		}
		s.ignoreRes = append(s.ignoreRes, re)
	}
}

func badToken(token string) (bool, string) {
	if strings.TrimSpace(token) == "" {
		return true, "empty"
	}
	if marker.Reserved(token) {
		return true, "reserved sentinel"
	}
	return false, ""
}

// Convention returns the folder-note binding convention.
func (s *Settings) Convention() vault.Convention {
	return vault.Convention(s.FolderNoteMode)
}

// Markers returns the trigger-token set for both block kinds.
func (s *Settings) Markers() marker.Set {
	return marker.Set{IndexToken: s.IndexToken, SubindexToken: s.SubindexToken}
}

// Indent returns one indentation unit.
func (s *Settings) Indent() string {
	if s.UseSpaceIndentation {
		return strings.Repeat(" ", s.SpaceIndentationWidth)
	}
	return "\t"
}

// IgnoreMatch reports whether a vault-relative path matches any compiled
// ignore pattern.
func (s *Settings) IgnoreMatch(path string) bool {
	for _, re := range s.ignoreRes {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Store owns the current settings value. Readers get an immutable snapshot
// pointer; Update swaps a normalized replacement and persists it.
type Store struct {
	path   string
	logger *slog.Logger

	cur atomic.Pointer[Settings]
	mu  sync.Mutex // serializes persistence
}

// NewStore normalizes initial and wraps it in a store. path is the
// persistence target; empty disables persistence.
func NewStore(path string, initial Settings, logger *slog.Logger) *Store {
	initial.Normalize(logger)
	st := &Store{path: path, logger: logger}
	st.cur.Store(&initial)
	return st
}

// Load reads a persisted settings record over the defaults, or returns the
// defaults when the file does not exist.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return s, nil
}

// Current returns the active settings snapshot.
func (st *Store) Current() *Settings {
	return st.cur.Load()
}

// Update normalizes next, swaps it in as the active snapshot, and persists
// the full record. The normalized value is returned; persistence failure
// does not roll back the swap.
func (st *Store) Update(next Settings) (*Settings, error) {
	next.Normalize(st.logger)
	st.cur.Store(&next)

	if st.path == "" {
		return &next, nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	data, err := yaml.Marshal(&next)
	if err != nil {
		return &next, fmt.Errorf("settings: marshal: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return &next, fmt.Errorf("settings: persist %s: %w", st.path, err)
	}
	return &next, nil
}
