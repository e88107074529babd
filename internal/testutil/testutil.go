// Package testutil provides shared test helpers for setting up vaults and
// settings stores.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/raido/internal/settings"
	"github.com/starford/raido/internal/vault"
)

// TestVault creates a temporary vault directory with an FS provider.
func TestVault(t *testing.T) (string, *vault.FS) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := vault.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// WriteFile writes content to a vault-relative path, creating parent dirs.
func WriteFile(t *testing.T, vaultDir, rel, content string) {
	t.Helper()
	abs := filepath.Join(vaultDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Mkdir creates a vault-relative directory.
func Mkdir(t *testing.T, vaultDir, rel string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(vaultDir, filepath.FromSlash(rel)), 0o755); err != nil {
		t.Fatal(err)
	}
}

// ReadFile returns the content of a vault-relative path.
func ReadFile(t *testing.T, vaultDir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(vaultDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// Logger returns a discard logger for tests.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Store wraps a settings record in a non-persisting store.
func Store(t *testing.T, s settings.Settings) *settings.Store {
	t.Helper()
	return settings.NewStore("", s, Logger())
}
