// Package apperr defines the sentinel errors shared across the engine.
package apperr

import "errors"

var (
	// ErrNotFound reports a vault path that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoAnchor reports a patch attempt against a document that carries
	// neither a bare trigger token nor a begin sentinel. The caller logs the
	// attempt and leaves the document untouched.
	ErrNoAnchor = errors.New("no index anchor in document")

	// ErrRootIndex reports a trigger token placed in a document whose parent
	// is the vault root.
	ErrRootIndex = errors.New("index block not allowed at vault root")

	// ErrNotFolderNote reports a trigger token placed in a document that is
	// not the folder note of its folder.
	ErrNotFolderNote = errors.New("document is not a folder note")
)
