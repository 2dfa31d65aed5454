// Package fsops implements the filesystem operations behind the fileman
// commands: path probing, file and directory mutation, and the locked append
// engine that serializes writers from independent processes with advisory
// whole-file locks.
package fsops

import "errors"

// Sentinel errors returned by filesystem operations. Callers match them with
// errors.Is; the wrapped message carries the path and underlying cause.
var (
	// ErrNotFound indicates the target path does not exist (or is not the
	// expected kind of entry).
	ErrNotFound = errors.New("not found")

	// ErrExists indicates a create operation hit an already-existing path.
	ErrExists = errors.New("already exists")

	// ErrLocked indicates the advisory lock on a file could not be taken.
	ErrLocked = errors.New("file is locked")

	// ErrNotEmpty indicates a directory delete was refused because the
	// directory still has entries.
	ErrNotEmpty = errors.New("directory not empty")
)
