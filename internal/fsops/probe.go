package fsops

import (
	"fmt"
	"os"
)

// PathKind classifies what a path currently points at.
type PathKind int

const (
	// PathMissing means nothing exists at the path.
	PathMissing PathKind = iota
	// PathFile means the path is a regular file.
	PathFile
	// PathDirectory means the path is a directory.
	PathDirectory
)

// Classify performs a single metadata query and reports whether the path is
// absent, a regular file, or a directory. It is the precondition gate for
// every mutating operation.
func Classify(path string) (PathKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return PathMissing, nil
		}
		return PathMissing, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return PathDirectory, nil
	}
	if info.Mode().IsRegular() {
		return PathFile, nil
	}
	// Sockets, devices and the like are treated as absent for our purposes.
	return PathMissing, nil
}

// FileExists reports whether path exists as a regular file.
func FileExists(path string) (bool, error) {
	kind, err := Classify(path)
	if err != nil {
		return false, err
	}
	return kind == PathFile, nil
}

// DirectoryExists reports whether path exists as a directory.
func DirectoryExists(path string) (bool, error) {
	kind, err := Classify(path)
	if err != nil {
		return false, err
	}
	return kind == PathDirectory, nil
}
