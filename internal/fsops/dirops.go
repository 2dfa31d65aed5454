package fsops

import (
	"fmt"
	"os"
	"strings"
)

// Entry is a single directory listing entry.
type Entry struct {
	Name  string
	IsDir bool
}

// CreateDirectory creates a new directory with the given permissions. An
// existing directory yields ErrExists.
func CreateDirectory(path string, perms os.FileMode) error {
	exists, err := DirectoryExists(path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}

	if err := os.Mkdir(path, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ListDirectory returns the entries of a directory in directory order. A
// missing directory yields ErrNotFound.
func ListDirectory(path string) ([]Entry, error) {
	exists, err := DirectoryExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Name: d.Name(), IsDir: d.IsDir()})
	}
	return entries, nil
}

// ListByExtension returns the regular files in a directory whose names end
// with the given extension (e.g. ".txt").
func ListByExtension(path, extension string) ([]Entry, error) {
	entries, err := ListDirectory(path)
	if err != nil {
		return nil, err
	}

	var matched []Entry
	for _, e := range entries {
		if !e.IsDir && strings.HasSuffix(e.Name, extension) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// DeleteDirectory removes an empty directory. A missing directory yields
// ErrNotFound; a directory that still has entries yields ErrNotEmpty.
func DeleteDirectory(path string) error {
	entries, err := ListDirectory(path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrNotEmpty, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete directory %s: %w", path, err)
	}
	return nil
}
