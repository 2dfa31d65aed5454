package fsops

import (
	"fmt"
	"os"
)

// CreateFile creates a new regular file with the given permissions and writes
// the initial content into it. An existing path yields ErrExists.
func CreateFile(path string, initial []byte, perms os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perms)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if len(initial) > 0 {
		if _, err := f.Write(initial); err != nil {
			f.Close()
			return fmt.Errorf("failed to write to file %s: %w", path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the full contents of an existing regular file. A missing
// path yields ErrNotFound.
func ReadFile(path string) ([]byte, error) {
	exists, err := FileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// DeleteFile removes a regular file. A missing path yields ErrNotFound.
func DeleteFile(path string) error {
	exists, err := FileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}
