// Package oplog maintains the shared append-only operation log. Entries are
// written through the locked append engine so that independent tool
// invocations never interleave or lose records, and reads take a shared lock
// for a consistent snapshot.
package oplog

import (
	"errors"
	"fmt"
	"os"

	"github.com/zoro11031/fileman/internal/fsops"
)

// DefaultPath is the log file location when no configuration overrides it, a
// fixed relative name in the working directory.
const DefaultPath = "log.txt"

// Log is a handle to the operation log file. It holds no open resources;
// every operation re-opens the file and locks it for its own duration.
type Log struct {
	path string
}

// New returns a Log for the given path, falling back to DefaultPath when
// path is empty.
func New(path string) *Log {
	if path == "" {
		path = DefaultPath
	}
	return &Log{path: path}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Init creates the log file if it does not exist yet. Called once at startup
// so that Record always has an existing append target.
func (l *Log) Init() error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to initialize log file %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file %s: %w", l.path, err)
	}
	return nil
}

// Record appends a timestamped entry to the log under an exclusive lock.
// The entry format is "[YYYY-MM-DD HH:MM:SS] message\n"; entries are never
// rewritten or reordered.
func (l *Log) Record(message string) error {
	exists, err := fsops.FileExists(l.path)
	if err != nil {
		return err
	}
	if !exists {
		if err := l.Init(); err != nil {
			return err
		}
	}

	entry := fmt.Sprintf("%s %s\n", Timestamp(), message)
	if err := fsops.AppendFile(l.path, []byte(entry)); err != nil {
		return fmt.Errorf("failed to record log entry: %w", err)
	}
	return nil
}

// ReadAll returns the full log contents under a shared lock. The second
// return value reports whether the log file exists at all: a missing log
// ("no entries") is not an error and is distinct from an existing empty log.
func (l *Log) ReadAll() (string, bool, error) {
	if _, err := os.Stat(l.path); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to access log file %s: %w", l.path, err)
	}

	data, err := fsops.ReadFileShared(l.path)
	if err != nil {
		// The log can vanish between the stat and the open.
		if errors.Is(err, fsops.ErrNotFound) {
			return "", false, nil
		}
		return "", true, err
	}
	return string(data), true, nil
}
