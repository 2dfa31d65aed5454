package fsops

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// AppendFile appends content to an existing regular file under an exclusive
// advisory lock. The file must already exist; a missing path yields
// ErrNotFound.
//
// Lock policy: acquisition blocks until the lock is granted. Cooperating
// processes therefore serialize their appends instead of failing fast on
// contention; no two appends ever interleave at the byte level. The lock is
// scoped to the open handle and the kernel drops it when the handle closes or
// the holding process dies, so a crashed writer cannot wedge the file.
//
// Before writing, the engine normalizes the trailing-newline state: if the
// file is non-empty and its last byte is not '\n', a single '\n' is written
// first so appended content always starts on its own line.
func AppendFile(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := flockBlocking(f, unix.LOCK_EX); err != nil {
		return fmt.Errorf("%w: could not lock %s: %v", ErrLocked, path, err)
	}
	defer flockUnlock(f)

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.Size() > 0 {
		var last [1]byte
		// ReadAt uses pread and does not disturb the append offset.
		if _, err := f.ReadAt(last[:], info.Size()-1); err != nil {
			return fmt.Errorf("failed to read last byte of %s: %w", path, err)
		}
		if last[0] != '\n' {
			if _, err := f.Write([]byte{'\n'}); err != nil {
				return fmt.Errorf("failed to write to %s: %w", path, err)
			}
		}
	}

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}

	return nil
}

// ReadFileShared reads the entire file under a shared advisory lock, giving a
// consistent snapshot that never overlaps an in-flight locked append.
// Concurrent readers do not exclude each other.
func ReadFileShared(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := flockBlocking(f, unix.LOCK_SH); err != nil {
		return nil, fmt.Errorf("%w: could not lock %s: %v", ErrLocked, path, err)
	}
	defer flockUnlock(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// flockBlocking takes an advisory lock on the open handle, retrying when the
// call is interrupted by a signal.
func flockBlocking(f *os.File, how int) error {
	for {
		err := unix.Flock(int(f.Fd()), how)
		if err != unix.EINTR {
			return err
		}
	}
}

// flockUnlock releases the advisory lock. Closing the handle releases it as
// well; the explicit unlock just shortens the critical section.
func flockUnlock(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
