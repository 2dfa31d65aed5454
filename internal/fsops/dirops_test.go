package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newdir")

	if err := CreateDirectory(path, 0o755); err != nil {
		t.Fatalf("CreateDirectory() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path is not a directory")
	}
}

func TestCreateDirectoryAlreadyExists(t *testing.T) {
	dir := t.TempDir()

	err := CreateDirectory(dir, 0o755)
	if !errors.Is(err, ErrExists) {
		t.Errorf("CreateDirectory() error = %v, want ErrExists", err)
	}
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "")
	writeTestFile(t, dir, "b.log", "")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	entries, err := ListDirectory(dir)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ListDirectory() returned %d entries, want 3", len(entries))
	}

	byName := make(map[string]Entry)
	for _, e := range entries {
		byName[e.Name] = e
	}
	if e, ok := byName["sub"]; !ok || !e.IsDir {
		t.Error("Subdirectory not reported as directory")
	}
	if e, ok := byName["a.txt"]; !ok || e.IsDir {
		t.Error("Regular file reported as directory")
	}
}

func TestListDirectoryMissing(t *testing.T) {
	_, err := ListDirectory(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ListDirectory() error = %v, want ErrNotFound", err)
	}
}

func TestListByExtension(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "notes.txt", "")
	writeTestFile(t, dir, "todo.txt", "")
	writeTestFile(t, dir, "app.log", "")
	// Directories never match, even with a matching suffix.
	if err := os.Mkdir(filepath.Join(dir, "dir.txt"), 0o755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	tests := []struct {
		name      string
		extension string
		want      int
	}{
		{
			name:      "txt files",
			extension: ".txt",
			want:      2,
		},
		{
			name:      "log files",
			extension: ".log",
			want:      1,
		},
		{
			name:      "no matches",
			extension: ".pdf",
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ListByExtension(dir, tt.extension)
			if err != nil {
				t.Fatalf("ListByExtension() error = %v", err)
			}
			if len(entries) != tt.want {
				t.Errorf("ListByExtension(%q) returned %d entries, want %d",
					tt.extension, len(entries), tt.want)
			}
		})
	}
}

func TestDeleteDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "empty")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if err := DeleteDirectory(target); err != nil {
		t.Fatalf("DeleteDirectory() error = %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("Directory still exists after DeleteDirectory()")
	}
}

func TestDeleteDirectoryNotEmpty(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "occupant.txt", "")

	err := DeleteDirectory(dir)
	if !errors.Is(err, ErrNotEmpty) {
		t.Errorf("DeleteDirectory() error = %v, want ErrNotEmpty", err)
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Error("Non-empty directory was removed")
	}
}

func TestDeleteDirectoryMissing(t *testing.T) {
	err := DeleteDirectory(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteDirectory() error = %v, want ErrNotFound", err)
	}
}
