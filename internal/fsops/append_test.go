package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestAppendFileNewlineNormalization(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		content  string
		expected string
	}{
		{
			name:     "empty file gets content as-is",
			initial:  "",
			content:  "first entry\n",
			expected: "first entry\n",
		},
		{
			name:     "file ending in newline gets no blank line",
			initial:  "one\n",
			content:  "two\n",
			expected: "one\ntwo\n",
		},
		{
			name:     "file not ending in newline gets exactly one separator",
			initial:  "one",
			content:  "two",
			expected: "one\ntwo",
		},
		{
			name:     "content without trailing newline is preserved",
			initial:  "a\nb\n",
			content:  "c",
			expected: "a\nb\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, t.TempDir(), "target.txt", tt.initial)

			if err := AppendFile(path, []byte(tt.content)); err != nil {
				t.Fatalf("AppendFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read back file: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("AppendFile() result = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppendFileMissingTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	err := AppendFile(path, []byte("content"))
	if err == nil {
		t.Fatal("AppendFile() on missing file error = nil, want error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AppendFile() error = %v, want ErrNotFound", err)
	}
}

func TestAppendFileNotIdempotent(t *testing.T) {
	// Two identical appends must produce two occurrences, not one.
	path := writeTestFile(t, t.TempDir(), "target.txt", "")

	for i := 0; i < 2; i++ {
		if err := AppendFile(path, []byte("same line\n")); err != nil {
			t.Fatalf("AppendFile() #%d error = %v", i+1, err)
		}
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if count := strings.Count(string(got), "same line\n"); count != 2 {
		t.Errorf("Append content occurs %d times, want 2 (got %q)", count, got)
	}
}

func TestAppendFileConcurrentWritersDoNotInterleave(t *testing.T) {
	// Each goroutine opens its own handle, so the appends contend on the
	// advisory lock exactly like independent processes sharing the file.
	path := writeTestFile(t, t.TempDir(), "shared.txt", "")

	payloadA := strings.Repeat("A", 64*1024) + "\n"
	payloadB := strings.Repeat("B", 64*1024) + "\n"

	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	for _, payload := range []string{payloadA, payloadB} {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if err := AppendFile(path, []byte(p)); err != nil {
				errCh <- err
			}
		}(payload)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("AppendFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}

	if len(got) != len(payloadA)+len(payloadB) {
		t.Errorf("Combined length = %d, want %d", len(got), len(payloadA)+len(payloadB))
	}
	if !strings.Contains(string(got), payloadA) {
		t.Error("Payload A is not present as one contiguous segment")
	}
	if !strings.Contains(string(got), payloadB) {
		t.Error("Payload B is not present as one contiguous segment")
	}
}

func TestReadFileShared(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "data.txt", "hello\nworld\n")

	got, err := ReadFileShared(path)
	if err != nil {
		t.Fatalf("ReadFileShared() error = %v", err)
	}
	if string(got) != "hello\nworld\n" {
		t.Errorf("ReadFileShared() = %q, want %q", got, "hello\nworld\n")
	}
}

func TestReadFileSharedMissing(t *testing.T) {
	_, err := ReadFileShared(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadFileShared() error = %v, want ErrNotFound", err)
	}
}
