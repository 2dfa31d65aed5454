package oplog

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var entryPattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `)

func TestRecordAndReadAll(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "log.txt"))
	if err := log.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := log.Record("File \"a.txt\" created successfully."); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := log.Record("File \"a.txt\" deleted successfully."); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	content, exists, err := log.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !exists {
		t.Fatal("ReadAll() exists = false, want true")
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Log has %d lines, want 2 (content %q)", len(lines), content)
	}
	for i, line := range lines {
		if !entryPattern.MatchString(line) {
			t.Errorf("Line %d has no valid timestamp prefix: %q", i, line)
		}
	}
	if !strings.HasSuffix(lines[0], "File \"a.txt\" created successfully.") {
		t.Errorf("First entry = %q, want created message", lines[0])
	}
	if !strings.HasSuffix(lines[1], "File \"a.txt\" deleted successfully.") {
		t.Errorf("Second entry = %q, want deleted message", lines[1])
	}
}

func TestReadAllMissingLog(t *testing.T) {
	// A log that never existed is "no entries", not an error and not the
	// same as an empty log.
	log := New(filepath.Join(t.TempDir(), "log.txt"))

	content, exists, err := log.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if exists {
		t.Error("ReadAll() exists = true for missing log, want false")
	}
	if content != "" {
		t.Errorf("ReadAll() content = %q for missing log, want empty", content)
	}
}

func TestReadAllEmptyLog(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "log.txt"))
	if err := log.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	content, exists, err := log.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !exists {
		t.Error("ReadAll() exists = false for empty log, want true")
	}
	if content != "" {
		t.Errorf("ReadAll() content = %q for empty log, want empty", content)
	}
}

func TestRecordCreatesMissingLog(t *testing.T) {
	// Record must work even when the log was removed after startup.
	log := New(filepath.Join(t.TempDir(), "log.txt"))

	if err := log.Record("first entry"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	content, exists, err := log.ReadAll()
	if err != nil || !exists {
		t.Fatalf("ReadAll() = %v, %v after Record()", exists, err)
	}
	if !strings.Contains(content, "first entry") {
		t.Errorf("Log content = %q, want recorded entry", content)
	}
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp()
	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\]$`)
	if !pattern.MatchString(ts) {
		t.Errorf("Timestamp() = %q, want [YYYY-MM-DD HH:MM:SS]", ts)
	}
}
