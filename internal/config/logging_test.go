package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := OpenLogFile(dir, 5)
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("hello\n"); err != nil {
		t.Errorf("write to log file: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("got %d log files, want 1", len(matches))
	}
}

func TestPruneOldLogs(t *testing.T) {
	dir := t.TempDir()

	names := []string{
		"server-2026-01-01T00-00-00.log",
		"server-2026-01-02T00-00-00.log",
		"server-2026-01-03T00-00-00.log",
		"server-2026-01-04T00-00-00.log",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	if err := pruneOldLogs(dir, 2); err != nil {
		t.Fatalf("pruneOldLogs failed: %v", err)
	}

	remaining, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(remaining), remaining)
	}
	// The two newest survive
	for i, want := range names[2:] {
		if filepath.Base(remaining[i]) != want {
			t.Errorf("remaining[%d] = %s, want %s", i, filepath.Base(remaining[i]), want)
		}
	}
}

func TestPruneOldLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()

	name := filepath.Join(dir, "server-2026-01-01T00-00-00.log")
	if err := os.WriteFile(name, nil, 0o644); err != nil {
		t.Fatalf("create log file: %v", err)
	}

	if err := pruneOldLogs(dir, 5); err != nil {
		t.Fatalf("pruneOldLogs failed: %v", err)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("file should survive: %v", err)
	}
}
