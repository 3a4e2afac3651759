package main

import (
	"io/fs"
	"strings"
	"testing"
)

func TestPrefixFS_ExpandsPlaceholder(t *testing.T) {
	fsys := prefixFS{fsys: migrations, prefix: "test_"}

	data, err := fs.ReadFile(fsys, "migrations/000001_create_prompt_library.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := string(data)

	if strings.Contains(sql, prefixPlaceholder) {
		t.Errorf("placeholder left unexpanded:\n%s", sql)
	}
	for _, want := range []string{
		"CREATE TABLE test_folders",
		"CREATE TABLE test_prompts",
		"REFERENCES test_folders (id) ON DELETE CASCADE",
		"idx_test_prompts_folder_id",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("migration missing %q:\n%s", want, sql)
		}
	}
}

func TestPrefixFS_EmptyPrefix(t *testing.T) {
	fsys := prefixFS{fsys: migrations}

	data, err := fs.ReadFile(fsys, "migrations/000001_create_prompt_library.down.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := string(data)

	if strings.Contains(sql, prefixPlaceholder) {
		t.Errorf("placeholder left unexpanded:\n%s", sql)
	}
	if !strings.Contains(sql, "DROP TABLE IF EXISTS prompts;") {
		t.Errorf("unprefixed table name missing:\n%s", sql)
	}
}

func TestPrefixFS_StatSizeMatchesContent(t *testing.T) {
	fsys := prefixFS{fsys: migrations, prefix: "verylongprefix_"}

	f, err := fsys.Open("migrations/000001_create_prompt_library.up.sql")
	if err != nil {
		t.Fatalf("open migration: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	data, err := fs.ReadFile(fsys, "migrations/000001_create_prompt_library.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if info.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", info.Size(), len(data))
	}
}
