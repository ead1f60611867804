// ABOUTME: FileStore-specific tests beyond the shared contract
// ABOUTME: Covers lazy creation, corrupt documents, and atomic rewrite

package kv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreLazyCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file not to exist before first write")
	}

	if err := s.Set(context.Background(), "journal_title", "Notes"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "journal_title: Notes") {
		t.Errorf("expected yaml mapping in file, got %q", data)
	}
}

func TestFileStoreCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("not: [valid"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, _ := NewFileStore(path)

	if _, _, err := s.Get(context.Background(), "journal_data"); err == nil {
		t.Error("expected parse error for corrupt document")
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewFileStore(filepath.Join(dir, DefaultFileName))
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := s.Set(ctx, "k", strings.Repeat("x", i)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the data file, got %v", names)
	}
}

func TestAtomicWriteCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	if err := AtomicWrite(path, []byte(`{"backend":"file"}`)); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "file") {
		t.Errorf("unexpected content %q", data)
	}
}

func TestAtomicWriteReplacesPrivately(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moodlog.yaml")
	if err := AtomicWrite(path, []byte("journal_title: first\n")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	if err := AtomicWrite(path, []byte("journal_title: second\n")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "journal_title: second\n" {
		t.Errorf("expected second document, got %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}
}
