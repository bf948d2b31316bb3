package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_GetMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent"))

	data, err := s.Get(context.Background(), "characters")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil, got %q", data)
	}
}

func TestStore_PutCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "herosheet")
	s := NewStore(dir)
	ctx := context.Background()

	if err := s.Put(ctx, "characters", []byte("[]")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "characters.json"))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("got %q", data)
	}

	got, err := s.Get(ctx, "characters")
	if err != nil || string(got) != "[]" {
		t.Errorf("Get = %q, %v", got, err)
	}
}

func TestStore_PutLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	for i := 0; i < 3; i++ {
		if err := s.Put(context.Background(), "characters", []byte("[]")); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only characters.json, got %v", names)
	}
}

func TestStore_RejectsPathKeys(t *testing.T) {
	s := NewStore(t.TempDir())

	tests := []string{"", "../escape", "a/b", "with space"}
	for _, key := range tests {
		if err := s.Put(context.Background(), key, []byte("x")); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}

func TestWriteFileAtomic_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "missing-subdir", "out.md")

	if err := WriteFileAtomic(target, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error when directory does not exist")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected empty directory, found %d entries", len(entries))
	}
}
