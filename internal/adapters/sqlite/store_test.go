package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "herosheet.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_GetMissingKey(t *testing.T) {
	s := openTestStore(t)

	value, err := s.Get(context.Background(), "characters")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != nil {
		t.Errorf("expected nil for missing key, got %q", value)
	}
}

func TestStore_PutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "characters", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, "characters", []byte(`[{"id":2}]`)); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	value, err := s.Get(ctx, "characters")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(value) != `[{"id":2}]` {
		t.Errorf("got %q, want last write", value)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herosheet.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "characters", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	value, err := s.Get(ctx, "characters")
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != "[]" {
		t.Errorf("got %q after reopen", value)
	}
	version, err := s.SchemaVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if version != schemaVersion {
		t.Errorf("schema version = %q, want %q", version, schemaVersion)
	}
}

func TestStore_SchemaVersionReportsErrors(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "herosheet.db"))
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := s.SchemaVersion(context.Background()); err == nil {
		t.Error("expected an error from a closed store")
	}
}
