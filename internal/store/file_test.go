package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileStorageLoadMissingFile(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "data.json"))
	_, err := fs.Load(context.Background())
	if !errors.Is(err, ErrNoDocument) {
		t.Fatalf("err = %v, want ErrNoDocument", err)
	}
}

func TestFileStorageSaveLoadRoundTrip(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "nested", "dir", "data.json"))
	blob := []byte(`{"customers":[]}`)

	if err := fs.Save(context.Background(), blob); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := fs.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("Load returned %q, want %q", got, blob)
	}
}

func TestFileStorageSaveOverwrites(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "data.json"))

	if err := fs.Save(context.Background(), []byte("first")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := fs.Save(context.Background(), []byte("second")); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	got, err := fs.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load returned %q, want %q", got, "second")
	}
}

func TestMemoryStorageEmptyThenRoundTrip(t *testing.T) {
	ms := NewMemoryStorage()
	if _, err := ms.Load(context.Background()); !errors.Is(err, ErrNoDocument) {
		t.Fatalf("err = %v, want ErrNoDocument", err)
	}

	blob := []byte(`{"products":[]}`)
	if err := ms.Save(context.Background(), blob); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := ms.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("Load returned %q, want %q", got, blob)
	}

	// stored blob must be isolated from caller mutations
	blob[2] = 'x'
	again, _ := ms.Load(context.Background())
	if string(again) != `{"products":[]}` {
		t.Error("MemoryStorage must copy the blob on save")
	}
}
