package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreWriteRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()
	key, err := store.Write(ctx, "/exports/2026-10-18/spring_innovid_feed.json", []byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "exports/2026-10-18/spring_innovid_feed.json" {
		t.Fatalf("key = %q", key)
	}
	data, err := store.Read(ctx, key)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Fatalf("data = %q", data)
	}

	if _, err := store.Write(ctx, key, []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(store.BasePath(), "exports", "2026-10-18"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFileStoreList(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	ctx := context.Background()
	for _, k := range []string{"exports/b.csv", "exports/a.csv", "other/c.csv"} {
		if _, err := store.Write(ctx, k, []byte("x")); err != nil {
			t.Fatalf("Write %s: %v", k, err)
		}
	}
	keys, err := store.List(ctx, "exports")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 2 || keys[0] != "exports/a.csv" || keys[1] != "exports/b.csv" {
		t.Fatalf("keys = %v", keys)
	}
	missing, err := store.List(ctx, "nothing-here")
	if err != nil || len(missing) != 0 {
		t.Fatalf("List missing = %v, %v", missing, err)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	for _, key := range []string{"", "../secret", "a/../../b", "."} {
		if _, err := store.Write(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("Write(%q) error = nil, want error", key)
		}
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	_, err := store.Read(context.Background(), "exports/none.csv")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
