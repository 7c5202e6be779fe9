/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package covers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPutAndPath(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "covers"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	name, err := store.Put("abc123", "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if name != "abc123.png" {
		t.Errorf("name = %q, want abc123.png", name)
	}
	if store.Path(name) == "" {
		t.Error("Path returned empty for stored cover")
	}
}

func TestPutIsCreateIfAbsent(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := store.Put("k", "image/jpeg", []byte("first")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := store.Put("k", "image/jpeg", []byte("second")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := os.ReadFile(store.Path("k.jpg"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("cover rewritten: %q", data)
	}
}

func TestPutUnknownMIME(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	name, err := store.Put("k", "image/webp", []byte("x"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if name != "" {
		t.Errorf("unknown MIME stored as %q", name)
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if store.Path("../etc/passwd") != "" {
		t.Error("Path allowed traversal")
	}
}
