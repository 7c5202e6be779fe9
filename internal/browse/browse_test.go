/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package browse

import (
	"os"
	"path/filepath"
	"testing"
)

func testTree(t *testing.T) *Browser {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"b/t2.mp3", "a/t1.flac", "a/cover.jpg", "top.ogg"} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return New(root)
}

func TestListOrdersDirsFirst(t *testing.T) {
	b := testTree(t)
	entries, err := b.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	want := []string{"a", "b", "top.ogg"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestListOmitsNonAudioFiles(t *testing.T) {
	b := testTree(t)
	entries, err := b.List("a")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "t1.flac" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestResolveRefusesEscape(t *testing.T) {
	b := testTree(t)
	if _, err := b.Resolve("../../etc"); err == nil {
		t.Error("Resolve allowed escape")
	}
	if _, err := b.List(".."); err == nil {
		t.Error("List allowed escape")
	}
}

func TestListAll(t *testing.T) {
	b := testTree(t)
	files, err := b.ListAll("")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("files = %v, want 3 audio files", files)
	}
}
