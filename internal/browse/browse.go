/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package browse lists the filesystem tree under the library root for the
// file browser surfaces.
package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tsirysndr/rockboxd/internal/library"
)

// Entry is one row in a directory listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime int64
}

// Browser serves listings confined to one root directory.
type Browser struct {
	root string
}

// New returns a browser rooted at root.
func New(root string) *Browser {
	return &Browser{root: filepath.Clean(root)}
}

// Root returns the configured root directory.
func (b *Browser) Root() string { return b.root }

// Resolve maps a relative request path into the root, refusing escapes.
func (b *Browser) Resolve(rel string) (string, error) {
	full := filepath.Clean(filepath.Join(b.root, rel))
	if full != b.root && !strings.HasPrefix(full, b.root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the library root", rel)
	}
	return full, nil
}

// List returns the entries of one directory, directories first, audio
// files after, everything else omitted.
func (b *Browser) List(rel string) ([]Entry, error) {
	full, err := b.Resolve(rel)
	if err != nil {
		return nil, err
	}
	dirents, err := os.ReadDir(full)
	if err != nil {
		return nil, err
	}

	var dirs, files []Entry
	for _, d := range dirents {
		path := filepath.Join(full, d.Name())
		info, err := d.Info()
		if err != nil {
			continue
		}
		entry := Entry{
			Name:    d.Name(),
			Path:    path,
			IsDir:   d.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime().Unix(),
		}
		switch {
		case d.IsDir():
			dirs = append(dirs, entry)
		case library.IsAudioFile(d.Name()):
			files = append(files, entry)
		}
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return append(dirs, files...), nil
}

// ListAll walks the whole tree under rel and returns every audio file.
func (b *Browser) ListAll(rel string) ([]string, error) {
	full, err := b.Resolve(rel)
	if err != nil {
		return nil, err
	}
	var out []string
	err = filepath.WalkDir(full, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && library.IsAudioFile(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}
