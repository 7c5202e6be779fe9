/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package covers implements the content-addressed album cover store.
package covers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes album covers under a single directory, named
// <album_md5>.<ext>. Files are immutable under their content hash, so a
// write is create-if-absent and readers never need a lock.
type Store struct {
	dir string
}

// New creates the store directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create covers dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the covers directory.
func (s *Store) Dir() string {
	return s.dir
}

// extForMIME maps picture MIME types to file extensions. Unknown types
// return "".
func extForMIME(mime string) string {
	switch strings.ToLower(mime) {
	case "image/jpeg", "image/jpg", "jpeg", "jpg":
		return "jpg"
	case "image/png", "png":
		return "png"
	case "image/bmp", "bmp":
		return "bmp"
	case "image/gif", "gif":
		return "gif"
	case "image/tiff", "tiff", "tif":
		return "tiff"
	}
	return ""
}

// Put stores picture data for an album hash and returns the stored
// basename. If the MIME type is unknown it returns "" and no error; if the
// file already exists the write is skipped.
func (s *Store) Put(albumMD5, mime string, data []byte) (string, error) {
	ext := extForMIME(mime)
	if ext == "" {
		return "", nil
	}

	name := albumMD5 + "." + ext
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return name, nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write cover %s: %w", name, err)
	}
	return name, nil
}

// Path resolves a stored basename to its absolute path, or "" when the
// cover does not exist.
func (s *Store) Path(name string) string {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return ""
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Exists reports whether a cover basename is present.
func (s *Store) Exists(name string) bool {
	return s.Path(name) != ""
}
