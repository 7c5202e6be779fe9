/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/telemetry"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *repo.Repo {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(
		&models.Artist{}, &models.Album{}, &models.Track{},
		&models.AlbumTrack{}, &models.ArtistTrack{}, &models.Favourite{},
		&models.PlaylistFolder{}, &models.Playlist{}, &models.PlaylistTrack{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo.New(database)
}

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func fakeTags(path string) (*Metadata, error) {
	base := filepath.Base(path)
	title := base[:len(base)-len(filepath.Ext(base))]
	return &Metadata{
		Path:   path,
		Title:  title,
		Artist: "Artist",
		Album:  "Album",
		Year:   2021,
	}, nil
}

func TestIsAudioFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/music/a.flac", true},
		{"/music/a.FLAC", true},
		{"/music/a.opus", true},
		{"/music/cover.jpg", false},
		{"/music/noext", false},
	}
	for _, tc := range cases {
		if got := IsAudioFile(tc.path); got != tc.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestScanIngestsAudioFiles(t *testing.T) {
	r := testDB(t)
	root := writeFiles(t, "a/one.flac", "a/two.mp3", "a/cover.jpg", "b/three.ogg")

	scanner := NewScanner(r, nil, nil, 2)
	scanner.readTags = fakeTags

	stats, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if stats.Scanned != 3 {
		t.Errorf("scanned = %d, want 3", stats.Scanned)
	}

	artists, albums, tracks, err := r.Tracks.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if artists != 1 || albums != 1 || tracks != 3 {
		t.Errorf("counts = %d/%d/%d, want 1/1/3", artists, albums, tracks)
	}
}

func TestScanCountsOutcome(t *testing.T) {
	r := testDB(t)
	root := writeFiles(t, "a/one.flac")

	scanner := NewScanner(r, nil, nil, 1)
	scanner.readTags = fakeTags

	okBefore := testutil.ToFloat64(telemetry.ScansTotal.WithLabelValues("ok"))
	if _, err := scanner.Scan(context.Background(), root); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := testutil.ToFloat64(telemetry.ScansTotal.WithLabelValues("ok")); got != okBefore+1 {
		t.Errorf("ok counter = %v, want %v", got, okBefore+1)
	}

	errBefore := testutil.ToFloat64(telemetry.ScansTotal.WithLabelValues("error"))
	if _, err := scanner.Scan(context.Background(), filepath.Join(root, "missing")); err == nil {
		t.Fatal("Scan on missing root succeeded")
	}
	if got := testutil.ToFloat64(telemetry.ScansTotal.WithLabelValues("error")); got != errBefore+1 {
		t.Errorf("error counter = %v, want %v", got, errBefore+1)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	r := testDB(t)
	root := writeFiles(t, "one.flac")

	scanner := NewScanner(r, nil, nil, 1)
	scanner.readTags = fakeTags

	for i := 0; i < 2; i++ {
		if _, err := scanner.Scan(context.Background(), root); err != nil {
			t.Fatalf("scan %d: %v", i, err)
		}
	}

	_, _, tracks, err := r.Tracks.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if tracks != 1 {
		t.Errorf("tracks = %d, want 1 after rescans", tracks)
	}
}

func TestScanSkipsUnreadableFiles(t *testing.T) {
	r := testDB(t)
	root := writeFiles(t, "good.flac", "bad.flac")

	scanner := NewScanner(r, nil, nil, 1)
	scanner.readTags = func(path string) (*Metadata, error) {
		if filepath.Base(path) == "bad.flac" {
			return nil, errors.New("corrupt header")
		}
		return fakeTags(path)
	}

	stats, err := scanner.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if stats.Scanned != 1 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 1 scanned 1 skipped", stats)
	}
}

func TestScanAlbumArtistFallback(t *testing.T) {
	if got := AlbumMD5("Artist", "Album", 2021); got != AlbumMD5("Artist", "Album", 2021) {
		t.Errorf("AlbumMD5 not deterministic: %s", got)
	}
	if AlbumMD5("A", "X", 2021) == AlbumMD5("B", "X", 2021) {
		t.Error("AlbumMD5 ignores album artist")
	}
	if TrackMD5("/a/one.flac") == TrackMD5("/a/two.flac") {
		t.Error("TrackMD5 ignores path")
	}
}
