/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package playback

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/enrich"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	facade *Facade
	engine *engine.Emulated
	queue  *playlist.Engine
	repo   *repo.Repo
	broker *events.Broker
	root   string
}

func newFixture(t *testing.T) *fixture {
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
	r := repo.New(database)

	queue := playlist.New()
	eng := engine.NewEmulated(queue, nil)
	b := bus.New()
	go engine.Consume(b, eng)
	t.Cleanup(b.Close)

	broker := events.NewBroker()
	facade := New(b, eng, queue, r, enrich.NewEnricher(r), broker)
	return &fixture{facade: facade, engine: eng, queue: queue, repo: r, broker: broker, root: t.TempDir()}
}

func (f *fixture) writeAudio(t *testing.T, names ...string) []string {
	t.Helper()
	out := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(f.root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		out = append(out, path)
	}
	return out
}

func (f *fixture) seedAlbum(t *testing.T, trackPaths []string) string {
	t.Helper()
	artistID, err := f.repo.Artists.Save(models.Artist{Name: "Bob"})
	if err != nil {
		t.Fatalf("save artist: %v", err)
	}
	albumID, err := f.repo.Albums.Save(models.Album{Title: "X", Artist: "Bob", ArtistID: artistID, MD5: "alb"})
	if err != nil {
		t.Fatalf("save album: %v", err)
	}
	for i, path := range trackPaths {
		number := i + 1
		trackID, err := f.repo.Tracks.Save(models.Track{
			Path: path, Title: filepath.Base(path), Artist: "Bob", Album: "X",
			ArtistID: artistID, AlbumID: albumID, MD5: "md5-" + path,
			TrackNumber: &number,
		})
		if err != nil {
			t.Fatalf("save track %d: %v", i, err)
		}
		if err := f.repo.Albums.SaveAlbumTrack(albumID, trackID); err != nil {
			t.Fatalf("link: %v", err)
		}
		if err := f.repo.Artists.SaveArtistTrack(artistID, trackID); err != nil {
			t.Fatalf("link: %v", err)
		}
	}
	return albumID
}

func waitStatus(t *testing.T, eng *engine.Emulated, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if eng.Status() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("engine never reached status %s", engine.StatusName(want))
}

func TestPlayAlbum(t *testing.T) {
	f := newFixture(t)
	paths := f.writeAudio(t, "a/t1.flac", "a/t2.flac")
	albumID := f.seedAlbum(t, paths)

	if err := f.facade.PlayAlbum(albumID, Options{}); err != nil {
		t.Fatalf("PlayAlbum: %v", err)
	}
	waitStatus(t, f.engine, events.StatusPlaying)

	current := f.facade.CurrentTrack()
	if current == nil || current.Path != paths[0] {
		t.Fatalf("current = %+v, want %s", current, paths[0])
	}
	if f.queue.Amount() != 2 {
		t.Errorf("queue amount = %d, want 2", f.queue.Amount())
	}
}

func TestPlayAlbumNotFound(t *testing.T) {
	f := newFixture(t)
	if err := f.facade.PlayAlbum("missing", Options{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPlayDirectory(t *testing.T) {
	f := newFixture(t)
	f.writeAudio(t, "dir/t1.mp3", "dir/t2.mp3", "dir/notes.txt", "dir/sub/t3.mp3")

	if err := f.facade.PlayDirectory(filepath.Join(f.root, "dir"), false, Options{}); err != nil {
		t.Fatalf("PlayDirectory: %v", err)
	}
	if got := f.queue.Amount(); got != 2 {
		t.Errorf("flat amount = %d, want 2", got)
	}

	if err := f.facade.PlayDirectory(filepath.Join(f.root, "dir"), true, Options{}); err != nil {
		t.Fatalf("PlayDirectory recurse: %v", err)
	}
	if got := f.queue.Amount(); got != 3 {
		t.Errorf("recursive amount = %d, want 3", got)
	}
}

func TestPlayDirectoryEmptyIsNoOp(t *testing.T) {
	f := newFixture(t)
	empty := filepath.Join(f.root, "empty")
	if err := os.MkdirAll(empty, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := f.facade.PlayDirectory(empty, false, Options{}); err != nil {
		t.Fatalf("empty dir = %v, want success", err)
	}
	if f.queue.Amount() != 0 {
		t.Error("empty dir changed queue state")
	}
}

func TestPlayDirectoryRejectsFile(t *testing.T) {
	f := newFixture(t)
	paths := f.writeAudio(t, "t1.mp3")
	if err := f.facade.PlayDirectory(paths[0], false, Options{}); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("err = %v, want ErrNotADirectory", err)
	}
}

func TestPlayTrackRejectsNonAudio(t *testing.T) {
	f := newFixture(t)
	paths := f.writeAudio(t, "notes.txt")
	if err := f.facade.PlayTrack(paths[0]); !errors.Is(err, ErrNotAFile) {
		t.Errorf("err = %v, want ErrNotAFile", err)
	}
	if err := f.facade.PlayTrack("/missing.mp3"); !errors.Is(err, ErrNotAFile) {
		t.Errorf("err = %v, want ErrNotAFile", err)
	}
}

func TestPlayValidation(t *testing.T) {
	f := newFixture(t)
	if err := f.facade.Play(-1, 0); !errors.Is(err, ErrInvalid) {
		t.Errorf("Play(-1) = %v, want ErrInvalid", err)
	}
	if err := f.facade.FfRewind(-1); !errors.Is(err, ErrInvalid) {
		t.Errorf("FfRewind(-1) = %v, want ErrInvalid", err)
	}
}

func TestStreamStatusPrimesThenFollows(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := f.facade.StreamStatus(ctx)

	// primed read arrives before any publish
	select {
	case got := <-stream:
		if got.Status != events.StatusStopped {
			t.Errorf("primed status = %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no primed status")
	}

	f.broker.Status.Publish(events.PlaybackStatus{Status: events.StatusPlaying})
	select {
	case got := <-stream:
		if got.Status != events.StatusPlaying {
			t.Errorf("followed status = %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no followed status")
	}

	cancel()
	for range stream {
	}
}

func TestShuffleOptionKeepsSelection(t *testing.T) {
	f := newFixture(t)
	paths := f.writeAudio(t, "a/t1.flac", "a/t2.flac", "a/t3.flac")
	albumID := f.seedAlbum(t, paths)

	if err := f.facade.PlayAlbum(albumID, Options{Shuffle: true}); err != nil {
		t.Fatalf("PlayAlbum: %v", err)
	}
	snap := f.queue.GetCurrent()
	if snap.Amount != 3 {
		t.Fatalf("amount = %d, want 3", snap.Amount)
	}
	seen := map[string]bool{}
	for _, p := range snap.Tracks {
		seen[p] = true
	}
	for _, p := range paths {
		if !seen[p] {
			t.Errorf("shuffled queue lost %s", p)
		}
	}
}
