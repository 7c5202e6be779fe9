/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package enrich

import (
	"testing"

	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/library"
	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRepo(t *testing.T) *repo.Repo {
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

func seed(t *testing.T, r *repo.Repo, path string) string {
	t.Helper()
	art := "cover.png"
	id, err := r.Tracks.Save(models.Track{
		Path:     path,
		Title:    "Song",
		Artist:   "Bob",
		Album:    "X",
		Length:   180000,
		MD5:      library.TrackMD5(path),
		AlbumArt: &art,
	})
	if err != nil {
		t.Fatalf("save track: %v", err)
	}
	return id
}

func TestEnrichOverlaysDatabaseFields(t *testing.T) {
	r := testRepo(t)
	id := seed(t, r, "/m/a.flac")
	e := NewEnricher(r)

	current := e.Enrich(engine.TrackRecord{Path: "/m/a.flac"}, 1500)
	if current.ID != id || current.Title != "Song" || current.AlbumArt != "cover.png" {
		t.Errorf("enriched = %+v", current)
	}
	if current.Elapsed != 1500 || current.Length != 180000 {
		t.Errorf("elapsed/length = %d/%d", current.Elapsed, current.Length)
	}
}

func TestEnrichUnmatchedPathDegrades(t *testing.T) {
	e := NewEnricher(testRepo(t))
	current := e.Enrich(engine.TrackRecord{Path: "/nowhere.mp3", Length: 1000}, 10)
	if current.ID != "" || current.Path != "/nowhere.mp3" || current.Length != 1000 {
		t.Errorf("bare publish = %+v", current)
	}
}

func TestEnrichCachesByMD5(t *testing.T) {
	r := testRepo(t)
	seed(t, r, "/m/a.flac")
	e := NewEnricher(r)

	first := e.Enrich(engine.TrackRecord{Path: "/m/a.flac"}, 0)

	// the row changes underneath; the cache still answers
	if err := r.DB().Model(&models.Track{}).Where("id = ?", first.ID).
		Update("title", "Renamed").Error; err != nil {
		t.Fatalf("update: %v", err)
	}
	second := e.Enrich(engine.TrackRecord{Path: "/m/a.flac"}, 0)
	if second.Title != "Song" {
		t.Errorf("cache miss: title = %q", second.Title)
	}

	e.Invalidate()
	third := e.Enrich(engine.TrackRecord{Path: "/m/a.flac"}, 0)
	if third.Title != "Renamed" {
		t.Errorf("invalidate did not refresh: title = %q", third.Title)
	}
}

func TestTickPublishesAllTopics(t *testing.T) {
	r := testRepo(t)
	seed(t, r, "/m/a.flac")

	queue := playlist.New()
	queue.Create(t.TempDir(), []string{"/m/a.flac"})
	eng := engine.NewEmulated(queue, nil)
	eng.Play(0, 0)

	broker := events.NewBroker()
	currentSub := broker.CurrentTrack.Subscribe()
	statusSub := broker.Status.Subscribe()
	playlistSub := broker.Playlist.Subscribe()
	defer currentSub.Unsubscribe()
	defer statusSub.Unsubscribe()
	defer playlistSub.Unsubscribe()

	NewPipeline(NewEnricher(r), eng, queue, broker).Tick()

	if got := <-currentSub.C(); got.Title != "Song" {
		t.Errorf("current track = %+v", got)
	}
	if got := <-statusSub.C(); got.Status != events.StatusPlaying {
		t.Errorf("status = %+v", got)
	}
	if got := <-playlistSub.C(); got.Amount != 1 || got.Index != 0 {
		t.Errorf("playlist = %+v", got)
	}
}
