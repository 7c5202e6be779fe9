/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package repo

import (
	"testing"

	"github.com/tsirysndr/rockboxd/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRepo(t *testing.T) *Repo {
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
	return New(database)
}

func seedTrack(t *testing.T, r *Repo, path, title string) string {
	t.Helper()
	artistID, err := r.Artists.Save(models.Artist{Name: "Bob"})
	if err != nil {
		t.Fatalf("save artist: %v", err)
	}
	albumID, err := r.Albums.Save(models.Album{Title: "X", Artist: "Bob", ArtistID: artistID, Year: 2020, MD5: "album-" + title})
	if err != nil {
		t.Fatalf("save album: %v", err)
	}
	trackID, err := r.Tracks.Save(models.Track{
		Path: path, Title: title, Artist: "Bob", Album: "X",
		ArtistID: artistID, AlbumID: albumID, MD5: "track-" + path,
	})
	if err != nil {
		t.Fatalf("save track: %v", err)
	}
	if err := r.Albums.SaveAlbumTrack(albumID, trackID); err != nil {
		t.Fatalf("link album track: %v", err)
	}
	if err := r.Artists.SaveArtistTrack(artistID, trackID); err != nil {
		t.Fatalf("link artist track: %v", err)
	}
	return trackID
}

func TestArtistSaveDedupesByName(t *testing.T) {
	r := testRepo(t)

	first, err := r.Artists.Save(models.Artist{Name: "Daft Punk"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := r.Artists.Save(models.Artist{Name: "daft punk"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first != second {
		t.Errorf("case-insensitive duplicate created a new artist: %s != %s", first, second)
	}
}

func TestTrackSaveDegradesToRead(t *testing.T) {
	r := testRepo(t)

	id1 := seedTrack(t, r, "/a/t1.flac", "t1")
	id2, err := r.Tracks.Save(models.Track{Path: "/a/t1.flac", Title: "t1", MD5: "track-/a/t1.flac"})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if id1 != id2 {
		t.Errorf("duplicate md5 created a new track: %s != %s", id1, id2)
	}

	_, _, tracks, err := r.Tracks.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if tracks != 1 {
		t.Errorf("track count = %d, want 1", tracks)
	}
}

func TestAlbumSaveDegradesToRead(t *testing.T) {
	r := testRepo(t)

	id1, err := r.Albums.Save(models.Album{Title: "X", MD5: "same"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	id2, err := r.Albums.Save(models.Album{Title: "X", MD5: "same"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id1 != id2 {
		t.Errorf("duplicate md5 created a new album")
	}
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	r := testRepo(t)
	trackID := seedTrack(t, r, "/a/t1.flac", "t1")

	if err := r.Favourites.LikeTrack(trackID); err != nil {
		t.Fatalf("like: %v", err)
	}
	// double like is a no-op
	if err := r.Favourites.LikeTrack(trackID); err != nil {
		t.Fatalf("second like: %v", err)
	}

	liked, err := r.Favourites.LikedTracks()
	if err != nil {
		t.Fatalf("liked tracks: %v", err)
	}
	if len(liked) != 1 || liked[0].ID != trackID {
		t.Fatalf("liked = %v, want [%s]", liked, trackID)
	}

	if err := r.Favourites.UnlikeTrack(trackID); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	liked, err = r.Favourites.LikedTracks()
	if err != nil {
		t.Fatalf("liked tracks: %v", err)
	}
	if len(liked) != 0 {
		t.Errorf("favourites not empty after unlike: %v", liked)
	}
}

func TestPlaylistPositionsStayDense(t *testing.T) {
	r := testRepo(t)
	a := seedTrack(t, r, "/a/t1.flac", "t1")
	b := seedTrack(t, r, "/a/t2.flac", "t2")
	c := seedTrack(t, r, "/a/t3.flac", "t3")

	playlistID, err := r.Playlists.Create("mix", nil, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Playlists.InsertTracks(playlistID, []string{a, b}, -1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// insert before index 1
	if err := r.Playlists.InsertTracks(playlistID, []string{c}, 1); err != nil {
		t.Fatalf("insert at 1: %v", err)
	}

	tracks, err := r.Playlists.Tracks(playlistID)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	want := []string{a, c, b}
	if len(tracks) != len(want) {
		t.Fatalf("len = %d, want %d", len(tracks), len(want))
	}
	for i, track := range tracks {
		if track.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, track.ID, want[i])
		}
	}

	if err := r.Playlists.RemoveTrack(playlistID, 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	tracks, err = r.Playlists.Tracks(playlistID)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	if len(tracks) != 2 || tracks[0].ID != c || tracks[1].ID != b {
		t.Errorf("after remove: %v", tracks)
	}

	if err := r.Playlists.RemoveTrack(playlistID, 9); err != ErrNotFound {
		t.Errorf("remove out of range = %v, want ErrNotFound", err)
	}
}
