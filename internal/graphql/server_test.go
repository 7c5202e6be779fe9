/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package graphql

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/covers"
	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/enrich"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/search"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	server *httptest.Server
	repo   *repo.Repo
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
	enricher := enrich.NewEnricher(r)
	facade := playback.New(b, eng, queue, r, enricher, broker)

	index, err := search.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open search index: %v", err)
	}
	t.Cleanup(func() { index.Close() })

	store, err := covers.New(t.TempDir())
	if err != nil {
		t.Fatalf("open covers store: %v", err)
	}

	srv, err := NewServer(&Resolver{Facade: facade, Repo: r, Search: index}, store, "")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler(nil))
	t.Cleanup(ts.Close)

	return &fixture{server: ts, repo: r}
}

func (f *fixture) query(t *testing.T, query string) map[string]interface{} {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"query": query})
	resp, err := http.Post(f.server.URL+"/graphql", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Data   map[string]interface{} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Errors) > 0 {
		t.Fatalf("graphql errors: %v", out.Errors)
	}
	return out.Data
}

func seedTrack(t *testing.T, r *repo.Repo, path, title string) string {
	t.Helper()
	artistID, err := r.Artists.Save(models.Artist{Name: "Boards of Canada"})
	if err != nil {
		t.Fatalf("save artist: %v", err)
	}
	albumID, err := r.Albums.Save(models.Album{
		Title: "Geogaddi", Artist: "Boards of Canada", ArtistID: artistID,
		Year: 2002, MD5: "album-" + title,
	})
	if err != nil {
		t.Fatalf("save album: %v", err)
	}
	trackID, err := r.Tracks.Save(models.Track{
		Path: path, Title: title, Artist: "Boards of Canada",
		Album: "Geogaddi", AlbumArtist: "Boards of Canada",
		ArtistID: artistID, AlbumID: albumID, MD5: "track-" + title, Length: 180000,
	})
	if err != nil {
		t.Fatalf("save track: %v", err)
	}
	if err := r.Albums.SaveAlbumTrack(albumID, trackID); err != nil {
		t.Fatalf("link album track: %v", err)
	}
	return trackID
}

func TestQueryTracks(t *testing.T) {
	f := newFixture(t)
	seedTrack(t, f.repo, "/music/a.flac", "Music Is Math")
	seedTrack(t, f.repo, "/music/b.flac", "Gyroscope")

	data := f.query(t, `{ tracks { id title artist } }`)
	tracks, ok := data["tracks"].([]interface{})
	if !ok || len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %v", data["tracks"])
	}
	first := tracks[0].(map[string]interface{})
	if first["artist"] != "Boards of Canada" {
		t.Errorf("artist = %v", first["artist"])
	}
}

func TestQueryTrackByID(t *testing.T) {
	f := newFixture(t)
	id := seedTrack(t, f.repo, "/music/a.flac", "Music Is Math")

	data := f.query(t, `{ track(id: "`+id+`") { id title } }`)
	track, ok := data["track"].(map[string]interface{})
	if !ok {
		t.Fatalf("track = %v", data["track"])
	}
	if track["title"] != "Music Is Math" {
		t.Errorf("title = %v", track["title"])
	}
}

func TestLikeTrackRoundTrip(t *testing.T) {
	f := newFixture(t)
	id := seedTrack(t, f.repo, "/music/a.flac", "Music Is Math")

	f.query(t, `mutation { likeTrack(id: "`+id+`") }`)
	data := f.query(t, `{ likedTracks { id } }`)
	liked, _ := data["likedTracks"].([]interface{})
	if len(liked) != 1 {
		t.Fatalf("expected 1 liked track, got %d", len(liked))
	}

	f.query(t, `mutation { unlikeTrack(id: "`+id+`") }`)
	data = f.query(t, `{ likedTracks { id } }`)
	liked, _ = data["likedTracks"].([]interface{})
	if len(liked) != 0 {
		t.Fatalf("expected 0 liked tracks after unlike, got %d", len(liked))
	}
}

func TestCurrentTrackNullWhenStopped(t *testing.T) {
	f := newFixture(t)
	data := f.query(t, `{ currentTrack { id } }`)
	if data["currentTrack"] != nil {
		t.Errorf("currentTrack = %v, want null", data["currentTrack"])
	}
}

func TestAlbumTracksNested(t *testing.T) {
	f := newFixture(t)
	seedTrack(t, f.repo, "/music/a.flac", "Music Is Math")

	data := f.query(t, `{ albums { id title tracks { title } } }`)
	albums, _ := data["albums"].([]interface{})
	if len(albums) != 1 {
		t.Fatalf("expected 1 album, got %d", len(albums))
	}
	album := albums[0].(map[string]interface{})
	tracks, _ := album["tracks"].([]interface{})
	if len(tracks) != 1 {
		t.Fatalf("expected 1 nested track, got %d", len(tracks))
	}
}

func TestTrackDownloadMissingID(t *testing.T) {
	f := newFixture(t)
	resp, err := http.Get(f.server.URL + "/tracks/no-such-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCoverMissingFile(t *testing.T) {
	f := newFixture(t)
	resp, err := http.Get(f.server.URL + "/covers/missing.jpg")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSPAFallbackServesPlaceholder(t *testing.T) {
	f := newFixture(t)
	for _, route := range []string{"/", "/albums", "/likes"} {
		resp, err := http.Get(f.server.URL + route)
		if err != nil {
			t.Fatalf("get %s: %v", route, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d, want 200", route, resp.StatusCode)
		}
	}
}
