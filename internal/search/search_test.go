/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package search

import (
	"testing"

	"github.com/tsirysndr/rockboxd/internal/models"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestSearchAcrossEntities(t *testing.T) {
	idx := testIndex(t)

	err := idx.Rebuild(
		[]models.Album{{ID: "al1", Title: "Discovery", Artist: "Daft Punk"}},
		[]models.Artist{{ID: "ar1", Name: "Daft Punk"}},
		[]models.Track{{ID: "tr1", Title: "Harder Better Faster Stronger", Artist: "Daft Punk", Album: "Discovery"}},
	)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search("discovery")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results.AlbumIDs) != 1 || results.AlbumIDs[0] != "al1" {
		t.Errorf("albums = %v, want [al1]", results.AlbumIDs)
	}
	if len(results.TrackIDs) != 1 || results.TrackIDs[0] != "tr1" {
		t.Errorf("tracks = %v, want [tr1]", results.TrackIDs)
	}

	results, err = idx.Search("daft")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results.ArtistIDs) != 1 || results.ArtistIDs[0] != "ar1" {
		t.Errorf("artists = %v, want [ar1]", results.ArtistIDs)
	}
}

func TestSearchFuzzyFallback(t *testing.T) {
	idx := testIndex(t)

	if err := idx.IndexArtist(models.Artist{ID: "ar1", Name: "Radiohead"}); err != nil {
		t.Fatalf("IndexArtist: %v", err)
	}

	// one edit away, no exact match
	results, err := idx.Search("radiohea")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results.ArtistIDs) != 1 || results.ArtistIDs[0] != "ar1" {
		t.Errorf("fuzzy artists = %v, want [ar1]", results.ArtistIDs)
	}
}

func TestRebuildReplacesDocuments(t *testing.T) {
	idx := testIndex(t)

	if err := idx.IndexTrack(models.Track{ID: "tr1", Title: "Old Title"}); err != nil {
		t.Fatalf("IndexTrack: %v", err)
	}
	err := idx.Rebuild(nil, nil, []models.Track{{ID: "tr1", Title: "New Title"}})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search("new")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results.TrackIDs) != 1 {
		t.Errorf("tracks = %v, want one hit for rewritten title", results.TrackIDs)
	}
}
