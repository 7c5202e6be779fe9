/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package search maintains the on-disk full-text indexes for albums,
// artists and tracks.
package search

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/models"
)

const maxResults = 20

// AlbumDoc is the indexed projection of an album.
type AlbumDoc struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// ArtistDoc is the indexed projection of an artist.
type ArtistDoc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TrackDoc is the indexed projection of a track.
type TrackDoc struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Path   string `json:"path"`
}

// Results holds the entity ids matched by one search, best first.
type Results struct {
	AlbumIDs  []string
	ArtistIDs []string
	TrackIDs  []string
}

// Index bundles the per-entity bleve indexes. All methods are safe for
// concurrent use; Rebuild swaps documents in place through batches.
type Index struct {
	dir     string
	albums  bleve.Index
	artists bleve.Index
	tracks  bleve.Index
}

// Open opens the indexes under dir, creating any that do not exist yet.
func Open(dir string) (*Index, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create indexes dir: %w", err)
	}

	idx := &Index{dir: dir}
	var err error
	if idx.albums, err = openOne(filepath.Join(dir, "albums")); err != nil {
		return nil, err
	}
	if idx.artists, err = openOne(filepath.Join(dir, "artists")); err != nil {
		idx.albums.Close()
		return nil, err
	}
	if idx.tracks, err = openOne(filepath.Join(dir, "tracks")); err != nil {
		idx.albums.Close()
		idx.artists.Close()
		return nil, err
	}
	return idx, nil
}

func openOne(path string) (bleve.Index, error) {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, bleve.NewIndexMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	return index, nil
}

// Close closes all indexes.
func (idx *Index) Close() error {
	var first error
	for _, index := range []bleve.Index{idx.albums, idx.artists, idx.tracks} {
		if err := index.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// IndexAlbum upserts one album document.
func (idx *Index) IndexAlbum(album models.Album) error {
	return idx.albums.Index(album.ID, AlbumDoc{ID: album.ID, Title: album.Title, Artist: album.Artist})
}

// IndexArtist upserts one artist document.
func (idx *Index) IndexArtist(artist models.Artist) error {
	return idx.artists.Index(artist.ID, ArtistDoc{ID: artist.ID, Name: artist.Name})
}

// IndexTrack upserts one track document.
func (idx *Index) IndexTrack(track models.Track) error {
	return idx.tracks.Index(track.ID, TrackDoc{
		ID:     track.ID,
		Title:  track.Title,
		Artist: track.Artist,
		Album:  track.Album,
		Path:   track.Path,
	})
}

// Rebuild reindexes every entity from the given lists, replacing previous
// documents with the same ids.
func (idx *Index) Rebuild(albums []models.Album, artists []models.Artist, tracks []models.Track) error {
	albumBatch := idx.albums.NewBatch()
	for _, album := range albums {
		if err := albumBatch.Index(album.ID, AlbumDoc{ID: album.ID, Title: album.Title, Artist: album.Artist}); err != nil {
			return err
		}
	}
	if err := idx.albums.Batch(albumBatch); err != nil {
		return fmt.Errorf("index albums: %w", err)
	}

	artistBatch := idx.artists.NewBatch()
	for _, artist := range artists {
		if err := artistBatch.Index(artist.ID, ArtistDoc{ID: artist.ID, Name: artist.Name}); err != nil {
			return err
		}
	}
	if err := idx.artists.Batch(artistBatch); err != nil {
		return fmt.Errorf("index artists: %w", err)
	}

	trackBatch := idx.tracks.NewBatch()
	for _, track := range tracks {
		doc := TrackDoc{ID: track.ID, Title: track.Title, Artist: track.Artist, Album: track.Album, Path: track.Path}
		if err := trackBatch.Index(track.ID, doc); err != nil {
			return err
		}
	}
	if err := idx.tracks.Batch(trackBatch); err != nil {
		return fmt.Errorf("index tracks: %w", err)
	}

	log.Debug().
		Int("albums", len(albums)).
		Int("artists", len(artists)).
		Int("tracks", len(tracks)).
		Msg("search indexes rebuilt")
	return nil
}

// Search runs the term against all three indexes. Match queries run first;
// when an index returns nothing a fuzzy query picks up near misses.
func (idx *Index) Search(term string) (Results, error) {
	var results Results
	var err error

	if results.AlbumIDs, err = searchOne(idx.albums, term); err != nil {
		return Results{}, err
	}
	if results.ArtistIDs, err = searchOne(idx.artists, term); err != nil {
		return Results{}, err
	}
	if results.TrackIDs, err = searchOne(idx.tracks, term); err != nil {
		return Results{}, err
	}
	return results, nil
}

func searchOne(index bleve.Index, term string) ([]string, error) {
	ids, err := run(index, bleve.NewMatchQuery(term))
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		return ids, nil
	}

	fuzzy := bleve.NewFuzzyQuery(term)
	fuzzy.SetFuzziness(1)
	return run(index, fuzzy)
}

func run(index bleve.Index, q query.Query) ([]string, error) {
	req := bleve.NewSearchRequestOptions(q, maxResults, 0, false)
	res, err := index.Search(req)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
