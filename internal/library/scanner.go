/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package library walks the music directory, reads tags and fills the
// database and search indexes.
package library

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/covers"
	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/search"
	"github.com/tsirysndr/rockboxd/internal/telemetry"
)

// scanJob is one file queued for a tag worker.
type scanJob struct {
	path string
}

// scanResult carries the parsed metadata or the per-file failure.
type scanResult struct {
	meta *Metadata
	path string
	err  error
}

// Stats summarizes one completed scan.
type Stats struct {
	Scanned  int
	Skipped  int
	Duration time.Duration
}

// Scanner ingests a music directory. Per-file failures are logged and
// skipped; only directory walk errors abort the scan.
type Scanner struct {
	repo    *repo.Repo
	covers  *covers.Store
	index   *search.Index
	workers int

	// readTags is swappable so tests can scan without real audio files.
	readTags func(path string) (*Metadata, error)

	// afterScan runs once the database is filled, before Scan returns.
	// The server hooks cache warm-up here.
	afterScan func(ctx context.Context) error
}

// NewScanner builds a scanner over the given stores.
func NewScanner(r *repo.Repo, c *covers.Store, idx *search.Index, workers int) *Scanner {
	if workers < 1 {
		workers = 4
	}
	return &Scanner{
		repo:     r,
		covers:   c,
		index:    idx,
		workers:  workers,
		readTags: ReadTags,
	}
}

// OnComplete registers a hook run after every successful scan.
func (s *Scanner) OnComplete(fn func(ctx context.Context) error) {
	s.afterScan = fn
}

// Scan walks root, upserts every recognized audio file and rebuilds the
// search indexes from the resulting database state.
func (s *Scanner) Scan(ctx context.Context, root string) (*Stats, error) {
	start := time.Now()

	jobs := make(chan scanJob, s.workers*2)
	results := make(chan scanResult, s.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				meta, err := s.readTags(job.path)
				results <- scanResult{meta: meta, path: job.path, err: err}
			}
		}()
	}

	stats := &Stats{}
	var collectDone sync.WaitGroup
	collectDone.Add(1)
	go func() {
		defer collectDone.Done()
		for r := range results {
			if r.err != nil {
				log.Warn().Err(r.err).Str("path", r.path).Msg("skipping unreadable file")
				stats.Skipped++
				continue
			}
			if err := s.ingest(r.meta); err != nil {
				log.Warn().Err(err).Str("path", r.path).Msg("skipping file")
				stats.Skipped++
				continue
			}
			stats.Scanned++
			telemetry.TracksIndexed.Inc()
		}
	}()

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !IsAudioFile(path) {
			return nil
		}
		jobs <- scanJob{path: path}
		return nil
	})

	close(jobs)
	wg.Wait()
	close(results)
	collectDone.Wait()

	if walkErr != nil {
		telemetry.ScansTotal.WithLabelValues("error").Inc()
		return nil, walkErr
	}

	if err := s.rebuildIndexes(); err != nil {
		telemetry.ScansTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if s.afterScan != nil {
		if err := s.afterScan(ctx); err != nil {
			telemetry.ScansTotal.WithLabelValues("error").Inc()
			return nil, err
		}
	}

	telemetry.ScansTotal.WithLabelValues("ok").Inc()
	stats.Duration = time.Since(start)
	log.Info().
		Str("root", root).
		Int("scanned", stats.Scanned).
		Int("skipped", stats.Skipped).
		Dur("took", stats.Duration).
		Msg("library scan finished")
	return stats, nil
}

// ingest writes one file's metadata to the database and cover store.
func (s *Scanner) ingest(meta *Metadata) error {
	albumArtist := meta.AlbumArtist
	if albumArtist == "" {
		albumArtist = meta.Artist
	}

	artistID, err := s.repo.Artists.Save(models.Artist{Name: albumArtist})
	if err != nil {
		return err
	}

	albumMD5 := AlbumMD5(albumArtist, meta.Album, meta.Year)
	var albumArt *string
	if meta.Picture != nil && s.covers != nil {
		name, err := s.covers.Put(albumMD5, meta.Picture.MIME, meta.Picture.Data)
		if err != nil {
			return err
		}
		if name != "" {
			albumArt = &name
		}
	}

	album := models.Album{
		Title:    meta.Album,
		Artist:   albumArtist,
		ArtistID: artistID,
		Year:     meta.Year,
		MD5:      albumMD5,
		AlbumArt: albumArt,
	}
	if meta.YearString != "" {
		album.YearString = meta.YearString
	}
	albumID, err := s.repo.Albums.Save(album)
	if err != nil {
		return err
	}

	track := models.Track{
		Path:        meta.Path,
		Title:       meta.Title,
		Artist:      meta.Artist,
		Album:       meta.Album,
		AlbumArtist: albumArtist,
		Composer:    meta.Composer,
		DiscNumber:  meta.DiscNumber,
		Bitrate:     meta.Bitrate,
		Frequency:   meta.Frequency,
		Filesize:    meta.Filesize,
		Length:      meta.Length,
		MD5:         TrackMD5(meta.Path),
		AlbumArt:    albumArt,
		ArtistID:    artistID,
		AlbumID:     albumID,
	}
	if meta.Genre != "" {
		genre := meta.Genre
		track.Genre = &genre
	}
	if meta.Year > 0 {
		year := meta.Year
		track.Year = &year
	}
	if meta.YearString != "" {
		ys := meta.YearString
		track.YearString = &ys
	}
	if meta.TrackNumber > 0 {
		n := meta.TrackNumber
		track.TrackNumber = &n
	}

	trackID, err := s.repo.Tracks.Save(track)
	if err != nil {
		return err
	}
	if err := s.repo.Albums.SaveAlbumTrack(albumID, trackID); err != nil {
		return err
	}
	return s.repo.Artists.SaveArtistTrack(artistID, trackID)
}

// rebuildIndexes reindexes search from current database state.
func (s *Scanner) rebuildIndexes() error {
	if s.index == nil {
		return nil
	}
	albums, err := s.repo.Albums.All()
	if err != nil {
		return err
	}
	artists, err := s.repo.Artists.All()
	if err != nil {
		return err
	}
	tracks, err := s.repo.Tracks.All()
	if err != nil {
		return err
	}
	return s.index.Rebuild(albums, artists, tracks)
}
