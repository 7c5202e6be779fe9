/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package enrich joins the engine's raw track record with database rows
// under md5(path) and publishes the result at a fixed cadence.
package enrich

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/repo"
)

// Cadence is the publish interval.
const Cadence = 500 * time.Millisecond

const cacheLimit = 64

// Enricher resolves raw track records against the database, keeping a
// small cache keyed by the track's md5.
type Enricher struct {
	repo *repo.Repo

	mu    sync.Mutex
	cache map[string]events.CurrentTrack
}

// NewEnricher returns an enricher over the given repository.
func NewEnricher(r *repo.Repo) *Enricher {
	return &Enricher{repo: r, cache: make(map[string]events.CurrentTrack)}
}

// Enrich overlays database fields onto the raw record. A path with no
// matching row still produces a publishable track with empty ids.
func (e *Enricher) Enrich(record engine.TrackRecord, elapsed int) events.CurrentTrack {
	key := fmt.Sprintf("%x", md5.Sum([]byte(record.Path)))

	e.mu.Lock()
	cached, ok := e.cache[key]
	e.mu.Unlock()
	if ok {
		cached.Elapsed = elapsed
		return cached
	}

	current := events.CurrentTrack{
		Path:    record.Path,
		Length:  record.Length,
		Elapsed: elapsed,
	}

	track, err := e.repo.Tracks.FindByMD5(key)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		// unmatched tracks are published bare
	case err != nil:
		log.Warn().Err(err).Str("path", record.Path).Msg("enrichment lookup failed")
		return current
	default:
		current.ID = track.ID
		current.Title = track.Title
		current.Artist = track.Artist
		current.Album = track.Album
		current.AlbumArtist = track.AlbumArtist
		current.AlbumID = track.AlbumID
		current.ArtistID = track.ArtistID
		if track.Length > 0 {
			current.Length = track.Length
		}
		current.Bitrate = track.Bitrate
		current.DiscNumber = track.DiscNumber
		if track.TrackNumber != nil {
			current.TrackNumber = *track.TrackNumber
		}
		if track.AlbumArt != nil {
			current.AlbumArt = *track.AlbumArt
		}
	}

	e.mu.Lock()
	if len(e.cache) >= cacheLimit {
		e.cache = make(map[string]events.CurrentTrack)
	}
	e.cache[key] = current
	e.mu.Unlock()
	return current
}

// Invalidate drops the cache, forcing fresh lookups after a rescan.
func (e *Enricher) Invalidate() {
	e.mu.Lock()
	e.cache = make(map[string]events.CurrentTrack)
	e.mu.Unlock()
}

// Pipeline polls the engine and publishes enriched snapshots.
type Pipeline struct {
	enricher *Enricher
	engine   engine.Engine
	queue    *playlist.Engine
	broker   *events.Broker
}

// NewPipeline wires the loop's collaborators.
func NewPipeline(e *Enricher, eng engine.Engine, queue *playlist.Engine, broker *events.Broker) *Pipeline {
	return &Pipeline{enricher: e, engine: eng, queue: queue, broker: broker}
}

// Run publishes every Cadence until the context is canceled. Errors are
// logged and the loop continues.
func (p *Pipeline) Run(ctx context.Context) {
	ticker := time.NewTicker(Cadence)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick()
		}
	}
}

// Tick runs one publish round.
func (p *Pipeline) Tick() {
	snapshot := p.engine.CurrentPlayback()

	if snapshot.Track != nil {
		current := p.enricher.Enrich(*snapshot.Track, snapshot.Elapsed)
		p.broker.CurrentTrack.Publish(current)
	}

	p.broker.Status.Publish(events.PlaybackStatus{
		Status:  snapshot.Status,
		Elapsed: snapshot.Elapsed,
	})

	queue := p.queue.GetCurrent()
	p.broker.Playlist.Publish(events.PlaylistSnapshot{
		Index:  queue.Index,
		Amount: queue.Amount,
		Tracks: queue.Tracks,
	})
}
