/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package playback is the facade every protocol server talks to. It hides
// whether an operation reads engine state or goes through the command bus.
package playback

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/enrich"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/library"
	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/repo"
)

// Facade error kinds. Protocol servers translate these into their own
// idiom (RPC status, GraphQL error, MPD ACK).
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalid       = errors.New("invalid argument")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotAFile      = errors.New("not a file")
	ErrQueueRejected = errors.New("playlist engine rejected the operation")
)

// Options tune the play_* selection operations.
type Options struct {
	Shuffle  bool
	Position *int
}

// Facade routes reads to the engine and writes to the command bus.
type Facade struct {
	bus      *bus.Bus
	engine   engine.Engine
	queue    *playlist.Engine
	repo     *repo.Repo
	enricher *enrich.Enricher
	broker   *events.Broker
}

// New wires the facade.
func New(b *bus.Bus, eng engine.Engine, queue *playlist.Engine, r *repo.Repo, e *enrich.Enricher, broker *events.Broker) *Facade {
	return &Facade{bus: b, engine: eng, queue: queue, repo: r, enricher: e, broker: broker}
}

// Play starts playback at the queue cursor.
func (f *Facade) Play(elapsed, offset int) error {
	if elapsed < 0 {
		return fmt.Errorf("%w: elapsed %d", ErrInvalid, elapsed)
	}
	return f.bus.Send(bus.Play{Elapsed: elapsed, Offset: offset})
}

// Pause suspends playback.
func (f *Facade) Pause() error { return f.bus.Send(bus.Pause{}) }

// Resume continues paused playback.
func (f *Facade) Resume() error { return f.bus.Send(bus.Resume{}) }

// Stop halts playback.
func (f *Facade) Stop() error { return f.bus.Send(bus.Stop{}) }

// HardStop halts playback and empties the queue.
func (f *Facade) HardStop() error {
	if err := f.bus.Send(bus.Stop{}); err != nil {
		return err
	}
	f.queue.RemoveAllTracks()
	return nil
}

// FlushAndReloadTracks drops the enrichment cache so the next reads
// pick up fresh database rows.
func (f *Facade) FlushAndReloadTracks() {
	f.enricher.Invalidate()
}

// Next skips to the following track.
func (f *Facade) Next() error { return f.bus.Send(bus.Next{}) }

// Previous goes back one track.
func (f *Facade) Previous() error { return f.bus.Send(bus.Prev{}) }

// FfRewind seeks inside the current track.
func (f *Facade) FfRewind(newMS int) error {
	if newMS < 0 {
		return fmt.Errorf("%w: position %d", ErrInvalid, newMS)
	}
	return f.bus.Send(bus.FfRewind{NewMS: newMS})
}

// SetVolume sets the output volume in decibels.
func (f *Facade) SetVolume(db int) error { return f.bus.Send(bus.SetVolume{DB: db}) }

// AdjustVolume nudges the volume by steps.
func (f *Facade) AdjustVolume(steps int) error {
	return f.bus.Send(bus.AdjustVolume{Steps: steps})
}

// Volume reads the output volume in decibels.
func (f *Facade) Volume() int { return f.engine.Volume() }

// Status reads the engine state.
func (f *Facade) Status() events.PlaybackStatus {
	snapshot := f.engine.CurrentPlayback()
	return events.PlaybackStatus{Status: snapshot.Status, Elapsed: snapshot.Elapsed}
}

// CurrentTrack returns the enriched now-playing record, or nil when
// nothing is loaded.
func (f *Facade) CurrentTrack() *events.CurrentTrack {
	snapshot := f.engine.CurrentPlayback()
	if snapshot.Track == nil {
		return nil
	}
	current := f.enricher.Enrich(*snapshot.Track, snapshot.Elapsed)
	return &current
}

// NextTrack returns the track that would play after the current one.
func (f *Facade) NextTrack() *events.CurrentTrack {
	path, ok := f.queue.NextPath()
	if !ok {
		return nil
	}
	current := f.enricher.Enrich(engine.TrackRecord{Path: path}, 0)
	return &current
}

// EnrichPath resolves one queue path against the database the way the
// now-playing record is enriched.
func (f *Facade) EnrichPath(path string) events.CurrentTrack {
	return f.enricher.Enrich(engine.TrackRecord{Path: path}, 0)
}

// GetFilePosition reports elapsed milliseconds in the current track.
func (f *Facade) GetFilePosition() int {
	return f.engine.CurrentPlayback().Elapsed
}

// Queue exposes the playlist engine for queue-level protocol commands.
func (f *Facade) Queue() *playlist.Engine { return f.queue }

// PlayAlbum loads an album's tracks and starts playback.
func (f *Facade) PlayAlbum(albumID string, opts Options) error {
	if _, err := f.repo.Albums.Find(albumID); err != nil {
		return wrapNotFound(err, "album %s", albumID)
	}
	tracks, err := f.repo.Albums.Tracks(albumID)
	if err != nil {
		return err
	}
	return f.loadAndPlay(paths(tracks), opts)
}

// PlayArtistTracks loads every track by an artist and starts playback.
func (f *Facade) PlayArtistTracks(artistID string, opts Options) error {
	if _, err := f.repo.Artists.Find(artistID); err != nil {
		return wrapNotFound(err, "artist %s", artistID)
	}
	tracks, err := f.repo.Artists.Tracks(artistID)
	if err != nil {
		return err
	}
	return f.loadAndPlay(paths(tracks), opts)
}

// PlayDirectory loads the audio files under a directory. An empty
// directory succeeds with no state change.
func (f *Facade) PlayDirectory(path string, recurse bool, opts Options) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	var found []string
	if recurse {
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && library.IsAudioFile(p) {
				found = append(found, p)
			}
			return nil
		})
	} else {
		var entries []os.DirEntry
		entries, err = os.ReadDir(path)
		for _, entry := range entries {
			if !entry.IsDir() && library.IsAudioFile(entry.Name()) {
				found = append(found, filepath.Join(path, entry.Name()))
			}
		}
	}
	if err != nil {
		return err
	}
	sort.Strings(found)
	return f.loadAndPlay(found, opts)
}

// PlayTrack loads and plays a single audio file.
func (f *Facade) PlayTrack(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || !library.IsAudioFile(path) {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	return f.loadAndPlay([]string{path}, Options{})
}

// PlayLikedTracks loads the favourites set and starts playback.
func (f *Facade) PlayLikedTracks(opts Options) error {
	tracks, err := f.repo.Favourites.LikedTracks()
	if err != nil {
		return err
	}
	return f.loadAndPlay(paths(tracks), opts)
}

// PlayAllTracks loads the whole library and starts playback.
func (f *Facade) PlayAllTracks(opts Options) error {
	tracks, err := f.repo.Tracks.All()
	if err != nil {
		return err
	}
	return f.loadAndPlay(paths(tracks), opts)
}

// loadAndPlay materializes the selection into the queue and starts the
// engine. The queue's writer lock is held across create, build, shuffle
// and start.
func (f *Facade) loadAndPlay(trackPaths []string, opts Options) error {
	if len(trackPaths) == 0 {
		return nil
	}

	var seed *int32
	if opts.Shuffle {
		s := int32(time.Now().UnixNano())
		seed = &s
	}
	position := 0
	if opts.Position != nil {
		position = *opts.Position
	}

	root := commonParent(trackPaths)
	if f.queue.Load(root, trackPaths, seed, position) == playlist.Failure {
		return fmt.Errorf("%w: %d tracks into %s", ErrQueueRejected, len(trackPaths), root)
	}

	log.Debug().Int("tracks", len(trackPaths)).Int("position", position).Msg("queue loaded")
	return f.Play(0, 0)
}

// StreamCurrentTrack yields the current track first, then broker events
// until the context ends.
func (f *Facade) StreamCurrentTrack(ctx context.Context) <-chan events.CurrentTrack {
	out := make(chan events.CurrentTrack, 1)
	if current := f.CurrentTrack(); current != nil {
		out <- *current
	}
	sub := f.broker.CurrentTrack.Subscribe()
	go forward(ctx, sub, out)
	return out
}

// StreamStatus yields the current status first, then broker events until
// the context ends.
func (f *Facade) StreamStatus(ctx context.Context) <-chan events.PlaybackStatus {
	out := make(chan events.PlaybackStatus, 1)
	out <- f.Status()
	sub := f.broker.Status.Subscribe()
	go forward(ctx, sub, out)
	return out
}

// StreamPlaylist yields the queue snapshot first, then broker events.
func (f *Facade) StreamPlaylist(ctx context.Context) <-chan events.PlaylistSnapshot {
	out := make(chan events.PlaylistSnapshot, 1)
	queue := f.queue.GetCurrent()
	out <- events.PlaylistSnapshot{Index: queue.Index, Amount: queue.Amount, Tracks: queue.Tracks}
	sub := f.broker.Playlist.Subscribe()
	go forward(ctx, sub, out)
	return out
}

func forward[T any](ctx context.Context, sub *events.Subscription[T], out chan<- T) {
	defer close(out)
	defer sub.Unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case value, ok := <-sub.C():
			if !ok {
				return
			}
			select {
			case out <- value:
			case <-ctx.Done():
				return
			}
		}
	}
}

func paths(tracks []models.Track) []string {
	out := make([]string, 0, len(tracks))
	for _, track := range tracks {
		out = append(out, track.Path)
	}
	return out
}

// commonParent is the deepest directory containing every path.
func commonParent(trackPaths []string) string {
	sep := string(filepath.Separator)
	prefix := filepath.Dir(trackPaths[0])
	for _, path := range trackPaths[1:] {
		dir := filepath.Dir(path)
		for !strings.HasPrefix(dir+sep, prefix+sep) {
			parent := filepath.Dir(prefix)
			if parent == prefix {
				break
			}
			prefix = parent
		}
	}
	return prefix
}

func wrapNotFound(err error, format string, args ...any) error {
	if errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
	}
	return err
}
