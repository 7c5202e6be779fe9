/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/playlist"
)

// Volume bounds in decibels.
const (
	VolumeMinDB = -80
	VolumeMaxDB = 0
)

// Emulated is the in-process playback core the daemon runs against. It
// advances elapsed time from the wall clock and walks the queue when a
// track runs out.
type Emulated struct {
	mu       sync.Mutex
	queue    *playlist.Engine
	status   int
	elapsed  int
	volume   int
	playedAt time.Time

	// lengthOf resolves a track's duration in milliseconds, 0 when
	// unknown. Unknown lengths never auto-advance.
	lengthOf func(path string) int

	now func() time.Time
}

// NewEmulated builds the engine over the given queue.
func NewEmulated(queue *playlist.Engine, lengthOf func(path string) int) *Emulated {
	if lengthOf == nil {
		lengthOf = func(string) int { return 0 }
	}
	return &Emulated{
		queue:    queue,
		status:   events.StatusStopped,
		volume:   -25,
		lengthOf: lengthOf,
		now:      time.Now,
	}
}

// Play starts at the queue cursor from the given elapsed position.
func (e *Emulated) Play(elapsed, offset int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.queue.CurrentPath(); !ok {
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	e.status = events.StatusPlaying
	e.elapsed = elapsed
	e.playedAt = e.now()
}

// Pause suspends playback.
func (e *Emulated) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != events.StatusPlaying {
		return
	}
	e.elapsed = e.liveElapsed()
	e.status = events.StatusPaused
}

// Resume continues from the paused position.
func (e *Emulated) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != events.StatusPaused {
		return
	}
	e.status = events.StatusPlaying
	e.playedAt = e.now()
}

// Stop halts playback and rewinds.
func (e *Emulated) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = events.StatusStopped
	e.elapsed = 0
}

// Next advances the queue and restarts playback when a track exists.
func (e *Emulated) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.queue.Next() == playlist.Failure {
		e.status = events.StatusStopped
		e.elapsed = 0
		return
	}
	e.restartLocked()
}

// Prev moves the queue back and restarts playback.
func (e *Emulated) Prev() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue.Prev()
	e.restartLocked()
}

func (e *Emulated) restartLocked() {
	e.elapsed = 0
	e.playedAt = e.now()
	if e.status == events.StatusStopped {
		e.status = events.StatusPlaying
	}
}

// FfRewind seeks to an absolute position, clamped to the track length.
func (e *Emulated) FfRewind(newMS int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	path, ok := e.queue.CurrentPath()
	if !ok {
		return
	}
	if newMS < 0 {
		newMS = 0
	}
	if length := e.lengthOf(path); length > 0 && newMS > length {
		newMS = length
	}
	e.elapsed = newMS
	e.playedAt = e.now()
}

// SetVolume sets the output volume in decibels, clamped to the device
// range.
func (e *Emulated) SetVolume(db int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = clampVolume(db)
}

// AdjustVolume nudges the volume by whole decibel steps.
func (e *Emulated) AdjustVolume(steps int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = clampVolume(e.volume + steps)
}

func clampVolume(db int) int {
	if db < VolumeMinDB {
		return VolumeMinDB
	}
	if db > VolumeMaxDB {
		return VolumeMaxDB
	}
	return db
}

// Volume returns the output volume in decibels.
func (e *Emulated) Volume() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// Status returns the playback state.
func (e *Emulated) Status() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.advanceLocked()
	return e.status
}

// CurrentPlayback snapshots the active track and position.
func (e *Emulated) CurrentPlayback() Playback {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.advanceLocked()

	snapshot := Playback{Status: e.status}
	path, ok := e.queue.CurrentPath()
	if !ok || e.status == events.StatusStopped {
		return snapshot
	}
	snapshot.Elapsed = e.liveElapsed()
	snapshot.Track = &TrackRecord{Path: path, Length: e.lengthOf(path)}
	return snapshot
}

// liveElapsed folds wall-clock progress into the stored position.
func (e *Emulated) liveElapsed() int {
	if e.status != events.StatusPlaying {
		return e.elapsed
	}
	return e.elapsed + int(e.now().Sub(e.playedAt)/time.Millisecond)
}

// advanceLocked walks past tracks whose length has elapsed.
func (e *Emulated) advanceLocked() {
	if e.status != events.StatusPlaying {
		return
	}
	for {
		path, ok := e.queue.CurrentPath()
		if !ok {
			e.status = events.StatusStopped
			e.elapsed = 0
			return
		}
		length := e.lengthOf(path)
		if length <= 0 || e.liveElapsed() < length {
			return
		}
		overrun := e.liveElapsed() - length
		if e.queue.Next() == playlist.Failure {
			log.Debug().Msg("queue finished")
			e.status = events.StatusStopped
			e.elapsed = 0
			return
		}
		e.elapsed = overrun
		e.playedAt = e.now()
	}
}
