/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package engine is the playback core boundary. The engine owns playback
// status, elapsed time and the playlist cursor; every mutation reaches it
// through the command bus and exactly one consumer goroutine.
package engine

import (
	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/events"
)

// TrackRecord is the engine's raw view of the active track, before
// database enrichment.
type TrackRecord struct {
	Path   string
	Length int // milliseconds, 0 when unknown
}

// Playback is a consistent snapshot of the engine state.
type Playback struct {
	Track   *TrackRecord
	Elapsed int
	Status  int
}

// Engine is the fixed operation set of the playback core. Mutations must
// come from the single bus consumer; the read methods are safe to call
// from any goroutine.
type Engine interface {
	Play(elapsed, offset int)
	Pause()
	Resume()
	Stop()
	Next()
	Prev()
	FfRewind(newMS int)
	SetVolume(db int)
	AdjustVolume(steps int)

	Status() int
	Volume() int
	CurrentPlayback() Playback
}

// Consume applies bus commands to the engine in arrival order. It returns
// when the bus closes.
func Consume(b *bus.Bus, e Engine) {
	for {
		cmd, err := b.Receive()
		if err != nil {
			log.Debug().Msg("command consumer stopped")
			return
		}
		apply(e, cmd)
	}
}

func apply(e Engine, cmd bus.Command) {
	switch c := cmd.(type) {
	case bus.Play:
		e.Play(c.Elapsed, c.Offset)
	case bus.Pause:
		e.Pause()
	case bus.Resume:
		e.Resume()
	case bus.Stop:
		e.Stop()
	case bus.Next:
		e.Next()
	case bus.Prev:
		e.Prev()
	case bus.FfRewind:
		e.FfRewind(c.NewMS)
	case bus.SetVolume:
		e.SetVolume(c.DB)
	case bus.AdjustVolume:
		e.AdjustVolume(c.Steps)
	default:
		log.Warn().Type("command", cmd).Msg("unknown command dropped")
	}
}

// StatusName renders a status constant for logs.
func StatusName(status int) string {
	switch status {
	case events.StatusPlaying:
		return "playing"
	case events.StatusPaused:
		return "paused"
	case events.StatusStopped:
		return "stopped"
	}
	return "unknown"
}
