/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package bus serializes every playback mutation onto one stream with a
// single consumer.
package bus

import (
	"errors"
	"sync"

	"github.com/tsirysndr/rockboxd/internal/telemetry"
)

// ErrBusClosed is returned by Send and Receive once Close has been called.
var ErrBusClosed = errors.New("command bus is closed")

// Command is a playback mutation. The engine consumer applies commands in
// arrival order.
type Command interface {
	isCommand()
}

// Play starts playback at the playlist cursor from the given file offsets.
type Play struct {
	Elapsed int // milliseconds into the track
	Offset  int // byte offset into the file
}

// Pause suspends playback.
type Pause struct{}

// Resume continues paused playback.
type Resume struct{}

// Stop halts playback and clears the engine's active track.
type Stop struct{}

// Next advances the playlist cursor.
type Next struct{}

// Prev moves the playlist cursor back.
type Prev struct{}

// FfRewind seeks inside the current track to an absolute position.
type FfRewind struct {
	NewMS int
}

// SetVolume sets the output volume in decibels.
type SetVolume struct {
	DB int
}

// AdjustVolume nudges the output volume by a number of steps.
type AdjustVolume struct {
	Steps int
}

// commandName labels telemetry for a consumed command.
func commandName(cmd Command) string {
	switch cmd.(type) {
	case Play:
		return "play"
	case Pause:
		return "pause"
	case Resume:
		return "resume"
	case Stop:
		return "stop"
	case Next:
		return "next"
	case Prev:
		return "prev"
	case FfRewind:
		return "ff_rewind"
	case SetVolume:
		return "set_volume"
	case AdjustVolume:
		return "adjust_volume"
	default:
		return "unknown"
	}
}

func (Play) isCommand()         {}
func (Pause) isCommand()        {}
func (Resume) isCommand()       {}
func (Stop) isCommand()         {}
func (Next) isCommand()         {}
func (Prev) isCommand()         {}
func (FfRewind) isCommand()     {}
func (SetVolume) isCommand()    {}
func (AdjustVolume) isCommand() {}

// Bus is an unbounded FIFO command queue. Send never blocks; Receive is
// meant for exactly one consumer goroutine.
type Bus struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Command
	closed bool
}

// New returns an open bus.
func New() *Bus {
	b := &Bus{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Send enqueues a command. It fails only after Close.
func (b *Bus) Send(cmd Command) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.queue = append(b.queue, cmd)
	b.cond.Signal()
	return nil
}

// Receive blocks until a command arrives. Commands queued before Close are
// still delivered; once drained, Receive returns ErrBusClosed.
func (b *Bus) Receive() (Command, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.queue) == 0 {
		if b.closed {
			return nil, ErrBusClosed
		}
		b.cond.Wait()
	}
	cmd := b.queue[0]
	b.queue = b.queue[1:]
	telemetry.CommandsConsumed.WithLabelValues(commandName(cmd)).Inc()
	return cmd, nil
}

// Close rejects further sends and wakes the consumer.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.cond.Broadcast()
}
