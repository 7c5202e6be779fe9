/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package events is the in-process broker. Publishers never block; each
// subscriber owns a bounded queue and loses its oldest event on overflow.
package events

import (
	"sync"

	"github.com/tsirysndr/rockboxd/internal/telemetry"
)

// Playback states on the wire. MPRIS strings are mapped at that boundary
// only.
const (
	StatusPlaying = 1
	StatusPaused  = 2
	StatusStopped = 3
)

// CurrentTrack is the enriched now-playing record. Database fields are
// empty when the path has no matching row.
type CurrentTrack struct {
	ID          string
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Path        string
	Length      int // milliseconds
	Elapsed     int // milliseconds
	TrackNumber int
	DiscNumber  int
	Bitrate     int
	AlbumArt    string
	AlbumID     string
	ArtistID    string
}

// PlaybackStatus is the engine state snapshot.
type PlaybackStatus struct {
	Status  int
	Elapsed int
}

// PlaylistSnapshot is the queue view published at enrichment cadence.
type PlaylistSnapshot struct {
	Index  int
	Amount int
	Tracks []string
}

const subscriberQueueSize = 16

// Topic fans values of one type out to its subscribers. The name labels
// the topic's telemetry counters.
type Topic[T any] struct {
	name string

	mu   sync.Mutex
	subs map[*Subscription[T]]struct{}
}

// Subscription is one subscriber's bounded queue.
type Subscription[T any] struct {
	topic *Topic[T]
	ch    chan T
	once  sync.Once
}

// C is the receive side of the subscription.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Unsubscribe detaches from the topic and closes the channel.
func (s *Subscription[T]) Unsubscribe() {
	s.once.Do(func() {
		s.topic.mu.Lock()
		delete(s.topic.subs, s)
		s.topic.mu.Unlock()
		close(s.ch)
	})
}

// NewTopic returns an empty topic named for telemetry.
func NewTopic[T any](name string) *Topic[T] {
	return &Topic[T]{name: name, subs: make(map[*Subscription[T]]struct{})}
}

// Subscribe joins the topic. Only events published after the call are
// delivered; there is no replay.
func (t *Topic[T]) Subscribe() *Subscription[T] {
	sub := &Subscription[T]{topic: t, ch: make(chan T, subscriberQueueSize)}
	t.mu.Lock()
	t.subs[sub] = struct{}{}
	t.mu.Unlock()
	return sub
}

// Publish fans the value out without blocking. A full subscriber drops its
// oldest undelivered event.
func (t *Topic[T]) Publish(value T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	telemetry.EventsPublished.WithLabelValues(t.name).Inc()
	for sub := range t.subs {
		select {
		case sub.ch <- value:
		default:
			select {
			case <-sub.ch:
				telemetry.EventsDropped.WithLabelValues(t.name).Inc()
			default:
			}
			select {
			case sub.ch <- value:
			default:
			}
		}
	}
}

// Broker bundles the topics the daemon publishes.
type Broker struct {
	CurrentTrack *Topic[CurrentTrack]
	Status       *Topic[PlaybackStatus]
	Playlist     *Topic[PlaylistSnapshot]
}

// NewBroker returns a broker with empty topics.
func NewBroker() *Broker {
	return &Broker{
		CurrentTrack: NewTopic[CurrentTrack]("current_track"),
		Status:       NewTopic[PlaybackStatus]("status"),
		Playlist:     NewTopic[PlaylistSnapshot]("playlist"),
	}
}
