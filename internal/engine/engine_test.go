/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package engine

import (
	"testing"
	"time"

	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/playlist"
)

func testEngine(t *testing.T, lengths map[string]int) (*Emulated, *playlist.Engine, *fakeClock) {
	t.Helper()
	queue := playlist.New()
	if queue.Create(t.TempDir(), []string{"/m/a.mp3", "/m/b.mp3"}) == playlist.Failure {
		t.Fatal("queue create failed")
	}
	e := NewEmulated(queue, func(path string) int { return lengths[path] })
	clock := &fakeClock{at: time.Unix(1000, 0)}
	e.now = clock.now
	return e, queue, clock
}

type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time { return c.at }

func (c *fakeClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func TestPlayPauseResume(t *testing.T) {
	e, _, clock := testEngine(t, nil)

	e.Play(0, 0)
	if got := e.Status(); got != events.StatusPlaying {
		t.Fatalf("status = %s", StatusName(got))
	}

	clock.advance(2 * time.Second)
	e.Pause()
	if got := e.Status(); got != events.StatusPaused {
		t.Fatalf("status = %s", StatusName(got))
	}
	if got := e.CurrentPlayback().Elapsed; got != 2000 {
		t.Errorf("elapsed = %d, want 2000", got)
	}

	// paused time does not accumulate
	clock.advance(5 * time.Second)
	e.Resume()
	clock.advance(time.Second)
	if got := e.CurrentPlayback().Elapsed; got != 3000 {
		t.Errorf("elapsed = %d, want 3000", got)
	}
}

func TestPlayOnEmptyQueueIsNoOp(t *testing.T) {
	e := NewEmulated(playlist.New(), nil)
	e.Play(0, 0)
	if got := e.Status(); got != events.StatusStopped {
		t.Errorf("status = %s, want stopped", StatusName(got))
	}
}

func TestFfRewindClampsToLength(t *testing.T) {
	e, _, _ := testEngine(t, map[string]int{"/m/a.mp3": 180000})
	e.Play(0, 0)
	e.FfRewind(999999)
	if got := e.CurrentPlayback().Elapsed; got != 180000 {
		t.Errorf("elapsed = %d, want clamped to 180000", got)
	}
	e.FfRewind(-5)
	if got := e.CurrentPlayback().Elapsed; got != 0 {
		t.Errorf("elapsed = %d, want 0", got)
	}
}

func TestAutoAdvanceAndStopAtEnd(t *testing.T) {
	lengths := map[string]int{"/m/a.mp3": 1000, "/m/b.mp3": 1000}
	e, queue, clock := testEngine(t, lengths)

	e.Play(0, 0)
	clock.advance(1500 * time.Millisecond)
	snapshot := e.CurrentPlayback()
	if snapshot.Track == nil || snapshot.Track.Path != "/m/b.mp3" {
		t.Fatalf("track = %+v, want /m/b.mp3", snapshot.Track)
	}
	if snapshot.Elapsed != 500 {
		t.Errorf("elapsed = %d, want 500", snapshot.Elapsed)
	}
	if queue.Index() != 1 {
		t.Errorf("queue index = %d, want 1", queue.Index())
	}

	clock.advance(time.Second)
	if got := e.Status(); got != events.StatusStopped {
		t.Errorf("status after queue end = %s, want stopped", StatusName(got))
	}
}

func TestVolumeClamped(t *testing.T) {
	e, _, _ := testEngine(t, nil)
	e.SetVolume(-200)
	if got := e.Volume(); got != VolumeMinDB {
		t.Errorf("volume = %d, want %d", got, VolumeMinDB)
	}
	e.AdjustVolume(500)
	if got := e.Volume(); got != VolumeMaxDB {
		t.Errorf("volume = %d, want %d", got, VolumeMaxDB)
	}
}

func TestConsumeAppliesInOrder(t *testing.T) {
	e, _, _ := testEngine(t, nil)
	b := bus.New()

	done := make(chan struct{})
	go func() {
		Consume(b, e)
		close(done)
	}()

	b.Send(bus.Play{})
	b.Send(bus.Pause{})
	b.Send(bus.SetVolume{DB: -10})
	b.Close()
	<-done

	if got := e.Status(); got != events.StatusPaused {
		t.Errorf("status = %s, want paused", StatusName(got))
	}
	if got := e.Volume(); got != -10 {
		t.Errorf("volume = %d, want -10", got)
	}
}
