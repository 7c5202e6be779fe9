/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package events

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tsirysndr/rockboxd/internal/telemetry"
)

func TestFanOut(t *testing.T) {
	topic := NewTopic[PlaybackStatus]("test_fanout")
	a := topic.Subscribe()
	b := topic.Subscribe()
	defer a.Unsubscribe()
	defer b.Unsubscribe()

	topic.Publish(PlaybackStatus{Status: StatusPaused})

	for _, sub := range []*Subscription[PlaybackStatus]{a, b} {
		got := <-sub.C()
		if got.Status != StatusPaused {
			t.Errorf("status = %d, want %d", got.Status, StatusPaused)
		}
	}
}

func TestNoReplayForLateSubscriber(t *testing.T) {
	topic := NewTopic[PlaybackStatus]("test_no_replay")
	topic.Publish(PlaybackStatus{Status: StatusPlaying})

	sub := topic.Subscribe()
	defer sub.Unsubscribe()

	select {
	case got := <-sub.C():
		t.Errorf("late subscriber received replayed event %+v", got)
	default:
	}
}

func TestOverflowDropsOldest(t *testing.T) {
	topic := NewTopic[int]("test_overflow")
	sub := topic.Subscribe()
	defer sub.Unsubscribe()

	// one more than the queue holds
	for i := 0; i <= subscriberQueueSize; i++ {
		topic.Publish(i)
	}

	got := <-sub.C()
	if got != 1 {
		t.Errorf("first delivered = %d, want 1 (oldest dropped)", got)
	}
}

func TestUnsubscribedDoesNotBreakPublish(t *testing.T) {
	topic := NewTopic[int]("test_unsubscribed")
	a := topic.Subscribe()
	b := topic.Subscribe()

	a.Unsubscribe()
	topic.Publish(42)

	if got := <-b.C(); got != 42 {
		t.Errorf("surviving subscriber got %d, want 42", got)
	}
	if _, ok := <-a.C(); ok {
		t.Error("unsubscribed channel still open")
	}
	b.Unsubscribe()
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	topic := NewTopic[int]("test_idempotent")
	sub := topic.Subscribe()
	sub.Unsubscribe()
	sub.Unsubscribe()
}

func TestPublishCountsPerTopic(t *testing.T) {
	topic := NewTopic[int]("test_counts")
	sub := topic.Subscribe()
	defer sub.Unsubscribe()

	published := testutil.ToFloat64(telemetry.EventsPublished.WithLabelValues("test_counts"))
	dropped := testutil.ToFloat64(telemetry.EventsDropped.WithLabelValues("test_counts"))

	for i := 0; i <= subscriberQueueSize; i++ {
		topic.Publish(i)
	}

	wantPublished := published + float64(subscriberQueueSize+1)
	if got := testutil.ToFloat64(telemetry.EventsPublished.WithLabelValues("test_counts")); got != wantPublished {
		t.Errorf("published counter = %v, want %v", got, wantPublished)
	}
	if got := testutil.ToFloat64(telemetry.EventsDropped.WithLabelValues("test_counts")); got != dropped+1 {
		t.Errorf("dropped counter = %v, want %v", got, dropped+1)
	}
}
