/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mpris

import (
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/playlist"
)

func TestStatusString(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{events.StatusPlaying, "Playing"},
		{events.StatusPaused, "Paused"},
		{events.StatusStopped, "Stopped"},
		{0, "Stopped"},
	}
	for _, tc := range cases {
		if got := statusString(tc.status); got != tc.want {
			t.Errorf("statusString(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestMetadataTrackID(t *testing.T) {
	m := metadata(events.CurrentTrack{
		ID:     "9b2a-44c1",
		Title:  "Song",
		Artist: "Bob",
		Length: 180000,
		Path:   "/m/a.flac",
	}, "/data/covers")

	id, ok := m["mpris:trackid"].Value().(dbus.ObjectPath)
	if !ok || id != "/rockbox/tracks/9b2a_44c1" {
		t.Errorf("trackid = %v", m["mpris:trackid"])
	}
	if length := m["mpris:length"].Value().(int64); length != 180000000 {
		t.Errorf("length = %d, want microseconds", length)
	}
	if url := m["xesam:url"].Value().(string); url != "file:///m/a.flac" {
		t.Errorf("url = %q", url)
	}
}

func TestMetadataArtURLJoinsCoversDir(t *testing.T) {
	m := metadata(events.CurrentTrack{
		ID:       "x",
		Path:     "/m/a.flac",
		AlbumArt: "0f1e2d.jpg",
	}, "/data/covers")

	if url := m["mpris:artUrl"].Value().(string); url != "file:///data/covers/0f1e2d.jpg" {
		t.Errorf("artUrl = %q, want file:///data/covers/0f1e2d.jpg", url)
	}

	bare := metadata(events.CurrentTrack{ID: "x", Path: "/m/a.flac"}, "/data/covers")
	if _, ok := bare["mpris:artUrl"]; ok {
		t.Error("artUrl present for a track without album art")
	}
}

func TestVolumeFractionMapping(t *testing.T) {
	cases := []struct {
		fraction float64
		db       int
	}{
		{0.0, engine.VolumeMinDB},
		{1.0, engine.VolumeMaxDB},
		{0.5, engine.VolumeMinDB + (engine.VolumeMaxDB-engine.VolumeMinDB)/2},
	}
	for _, tc := range cases {
		if got := fractionToDB(tc.fraction); got != tc.db {
			t.Errorf("fractionToDB(%v) = %d, want %d", tc.fraction, got, tc.db)
		}
		if got := volumeToFraction(tc.db); got != tc.fraction {
			t.Errorf("volumeToFraction(%d) = %v, want %v", tc.db, got, tc.fraction)
		}
	}

	if got := fractionToDB(-0.5); got != engine.VolumeMinDB {
		t.Errorf("fractionToDB(-0.5) = %d, want clamp to %d", got, engine.VolumeMinDB)
	}
	if got := fractionToDB(1.5); got != engine.VolumeMaxDB {
		t.Errorf("fractionToDB(1.5) = %d, want clamp to %d", got, engine.VolumeMaxDB)
	}
}

func TestLoopStatusMapping(t *testing.T) {
	cases := []struct {
		status string
		mode   int
	}{
		{"None", playlist.RepeatOff},
		{"Playlist", playlist.RepeatAll},
		{"Track", playlist.RepeatOne},
	}
	for _, tc := range cases {
		mode, ok := loopStatusMode(tc.status)
		if !ok || mode != tc.mode {
			t.Errorf("loopStatusMode(%q) = %d, %v; want %d", tc.status, mode, ok, tc.mode)
		}
		if got := loopStatusString(tc.mode); got != tc.status {
			t.Errorf("loopStatusString(%d) = %q, want %q", tc.mode, got, tc.status)
		}
	}
	if _, ok := loopStatusMode("Bogus"); ok {
		t.Error("loopStatusMode accepted an unknown status")
	}
}

func testPlayer(t *testing.T) (*playerObject, *bus.Bus) {
	t.Helper()
	b := bus.New()
	queue := playlist.New()
	queue.Load("/m", []string{"/m/a.flac"}, nil, 0)
	eng := engine.NewEmulated(queue, func(string) int { return 1000 })
	facade := playback.New(b, eng, queue, nil, nil, nil)
	return &playerObject{facade: facade}, b
}

func TestPlayPauseStartsWhenStopped(t *testing.T) {
	player, b := testPlayer(t)

	if derr := player.PlayPause(); derr != nil {
		t.Fatalf("PlayPause: %v", derr)
	}
	cmd, err := b.Receive()
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if _, ok := cmd.(bus.Play); !ok {
		t.Errorf("stopped PlayPause sent %#v, want bus.Play", cmd)
	}
}
