/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package playlist

import (
	"fmt"
	"reflect"
	"testing"
)

func loadedEngine(t *testing.T, n int) *Engine {
	t.Helper()
	e := New()
	if e.Create(t.TempDir(), nil) == Failure {
		t.Fatal("Create failed")
	}
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("/music/t%02d.flac", i)
	}
	if e.InsertTracks(paths, InsertLast) == Failure {
		t.Fatal("InsertTracks failed")
	}
	return e
}

func TestCreateMissingDirFails(t *testing.T) {
	e := New()
	if got := e.Create("/does/not/exist", nil); got != Failure {
		t.Errorf("Create = %d, want -1", got)
	}
	if e.Amount() != 0 {
		t.Error("failed Create left tracks behind")
	}
	if got := e.InsertTracks([]string{"/a.mp3"}, InsertLast); got != Failure {
		t.Errorf("insert into empty state = %d, want -1", got)
	}
}

func TestInsertPositions(t *testing.T) {
	e := loadedEngine(t, 3)

	if got := e.InsertTracks([]string{"/music/new.flac"}, At(1)); got != 1 {
		t.Errorf("insert at 1 = %d, want 1", got)
	}
	snap := e.GetCurrent()
	if snap.Tracks[1] != "/music/new.flac" || snap.Amount != 4 {
		t.Errorf("queue = %v", snap.Tracks)
	}

	if got := e.InsertTracks([]string{"/music/last.flac"}, InsertLast); got != 4 {
		t.Errorf("append = %d, want 4", got)
	}

	if got := e.InsertTracks([]string{"/x.mp3"}, At(99)); got != Failure {
		t.Errorf("insert past end = %d, want -1", got)
	}
}

func TestInsertBeforeCursorShiftsIndex(t *testing.T) {
	e := loadedEngine(t, 3)
	if e.Start(2) == Failure {
		t.Fatal("Start failed")
	}
	e.InsertTracks([]string{"/music/new.flac"}, At(0))
	if got := e.Index(); got != 3 {
		t.Errorf("index = %d, want 3 after insert before cursor", got)
	}
	if path, _ := e.CurrentPath(); path != "/music/t02.flac" {
		t.Errorf("cursor track = %s", path)
	}
}

func TestFromWire(t *testing.T) {
	cases := []struct {
		wire int
		want Position
	}{
		{-6, InsertLastShuffled},
		{-1, InsertLast},
		{-3, InsertLast},
		{2, At(2)},
	}
	for _, tc := range cases {
		if got := FromWire(tc.wire); got != tc.want {
			t.Errorf("FromWire(%d) = %+v, want %+v", tc.wire, got, tc.want)
		}
	}
}

func TestShuffleDeterminism(t *testing.T) {
	order := func() []string {
		e := loadedEngine(t, 10)
		if e.Shuffle(7, 0) == Failure {
			t.Fatal("Shuffle failed")
		}
		return e.GetCurrent().Tracks
	}
	first := order()
	second := order()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different orders:\n%v\n%v", first, second)
	}

	e := loadedEngine(t, 10)
	e.Shuffle(8, 0)
	if reflect.DeepEqual(first, e.GetCurrent().Tracks) {
		t.Error("different seed produced identical order")
	}
}

func TestShuffleKeepsCursorOnTrack(t *testing.T) {
	e := loadedEngine(t, 10)
	e.Start(4)
	before, _ := e.CurrentPath()
	e.Shuffle(42, 0)
	after, _ := e.CurrentPath()
	if before != after {
		t.Errorf("cursor moved off its track: %s -> %s", before, after)
	}
}

func TestShuffleRespectsStart(t *testing.T) {
	e := loadedEngine(t, 10)
	e.Shuffle(9, 5)
	snap := e.GetCurrent()
	for i := 0; i < 5; i++ {
		want := fmt.Sprintf("/music/t%02d.flac", i)
		if snap.Tracks[i] != want {
			t.Errorf("track %d = %s, want %s untouched", i, snap.Tracks[i], want)
		}
	}
}

func TestDeleteCursorTrack(t *testing.T) {
	e := loadedEngine(t, 3)
	e.Start(2)

	// at the end under repeat-off: cursor clamps
	if e.DeleteTrack(2) == Failure {
		t.Fatal("delete failed")
	}
	if got := e.Index(); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}

	// wrap under repeat-all
	e = loadedEngine(t, 3)
	e.SetRepeat(RepeatAll)
	e.Start(2)
	e.DeleteTrack(2)
	if got := e.Index(); got != 0 {
		t.Errorf("index = %d, want 0 (wrapped)", got)
	}

	if got := e.DeleteTrack(99); got != Failure {
		t.Errorf("delete out of range = %d, want -1", got)
	}
}

func TestMoveAdjustsCursor(t *testing.T) {
	e := loadedEngine(t, 4)
	e.Start(1)
	if e.Move(1, 3) == Failure {
		t.Fatal("move failed")
	}
	if got := e.Index(); got != 3 {
		t.Errorf("index = %d, want 3 (cursor follows moved track)", got)
	}
	snap := e.GetCurrent()
	if snap.Tracks[3] != "/music/t01.flac" {
		t.Errorf("queue = %v", snap.Tracks)
	}
}

func TestNextPrevRepeatModes(t *testing.T) {
	e := loadedEngine(t, 2)
	e.Start(1)
	if got := e.Next(); got != Failure {
		t.Errorf("Next at end, repeat off = %d, want -1", got)
	}

	e.SetRepeat(RepeatAll)
	if got := e.Next(); got != 0 {
		t.Errorf("Next at end, repeat all = %d, want 0", got)
	}
	if got := e.Prev(); got != 1 {
		t.Errorf("Prev at start, repeat all = %d, want 1", got)
	}

	e.SetRepeat(RepeatOne)
	if got := e.Next(); got != 1 {
		t.Errorf("Next under repeat one = %d, want 1", got)
	}
}

func TestResumeTrackCRC(t *testing.T) {
	e := loadedEngine(t, 3)
	crc := e.CRC()

	status, elapsed, offset := e.ResumeTrack(1, crc, 1234, 56)
	if status == Failure || elapsed != 1234 || offset != 56 {
		t.Errorf("resume = %d/%d/%d, want 0/1234/56", status, elapsed, offset)
	}

	// changed queue degrades to a fresh start
	e.InsertTracks([]string{"/music/extra.flac"}, InsertLast)
	status, elapsed, offset = e.ResumeTrack(1, crc, 1234, 56)
	if status == Failure || elapsed != 0 || offset != 0 {
		t.Errorf("degraded resume = %d/%d/%d, want 0/0/0", status, elapsed, offset)
	}
}

func TestLoadComposite(t *testing.T) {
	e := New()
	seed := int32(7)
	tracks := []string{"/m/a.mp3", "/m/b.mp3", "/m/c.mp3"}
	if got := e.Load(t.TempDir(), tracks, &seed, 0); got != 0 {
		t.Fatalf("Load = %d, want 0", got)
	}
	snap := e.GetCurrent()
	if snap.Amount != 3 || snap.Index != 0 {
		t.Errorf("snapshot = %+v", snap)
	}

	if got := e.Load("/nope", tracks, nil, 0); got != Failure {
		t.Errorf("Load bad dir = %d, want -1", got)
	}
}
