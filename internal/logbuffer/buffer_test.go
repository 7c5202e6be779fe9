/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package logbuffer

import (
	"fmt"
	"testing"
)

func TestBufferWrap(t *testing.T) {
	b := New(3)
	for i := 0; i < 5; i++ {
		b.Add(Entry{Message: fmt.Sprintf("m%d", i)})
	}

	got := b.Tail(0)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"m2", "m3", "m4"}
	for i, e := range got {
		if e.Message != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Message, want[i])
		}
	}
}

func TestBufferTailLimit(t *testing.T) {
	b := New(10)
	for i := 0; i < 6; i++ {
		b.Add(Entry{Message: fmt.Sprintf("m%d", i)})
	}

	got := b.Tail(2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Message != "m4" || got[1].Message != "m5" {
		t.Errorf("tail = %q,%q, want m4,m5", got[0].Message, got[1].Message)
	}
}

func TestBufferWriteParsesJSON(t *testing.T) {
	b := New(4)
	line := []byte(`{"level":"info","component":"mpd","message":"client connected"}`)
	if _, err := b.Write(line); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	got := b.Tail(1)
	if len(got) != 1 {
		t.Fatal("no entry recorded")
	}
	if got[0].Level != "info" || got[0].Component != "mpd" || got[0].Message != "client connected" {
		t.Errorf("parsed entry = %+v", got[0])
	}
}
