/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package bus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tsirysndr/rockboxd/internal/telemetry"
)

func TestFIFOOrder(t *testing.T) {
	b := New()
	commands := []Command{Play{Elapsed: 1}, Pause{}, Next{}, Stop{}}
	for _, cmd := range commands {
		if err := b.Send(cmd); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}

	for i, want := range commands {
		got, err := b.Receive()
		if err != nil {
			t.Fatalf("Receive %d: %v", i, err)
		}
		if got != want {
			t.Errorf("command %d = %#v, want %#v", i, got, want)
		}
	}
}

func TestReceiveCountsPerCommand(t *testing.T) {
	b := New()
	if err := b.Send(FfRewind{NewMS: 500}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	before := testutil.ToFloat64(telemetry.CommandsConsumed.WithLabelValues("ff_rewind"))
	if _, err := b.Receive(); err != nil {
		t.Fatalf("Receive: %v", err)
	}
	after := testutil.ToFloat64(telemetry.CommandsConsumed.WithLabelValues("ff_rewind"))
	if after != before+1 {
		t.Errorf("ff_rewind counter = %v, want %v", after, before+1)
	}
}

func TestCommandName(t *testing.T) {
	cases := []struct {
		cmd  Command
		want string
	}{
		{Play{}, "play"},
		{Pause{}, "pause"},
		{Resume{}, "resume"},
		{Stop{}, "stop"},
		{Next{}, "next"},
		{Prev{}, "prev"},
		{FfRewind{}, "ff_rewind"},
		{SetVolume{}, "set_volume"},
		{AdjustVolume{}, "adjust_volume"},
	}
	for _, tc := range cases {
		if got := commandName(tc.cmd); got != tc.want {
			t.Errorf("commandName(%#v) = %q, want %q", tc.cmd, got, tc.want)
		}
	}
}

func TestSendAfterClose(t *testing.T) {
	b := New()
	b.Close()
	if err := b.Send(Play{}); err != ErrBusClosed {
		t.Errorf("Send after close = %v, want ErrBusClosed", err)
	}
}

func TestReceiveDrainsThenFails(t *testing.T) {
	b := New()
	if err := b.Send(Pause{}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	b.Close()

	if cmd, err := b.Receive(); err != nil || cmd != (Pause{}) {
		t.Fatalf("Receive = %#v, %v; want Pause", cmd, err)
	}
	if _, err := b.Receive(); err != ErrBusClosed {
		t.Errorf("Receive on drained closed bus = %v, want ErrBusClosed", err)
	}
}

func TestCloseWakesBlockedReceiver(t *testing.T) {
	b := New()
	done := make(chan error, 1)
	go func() {
		_, err := b.Receive()
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	b.Close()

	select {
	case err := <-done:
		if err != ErrBusClosed {
			t.Errorf("blocked Receive = %v, want ErrBusClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Receive did not wake after Close")
	}
}
