/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tsirysndr/rockboxd/internal/config"
	"github.com/tsirysndr/rockboxd/internal/logbuffer"
)

func testServer(t *testing.T, dataDir string) *Server {
	t.Helper()
	cfg := &config.Config{
		Environment: "test",
		Addr:        "127.0.0.1",
		RPCPort:     6061,
		GraphQLPort: 6062,
		MPDPort:     6600,
		DBBackend:   config.DatabaseSQLite,
		DBDSN:       filepath.Join(dataDir, "rockbox.db"),
		Library:     t.TempDir(),
		DataDir:     dataDir,
		DeviceName:  "test",
	}
	srv, err := New(cfg, logbuffer.New(10), zerolog.Nop())
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv
}

func TestResumeRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	music := t.TempDir()
	tracks := []string{
		filepath.Join(music, "a.flac"),
		filepath.Join(music, "b.flac"),
		filepath.Join(music, "c.flac"),
	}

	first := testServer(t, dataDir)
	if first.queue.Load(music, tracks, nil, 2) < 0 {
		t.Fatal("load queue")
	}
	if err := first.saveResume(); err != nil {
		t.Fatalf("saveResume: %v", err)
	}
	first.Close()

	second := testServer(t, dataDir)
	if err := second.restoreResume(); err != nil {
		t.Fatalf("restoreResume: %v", err)
	}
	snapshot := second.queue.GetCurrent()
	if snapshot.Amount != 3 {
		t.Fatalf("restored amount = %d, want 3", snapshot.Amount)
	}
	if snapshot.Index != 2 {
		t.Errorf("restored index = %d, want 2", snapshot.Index)
	}
	if path, _ := second.queue.CurrentPath(); path != tracks[2] {
		t.Errorf("restored path = %s, want %s", path, tracks[2])
	}
}

func TestResumeEmptyQueueRemovesFile(t *testing.T) {
	dataDir := t.TempDir()
	srv := testServer(t, dataDir)

	if err := os.WriteFile(srv.resumePath(), []byte("dir: /music\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := srv.saveResume(); err != nil {
		t.Fatalf("saveResume: %v", err)
	}
	if _, err := os.Stat(srv.resumePath()); !os.IsNotExist(err) {
		t.Errorf("resume file still present after empty-queue save")
	}
}

func TestRestoreResumeMissingFileIsNoOp(t *testing.T) {
	srv := testServer(t, t.TempDir())
	if err := srv.restoreResume(); err != nil {
		t.Fatalf("restoreResume: %v", err)
	}
	if srv.queue.Amount() != 0 {
		t.Errorf("queue unexpectedly populated")
	}
}
