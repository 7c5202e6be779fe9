/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tsirysndr/rockboxd/internal/config"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/logbuffer"
	"github.com/tsirysndr/rockboxd/internal/server"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dataDir := t.TempDir()
	library := t.TempDir()
	return &config.Config{
		Environment: "test",
		Host:        "localhost",
		Addr:        "127.0.0.1",
		RPCPort:     6061,
		GraphQLPort: 6062,
		HTTPPort:    6063,
		MPDPort:     6600,
		DBBackend:   config.DatabaseSQLite,
		DBDSN:       filepath.Join(dataDir, "rockbox.db"),
		Library:     library,
		DataDir:     dataDir,
		DeviceName:  "test-device",

		MPRISEnabled:     false,
		DiscoveryEnabled: false,
	}
}

// TestDaemonWiring brings up the full dependency graph without opening
// any listeners and verifies the pieces agree with each other.
func TestDaemonWiring(t *testing.T) {
	cfg := testConfig(t)
	srv, err := server.New(cfg, logbuffer.New(100), zerolog.Nop())
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	defer srv.Close()

	if srv.Facade() == nil {
		t.Fatal("facade not wired")
	}
	if status := srv.Facade().Status(); status.Status != events.StatusStopped {
		t.Errorf("fresh daemon status = %d, want stopped", status.Status)
	}

	stats, err := srv.Scanner().Scan(context.Background(), cfg.Library)
	if err != nil {
		t.Fatalf("scan empty library: %v", err)
	}
	if stats.Scanned != 0 || stats.Skipped != 0 {
		t.Errorf("empty library scan stats = %+v, want zeros", stats)
	}

	if _, err := os.Stat(cfg.CoversDir()); err != nil {
		t.Errorf("covers dir not created: %v", err)
	}
	if _, err := os.Stat(cfg.IndexesDir()); err != nil {
		t.Errorf("indexes dir not created: %v", err)
	}
}

// TestDaemonCloseIsIdempotent matches the shutdown path in main, which
// may close after a failed Run.
func TestDaemonCloseIsIdempotent(t *testing.T) {
	srv, err := server.New(testConfig(t), logbuffer.New(100), zerolog.Nop())
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
