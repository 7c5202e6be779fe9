/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/rb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.RPCPort != 6061 {
		t.Errorf("RPCPort = %d, want 6061", cfg.RPCPort)
	}
	if cfg.GraphQLPort != 6062 {
		t.Errorf("GraphQLPort = %d, want 6062", cfg.GraphQLPort)
	}
	if cfg.MPDPort != 6600 {
		t.Errorf("MPDPort = %d, want 6600", cfg.MPDPort)
	}
	if cfg.DBBackend != DatabaseSQLite {
		t.Errorf("DBBackend = %s, want sqlite", cfg.DBBackend)
	}
	wantDSN := filepath.Join("/home/rb", ".config", "rockbox.org", "rockbox.db")
	if cfg.DBDSN != wantDSN {
		t.Errorf("DBDSN = %s, want %s", cfg.DBDSN, wantDSN)
	}
	if cfg.Library != filepath.Join("/home/rb", "Music") {
		t.Errorf("Library = %s", cfg.Library)
	}
	if cfg.DeviceName != "rockbox" {
		t.Errorf("DeviceName = %s, want rockbox", cfg.DeviceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HOME", "/home/rb")
	t.Setenv("ROCKBOX_MPD_PORT", "7700")
	t.Setenv("ROCKBOX_LIBRARY", "/mnt/music")
	t.Setenv("ROCKBOX_DEVICE_NAME", "living-room")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.MPDPort != 7700 {
		t.Errorf("MPDPort = %d, want 7700", cfg.MPDPort)
	}
	if cfg.Library != "/mnt/music" {
		t.Errorf("Library = %s, want /mnt/music", cfg.Library)
	}
	if cfg.DeviceName != "living-room" {
		t.Errorf("DeviceName = %s, want living-room", cfg.DeviceName)
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	t.Setenv("HOME", "/home/rb")
	t.Setenv("ROCKBOX_DB_BACKEND", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted unsupported backend")
	}
}

func TestLoadRequiresDSNForPostgres(t *testing.T) {
	t.Setenv("HOME", "/home/rb")
	t.Setenv("ROCKBOX_DB_BACKEND", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted postgres without a DSN")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HOME", "/home/rb")
	t.Setenv("ROCKBOX_PORT", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted negative port")
	}
}
