/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Database backend selection.
type DatabaseBackend string

const (
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseMySQL    DatabaseBackend = "mysql"
	DatabaseSQLite   DatabaseBackend = "sqlite"
)

// Config covers process level configuration read from environment variables.
type Config struct {
	Environment string
	Host        string // hostname clients use to reach this device
	Addr        string // bind address for all listeners
	RPCPort     int    // gRPC / gRPC-Web
	GraphQLPort int    // GraphQL + covers + SPA
	HTTPPort    int    // plain HTTP surface
	TCPPort     int    // legacy telnet control port, advertised only
	MPDPort     int
	MetricsBind string

	DBBackend DatabaseBackend
	DBDSN     string

	Library    string // music library root
	DataDir    string // $HOME/.config/rockbox.org
	DeviceName string
	DeviceID   string
	SPADir     string // built web UI, served on SPA routes
	Tag        string // release tag, reported by the system service

	MPRISEnabled     bool
	DiscoveryEnabled bool
}

// Load reads environment variables, applies defaults, and validates the result.
func Load() (*Config, error) {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	dataDir := filepath.Join(home, ".config", "rockbox.org")

	cfg := &Config{
		Environment: getEnv("ROCKBOX_ENV", "development"),
		Host:        getEnv("ROCKBOX_HOST", "localhost"),
		Addr:        getEnv("ROCKBOX_ADDR", "0.0.0.0"),
		RPCPort:     getEnvInt("ROCKBOX_PORT", 6061),
		GraphQLPort: getEnvInt("ROCKBOX_GRAPHQL_PORT", 6062),
		HTTPPort:    getEnvInt("ROCKBOX_HTTP_PORT", 6063),
		TCPPort:     getEnvInt("ROCKBOX_TCP_PORT", 6060),
		MPDPort:     getEnvInt("ROCKBOX_MPD_PORT", 6600),
		MetricsBind: getEnv("ROCKBOX_METRICS_BIND", ""),

		DBBackend: DatabaseBackend(getEnv("ROCKBOX_DB_BACKEND", string(DatabaseSQLite))),
		DBDSN:     getEnv("ROCKBOX_DB_DSN", ""),

		Library:    getEnv("ROCKBOX_LIBRARY", filepath.Join(home, "Music")),
		DataDir:    dataDir,
		DeviceName: getEnv("ROCKBOX_DEVICE_NAME", "rockbox"),
		DeviceID:   getEnv("ROCKBOX_DEVICE_ID", ""),
		SPADir:     getEnv("ROCKBOX_SPA_DIR", ""),
		Tag:        getEnv("TAG", "latest"),

		MPRISEnabled:     getEnvBool("ROCKBOX_MPRIS_ENABLED", true),
		DiscoveryEnabled: getEnvBool("ROCKBOX_DISCOVERY_ENABLED", true),
	}

	if cfg.DBBackend != DatabasePostgres && cfg.DBBackend != DatabaseMySQL && cfg.DBBackend != DatabaseSQLite {
		return nil, fmt.Errorf("unsupported database backend %q", cfg.DBBackend)
	}

	if cfg.DBDSN == "" {
		if cfg.DBBackend != DatabaseSQLite {
			return nil, fmt.Errorf("ROCKBOX_DB_DSN must be provided for backend %q", cfg.DBBackend)
		}
		cfg.DBDSN = filepath.Join(dataDir, "rockbox.db")
	}

	for _, port := range []int{cfg.RPCPort, cfg.GraphQLPort, cfg.HTTPPort, cfg.MPDPort} {
		if port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid port %d", port)
		}
	}

	return cfg, nil
}

// CoversDir is the content-addressed album cover directory.
func (c *Config) CoversDir() string {
	return filepath.Join(c.DataDir, "covers")
}

// IndexesDir holds the per-entity search indexes.
func (c *Config) IndexesDir() string {
	return filepath.Join(c.DataDir, "indexes")
}

// SettingsPath is the persisted global settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.yml")
}

// TokenPath is the user-owned opaque token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.DataDir, "token")
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(strings.TrimSpace(val))
		if val == "true" || val == "1" || val == "yes" {
			return true
		}
		if val == "false" || val == "0" || val == "no" {
			return false
		}
	}
	return def
}
