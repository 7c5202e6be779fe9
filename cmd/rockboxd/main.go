/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsirysndr/rockboxd/internal/config"
	"github.com/tsirysndr/rockboxd/internal/logbuffer"
	"github.com/tsirysndr/rockboxd/internal/logging"
	"github.com/tsirysndr/rockboxd/internal/server"
	"github.com/tsirysndr/rockboxd/internal/version"
)

var (
	logger zerolog.Logger
	logBuf *logbuffer.Buffer
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "rockboxd",
	Short:   "Rockbox music player daemon",
	Long:    "rockboxd indexes a music library and plays it over gRPC, GraphQL, MPD and MPRIS.",
	Version: version.Version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the daemon",
	Long:  "Start every network surface: gRPC, GraphQL, MPD and MPRIS.",
	RunE:  runServe,
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Index the music library and exit",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logBuf = logbuffer.New(1000)
	logger = logging.SetupWithWriter(cfg.Environment, logBuf)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	logger.Info().Str("version", version.Version).Msg("rockboxd starting")

	srv, err := server.New(cfg, logBuf, logger)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info().Msg("shutting down gracefully...")
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		srv.Close()
		return err
	}

	if err := srv.Close(); err != nil {
		logger.Error().Err(err).Msg("shutdown cleanup failed")
	}

	logger.Info().Msg("rockboxd stopped")
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	root := cfg.Library
	if len(args) == 1 {
		root = args[0]
	}

	srv, err := server.New(cfg, logBuf, logger)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}
	defer srv.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats, err := srv.Scanner().Scan(ctx, root)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	logger.Info().
		Int("scanned", stats.Scanned).
		Int("skipped", stats.Skipped).
		Dur("duration", stats.Duration).
		Msg("scan complete")
	return nil
}
