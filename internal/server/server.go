/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package server wires the daemon: database, library, playback core and
// every network surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tsirysndr/rockboxd/internal/browse"
	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/config"
	"github.com/tsirysndr/rockboxd/internal/covers"
	"github.com/tsirysndr/rockboxd/internal/db"
	"github.com/tsirysndr/rockboxd/internal/discovery"
	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/enrich"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/graphql"
	"github.com/tsirysndr/rockboxd/internal/library"
	"github.com/tsirysndr/rockboxd/internal/logbuffer"
	"github.com/tsirysndr/rockboxd/internal/mpd"
	"github.com/tsirysndr/rockboxd/internal/mpris"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/rpc"
	"github.com/tsirysndr/rockboxd/internal/search"
	"github.com/tsirysndr/rockboxd/internal/settings"
	"github.com/tsirysndr/rockboxd/internal/telemetry"
	"github.com/tsirysndr/rockboxd/internal/version"
)

// Server bundles the daemon's services and listeners.
type Server struct {
	cfg       *config.Config
	logger    zerolog.Logger
	logBuffer *logbuffer.Buffer
	closers   []func() error

	db       *gorm.DB
	repo     *repo.Repo
	covers   *covers.Store
	search   *search.Index
	scanner  *library.Scanner
	bus      *bus.Bus
	queue    *playlist.Engine
	engine   *engine.Emulated
	broker   *events.Broker
	enricher *enrich.Enricher
	pipeline *enrich.Pipeline
	facade   *playback.Facade
	settings *settings.Store
	browser  *browse.Browser

	mpd       *mpd.Server
	mpris     *mpris.Server
	rpc       *rpc.Server
	web       *graphql.Server
	peers     *discovery.Browser
	registrar *discovery.Registration
	updates   *version.Checker

	deviceID string
	started  time.Time

	bgCancel context.CancelFunc
	bgWG     sync.WaitGroup
}

// New constructs the server and wires dependencies.
func New(cfg *config.Config, logBuf *logbuffer.Buffer, logger zerolog.Logger) (*Server, error) {
	srv := &Server{
		cfg:       cfg,
		logger:    logger,
		logBuffer: logBuf,
		started:   time.Now(),
	}
	if err := srv.initDependencies(); err != nil {
		srv.Close()
		return nil, err
	}
	return srv, nil
}

func (s *Server) initDependencies() error {
	if err := os.MkdirAll(s.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.cfg.DataDir, err)
	}

	database, err := db.Connect(s.cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(database); err != nil {
		return err
	}
	s.db = database
	s.DeferClose(func() error { return db.Close(database) })
	s.repo = repo.New(database)

	s.covers, err = covers.New(s.cfg.CoversDir())
	if err != nil {
		return fmt.Errorf("open covers store: %w", err)
	}

	s.search, err = search.Open(s.cfg.IndexesDir())
	if err != nil {
		return fmt.Errorf("open search indexes: %w", err)
	}
	s.DeferClose(s.search.Close)

	s.scanner = library.NewScanner(s.repo, s.covers, s.search, runtime.NumCPU())

	s.settings, err = settings.NewStore(s.cfg.SettingsPath())
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}

	s.queue = playlist.New()
	s.queue.SetRepeat(s.settings.Get().Repeat)
	s.engine = engine.NewEmulated(s.queue, func(path string) int {
		track, err := s.repo.Tracks.FindByPath(path)
		if err != nil {
			return 0
		}
		return track.Length
	})

	s.bus = bus.New()
	s.DeferClose(func() error { s.bus.Close(); return nil })

	s.broker = events.NewBroker()
	s.enricher = enrich.NewEnricher(s.repo)
	s.pipeline = enrich.NewPipeline(s.enricher, s.engine, s.queue, s.broker)
	s.facade = playback.New(s.bus, s.engine, s.queue, s.repo, s.enricher, s.broker)

	// rescans refresh the enrichment cache so renamed tags show up
	s.scanner.OnComplete(func(context.Context) error {
		s.enricher.Invalidate()
		return nil
	})

	s.browser = browse.New(s.cfg.Library)
	s.mpd = mpd.NewServer(s.facade, s.repo, s.settings, s.browser, s.broker, func(ctx context.Context) error {
		_, err := s.scanner.Scan(ctx, s.cfg.Library)
		return err
	})

	s.deviceID = s.cfg.DeviceID
	if s.deviceID == "" {
		s.deviceID = uuid.NewString()
	}

	s.peers = discovery.NewBrowser()
	s.updates = version.NewChecker(s.logger)

	s.rpc = rpc.New(rpc.Deps{
		Facade:   s.facade,
		Repo:     s.repo,
		Search:   s.search,
		Scanner:  s.scanner,
		Settings: s.settings,
		Browser:  s.browser,
		Logs:     s.logBuffer,
		Peers:    s.peers,
		DeviceID: s.deviceID,
		Name:     s.cfg.DeviceName,
		Library:  s.cfg.Library,
		Started:  s.started,
	})

	resolver := &graphql.Resolver{Facade: s.facade, Repo: s.repo, Search: s.search}
	s.web, err = graphql.NewServer(resolver, s.covers, s.cfg.SPADir)
	if err != nil {
		return err
	}

	if s.cfg.MPRISEnabled {
		mprisSrv, err := mpris.New(s.facade, s.broker, s.settings, s.covers.Dir())
		if err != nil {
			s.logger.Warn().Err(err).Msg("mpris unavailable, continuing without it")
		} else {
			s.mpris = mprisSrv
		}
	}

	return nil
}

// Run starts every listener and background worker and blocks until the
// context ends or a listener fails.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go engine.Consume(s.bus, s.engine)
	if err := s.facade.SetVolume(s.settings.Get().Volume); err != nil {
		s.logger.Warn().Err(err).Msg("failed to restore volume")
	}
	if err := s.restoreResume(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to restore playlist")
	}
	defer func() {
		if err := s.saveResume(); err != nil {
			s.logger.Error().Err(err).Msg("failed to save playlist position")
		}
	}()

	s.startBackgroundWorkers(ctx)
	defer s.stopBackgroundWorkers()

	errCh := make(chan error, 3)

	grpcLn, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.cfg.Addr, s.cfg.RPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	go func() { errCh <- s.rpc.Serve(ctx, grpcLn) }()

	mpdLn, err := net.Listen("tcp", mpd.Addr(s.cfg.Addr, s.cfg.MPDPort))
	if err != nil {
		return fmt.Errorf("listen mpd: %w", err)
	}
	go func() { errCh <- s.mpd.Serve(ctx, mpdLn) }()

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Addr, s.cfg.GraphQLPort),
		Handler:           s.web.Handler(s.rpc.WebHandler),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		s.logger.Info().Str("addr", httpSrv.Addr).Msg("http listening")
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("http shutdown error")
		}
	}()

	// dedicated metrics listener, /metrics also rides the web port
	if s.cfg.MetricsBind != "" {
		metricsSrv := &http.Server{
			Addr:              s.cfg.MetricsBind,
			Handler:           telemetry.Handler(),
			ReadHeaderTimeout: 15 * time.Second,
		}
		go func() {
			s.logger.Info().Str("addr", metricsSrv.Addr).Msg("metrics listening")
			if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error().Err(err).Msg("metrics server error")
			}
		}()
		defer metricsSrv.Close()
	}

	if s.cfg.DiscoveryEnabled {
		registrar, err := discovery.Register(s.deviceID, s.cfg.DeviceName, discovery.Ports{
			HTTP:    s.cfg.HTTPPort,
			GraphQL: s.cfg.GraphQLPort,
			GRPC:    s.cfg.RPCPort,
			MPD:     s.cfg.MPDPort,
		})
		if err != nil {
			s.logger.Warn().Err(err).Msg("mdns registration failed, continuing without it")
		} else {
			s.registrar = registrar
			defer s.registrar.Shutdown()
		}
	}

	s.logger.Info().
		Str("device_id", s.deviceID).
		Str("library", s.cfg.Library).
		Int("grpc_port", s.cfg.RPCPort).
		Int("graphql_port", s.cfg.GraphQLPort).
		Int("mpd_port", s.cfg.MPDPort).
		Msg("rockboxd started")

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) startBackgroundWorkers(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	s.bgCancel = cancel

	s.bgWG.Add(1)
	go func() {
		defer s.bgWG.Done()
		s.pipeline.Run(ctx)
	}()

	if s.mpris != nil {
		s.bgWG.Add(1)
		go func() {
			defer s.bgWG.Done()
			s.mpris.Run(ctx)
		}()
	}

	if s.cfg.DiscoveryEnabled {
		s.bgWG.Add(1)
		go func() {
			defer s.bgWG.Done()
			s.peers.Run(ctx)
		}()
	}

	s.updates.Start(ctx)

	// first index of the library, later rescans come through MPD or gRPC
	s.bgWG.Add(1)
	go func() {
		defer s.bgWG.Done()
		if _, err := os.Stat(s.cfg.Library); err != nil {
			s.logger.Warn().Str("library", s.cfg.Library).Msg("library root missing, skipping initial scan")
			return
		}
		stats, err := s.scanner.Scan(ctx, s.cfg.Library)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				s.logger.Error().Err(err).Msg("initial scan failed")
			}
			return
		}
		s.logger.Info().
			Int("scanned", stats.Scanned).
			Int("skipped", stats.Skipped).
			Dur("duration", stats.Duration).
			Msg("initial scan complete")
	}()
}

func (s *Server) stopBackgroundWorkers() {
	if s.bgCancel == nil {
		return
	}
	s.bgCancel()
	s.bgWG.Wait()
	s.bgCancel = nil
	s.updates.Stop()
}

// Facade exposes the playback facade, used by the scan subcommand.
func (s *Server) Facade() *playback.Facade { return s.facade }

// Scanner exposes the library scanner.
func (s *Server) Scanner() *library.Scanner { return s.scanner }

// Close releases owned resources in reverse order.
func (s *Server) Close() error {
	s.stopBackgroundWorkers()
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

// DeferClose registers a cleanup hook.
func (s *Server) DeferClose(fn func() error) {
	s.closers = append(s.closers, fn)
}
