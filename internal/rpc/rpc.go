/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package rpc exposes the daemon over gRPC, with server reflection and an
// HTTP/1.1 bridge so browser clients connect without a proxy.
package rpc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/tsirysndr/rockboxd/internal/browse"
	"github.com/tsirysndr/rockboxd/internal/discovery"
	"github.com/tsirysndr/rockboxd/internal/library"
	"github.com/tsirysndr/rockboxd/internal/logbuffer"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/search"
	"github.com/tsirysndr/rockboxd/internal/settings"
	"github.com/tsirysndr/rockboxd/internal/version"
	pb "github.com/tsirysndr/rockboxd/proto/rockbox/v1"
)

// Deps carries everything the services need.
type Deps struct {
	Facade   *playback.Facade
	Repo     *repo.Repo
	Search   *search.Index
	Scanner  *library.Scanner
	Settings *settings.Store
	Browser  *browse.Browser
	Logs     *logbuffer.Buffer
	Peers    *discovery.Browser
	DeviceID string
	Name     string
	Library  string
	Started  time.Time
}

// Server bundles the gRPC server and its web bridge.
type Server struct {
	grpc *grpc.Server
	web  *grpcweb.WrappedGrpcServer
}

// New registers every service on a fresh gRPC server.
func New(deps Deps) *Server {
	s := grpc.NewServer()

	pb.RegisterLibraryServiceServer(s, &libraryService{deps: deps})
	pb.RegisterPlaybackServiceServer(s, &playbackService{deps: deps})
	pb.RegisterPlaylistServiceServer(s, &playlistService{deps: deps})
	pb.RegisterSoundServiceServer(s, &soundService{deps: deps})
	pb.RegisterSettingsServiceServer(s, &settingsService{deps: deps})
	pb.RegisterBrowseServiceServer(s, &browseService{deps: deps})
	pb.RegisterSystemServiceServer(s, &systemService{deps: deps})
	pb.RegisterDeviceServiceServer(s, &deviceService{deps: deps})
	reflection.Register(s)

	return &Server{
		grpc: s,
		web: grpcweb.WrapServer(s,
			grpcweb.WithOriginFunc(func(string) bool { return true }),
		),
	}
}

// Serve runs the gRPC listener until the context ends.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		s.grpc.GracefulStop()
	}()
	log.Info().Str("addr", ln.Addr().String()).Msg("grpc listening")
	if err := s.grpc.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// WebHandler bridges grpc-web requests; everything else falls through.
func (s *Server) WebHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.web.IsGrpcWebRequest(r) || s.web.IsAcceptableGrpcCorsRequest(r) {
			s.web.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// toStatus maps facade error kinds onto gRPC codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, playback.ErrNotFound), errors.Is(err, repo.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, playback.ErrInvalid),
		errors.Is(err, playback.ErrNotADirectory),
		errors.Is(err, playback.ErrNotAFile):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// buildVersion is what SystemService reports.
func buildVersion() string { return version.Version }
