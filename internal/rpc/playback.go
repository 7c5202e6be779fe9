/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package rpc

import (
	"context"

	"github.com/tsirysndr/rockboxd/internal/playback"
	pb "github.com/tsirysndr/rockboxd/proto/rockbox/v1"
)

type playbackService struct {
	pb.UnimplementedPlaybackServiceServer
	deps Deps
}

func options(shuffle bool, position *int32) playback.Options {
	opts := playback.Options{Shuffle: shuffle}
	if position != nil {
		p := int(*position)
		opts.Position = &p
	}
	return opts
}

func (s *playbackService) Play(ctx context.Context, req *pb.PlayRequest) (*pb.Empty, error) {
	if err := s.deps.Facade.Play(int(req.ElapsedMs), int(req.Offset)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *playbackService) Pause(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.Pause())
}

func (s *playbackService) Resume(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.Resume())
}

func (s *playbackService) Stop(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.Stop())
}

func (s *playbackService) HardStop(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.HardStop())
}

func (s *playbackService) Next(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.Next())
}

func (s *playbackService) Previous(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.Previous())
}

func (s *playbackService) Seek(ctx context.Context, req *pb.SeekRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.FfRewind(int(req.PositionMs)))
}

func (s *playbackService) GetStatus(ctx context.Context, _ *pb.Empty) (*pb.PlaybackStatus, error) {
	return statusToPB(s.deps.Facade.Status()), nil
}

func (s *playbackService) GetCurrentTrack(ctx context.Context, _ *pb.Empty) (*pb.CurrentTrack, error) {
	current := s.deps.Facade.CurrentTrack()
	if current == nil {
		return &pb.CurrentTrack{}, nil
	}
	return currentToPB(*current, s.deps.Facade.Queue().Index()), nil
}

func (s *playbackService) GetNextTrack(ctx context.Context, _ *pb.Empty) (*pb.CurrentTrack, error) {
	next := s.deps.Facade.NextTrack()
	if next == nil {
		return &pb.CurrentTrack{}, nil
	}
	return currentToPB(*next, 0), nil
}

func (s *playbackService) GetFilePosition(ctx context.Context, _ *pb.Empty) (*pb.GetFilePositionResponse, error) {
	return &pb.GetFilePositionResponse{PositionMs: int32(s.deps.Facade.GetFilePosition())}, nil
}

func (s *playbackService) PlayAlbum(ctx context.Context, req *pb.PlaySelectionRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.PlayAlbum(req.Id, options(req.Shuffle, req.Position)))
}

func (s *playbackService) PlayArtistTracks(ctx context.Context, req *pb.PlaySelectionRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.PlayArtistTracks(req.Id, options(req.Shuffle, req.Position)))
}

func (s *playbackService) PlayDirectory(ctx context.Context, req *pb.PlayDirectoryRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.PlayDirectory(req.Path, req.Recurse, options(req.Shuffle, req.Position)))
}

func (s *playbackService) PlayTrack(ctx context.Context, req *pb.PlayTrackRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.PlayTrack(req.Path))
}

func (s *playbackService) PlayLikedTracks(ctx context.Context, req *pb.PlaySelectionRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.PlayLikedTracks(options(req.Shuffle, req.Position)))
}

func (s *playbackService) PlayAllTracks(ctx context.Context, req *pb.PlaySelectionRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.PlayAllTracks(options(req.Shuffle, req.Position)))
}

func (s *playbackService) StreamCurrentTrack(_ *pb.Empty, stream pb.PlaybackService_StreamCurrentTrackServer) error {
	ctx := stream.Context()
	for current := range s.deps.Facade.StreamCurrentTrack(ctx) {
		if err := stream.Send(currentToPB(current, s.deps.Facade.Queue().Index())); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (s *playbackService) StreamStatus(_ *pb.Empty, stream pb.PlaybackService_StreamStatusServer) error {
	ctx := stream.Context()
	for status := range s.deps.Facade.StreamStatus(ctx) {
		if err := stream.Send(statusToPB(status)); err != nil {
			return err
		}
	}
	return ctx.Err()
}
