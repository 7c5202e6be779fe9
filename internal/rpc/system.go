/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package rpc

import (
	"context"
	"time"

	pb "github.com/tsirysndr/rockboxd/proto/rockbox/v1"
)

type browseService struct {
	pb.UnimplementedBrowseServiceServer
	deps Deps
}

func (s *browseService) ListDirectory(ctx context.Context, req *pb.ListDirectoryRequest) (*pb.ListDirectoryResponse, error) {
	entries, err := s.deps.Browser.List(req.Path)
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.ListDirectoryResponse{}
	for _, entry := range entries {
		out.Entries = append(out.Entries, &pb.DirectoryEntry{
			Name:    entry.Name,
			Path:    entry.Path,
			IsDir:   entry.IsDir,
			Size:    entry.Size,
			ModTime: entry.ModTime,
		})
	}
	return out, nil
}

func (s *browseService) ListAll(ctx context.Context, req *pb.ListDirectoryRequest) (*pb.ListAllResponse, error) {
	files, err := s.deps.Browser.ListAll(req.Path)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListAllResponse{Files: files}, nil
}

type systemService struct {
	pb.UnimplementedSystemServiceServer
	deps Deps
}

func (s *systemService) GetStats(ctx context.Context, _ *pb.Empty) (*pb.Stats, error) {
	artists, albums, tracks, err := s.deps.Repo.Tracks.Count()
	if err != nil {
		return nil, toStatus(err)
	}
	length, err := s.deps.Repo.Tracks.TotalLength()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Stats{
		Artists:       artists,
		Albums:        albums,
		Tracks:        tracks,
		TotalLengthMs: length,
		UptimeSeconds: int64(time.Since(s.deps.Started).Seconds()),
		Version:       buildVersion(),
	}, nil
}

func (s *systemService) GetLogs(ctx context.Context, req *pb.LogsRequest) (*pb.LogsResponse, error) {
	tail := int(req.Tail)
	if tail <= 0 {
		tail = 100
	}
	out := &pb.LogsResponse{}
	for _, entry := range s.deps.Logs.Tail(tail) {
		out.Entries = append(out.Entries, &pb.LogEntry{
			Timestamp: entry.Timestamp.Format(time.RFC3339),
			Level:     entry.Level,
			Message:   entry.Message,
			Component: entry.Component,
		})
	}
	return out, nil
}

type deviceService struct {
	pb.UnimplementedDeviceServiceServer
	deps Deps
}

func (s *deviceService) GetDevice(ctx context.Context, _ *pb.Empty) (*pb.Device, error) {
	return &pb.Device{
		Id:      s.deps.DeviceID,
		Name:    s.deps.Name,
		Version: buildVersion(),
	}, nil
}

func (s *deviceService) ListPeers(ctx context.Context, _ *pb.Empty) (*pb.ListPeersResponse, error) {
	out := &pb.ListPeersResponse{}
	for _, peer := range s.deps.Peers.Peers() {
		out.Peers = append(out.Peers, &pb.Peer{
			Name: peer.Name,
			Host: peer.Host,
			Port: int32(peer.Port),
			Type: peer.Type,
		})
	}
	return out, nil
}
