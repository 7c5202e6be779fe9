/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package rpc

import (
	"context"

	"github.com/tsirysndr/rockboxd/internal/playlist"
	pb "github.com/tsirysndr/rockboxd/proto/rockbox/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type playlistService struct {
	pb.UnimplementedPlaylistServiceServer
	deps Deps
}

func (s *playlistService) Create(ctx context.Context, req *pb.CreatePlaylistRequest) (*pb.CreatePlaylistResponse, error) {
	id, err := s.deps.Repo.Playlists.Create(req.Name, req.FolderId, req.Description)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.CreatePlaylistResponse{Id: id}, nil
}

func (s *playlistService) List(ctx context.Context, _ *pb.Empty) (*pb.ListPlaylistsResponse, error) {
	playlists, err := s.deps.Repo.Playlists.All()
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.ListPlaylistsResponse{}
	for _, p := range playlists {
		out.Playlists = append(out.Playlists, &pb.Playlist{
			Id:          p.ID,
			Name:        p.Name,
			FolderId:    p.FolderID,
			Description: p.Description,
		})
	}
	return out, nil
}

func (s *playlistService) Get(ctx context.Context, req *pb.IdRequest) (*pb.Playlist, error) {
	p, err := s.deps.Repo.Playlists.Find(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	tracks, err := s.deps.Repo.Playlists.Tracks(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Playlist{
		Id:          p.ID,
		Name:        p.Name,
		FolderId:    p.FolderID,
		Description: p.Description,
		Tracks:      tracksToPB(tracks),
	}, nil
}

func (s *playlistService) Rename(ctx context.Context, req *pb.RenamePlaylistRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Repo.Playlists.Rename(req.Id, req.Name))
}

func (s *playlistService) Delete(ctx context.Context, req *pb.IdRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Repo.Playlists.Delete(req.Id))
}

func (s *playlistService) InsertTracks(ctx context.Context, req *pb.InsertPlaylistTracksRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Repo.Playlists.InsertTracks(req.Id, req.TrackIds, int(req.Position)))
}

func (s *playlistService) RemoveTrack(ctx context.Context, req *pb.RemovePlaylistTrackRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Repo.Playlists.RemoveTrack(req.Id, int(req.Position)))
}

func (s *playlistService) GetCurrent(ctx context.Context, _ *pb.Empty) (*pb.PlaylistSnapshot, error) {
	return s.snapshotPB(), nil
}

func (s *playlistService) snapshotPB() *pb.PlaylistSnapshot {
	snapshot := s.deps.Facade.Queue().GetCurrent()
	out := &pb.PlaylistSnapshot{
		Index:  int32(snapshot.Index),
		Amount: int32(snapshot.Amount),
	}
	for _, path := range snapshot.Tracks {
		current := s.deps.Facade.EnrichPath(path)
		out.Tracks = append(out.Tracks, currentToPB(current, 0).Track)
	}
	return out
}

func (s *playlistService) Shuffle(ctx context.Context, req *pb.ShuffleRequest) (*pb.Empty, error) {
	if s.deps.Facade.Queue().Shuffle(req.Seed, int(req.StartIndex)) == playlist.Failure {
		return nil, status.Error(codes.InvalidArgument, "invalid start index")
	}
	return &pb.Empty{}, nil
}

func (s *playlistService) StreamPlaylist(_ *pb.Empty, stream pb.PlaylistService_StreamPlaylistServer) error {
	ctx := stream.Context()
	for snapshot := range s.deps.Facade.StreamPlaylist(ctx) {
		out := &pb.PlaylistSnapshot{
			Index:  int32(snapshot.Index),
			Amount: int32(snapshot.Amount),
		}
		for _, path := range snapshot.Tracks {
			out.Tracks = append(out.Tracks, currentToPB(s.deps.Facade.EnrichPath(path), 0).Track)
		}
		if err := stream.Send(out); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (s *playlistService) CreateFolder(ctx context.Context, req *pb.CreateFolderRequest) (*pb.Folder, error) {
	id, err := s.deps.Repo.Playlists.CreateFolder(req.Name, req.ParentId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.Folder{Id: id, Name: req.Name, ParentId: req.ParentId}, nil
}

func (s *playlistService) ListFolders(ctx context.Context, _ *pb.Empty) (*pb.ListFoldersResponse, error) {
	folders, err := s.deps.Repo.Playlists.Folders()
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.ListFoldersResponse{}
	for _, folder := range folders {
		out.Folders = append(out.Folders, &pb.Folder{
			Id:       folder.ID,
			Name:     folder.Name,
			ParentId: folder.ParentID,
		})
	}
	return out, nil
}

func (s *playlistService) DeleteFolder(ctx context.Context, req *pb.IdRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Repo.Playlists.DeleteFolder(req.Id))
}
