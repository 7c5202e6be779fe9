/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package rpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/tsirysndr/rockboxd/proto/rockbox/v1"
)

type libraryService struct {
	pb.UnimplementedLibraryServiceServer
	deps Deps
}

func (s *libraryService) GetAlbums(ctx context.Context, _ *pb.Empty) (*pb.GetAlbumsResponse, error) {
	albums, err := s.deps.Repo.Albums.All()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetAlbumsResponse{Albums: albumsToPB(albums)}, nil
}

func (s *libraryService) GetArtists(ctx context.Context, _ *pb.Empty) (*pb.GetArtistsResponse, error) {
	artists, err := s.deps.Repo.Artists.All()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetArtistsResponse{Artists: artistsToPB(artists)}, nil
}

func (s *libraryService) GetTracks(ctx context.Context, _ *pb.Empty) (*pb.GetTracksResponse, error) {
	tracks, err := s.deps.Repo.Tracks.All()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetTracksResponse{Tracks: tracksToPB(tracks)}, nil
}

func (s *libraryService) GetAlbum(ctx context.Context, req *pb.IdRequest) (*pb.Album, error) {
	album, err := s.deps.Repo.Albums.Find(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	out := albumToPB(*album)
	tracks, err := s.deps.Repo.Albums.Tracks(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	out.Tracks = tracksToPB(tracks)
	return out, nil
}

func (s *libraryService) GetArtist(ctx context.Context, req *pb.IdRequest) (*pb.Artist, error) {
	artist, err := s.deps.Repo.Artists.Find(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	out := artistToPB(*artist)
	tracks, err := s.deps.Repo.Artists.Tracks(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	out.Tracks = tracksToPB(tracks)
	albums, err := s.deps.Repo.Artists.Albums(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	out.Albums = albumsToPB(albums)
	return out, nil
}

func (s *libraryService) GetTrack(ctx context.Context, req *pb.IdRequest) (*pb.Track, error) {
	track, err := s.deps.Repo.Tracks.Find(req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return trackToPB(*track), nil
}

func (s *libraryService) Search(ctx context.Context, req *pb.SearchRequest) (*pb.SearchResponse, error) {
	if req.Term == "" {
		return nil, status.Error(codes.InvalidArgument, "empty search term")
	}
	results, err := s.deps.Search.Search(req.Term)
	if err != nil {
		return nil, toStatus(err)
	}

	out := &pb.SearchResponse{}
	for _, id := range results.AlbumIDs {
		if album, err := s.deps.Repo.Albums.Find(id); err == nil {
			out.Albums = append(out.Albums, albumToPB(*album))
		}
	}
	for _, id := range results.ArtistIDs {
		if artist, err := s.deps.Repo.Artists.Find(id); err == nil {
			out.Artists = append(out.Artists, artistToPB(*artist))
		}
	}
	for _, id := range results.TrackIDs {
		if track, err := s.deps.Repo.Tracks.Find(id); err == nil {
			out.Tracks = append(out.Tracks, trackToPB(*track))
		}
	}
	return out, nil
}

func (s *libraryService) LikeTrack(ctx context.Context, req *pb.IdRequest) (*pb.Empty, error) {
	if err := s.deps.Repo.Favourites.LikeTrack(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *libraryService) UnlikeTrack(ctx context.Context, req *pb.IdRequest) (*pb.Empty, error) {
	if err := s.deps.Repo.Favourites.UnlikeTrack(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *libraryService) LikeAlbum(ctx context.Context, req *pb.IdRequest) (*pb.Empty, error) {
	if err := s.deps.Repo.Favourites.LikeAlbum(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *libraryService) UnlikeAlbum(ctx context.Context, req *pb.IdRequest) (*pb.Empty, error) {
	if err := s.deps.Repo.Favourites.UnlikeAlbum(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *libraryService) GetLikedTracks(ctx context.Context, _ *pb.Empty) (*pb.GetTracksResponse, error) {
	tracks, err := s.deps.Repo.Favourites.LikedTracks()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetTracksResponse{Tracks: tracksToPB(tracks)}, nil
}

func (s *libraryService) GetLikedAlbums(ctx context.Context, _ *pb.Empty) (*pb.GetAlbumsResponse, error) {
	albums, err := s.deps.Repo.Favourites.LikedAlbums()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetAlbumsResponse{Albums: albumsToPB(albums)}, nil
}

func (s *libraryService) Scan(ctx context.Context, req *pb.ScanRequest) (*pb.ScanResponse, error) {
	root := req.Path
	if root == "" {
		root = s.deps.Library
	}
	stats, err := s.deps.Scanner.Scan(ctx, root)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ScanResponse{Scanned: int32(stats.Scanned), Skipped: int32(stats.Skipped)}, nil
}

func (s *libraryService) FlushAndReloadTracks(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	s.deps.Facade.FlushAndReloadTracks()
	return &pb.Empty{}, nil
}
