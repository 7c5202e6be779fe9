/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package rpc

import (
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/models"
	pb "github.com/tsirysndr/rockboxd/proto/rockbox/v1"
)

func trackToPB(track models.Track) *pb.Track {
	out := &pb.Track{
		Id:          track.ID,
		Path:        track.Path,
		Title:       track.Title,
		Artist:      track.Artist,
		Album:       track.Album,
		AlbumArtist: track.AlbumArtist,
		DiscNumber:  int32(track.DiscNumber),
		LengthMs:    int32(track.Length),
		Bitrate:     int32(track.Bitrate),
		Md5:         track.MD5,
		ArtistId:    track.ArtistID,
		AlbumId:     track.AlbumID,
	}
	if track.Genre != nil {
		out.Genre = *track.Genre
	}
	if track.Year != nil {
		out.Year = int32(*track.Year)
	}
	if track.TrackNumber != nil {
		out.TrackNumber = int32(*track.TrackNumber)
	}
	if track.AlbumArt != nil {
		out.AlbumArt = *track.AlbumArt
	}
	return out
}

func tracksToPB(tracks []models.Track) []*pb.Track {
	out := make([]*pb.Track, 0, len(tracks))
	for _, track := range tracks {
		out = append(out, trackToPB(track))
	}
	return out
}

func albumToPB(album models.Album) *pb.Album {
	out := &pb.Album{
		Id:       album.ID,
		Title:    album.Title,
		Artist:   album.Artist,
		ArtistId: album.ArtistID,
		Year:     int32(album.Year),
		Md5:      album.MD5,
	}
	if album.AlbumArt != nil {
		out.AlbumArt = *album.AlbumArt
	}
	return out
}

func albumsToPB(albums []models.Album) []*pb.Album {
	out := make([]*pb.Album, 0, len(albums))
	for _, album := range albums {
		out = append(out, albumToPB(album))
	}
	return out
}

func artistToPB(artist models.Artist) *pb.Artist {
	out := &pb.Artist{Id: artist.ID, Name: artist.Name}
	if artist.Image != nil {
		out.Image = *artist.Image
	}
	return out
}

func artistsToPB(artists []models.Artist) []*pb.Artist {
	out := make([]*pb.Artist, 0, len(artists))
	for _, artist := range artists {
		out = append(out, artistToPB(artist))
	}
	return out
}

func currentToPB(current events.CurrentTrack, index int) *pb.CurrentTrack {
	return &pb.CurrentTrack{
		Track: &pb.Track{
			Id:          current.ID,
			Path:        current.Path,
			Title:       current.Title,
			Artist:      current.Artist,
			Album:       current.Album,
			AlbumArtist: current.AlbumArtist,
			TrackNumber: int32(current.TrackNumber),
			DiscNumber:  int32(current.DiscNumber),
			LengthMs:    int32(current.Length),
			Bitrate:     int32(current.Bitrate),
			AlbumArt:    current.AlbumArt,
			ArtistId:    current.ArtistID,
			AlbumId:     current.AlbumID,
		},
		ElapsedMs: int32(current.Elapsed),
		Index:     int32(index),
	}
}

func statusToPB(status events.PlaybackStatus) *pb.PlaybackStatus {
	return &pb.PlaybackStatus{
		Status:    int32(status.Status),
		ElapsedMs: int32(status.Elapsed),
	}
}
