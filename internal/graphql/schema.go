/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package graphql serves the query, mutation and subscription surface on
// the web port, along with covers, track downloads and the SPA.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/search"
)

// Resolver carries the dependencies the schema closes over.
type Resolver struct {
	Facade *playback.Facade
	Repo   *repo.Repo
	Search *search.Index
}

type trackView struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	AlbumArtist string `json:"albumArtist"`
	TrackNumber int    `json:"trackNumber"`
	DiscNumber  int    `json:"discNumber"`
	Length      int    `json:"length"`
	Elapsed     int    `json:"elapsed"`
	AlbumArt    string `json:"albumArt"`
	AlbumID     string `json:"albumId"`
	ArtistID    string `json:"artistId"`
}

func viewFromModel(track models.Track) trackView {
	view := trackView{
		ID:          track.ID,
		Path:        track.Path,
		Title:       track.Title,
		Artist:      track.Artist,
		Album:       track.Album,
		AlbumArtist: track.AlbumArtist,
		DiscNumber:  track.DiscNumber,
		Length:      track.Length,
		AlbumID:     track.AlbumID,
		ArtistID:    track.ArtistID,
	}
	if track.TrackNumber != nil {
		view.TrackNumber = *track.TrackNumber
	}
	if track.AlbumArt != nil {
		view.AlbumArt = *track.AlbumArt
	}
	return view
}

func viewFromCurrent(current events.CurrentTrack) trackView {
	return trackView{
		ID:          current.ID,
		Path:        current.Path,
		Title:       current.Title,
		Artist:      current.Artist,
		Album:       current.Album,
		AlbumArtist: current.AlbumArtist,
		TrackNumber: current.TrackNumber,
		DiscNumber:  current.DiscNumber,
		Length:      current.Length,
		Elapsed:     current.Elapsed,
		AlbumArt:    current.AlbumArt,
		AlbumID:     current.AlbumID,
		ArtistID:    current.ArtistID,
	}
}

// NewSchema builds the executable schema.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	trackType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Track",
		Fields: graphql.Fields{
			"id":          {Type: graphql.String},
			"path":        {Type: graphql.String},
			"title":       {Type: graphql.String},
			"artist":      {Type: graphql.String},
			"album":       {Type: graphql.String},
			"albumArtist": {Type: graphql.String},
			"trackNumber": {Type: graphql.Int},
			"discNumber":  {Type: graphql.Int},
			"length":      {Type: graphql.Int},
			"elapsed":     {Type: graphql.Int},
			"albumArt":    {Type: graphql.String},
			"albumId":     {Type: graphql.String},
			"artistId":    {Type: graphql.String},
		},
	})

	albumType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Album",
		Fields: graphql.Fields{
			"id":       {Type: graphql.String},
			"title":    {Type: graphql.String},
			"artist":   {Type: graphql.String},
			"artistId": {Type: graphql.String},
			"year":     {Type: graphql.Int},
			"albumArt": {Type: graphql.String},
			"tracks": {
				Type: graphql.NewList(trackType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					album, ok := p.Source.(albumView)
					if !ok {
						return nil, nil
					}
					tracks, err := r.Repo.Albums.Tracks(album.ID)
					if err != nil {
						return nil, err
					}
					return viewsFromModels(tracks), nil
				},
			},
		},
	})

	artistType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Artist",
		Fields: graphql.Fields{
			"id":   {Type: graphql.String},
			"name": {Type: graphql.String},
			"tracks": {
				Type: graphql.NewList(trackType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					artist, ok := p.Source.(artistView)
					if !ok {
						return nil, nil
					}
					tracks, err := r.Repo.Artists.Tracks(artist.ID)
					if err != nil {
						return nil, err
					}
					return viewsFromModels(tracks), nil
				},
			},
			"albums": {
				Type: graphql.NewList(albumType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					artist, ok := p.Source.(artistView)
					if !ok {
						return nil, nil
					}
					albums, err := r.Repo.Artists.Albums(artist.ID)
					if err != nil {
						return nil, err
					}
					return albumViews(albums), nil
				},
			},
		},
	})

	statusType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PlaybackStatus",
		Fields: graphql.Fields{
			"status":  {Type: graphql.Int},
			"elapsed": {Type: graphql.Int},
		},
	})

	playlistType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Playlist",
		Fields: graphql.Fields{
			"id":   {Type: graphql.String},
			"name": {Type: graphql.String},
			"tracks": {
				Type: graphql.NewList(trackType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					playlist, ok := p.Source.(playlistView)
					if !ok {
						return nil, nil
					}
					tracks, err := r.Repo.Playlists.Tracks(playlist.ID)
					if err != nil {
						return nil, err
					}
					return viewsFromModels(tracks), nil
				},
			},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: r.queryFields(trackType, albumType, artistType, statusType, playlistType, idArg),
	})
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: r.mutationFields(idArg),
	})
	subscription := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Subscription",
		Fields: r.subscriptionFields(trackType, statusType),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:        query,
		Mutation:     mutation,
		Subscription: subscription,
	})
}

func viewsFromModels(tracks []models.Track) []trackView {
	out := make([]trackView, 0, len(tracks))
	for _, track := range tracks {
		out = append(out, viewFromModel(track))
	}
	return out
}
