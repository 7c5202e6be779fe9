/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/playback"
)

type albumView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	ArtistID string `json:"artistId"`
	Year     int    `json:"year"`
	AlbumArt string `json:"albumArt"`
}

type artistView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type playlistView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type statusView struct {
	Status  int `json:"status"`
	Elapsed int `json:"elapsed"`
}

func albumViewFrom(album models.Album) albumView {
	view := albumView{
		ID:       album.ID,
		Title:    album.Title,
		Artist:   album.Artist,
		ArtistID: album.ArtistID,
		Year:     album.Year,
	}
	if album.AlbumArt != nil {
		view.AlbumArt = *album.AlbumArt
	}
	return view
}

func albumViews(albums []models.Album) []albumView {
	out := make([]albumView, 0, len(albums))
	for _, album := range albums {
		out = append(out, albumViewFrom(album))
	}
	return out
}

func artistViews(artists []models.Artist) []artistView {
	out := make([]artistView, 0, len(artists))
	for _, artist := range artists {
		out = append(out, artistView{ID: artist.ID, Name: artist.Name})
	}
	return out
}

func (r *Resolver) queryFields(trackType, albumType, artistType, statusType, playlistType *graphql.Object, idArg graphql.FieldConfigArgument) graphql.Fields {
	return graphql.Fields{
		"tracks": &graphql.Field{
			Type: graphql.NewList(trackType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tracks, err := r.Repo.Tracks.All()
				if err != nil {
					return nil, err
				}
				return viewsFromModels(tracks), nil
			},
		},
		"albums": &graphql.Field{
			Type: graphql.NewList(albumType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				albums, err := r.Repo.Albums.All()
				if err != nil {
					return nil, err
				}
				return albumViews(albums), nil
			},
		},
		"artists": &graphql.Field{
			Type: graphql.NewList(artistType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				artists, err := r.Repo.Artists.All()
				if err != nil {
					return nil, err
				}
				return artistViews(artists), nil
			},
		},
		"track": &graphql.Field{
			Type: trackType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				track, err := r.Repo.Tracks.Find(p.Args["id"].(string))
				if err != nil {
					return nil, err
				}
				return viewFromModel(*track), nil
			},
		},
		"album": &graphql.Field{
			Type: albumType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				album, err := r.Repo.Albums.Find(p.Args["id"].(string))
				if err != nil {
					return nil, err
				}
				return albumViewFrom(*album), nil
			},
		},
		"artist": &graphql.Field{
			Type: artistType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				artist, err := r.Repo.Artists.Find(p.Args["id"].(string))
				if err != nil {
					return nil, err
				}
				return artistView{ID: artist.ID, Name: artist.Name}, nil
			},
		},
		"likedTracks": &graphql.Field{
			Type: graphql.NewList(trackType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				tracks, err := r.Repo.Favourites.LikedTracks()
				if err != nil {
					return nil, err
				}
				return viewsFromModels(tracks), nil
			},
		},
		"likedAlbums": &graphql.Field{
			Type: graphql.NewList(albumType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				albums, err := r.Repo.Favourites.LikedAlbums()
				if err != nil {
					return nil, err
				}
				return albumViews(albums), nil
			},
		},
		"playlists": &graphql.Field{
			Type: graphql.NewList(playlistType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				playlists, err := r.Repo.Playlists.All()
				if err != nil {
					return nil, err
				}
				out := make([]playlistView, 0, len(playlists))
				for _, pl := range playlists {
					out = append(out, playlistView{ID: pl.ID, Name: pl.Name})
				}
				return out, nil
			},
		},
		"search": &graphql.Field{
			Type: graphql.NewList(trackType),
			Args: graphql.FieldConfigArgument{
				"term": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				results, err := r.Search.Search(p.Args["term"].(string))
				if err != nil {
					return nil, err
				}
				out := make([]trackView, 0, len(results.TrackIDs))
				for _, id := range results.TrackIDs {
					track, err := r.Repo.Tracks.Find(id)
					if err != nil {
						continue
					}
					out = append(out, viewFromModel(*track))
				}
				return out, nil
			},
		},
		"status": &graphql.Field{
			Type: statusType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				st := r.Facade.Status()
				return statusView{Status: st.Status, Elapsed: st.Elapsed}, nil
			},
		},
		"currentTrack": &graphql.Field{
			Type: trackType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				current := r.Facade.CurrentTrack()
				if current == nil {
					return nil, nil
				}
				return viewFromCurrent(*current), nil
			},
		},
		"nextTrack": &graphql.Field{
			Type: trackType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				next := r.Facade.NextTrack()
				if next == nil {
					return nil, nil
				}
				return viewFromCurrent(*next), nil
			},
		},
		"getFilePosition": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.Facade.GetFilePosition(), nil
			},
		},
		"playlistGetCurrent": &graphql.Field{
			Type: graphql.NewList(trackType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				snapshot := r.Facade.Queue().GetCurrent()
				out := make([]trackView, 0, len(snapshot.Tracks))
				for _, path := range snapshot.Tracks {
					out = append(out, viewFromCurrent(r.Facade.EnrichPath(path)))
				}
				return out, nil
			},
		},
		"playlistAmount": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.Facade.Queue().Amount(), nil
			},
		},
	}
}

func (r *Resolver) mutationFields(idArg graphql.FieldConfigArgument) graphql.Fields {
	shuffleArgs := graphql.FieldConfigArgument{
		"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"shuffle": &graphql.ArgumentConfig{Type: graphql.Boolean},
	}
	options := func(p graphql.ResolveParams) playback.Options {
		opts := playback.Options{}
		if shuffle, ok := p.Args["shuffle"].(bool); ok {
			opts.Shuffle = shuffle
		}
		return opts
	}
	return graphql.Fields{
		"play": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.Play(0, 0)
			},
		},
		"pause": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.Pause()
			},
		},
		"resume": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.Resume()
			},
		},
		"stop": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.Stop()
			},
		},
		"hardStop": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.HardStop()
			},
		},
		"flushAndReloadTracks": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				r.Facade.FlushAndReloadTracks()
				return true, nil
			},
		},
		"next": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.Next()
			},
		},
		"previous": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.Previous()
			},
		},
		"seek": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"positionMs": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.FfRewind(p.Args["positionMs"].(int))
			},
		},
		"setVolume": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"db": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.SetVolume(p.Args["db"].(int))
			},
		},
		"playAlbum": &graphql.Field{
			Type: graphql.Boolean,
			Args: shuffleArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.PlayAlbum(p.Args["id"].(string), options(p))
			},
		},
		"playArtistTracks": &graphql.Field{
			Type: graphql.Boolean,
			Args: shuffleArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.PlayArtistTracks(p.Args["id"].(string), options(p))
			},
		},
		"playDirectory": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"path":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"recurse": &graphql.ArgumentConfig{Type: graphql.Boolean},
				"shuffle": &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				recurse, _ := p.Args["recurse"].(bool)
				return true, r.Facade.PlayDirectory(p.Args["path"].(string), recurse, options(p))
			},
		},
		"playTrack": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"path": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.PlayTrack(p.Args["path"].(string))
			},
		},
		"playLikedTracks": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"shuffle": &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Facade.PlayLikedTracks(options(p))
			},
		},
		"likeTrack": &graphql.Field{
			Type: graphql.Boolean,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Repo.Favourites.LikeTrack(p.Args["id"].(string))
			},
		},
		"unlikeTrack": &graphql.Field{
			Type: graphql.Boolean,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Repo.Favourites.UnlikeTrack(p.Args["id"].(string))
			},
		},
		"likeAlbum": &graphql.Field{
			Type: graphql.Boolean,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Repo.Favourites.LikeAlbum(p.Args["id"].(string))
			},
		},
		"unlikeAlbum": &graphql.Field{
			Type: graphql.Boolean,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return true, r.Repo.Favourites.UnlikeAlbum(p.Args["id"].(string))
			},
		},
		"createPlaylist": &graphql.Field{
			Type: graphql.String,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.Repo.Playlists.Create(p.Args["name"].(string), nil, nil)
			},
		},
		"shufflePlaylist": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				r.Facade.Queue().Shuffle(int32(time.Now().UnixNano()), 0)
				return true, nil
			},
		},
	}
}
