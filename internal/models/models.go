/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package models defines the relational library schema.
package models

import "time"

// Artist is unique by lower-cased name at index time.
type Artist struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string  `gorm:"index" json:"name"`
	Bio    *string `gorm:"type:text" json:"bio,omitempty"`
	Image  *string `json:"image,omitempty"`
	Genres *string `json:"genres,omitempty"`
}

// Album is deduplicated by MD5, the hash of albumartist+title+year.
type Album struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string  `gorm:"index" json:"title"`
	Artist     string  `gorm:"index" json:"artist"`
	ArtistID   string  `gorm:"type:uuid;index" json:"artist_id"`
	Year       int     `json:"year"`
	YearString string  `json:"year_string"`
	AlbumArt   *string `json:"album_art,omitempty"`
	MD5        string  `gorm:"uniqueIndex" json:"md5"`
	Label      *string `json:"label,omitempty"`
	Copyright  *string `json:"copyright,omitempty"`
}

// Track is deduplicated by MD5, the hash of its absolute path.
type Track struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Path        string    `gorm:"index" json:"path"`
	Title       string    `gorm:"index" json:"title"`
	Artist      string    `gorm:"index" json:"artist"`
	Album       string    `gorm:"index" json:"album"`
	AlbumArtist string    `json:"album_artist"`
	Composer    string    `json:"composer"`
	Genre       *string   `json:"genre,omitempty"`
	Year        *int      `json:"year,omitempty"`
	YearString  *string   `json:"year_string,omitempty"`
	TrackNumber *int      `json:"track_number,omitempty"`
	DiscNumber  int       `json:"disc_number"`
	Bitrate     int       `json:"bitrate"`
	Frequency   int       `json:"frequency"`
	Filesize    int       `json:"filesize"`
	Length      int       `json:"length"` // milliseconds
	MD5         string    `gorm:"uniqueIndex" json:"md5"`
	AlbumArt    *string   `json:"album_art,omitempty"`
	ArtistID    string    `gorm:"type:uuid;index" json:"artist_id"`
	AlbumID     string    `gorm:"type:uuid;index" json:"album_id"`
	GenreID     string    `json:"genre_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AlbumTrack links an album to one of its tracks.
type AlbumTrack struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	AlbumID string `gorm:"type:uuid;index" json:"album_id"`
	TrackID string `gorm:"type:uuid;index" json:"track_id"`
}

// ArtistTrack links an artist to one of their tracks.
type ArtistTrack struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;index" json:"artist_id"`
	TrackID  string `gorm:"type:uuid;index" json:"track_id"`
}

// Favourite marks a liked track or a liked album, never both.
type Favourite struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	TrackID   *string   `gorm:"type:uuid;index" json:"track_id,omitempty"`
	AlbumID   *string   `gorm:"type:uuid;index" json:"album_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Playlist is a user-named playlist, distinct from the in-memory queue.
type Playlist struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"index" json:"name"`
	FolderID    *string   `gorm:"type:uuid;index" json:"folder_id,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaylistTrack positions are dense, 0..n-1 within one playlist.
type PlaylistTrack struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	PlaylistID string    `gorm:"type:uuid;index" json:"playlist_id"`
	TrackID    string    `gorm:"type:uuid;index" json:"track_id"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlaylistFolder groups playlists; folders may nest.
type PlaylistFolder struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string  `json:"name"`
	ParentID *string `gorm:"type:uuid;index" json:"parent_id,omitempty"`
}
