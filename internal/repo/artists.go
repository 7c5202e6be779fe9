/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package repo

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tsirysndr/rockboxd/internal/models"
	"gorm.io/gorm"
)

// Artists stores artist rows, unique by lower-cased name.
type Artists struct {
	db *gorm.DB
}

// Save inserts the artist unless one with the same name (case-insensitive)
// exists, in which case the existing id is returned.
func (r *Artists) Save(artist models.Artist) (string, error) {
	var existing models.Artist
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(artist.Name)).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if artist.ID == "" {
		artist.ID = uuid.NewString()
	}
	if err := r.db.Create(&artist).Error; err != nil {
		return "", err
	}
	return artist.ID, nil
}

// Find returns the artist by id.
func (r *Artists) Find(id string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

// All returns every artist ordered by name.
func (r *Artists) All() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Order("name").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// Update mutates bio/image/genres; indexer-created fields stay untouched.
func (r *Artists) Update(artist models.Artist) error {
	return r.db.Model(&models.Artist{ID: artist.ID}).
		Updates(map[string]any{"bio": artist.Bio, "image": artist.Image, "genres": artist.Genres}).Error
}

// SaveArtistTrack links an artist to a track, idempotently.
func (r *Artists) SaveArtistTrack(artistID, trackID string) error {
	var count int64
	if err := r.db.Model(&models.ArtistTrack{}).
		Where("artist_id = ? AND track_id = ?", artistID, trackID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.ArtistTrack{
		ID:       uuid.NewString(),
		ArtistID: artistID,
		TrackID:  trackID,
	}).Error
}

// Tracks returns all tracks linked to the artist.
func (r *Artists) Tracks(artistID string) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.
		Joins("JOIN artist_tracks ON artist_tracks.track_id = tracks.id").
		Where("artist_tracks.artist_id = ?", artistID).
		Order("tracks.album, tracks.disc_number, tracks.track_number").
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

// Albums returns the artist's albums ordered by year descending.
func (r *Artists) Albums(artistID string) ([]models.Album, error) {
	var albums []models.Album
	if err := r.db.Where("artist_id = ?", artistID).Order("year DESC").Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}
