/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package repo

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tsirysndr/rockboxd/internal/models"
	"gorm.io/gorm"
)

// Albums stores album rows, deduplicated by content md5.
type Albums struct {
	db *gorm.DB
}

// Save inserts the album unless one with the same md5 exists; a duplicate
// degrades to a read returning the existing id, which keeps re-indexing
// idempotent.
func (r *Albums) Save(album models.Album) (string, error) {
	var existing models.Album
	err := r.db.Where("md5 = ?", album.MD5).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if album.ID == "" {
		album.ID = uuid.NewString()
	}
	if err := r.db.Create(&album).Error; err != nil {
		return "", err
	}
	return album.ID, nil
}

// Find returns the album by id.
func (r *Albums) Find(id string) (*models.Album, error) {
	var album models.Album
	if err := r.db.First(&album, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &album, nil
}

// FindByMD5 returns the album for a content hash.
func (r *Albums) FindByMD5(md5 string) (*models.Album, error) {
	var album models.Album
	if err := r.db.First(&album, "md5 = ?", md5).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &album, nil
}

// All returns every album ordered by artist then year.
func (r *Albums) All() ([]models.Album, error) {
	var albums []models.Album
	if err := r.db.Order("artist, year").Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}

// SaveAlbumTrack links an album to a track, idempotently.
func (r *Albums) SaveAlbumTrack(albumID, trackID string) error {
	var count int64
	if err := r.db.Model(&models.AlbumTrack{}).
		Where("album_id = ? AND track_id = ?", albumID, trackID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.AlbumTrack{
		ID:      uuid.NewString(),
		AlbumID: albumID,
		TrackID: trackID,
	}).Error
}

// Tracks returns the album's tracks in disc/track order.
func (r *Albums) Tracks(albumID string) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.
		Joins("JOIN album_tracks ON album_tracks.track_id = tracks.id").
		Where("album_tracks.album_id = ?", albumID).
		Order("tracks.disc_number, tracks.track_number").
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}
