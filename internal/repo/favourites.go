/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/tsirysndr/rockboxd/internal/models"
	"gorm.io/gorm"
)

// Favourites stores liked tracks and liked albums. Each row references
// exactly one of the two.
type Favourites struct {
	db *gorm.DB
}

// LikeTrack marks a track as liked. Liking twice is a no-op.
func (r *Favourites) LikeTrack(trackID string) error {
	var count int64
	if err := r.db.Model(&models.Favourite{}).Where("track_id = ?", trackID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.Favourite{
		ID:        uuid.NewString(),
		TrackID:   &trackID,
		CreatedAt: time.Now(),
	}).Error
}

// UnlikeTrack removes the like for a track.
func (r *Favourites) UnlikeTrack(trackID string) error {
	return r.db.Where("track_id = ?", trackID).Delete(&models.Favourite{}).Error
}

// LikeAlbum marks an album as liked. Liking twice is a no-op.
func (r *Favourites) LikeAlbum(albumID string) error {
	var count int64
	if err := r.db.Model(&models.Favourite{}).Where("album_id = ?", albumID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.Favourite{
		ID:        uuid.NewString(),
		AlbumID:   &albumID,
		CreatedAt: time.Now(),
	}).Error
}

// UnlikeAlbum removes the like for an album.
func (r *Favourites) UnlikeAlbum(albumID string) error {
	return r.db.Where("album_id = ?", albumID).Delete(&models.Favourite{}).Error
}

// LikedTracks returns liked tracks, most recently liked first.
func (r *Favourites) LikedTracks() ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.
		Joins("JOIN favourites ON favourites.track_id = tracks.id").
		Order("favourites.created_at DESC").
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

// LikedAlbums returns liked albums, most recently liked first.
func (r *Favourites) LikedAlbums() ([]models.Album, error) {
	var albums []models.Album
	err := r.db.
		Joins("JOIN favourites ON favourites.album_id = albums.id").
		Order("favourites.created_at DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

// IsTrackLiked reports whether a track is in the favourites set.
func (r *Favourites) IsTrackLiked(trackID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favourite{}).Where("track_id = ?", trackID).Count(&count).Error
	return count > 0, err
}
