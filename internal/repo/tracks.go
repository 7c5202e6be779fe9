/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tsirysndr/rockboxd/internal/models"
	"gorm.io/gorm"
)

// Tracks stores track rows, deduplicated by md5 of the absolute path.
type Tracks struct {
	db *gorm.DB
}

// Save inserts the track unless one with the same md5 exists; a duplicate
// degrades to a read returning the existing id.
func (r *Tracks) Save(track models.Track) (string, error) {
	var existing models.Track
	err := r.db.Where("md5 = ?", track.MD5).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if track.ID == "" {
		track.ID = uuid.NewString()
	}
	now := time.Now()
	if track.CreatedAt.IsZero() {
		track.CreatedAt = now
	}
	track.UpdatedAt = now
	if err := r.db.Create(&track).Error; err != nil {
		return "", err
	}
	return track.ID, nil
}

// Find returns the track by id.
func (r *Tracks) Find(id string) (*models.Track, error) {
	var track models.Track
	if err := r.db.First(&track, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &track, nil
}

// FindByMD5 returns the track for a path hash. This is the enrichment join.
func (r *Tracks) FindByMD5(md5 string) (*models.Track, error) {
	var track models.Track
	if err := r.db.First(&track, "md5 = ?", md5).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &track, nil
}

// FindByPath returns the track stored under an absolute path.
func (r *Tracks) FindByPath(path string) (*models.Track, error) {
	var track models.Track
	if err := r.db.First(&track, "path = ?", path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &track, nil
}

// All returns every track ordered by artist, album, then position.
func (r *Tracks) All() ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Order("artist, album, disc_number, track_number").Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

// Count returns row counts used by stats surfaces.
func (r *Tracks) Count() (artists, albums, tracks int64, err error) {
	if err = r.db.Model(&models.Artist{}).Count(&artists).Error; err != nil {
		return
	}
	if err = r.db.Model(&models.Album{}).Count(&albums).Error; err != nil {
		return
	}
	err = r.db.Model(&models.Track{}).Count(&tracks).Error
	return
}

// TotalLength sums track lengths in milliseconds.
func (r *Tracks) TotalLength() (int64, error) {
	var total *int64
	err := r.db.Model(&models.Track{}).Select("SUM(length)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
