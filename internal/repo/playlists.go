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

// Playlists stores user playlists, their tracks and folders. Track positions
// within one playlist are kept dense, 0..n-1.
type Playlists struct {
	db *gorm.DB
}

// Create inserts a playlist.
func (r *Playlists) Create(name string, folderID, description *string) (string, error) {
	if name == "" {
		return "", errors.New("playlist name is empty")
	}
	playlist := models.Playlist{
		ID:          uuid.NewString(),
		Name:        name,
		FolderID:    folderID,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.Create(&playlist).Error; err != nil {
		return "", err
	}
	return playlist.ID, nil
}

// Find returns the playlist by id.
func (r *Playlists) Find(id string) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.First(&playlist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// All returns every playlist ordered by name.
func (r *Playlists) All() ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := r.db.Order("name").Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// Rename updates the playlist name.
func (r *Playlists) Rename(id, name string) error {
	return r.db.Model(&models.Playlist{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "updated_at": time.Now()}).Error
}

// Delete removes the playlist and its track rows.
func (r *Playlists) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistTrack{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Playlist{}, "id = ?", id).Error
	})
}

// InsertTracks appends track ids, or inserts before position when position
// is in range. Positions stay dense.
func (r *Playlists) InsertTracks(playlistID string, trackIDs []string, position int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PlaylistTrack{}).Where("playlist_id = ?", playlistID).Count(&count).Error; err != nil {
			return err
		}
		n := int(count)
		if position < 0 || position > n {
			position = n
		}

		if err := tx.Model(&models.PlaylistTrack{}).
			Where("playlist_id = ? AND position >= ?", playlistID, position).
			Update("position", gorm.Expr("position + ?", len(trackIDs))).Error; err != nil {
			return err
		}

		for i, trackID := range trackIDs {
			row := models.PlaylistTrack{
				ID:         uuid.NewString(),
				PlaylistID: playlistID,
				TrackID:    trackID,
				Position:   position + i,
				CreatedAt:  time.Now(),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Playlist{}).Where("id = ?", playlistID).
			Update("updated_at", time.Now()).Error
	})
}

// RemoveTrack deletes one position and renumbers the tail.
func (r *Playlists) RemoveTrack(playlistID string, position int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("playlist_id = ? AND position = ?", playlistID, position).
			Delete(&models.PlaylistTrack{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.PlaylistTrack{}).
			Where("playlist_id = ? AND position > ?", playlistID, position).
			Update("position", gorm.Expr("position - 1")).Error
	})
}

// Tracks returns the playlist's tracks in position order.
func (r *Playlists) Tracks(playlistID string) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.
		Joins("JOIN playlist_tracks ON playlist_tracks.track_id = tracks.id").
		Where("playlist_tracks.playlist_id = ?", playlistID).
		Order("playlist_tracks.position").
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

// CreateFolder inserts a playlist folder.
func (r *Playlists) CreateFolder(name string, parentID *string) (string, error) {
	if name == "" {
		return "", errors.New("folder name is empty")
	}
	folder := models.PlaylistFolder{
		ID:       uuid.NewString(),
		Name:     name,
		ParentID: parentID,
	}
	if err := r.db.Create(&folder).Error; err != nil {
		return "", err
	}
	return folder.ID, nil
}

// Folders returns every playlist folder.
func (r *Playlists) Folders() ([]models.PlaylistFolder, error) {
	var folders []models.PlaylistFolder
	if err := r.db.Order("name").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// DeleteFolder removes a folder; playlists inside move to the root.
func (r *Playlists) DeleteFolder(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Playlist{}).Where("folder_id = ?", id).
			Update("folder_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PlaylistFolder{}, "id = ?", id).Error
	})
}
