/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package db

import (
	"github.com/tsirysndr/rockboxd/internal/models"
	"gorm.io/gorm"
)

// Migrate applies database schema migrations using GORM auto-migrate.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Artist{},
		&models.Album{},
		&models.Track{},
		&models.AlbumTrack{},
		&models.ArtistTrack{},
		&models.Favourite{},
		&models.PlaylistFolder{},
		&models.Playlist{},
		&models.PlaylistTrack{},
	)
}
