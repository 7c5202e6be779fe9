/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package repo holds the database repositories for the library schema.
package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// Repo bundles the per-entity repositories over one connection.
type Repo struct {
	db *gorm.DB

	Artists    *Artists
	Albums     *Albums
	Tracks     *Tracks
	Favourites *Favourites
	Playlists  *Playlists
}

// New creates the repository bundle.
func New(database *gorm.DB) *Repo {
	return &Repo{
		db:         database,
		Artists:    &Artists{db: database},
		Albums:     &Albums{db: database},
		Tracks:     &Tracks{db: database},
		Favourites: &Favourites{db: database},
		Playlists:  &Playlists{db: database},
	}
}

// DB exposes the underlying connection for one-off queries.
func (r *Repo) DB() *gorm.DB {
	return r.db
}
