/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package settings persists the player's global settings as YAML.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// EqBand is one equalizer band.
type EqBand struct {
	Cutoff int     `yaml:"cutoff"`
	Q      float64 `yaml:"q"`
	Gain   float64 `yaml:"gain"`
}

// Settings are the persisted player knobs. Volume is in decibels.
type Settings struct {
	Volume       int      `yaml:"volume"`
	Bass         int      `yaml:"bass"`
	Treble       int      `yaml:"treble"`
	Balance      int      `yaml:"balance"`
	Repeat       int      `yaml:"repeat"`
	Shuffle      bool     `yaml:"shuffle"`
	Single       bool     `yaml:"single"`
	FadeOnStop   bool     `yaml:"fade_on_stop"`
	CrossfadeMS  int      `yaml:"crossfade_ms"`
	EqEnabled    bool     `yaml:"eq_enabled"`
	EqBands      []EqBand `yaml:"eq_bands,omitempty"`
	PartyMode    bool     `yaml:"party_mode"`
	ReplaygainEn bool     `yaml:"replaygain_enabled"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{Volume: -25, Repeat: 0}
}

// Store loads and saves the settings file. Saves go through a temp file
// and rename so a crash never leaves a torn file.
type Store struct {
	path string

	mu      sync.Mutex
	current Settings
}

// NewStore reads the file at path, falling back to defaults when it does
// not exist.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, current: Defaults()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.current); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update applies fn to the settings and persists the result.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current
	fn(&next)
	if err := s.write(next); err != nil {
		return err
	}
	s.current = next
	return nil
}

func (s *Store) write(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
