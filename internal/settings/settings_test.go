/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package settings

import (
	"path/filepath"
	"testing"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "settings.yml"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	got := store.Get()
	want := Defaults()
	if got.Volume != want.Volume || got.Repeat != want.Repeat || got.Shuffle != want.Shuffle {
		t.Errorf("settings = %+v, want defaults", got)
	}
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	err = store.Update(func(s *Settings) {
		s.Volume = -10
		s.Shuffle = true
		s.EqEnabled = true
		s.EqBands = []EqBand{{Cutoff: 64, Q: 0.7, Gain: 3.5}}
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := reopened.Get()
	if got.Volume != -10 || !got.Shuffle || !got.EqEnabled {
		t.Errorf("reloaded = %+v", got)
	}
	if len(got.EqBands) != 1 || got.EqBands[0].Cutoff != 64 {
		t.Errorf("eq bands = %+v", got.EqBands)
	}
}
