/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tsirysndr/rockboxd/internal/events"
)

// resumeState is the queue position persisted across restarts.
type resumeState struct {
	Dir     string   `yaml:"dir"`
	Tracks  []string `yaml:"tracks"`
	Index   int      `yaml:"index"`
	CRC     uint32   `yaml:"crc"`
	Elapsed int      `yaml:"elapsed_ms"`
	Offset  int      `yaml:"offset"`
}

func (s *Server) resumePath() string {
	return filepath.Join(s.cfg.DataDir, "resume.yml")
}

// saveResume snapshots the queue on shutdown. An empty queue removes
// the file so the next boot starts clean.
func (s *Server) saveResume() error {
	snapshot := s.queue.GetCurrent()
	if snapshot.Amount == 0 {
		err := os.Remove(s.resumePath())
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	playback := s.engine.CurrentPlayback()
	state := resumeState{
		Dir:     s.queue.Dir(),
		Tracks:  snapshot.Tracks,
		Index:   snapshot.Index,
		CRC:     s.queue.CRC(),
		Elapsed: playback.Elapsed,
	}
	data, err := yaml.Marshal(&state)
	if err != nil {
		return err
	}

	tmp := s.resumePath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.resumePath())
}

// restoreResume reloads the persisted queue and cursor. The engine is
// left stopped; only the queue position comes back, and the resumed
// track is republished so clients show it immediately.
func (s *Server) restoreResume() error {
	data, err := os.ReadFile(s.resumePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var state resumeState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parse resume file: %w", err)
	}
	if state.Index < 0 || len(state.Tracks) == 0 {
		return nil
	}
	if s.engine.Status() == events.StatusPlaying {
		return nil
	}

	dir := state.Dir
	if dir == "" {
		dir = s.cfg.Library
	}
	if s.queue.Load(dir, state.Tracks, nil, state.Index) < 0 {
		return fmt.Errorf("resume queue rejected (dir %s)", dir)
	}
	s.queue.ResumeTrack(state.Index, state.CRC, state.Elapsed, state.Offset)

	if path, ok := s.queue.CurrentPath(); ok {
		s.broker.CurrentTrack.Publish(s.facade.EnrichPath(path))
	}
	s.logger.Info().
		Int("index", state.Index).
		Int("tracks", len(state.Tracks)).
		Msg("playlist restored")
	return nil
}
