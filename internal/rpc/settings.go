/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package rpc

import (
	"context"

	"github.com/tsirysndr/rockboxd/internal/settings"
	pb "github.com/tsirysndr/rockboxd/proto/rockbox/v1"
)

type soundService struct {
	pb.UnimplementedSoundServiceServer
	deps Deps
}

func (s *soundService) GetVolume(ctx context.Context, _ *pb.Empty) (*pb.Volume, error) {
	return &pb.Volume{Db: int32(s.deps.Facade.Volume())}, nil
}

func (s *soundService) SetVolume(ctx context.Context, req *pb.Volume) (*pb.Empty, error) {
	if err := s.deps.Facade.SetVolume(int(req.Db)); err != nil {
		return nil, toStatus(err)
	}
	err := s.deps.Settings.Update(func(st *settings.Settings) { st.Volume = int(req.Db) })
	return &pb.Empty{}, toStatus(err)
}

func (s *soundService) AdjustVolume(ctx context.Context, req *pb.AdjustVolumeRequest) (*pb.Empty, error) {
	return &pb.Empty{}, toStatus(s.deps.Facade.AdjustVolume(int(req.Steps)))
}

type settingsService struct {
	pb.UnimplementedSettingsServiceServer
	deps Deps
}

func settingsToPB(st settings.Settings) *pb.Settings {
	out := &pb.Settings{
		Volume:            int32(st.Volume),
		Bass:              int32(st.Bass),
		Treble:            int32(st.Treble),
		Balance:           int32(st.Balance),
		Repeat:            int32(st.Repeat),
		Shuffle:           st.Shuffle,
		Single:            st.Single,
		FadeOnStop:        st.FadeOnStop,
		CrossfadeMs:       int32(st.CrossfadeMS),
		EqEnabled:         st.EqEnabled,
		PartyMode:         st.PartyMode,
		ReplaygainEnabled: st.ReplaygainEn,
	}
	for _, band := range st.EqBands {
		out.EqBands = append(out.EqBands, &pb.EqBand{
			Cutoff: int32(band.Cutoff),
			Q:      band.Q,
			Gain:   band.Gain,
		})
	}
	return out
}

func (s *settingsService) GetSettings(ctx context.Context, _ *pb.Empty) (*pb.Settings, error) {
	return settingsToPB(s.deps.Settings.Get()), nil
}

func (s *settingsService) SaveSettings(ctx context.Context, req *pb.Settings) (*pb.Settings, error) {
	err := s.deps.Settings.Update(func(st *settings.Settings) {
		st.Volume = int(req.Volume)
		st.Bass = int(req.Bass)
		st.Treble = int(req.Treble)
		st.Balance = int(req.Balance)
		st.Repeat = int(req.Repeat)
		st.Shuffle = req.Shuffle
		st.Single = req.Single
		st.FadeOnStop = req.FadeOnStop
		st.CrossfadeMS = int(req.CrossfadeMs)
		st.EqEnabled = req.EqEnabled
		st.PartyMode = req.PartyMode
		st.ReplaygainEn = req.ReplaygainEnabled
		st.EqBands = nil
		for _, band := range req.EqBands {
			st.EqBands = append(st.EqBands, settings.EqBand{
				Cutoff: int(band.Cutoff),
				Q:      band.Q,
				Gain:   band.Gain,
			})
		}
	})
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.deps.Facade.SetVolume(int(req.Volume)); err != nil {
		return nil, toStatus(err)
	}
	return settingsToPB(s.deps.Settings.Get()), nil
}
