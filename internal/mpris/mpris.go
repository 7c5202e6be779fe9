/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package mpris announces the player on the desktop session bus as
// org.mpris.MediaPlayer2.rockbox.
package mpris

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/settings"
)

const (
	busName     = "org.mpris.MediaPlayer2.rockbox"
	objectPath  = "/org/mpris/MediaPlayer2"
	rootIface   = "org.mpris.MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"
)

// statusString maps engine states onto MPRIS strings. This is the only
// boundary where the string encoding appears.
func statusString(status int) string {
	switch status {
	case events.StatusPlaying:
		return "Playing"
	case events.StatusPaused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// Server owns the bus connection and the exported player object.
type Server struct {
	facade    *playback.Facade
	broker    *events.Broker
	settings  *settings.Store
	coversDir string
	conn      *dbus.Conn
	props     *prop.Properties
}

// New connects to the session bus and claims the player name.
func New(facade *playback.Facade, broker *events.Broker, st *settings.Store, coversDir string) (*Server, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	s := &Server{facade: facade, broker: broker, settings: st, coversDir: coversDir, conn: conn}
	if err := s.export(); err != nil {
		conn.Close()
		return nil, err
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagReplaceExisting)
	if err != nil || reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, fmt.Errorf("claim %s: %v", busName, err)
	}
	return s, nil
}

func (s *Server) export() error {
	root := &rootObject{}
	player := &playerObject{facade: s.facade}

	if err := s.conn.Export(root, objectPath, rootIface); err != nil {
		return err
	}
	if err := s.conn.Export(player, objectPath, playerIface); err != nil {
		return err
	}

	propsSpec := map[string]map[string]*prop.Prop{
		rootIface: {
			"Identity":            constProp("Rockbox"),
			"DesktopEntry":        constProp("tsirysndr.rockbox"),
			"CanQuit":             constProp(false),
			"CanRaise":            constProp(false),
			"HasTrackList":        constProp(false),
			"SupportedUriSchemes": constProp([]string{"file"}),
			"SupportedMimeTypes":  constProp([]string{"audio/mpeg", "audio/flac", "audio/ogg"}),
		},
		playerIface: {
			"PlaybackStatus": constProp("Stopped"),
			"LoopStatus":     writableProp(loopStatusString(repeatMode(s.settings.Get())), s.setLoopStatus),
			"Rate":           constProp(1.0),
			"Shuffle":        writableProp(s.settings.Get().Shuffle, s.setShuffle),
			"Metadata":       constProp(map[string]dbus.Variant{}),
			"Volume":         writableProp(volumeToFraction(s.facade.Volume()), s.setVolume),
			"Position":       constProp(int64(0)),
			"MinimumRate":    constProp(1.0),
			"MaximumRate":    constProp(1.0),
			"CanGoNext":      constProp(true),
			"CanGoPrevious":  constProp(true),
			"CanPlay":        constProp(true),
			"CanPause":       constProp(true),
			"CanSeek":        constProp(true),
			"CanControl":     constProp(true),
		},
	}
	props, err := prop.Export(s.conn, objectPath, propsSpec)
	if err != nil {
		return err
	}
	s.props = props

	node := &introspect.Node{
		Name: objectPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{Name: rootIface},
			{Name: playerIface},
		},
	}
	return s.conn.Export(introspect.NewIntrospectable(node), objectPath,
		"org.freedesktop.DBus.Introspectable")
}

func constProp(value any) *prop.Prop {
	return &prop.Prop{Value: value, Writable: false, Emit: prop.EmitTrue}
}

func writableProp(value any, cb func(*prop.Change) *dbus.Error) *prop.Prop {
	return &prop.Prop{Value: value, Writable: true, Emit: prop.EmitTrue, Callback: cb}
}

// volumeToFraction maps engine decibels onto the MPRIS 0.0..1.0 scale.
func volumeToFraction(db int) float64 {
	f := float64(db-engine.VolumeMinDB) / float64(engine.VolumeMaxDB-engine.VolumeMinDB)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func fractionToDB(f float64) int {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return engine.VolumeMinDB + int(f*float64(engine.VolumeMaxDB-engine.VolumeMinDB))
}

// repeatMode derives the queue repeat mode from the persisted settings,
// the same way the MPD translator does.
func repeatMode(st settings.Settings) int {
	switch {
	case st.Single:
		return playlist.RepeatOne
	case st.Repeat == 1:
		return playlist.RepeatAll
	default:
		return playlist.RepeatOff
	}
}

func loopStatusString(mode int) string {
	switch mode {
	case playlist.RepeatOne:
		return "Track"
	case playlist.RepeatAll:
		return "Playlist"
	default:
		return "None"
	}
}

func loopStatusMode(s string) (int, bool) {
	switch s {
	case "None":
		return playlist.RepeatOff, true
	case "Playlist":
		return playlist.RepeatAll, true
	case "Track":
		return playlist.RepeatOne, true
	default:
		return 0, false
	}
}

func (s *Server) setVolume(c *prop.Change) *dbus.Error {
	fraction, ok := c.Value.(float64)
	if !ok {
		return prop.ErrInvalidArg
	}
	db := fractionToDB(fraction)
	if err := s.facade.SetVolume(db); err != nil {
		return wrap(err)
	}
	return wrap(s.settings.Update(func(st *settings.Settings) { st.Volume = db }))
}

func (s *Server) setShuffle(c *prop.Change) *dbus.Error {
	on, ok := c.Value.(bool)
	if !ok {
		return prop.ErrInvalidArg
	}
	return wrap(s.settings.Update(func(st *settings.Settings) { st.Shuffle = on }))
}

func (s *Server) setLoopStatus(c *prop.Change) *dbus.Error {
	status, ok := c.Value.(string)
	if !ok {
		return prop.ErrInvalidArg
	}
	mode, ok := loopStatusMode(status)
	if !ok {
		return prop.ErrInvalidArg
	}
	if err := s.settings.Update(func(st *settings.Settings) {
		st.Single = mode == playlist.RepeatOne
		st.Repeat = 0
		if mode == playlist.RepeatAll {
			st.Repeat = 1
		}
	}); err != nil {
		return wrap(err)
	}
	s.facade.Queue().SetRepeat(mode)
	return nil
}

// Run mirrors broker events into PropertiesChanged until the context
// ends.
func (s *Server) Run(ctx context.Context) {
	statusSub := s.broker.Status.Subscribe()
	trackSub := s.broker.CurrentTrack.Subscribe()
	defer statusSub.Unsubscribe()
	defer trackSub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			s.conn.Close()
			return
		case status, ok := <-statusSub.C():
			if !ok {
				return
			}
			s.props.SetMust(playerIface, "PlaybackStatus", statusString(status.Status))
			s.props.SetMust(playerIface, "Position", int64(status.Elapsed)*1000)
		case track, ok := <-trackSub.C():
			if !ok {
				return
			}
			s.props.SetMust(playerIface, "Metadata", metadata(track, s.coversDir))
		}
	}
}

// metadata builds the MPRIS metadata dictionary. AlbumArt carries the
// cover's basename, so the art URL joins it with the covers directory.
func metadata(track events.CurrentTrack, coversDir string) map[string]dbus.Variant {
	id := track.ID
	if id == "" {
		id = "unknown"
	}
	m := map[string]dbus.Variant{
		"mpris:trackid": dbus.MakeVariant(dbus.ObjectPath("/rockbox/tracks/" + sanitize(id))),
		"mpris:length":  dbus.MakeVariant(int64(track.Length) * 1000),
		"xesam:title":   dbus.MakeVariant(track.Title),
		"xesam:album":   dbus.MakeVariant(track.Album),
		"xesam:artist":  dbus.MakeVariant([]string{track.Artist}),
		"xesam:url":     dbus.MakeVariant("file://" + track.Path),
	}
	if track.AlbumArtist != "" {
		m["xesam:albumArtist"] = dbus.MakeVariant([]string{track.AlbumArtist})
	}
	if track.TrackNumber > 0 {
		m["xesam:trackNumber"] = dbus.MakeVariant(int32(track.TrackNumber))
	}
	if track.DiscNumber > 0 {
		m["xesam:discNumber"] = dbus.MakeVariant(int32(track.DiscNumber))
	}
	if track.AlbumArt != "" {
		m["mpris:artUrl"] = dbus.MakeVariant("file://" + filepath.Join(coversDir, track.AlbumArt))
	}
	return m
}

// sanitize keeps object paths valid for uuid-shaped ids.
func sanitize(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

type rootObject struct{}

func (o *rootObject) Raise() *dbus.Error { return nil }

func (o *rootObject) Quit() *dbus.Error { return nil }

type playerObject struct {
	facade *playback.Facade
}

func (o *playerObject) Play() *dbus.Error {
	return wrap(o.facade.Play(0, 0))
}

func (o *playerObject) Pause() *dbus.Error {
	return wrap(o.facade.Pause())
}

func (o *playerObject) PlayPause() *dbus.Error {
	switch o.facade.Status().Status {
	case events.StatusPlaying:
		return wrap(o.facade.Pause())
	case events.StatusPaused:
		return wrap(o.facade.Resume())
	default:
		// Resume is a no-op while stopped, so start from the cursor.
		return wrap(o.facade.Play(0, 0))
	}
}

func (o *playerObject) Stop() *dbus.Error {
	return wrap(o.facade.Stop())
}

func (o *playerObject) Next() *dbus.Error {
	return wrap(o.facade.Next())
}

func (o *playerObject) Previous() *dbus.Error {
	return wrap(o.facade.Previous())
}

// Seek moves relative to the current position, in microseconds.
func (o *playerObject) Seek(offset int64) *dbus.Error {
	position := o.facade.GetFilePosition() + int(offset/1000)
	if position < 0 {
		position = 0
	}
	return wrap(o.facade.FfRewind(position))
}

// SetPosition seeks inside the identified track, in microseconds.
func (o *playerObject) SetPosition(trackID dbus.ObjectPath, position int64) *dbus.Error {
	return wrap(o.facade.FfRewind(int(position / 1000)))
}

func (o *playerObject) OpenUri(uri string) *dbus.Error {
	path := strings.TrimPrefix(uri, "file://")
	return wrap(o.facade.PlayTrack(path))
}

func wrap(err error) *dbus.Error {
	if err == nil {
		return nil
	}
	log.Warn().Err(err).Msg("mpris call failed")
	return dbus.MakeFailedError(err)
}
