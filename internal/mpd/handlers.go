/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mpd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/settings"
)

func (s *Server) registerHandlers() {
	s.handlers = map[string]func(sess *session, args []string) (string, error){
		// playback
		"play":     s.cmdPlay,
		"playid":   s.cmdPlay,
		"pause":    s.cmdPause,
		"toggle":   s.cmdToggle,
		"stop":     s.cmdStop,
		"next":     s.cmdNext,
		"previous": s.cmdPrevious,
		"seek":     s.cmdSeek,
		"seekid":   s.cmdSeek,
		"seekcur":  s.cmdSeekCur,

		// mixer and modes
		"getvol":  s.cmdGetVol,
		"setvol":  s.cmdSetVol,
		"volume":  s.cmdVolume,
		"random":  s.cmdRandom,
		"repeat":  s.cmdRepeat,
		"single":  s.cmdSingle,
		"shuffle": s.cmdShuffle,

		// queue
		"add":          s.cmdAdd,
		"addid":        s.cmdAddID,
		"playlistinfo": s.cmdPlaylistInfo,
		"plchanges":    s.cmdPlaylistInfo,
		"delete":       s.cmdDelete,
		"deleteid":     s.cmdDelete,
		"clear":        s.cmdClear,
		"move":         s.cmdMove,

		// library
		"list":        s.cmdList,
		"find":        s.cmdFind,
		"search":      s.cmdSearch,
		"update":      s.cmdUpdate,
		"rescan":      s.cmdUpdate,
		"stats":       s.cmdStats,
		"lsinfo":      s.cmdLsInfo,
		"listall":     s.cmdListAll,
		"listallinfo": s.cmdListAllInfo,
		"listfiles":   s.cmdListFiles,

		// session
		"status":      s.cmdStatus,
		"currentsong": s.cmdCurrentSong,
		"config":      s.cmdConfig,
		"tagtypes":    s.cmdTagTypes,
		"commands":    s.cmdCommands,
		"decoders":    s.cmdDecoders,
		"outputs":     s.cmdOutputs,
		"binarylimit": s.cmdBinaryLimit,
	}
}

func intArg(cmd string, args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, ack(ackErrorArg, cmd, "missing argument")
	}
	// ranges like 2:4 act on their first index
	raw := args[i]
	if colon := strings.IndexByte(raw, ':'); colon >= 0 {
		raw = raw[:colon]
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ack(ackErrorArg, cmd, "invalid argument")
	}
	return n, nil
}

func volumeToPercent(db int) int {
	percent := (db - engine.VolumeMinDB) * 100 / (engine.VolumeMaxDB - engine.VolumeMinDB)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func percentToDB(percent int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return engine.VolumeMinDB + percent*(engine.VolumeMaxDB-engine.VolumeMinDB)/100
}

func stripScheme(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

// playback

func (s *Server) cmdPlay(sess *session, args []string) (string, error) {
	if len(args) > 0 {
		pos, err := intArg("play", args, 0)
		if err != nil {
			return "", err
		}
		if s.facade.Queue().Start(pos) == playlist.Failure {
			return "", ack(ackErrorArg, "play", "Bad song index")
		}
	}
	if s.facade.Status().Status == events.StatusPaused && len(args) == 0 {
		return "", s.facade.Resume()
	}
	return "", s.facade.Play(0, 0)
}

func (s *Server) cmdPause(sess *session, args []string) (string, error) {
	if len(args) == 0 {
		return s.cmdToggle(sess, nil)
	}
	on, err := intArg("pause", args, 0)
	if err != nil {
		return "", err
	}
	if on == 1 {
		return "", s.facade.Pause()
	}
	return "", s.facade.Resume()
}

func (s *Server) cmdToggle(sess *session, args []string) (string, error) {
	switch s.facade.Status().Status {
	case events.StatusPlaying:
		return "", s.facade.Pause()
	case events.StatusPaused:
		return "", s.facade.Resume()
	default:
		return "", s.facade.Play(0, 0)
	}
}

func (s *Server) cmdStop(sess *session, args []string) (string, error) {
	return "", s.facade.Stop()
}

func (s *Server) cmdNext(sess *session, args []string) (string, error) {
	return "", s.facade.Next()
}

func (s *Server) cmdPrevious(sess *session, args []string) (string, error) {
	return "", s.facade.Previous()
}

func (s *Server) cmdSeek(sess *session, args []string) (string, error) {
	pos, err := intArg("seek", args, 0)
	if err != nil {
		return "", err
	}
	seconds, err := intArg("seek", args, 1)
	if err != nil {
		return "", err
	}
	if s.facade.Queue().Start(pos) == playlist.Failure {
		return "", ack(ackErrorArg, "seek", "Bad song index")
	}
	return "", s.facade.FfRewind(seconds * 1000)
}

func (s *Server) cmdSeekCur(sess *session, args []string) (string, error) {
	if len(args) == 0 {
		return "", ack(ackErrorArg, "seekcur", "missing argument")
	}
	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil || seconds < 0 {
		return "", ack(ackErrorArg, "seekcur", "invalid argument")
	}
	return "", s.facade.FfRewind(int(seconds * 1000))
}

// mixer and modes

func (s *Server) cmdGetVol(sess *session, args []string) (string, error) {
	return fmt.Sprintf("volume: %d\n", volumeToPercent(s.facade.Volume())), nil
}

func (s *Server) cmdSetVol(sess *session, args []string) (string, error) {
	percent, err := intArg("setvol", args, 0)
	if err != nil {
		return "", err
	}
	return "", s.facade.SetVolume(percentToDB(percent))
}

func (s *Server) cmdVolume(sess *session, args []string) (string, error) {
	delta, err := intArg("volume", args, 0)
	if err != nil {
		return "", err
	}
	current := volumeToPercent(s.facade.Volume())
	return "", s.facade.SetVolume(percentToDB(current + delta))
}

func (s *Server) cmdRandom(sess *session, args []string) (string, error) {
	on, err := intArg("random", args, 0)
	if err != nil {
		return "", err
	}
	return "", s.settings.Update(func(st *settings.Settings) { st.Shuffle = on == 1 })
}

func (s *Server) cmdRepeat(sess *session, args []string) (string, error) {
	on, err := intArg("repeat", args, 0)
	if err != nil {
		return "", err
	}
	if err := s.settings.Update(func(st *settings.Settings) { st.Repeat = on }); err != nil {
		return "", err
	}
	s.applyRepeatMode()
	return "", nil
}

func (s *Server) cmdSingle(sess *session, args []string) (string, error) {
	on, err := intArg("single", args, 0)
	if err != nil {
		return "", err
	}
	if err := s.settings.Update(func(st *settings.Settings) { st.Single = on == 1 }); err != nil {
		return "", err
	}
	s.applyRepeatMode()
	return "", nil
}

func (s *Server) applyRepeatMode() {
	st := s.settings.Get()
	switch {
	case st.Single:
		s.facade.Queue().SetRepeat(playlist.RepeatOne)
	case st.Repeat == 1:
		s.facade.Queue().SetRepeat(playlist.RepeatAll)
	default:
		s.facade.Queue().SetRepeat(playlist.RepeatOff)
	}
}

func (s *Server) cmdShuffle(sess *session, args []string) (string, error) {
	s.facade.Queue().Shuffle(int32(time.Now().UnixNano()), 0)
	return "", nil
}

// queue

func (s *Server) resolveURI(uri string) ([]string, error) {
	path := stripScheme(uri)
	if !filepath.IsAbs(path) {
		resolved, err := s.browser.Resolve(path)
		if err != nil {
			return nil, ack(ackErrorNoExist, "add", "No such directory")
		}
		path = resolved
	}
	entries, err := s.browser.ListAll(relOrSame(s.browser.Root(), path))
	if err == nil && len(entries) > 0 {
		return entries, nil
	}
	return []string{path}, nil
}

func relOrSame(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func (s *Server) cmdAdd(sess *session, args []string) (string, error) {
	if len(args) == 0 {
		return "", ack(ackErrorArg, "add", "missing argument")
	}
	if _, err := s.addURI(args[0]); err != nil {
		return "", err
	}
	return "", nil
}

func (s *Server) cmdAddID(sess *session, args []string) (string, error) {
	if len(args) == 0 {
		return "", ack(ackErrorArg, "addid", "missing argument")
	}
	at, err := s.addURI(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Id: %d\n", at), nil
}

func (s *Server) addURI(uri string) (int, error) {
	paths, err := s.resolveURI(uri)
	if err != nil {
		return 0, err
	}
	queue := s.facade.Queue()
	at := queue.InsertTracks(paths, playlist.InsertLast)
	if at == playlist.Failure {
		// first add creates the queue rooted at the library
		if queue.Create(s.browser.Root(), nil) == playlist.Failure {
			return 0, ack(ackErrorNoExist, "add", "No such directory")
		}
		at = queue.InsertTracks(paths, playlist.InsertLast)
	}
	if at == playlist.Failure {
		return 0, ack(ackErrorArg, "add", "invalid argument")
	}
	return at, nil
}

func (s *Server) cmdPlaylistInfo(sess *session, args []string) (string, error) {
	snapshot := s.facade.Queue().GetCurrent()
	var out strings.Builder
	for i, path := range snapshot.Tracks {
		out.WriteString(s.renderTrack(path, i))
	}
	return out.String(), nil
}

func (s *Server) cmdDelete(sess *session, args []string) (string, error) {
	pos, err := intArg("delete", args, 0)
	if err != nil {
		return "", err
	}
	if s.facade.Queue().DeleteTrack(pos) == playlist.Failure {
		return "", ack(ackErrorArg, "delete", "invalid argument")
	}
	return "", nil
}

func (s *Server) cmdClear(sess *session, args []string) (string, error) {
	s.facade.Queue().RemoveAllTracks()
	return "", s.facade.Stop()
}

func (s *Server) cmdMove(sess *session, args []string) (string, error) {
	from, err := intArg("move", args, 0)
	if err != nil {
		return "", err
	}
	to, err := intArg("move", args, 1)
	if err != nil {
		return "", err
	}
	if s.facade.Queue().Move(from, to) == playlist.Failure {
		return "", ack(ackErrorArg, "move", "invalid argument")
	}
	return "", nil
}

// session

func (s *Server) cmdStatus(sess *session, args []string) (string, error) {
	st := s.settings.Get()
	status := s.facade.Status()
	snapshot := s.facade.Queue().GetCurrent()

	state := "stop"
	switch status.Status {
	case events.StatusPlaying:
		state = "play"
	case events.StatusPaused:
		state = "pause"
	}

	var out strings.Builder
	fmt.Fprintf(&out, "volume: %d\n", volumeToPercent(s.facade.Volume()))
	fmt.Fprintf(&out, "repeat: %d\n", st.Repeat)
	fmt.Fprintf(&out, "random: %d\n", boolToInt(st.Shuffle))
	fmt.Fprintf(&out, "single: %d\n", boolToInt(st.Single))
	out.WriteString("consume: 0\n")
	out.WriteString("playlist: 1\n")
	fmt.Fprintf(&out, "playlistlength: %d\n", snapshot.Amount)
	fmt.Fprintf(&out, "state: %s\n", state)

	if state != "stop" && snapshot.Amount > 0 {
		fmt.Fprintf(&out, "song: %d\n", snapshot.Index)
		fmt.Fprintf(&out, "songid: %d\n", snapshot.Index)
		current := s.facade.CurrentTrack()
		total := 0
		if current != nil {
			total = current.Length / 1000
		}
		fmt.Fprintf(&out, "time: %d:%d\n", status.Elapsed/1000, total)
		fmt.Fprintf(&out, "elapsed: %.3f\n", float64(status.Elapsed)/1000)
		if total > 0 {
			fmt.Fprintf(&out, "duration: %d\n", total)
		}
	}
	return out.String(), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *Server) cmdCurrentSong(sess *session, args []string) (string, error) {
	current := s.facade.CurrentTrack()
	if current == nil {
		return "", nil
	}
	return s.renderEnriched(*current, s.facade.Queue().Index()), nil
}

func (s *Server) cmdConfig(sess *session, args []string) (string, error) {
	if !sess.loopback {
		return "", ack(ackErrorPermission, "config", "Command only permitted to local clients")
	}
	return fmt.Sprintf("music_directory: %s\n", s.browser.Root()), nil
}

func (s *Server) cmdTagTypes(sess *session, args []string) (string, error) {
	if len(args) > 0 {
		// clear / enable / disable all accept silently
		return "", nil
	}
	var out strings.Builder
	for _, tag := range tagTypes {
		fmt.Fprintf(&out, "tagtype: %s\n", tag)
	}
	return out.String(), nil
}

func (s *Server) cmdCommands(sess *session, args []string) (string, error) {
	var out strings.Builder
	for _, name := range commandNames {
		fmt.Fprintf(&out, "command: %s\n", name)
	}
	return out.String(), nil
}

func (s *Server) cmdDecoders(sess *session, args []string) (string, error) {
	var out strings.Builder
	for _, suffix := range decoderSuffixes {
		fmt.Fprintf(&out, "plugin: %s\nsuffix: %s\n", suffix, suffix)
	}
	return out.String(), nil
}

func (s *Server) cmdOutputs(sess *session, args []string) (string, error) {
	return "outputid: 0\noutputname: default\noutputenabled: 1\n", nil
}

func (s *Server) cmdBinaryLimit(sess *session, args []string) (string, error) {
	return "", nil
}

func (s *Server) cmdUpdate(sess *session, args []string) (string, error) {
	if s.rescan != nil {
		go func() {
			if err := s.rescan(context.Background()); err != nil {
				log.Error().Err(err).Msg("library update failed")
			}
		}()
	}
	return "updating_db: 1\n", nil
}

// renderTrack emits one queue entry as an MPD song block.
func (s *Server) renderTrack(path string, pos int) string {
	return s.renderEnriched(s.facade.EnrichPath(path), pos)
}

func (s *Server) renderEnriched(track events.CurrentTrack, pos int) string {
	var out strings.Builder
	fmt.Fprintf(&out, "file: %s\n", relOrSame(s.browser.Root(), track.Path))
	if track.Title != "" {
		fmt.Fprintf(&out, "Title: %s\n", track.Title)
	}
	if track.Artist != "" {
		fmt.Fprintf(&out, "Artist: %s\n", track.Artist)
	}
	if track.Album != "" {
		fmt.Fprintf(&out, "Album: %s\n", track.Album)
	}
	if track.AlbumArtist != "" {
		fmt.Fprintf(&out, "AlbumArtist: %s\n", track.AlbumArtist)
	}
	if track.TrackNumber > 0 {
		fmt.Fprintf(&out, "Track: %d\n", track.TrackNumber)
	}
	if track.DiscNumber > 0 {
		fmt.Fprintf(&out, "Disc: %d\n", track.DiscNumber)
	}
	if track.Length > 0 {
		fmt.Fprintf(&out, "Time: %d\n", track.Length/1000)
		fmt.Fprintf(&out, "duration: %.3f\n", float64(track.Length)/1000)
	}
	fmt.Fprintf(&out, "Pos: %d\n", pos)
	fmt.Fprintf(&out, "Id: %d\n", pos)
	return out.String()
}
