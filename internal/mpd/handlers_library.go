/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mpd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tsirysndr/rockboxd/internal/models"
)

func (s *Server) cmdList(sess *session, args []string) (string, error) {
	if len(args) == 0 {
		return "", ack(ackErrorArg, "list", "missing argument")
	}
	var out strings.Builder
	switch strings.ToLower(args[0]) {
	case "album":
		albums, err := s.repo.Albums.All()
		if err != nil {
			return "", err
		}
		for _, album := range albums {
			fmt.Fprintf(&out, "Album: %s\n", album.Title)
		}
	case "artist", "albumartist":
		artists, err := s.repo.Artists.All()
		if err != nil {
			return "", err
		}
		for _, artist := range artists {
			fmt.Fprintf(&out, "Artist: %s\n", artist.Name)
		}
	case "title":
		tracks, err := s.repo.Tracks.All()
		if err != nil {
			return "", err
		}
		for _, track := range tracks {
			fmt.Fprintf(&out, "Title: %s\n", track.Title)
		}
	case "date":
		albums, err := s.repo.Albums.All()
		if err != nil {
			return "", err
		}
		seen := map[int]bool{}
		for _, album := range albums {
			if album.Year > 0 && !seen[album.Year] {
				seen[album.Year] = true
				fmt.Fprintf(&out, "Date: %d\n", album.Year)
			}
		}
	default:
		return "", ack(ackErrorArg, "list", "unsupported tag %q", args[0])
	}
	return out.String(), nil
}

func tagValue(track models.Track, tag string) string {
	switch strings.ToLower(tag) {
	case "album":
		return track.Album
	case "artist":
		return track.Artist
	case "albumartist":
		return track.AlbumArtist
	case "title":
		return track.Title
	case "date":
		if track.YearString != nil {
			return *track.YearString
		}
		return ""
	default:
		return ""
	}
}

func (s *Server) filterTracks(cmd string, args []string, match func(have, want string) bool) (string, error) {
	if len(args) < 2 {
		return "", ack(ackErrorArg, cmd, "missing argument")
	}
	tracks, err := s.repo.Tracks.All()
	if err != nil {
		return "", err
	}
	var out strings.Builder
	pos := 0
	for _, track := range tracks {
		if match(tagValue(track, args[0]), args[1]) {
			out.WriteString(s.renderEnriched(s.facade.EnrichPath(track.Path), pos))
			pos++
		}
	}
	return out.String(), nil
}

func (s *Server) cmdFind(sess *session, args []string) (string, error) {
	return s.filterTracks("find", args, func(have, want string) bool {
		return have == want
	})
}

func (s *Server) cmdSearch(sess *session, args []string) (string, error) {
	return s.filterTracks("search", args, func(have, want string) bool {
		return strings.Contains(strings.ToLower(have), strings.ToLower(want))
	})
}

func (s *Server) cmdStats(sess *session, args []string) (string, error) {
	artists, albums, tracks, err := s.repo.Tracks.Count()
	if err != nil {
		return "", err
	}
	playtime, err := s.repo.Tracks.TotalLength()
	if err != nil {
		return "", err
	}
	var out strings.Builder
	fmt.Fprintf(&out, "artists: %d\n", artists)
	fmt.Fprintf(&out, "albums: %d\n", albums)
	fmt.Fprintf(&out, "songs: %d\n", tracks)
	fmt.Fprintf(&out, "uptime: %d\n", int(time.Since(s.started).Seconds()))
	fmt.Fprintf(&out, "db_playtime: %d\n", playtime/1000)
	fmt.Fprintf(&out, "db_update: %d\n", time.Now().Unix())
	out.WriteString("playtime: 0\n")
	return out.String(), nil
}

func argDir(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return stripScheme(args[0])
}

func (s *Server) cmdLsInfo(sess *session, args []string) (string, error) {
	entries, err := s.browser.List(argDir(args))
	if err != nil {
		return "", ack(ackErrorNoExist, "lsinfo", "No such directory")
	}
	var out strings.Builder
	for _, entry := range entries {
		rel := relOrSame(s.browser.Root(), entry.Path)
		if entry.IsDir {
			fmt.Fprintf(&out, "directory: %s\n", rel)
			continue
		}
		out.WriteString(s.renderTrack(entry.Path, 0))
	}
	return out.String(), nil
}

func (s *Server) cmdListAll(sess *session, args []string) (string, error) {
	files, err := s.browser.ListAll(argDir(args))
	if err != nil {
		return "", ack(ackErrorNoExist, "listall", "No such directory")
	}
	var out strings.Builder
	seen := map[string]bool{}
	for _, file := range files {
		dir := relOrSame(s.browser.Root(), filepath.Dir(file))
		if dir != "." && !seen[dir] {
			seen[dir] = true
			fmt.Fprintf(&out, "directory: %s\n", dir)
		}
		fmt.Fprintf(&out, "file: %s\n", relOrSame(s.browser.Root(), file))
	}
	return out.String(), nil
}

func (s *Server) cmdListAllInfo(sess *session, args []string) (string, error) {
	files, err := s.browser.ListAll(argDir(args))
	if err != nil {
		return "", ack(ackErrorNoExist, "listallinfo", "No such directory")
	}
	var out strings.Builder
	for i, file := range files {
		out.WriteString(s.renderTrack(file, i))
	}
	return out.String(), nil
}

func (s *Server) cmdListFiles(sess *session, args []string) (string, error) {
	entries, err := s.browser.List(argDir(args))
	if err != nil {
		return "", ack(ackErrorNoExist, "listfiles", "No such directory")
	}
	var out strings.Builder
	for _, entry := range entries {
		if entry.IsDir {
			fmt.Fprintf(&out, "directory: %s\n", entry.Name)
		} else {
			fmt.Fprintf(&out, "file: %s\nsize: %d\n", entry.Name, entry.Size)
		}
	}
	return out.String(), nil
}
