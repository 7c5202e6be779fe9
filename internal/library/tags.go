/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package library

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
)

// audioExtensions are the recognized audio file extensions. Anything else
// is skipped without error.
var audioExtensions = map[string]bool{
	"mp3": true, "ogg": true, "flac": true, "m4a": true, "aac": true,
	"mp4": true, "alac": true, "wav": true, "wv": true, "mpc": true,
	"aiff": true, "aif": true, "ac3": true, "opus": true, "spx": true,
	"sid": true, "ape": true, "wma": true,
}

// IsAudioFile reports whether the path carries a recognized audio extension.
func IsAudioFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return audioExtensions[ext]
}

// Picture is an embedded cover image.
type Picture struct {
	MIME string
	Data []byte
}

// Metadata is the tag projection of one audio file.
type Metadata struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Composer    string
	Genre       string
	Year        int
	YearString  string
	TrackNumber int
	DiscNumber  int
	Bitrate     int
	Frequency   int
	Filesize    int
	Length      int // milliseconds
	Picture     *Picture
}

// TrackMD5 is the content key for a track: md5 over the path bytes, chosen
// so renames produce a new key.
func TrackMD5(path string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(path)))
}

// AlbumMD5 is the content key for an album: md5 over albumartist, title
// and year.
func AlbumMD5(albumArtist, title string, year int) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(fmt.Sprintf("%s%s%d", albumArtist, title, year))))
}

// ReadTags extracts metadata from an audio file on disk.
func ReadTags(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("read tags %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	meta := &Metadata{
		Path:        path,
		Title:       parsed.Title(),
		Artist:      parsed.Artist(),
		Album:       parsed.Album(),
		AlbumArtist: parsed.AlbumArtist(),
		Composer:    parsed.Composer(),
		Genre:       parsed.Genre(),
		Year:        parsed.Year(),
		Filesize:    int(info.Size()),
	}

	if meta.Title == "" {
		base := filepath.Base(path)
		meta.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if meta.Year > 0 {
		meta.YearString = strconv.Itoa(meta.Year)
	}
	if raw, ok := parsed.Raw()["date"].(string); ok && raw != "" {
		meta.YearString = raw
	}

	meta.TrackNumber, _ = parsed.Track()
	meta.DiscNumber, _ = parsed.Disc()

	if pic := parsed.Picture(); pic != nil {
		meta.Picture = &Picture{MIME: pic.MIMEType, Data: pic.Data}
	}

	return meta, nil
}
