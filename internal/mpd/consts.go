/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mpd

// Greeting is sent on accept.
const Greeting = "OK MPD 0.23.15\n"

// ACK error codes from the protocol.
const (
	ackErrorArg        = 2
	ackErrorPermission = 4
	ackErrorUnknown    = 5
	ackErrorNoExist    = 50
)

// commandNames is what `commands` reports.
var commandNames = []string{
	"add", "addid", "binarylimit", "clear", "commands", "config",
	"currentsong", "decoders", "delete", "deleteid", "find", "getvol",
	"idle", "list", "listall", "listallinfo", "listfiles", "lsinfo",
	"move", "next", "noidle", "outputs", "pause", "play", "playid",
	"playlistinfo", "plchanges", "previous", "random", "repeat", "rescan",
	"search", "seek", "seekcur", "seekid", "setvol", "shuffle", "single",
	"stats", "status", "stop", "tagtypes", "toggle", "update", "volume",
}

// decoderSuffixes is what `decoders` reports, one plugin per container.
var decoderSuffixes = []string{
	"mp3", "ogg", "flac", "m4a", "aac", "mp4", "alac", "wav", "wv",
	"mpc", "aiff", "aif", "ac3", "opus", "spx", "sid", "ape", "wma",
}

// tagTypes is what `tagtypes` reports.
var tagTypes = []string{
	"Artist", "ArtistSort", "Album", "AlbumSort", "AlbumArtist",
	"AlbumArtistSort", "Title", "Track", "Name", "Genre", "Date",
	"Composer", "Performer", "Disc",
}
