/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mpd

import (
	"bufio"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tsirysndr/rockboxd/internal/browse"
	"github.com/tsirysndr/rockboxd/internal/bus"
	"github.com/tsirysndr/rockboxd/internal/engine"
	"github.com/tsirysndr/rockboxd/internal/enrich"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/models"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/playlist"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/settings"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func startServer(t *testing.T) (*Server, *client, string) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(
		&models.Artist{}, &models.Album{}, &models.Track{},
		&models.AlbumTrack{}, &models.ArtistTrack{}, &models.Favourite{},
		&models.PlaylistFolder{}, &models.Playlist{}, &models.PlaylistTrack{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	r := repo.New(database)

	root := t.TempDir()
	for _, name := range []string{"a/t1.flac", "a/t2.flac"} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	queue := playlist.New()
	eng := engine.NewEmulated(queue, nil)
	b := bus.New()
	go engine.Consume(b, eng)
	t.Cleanup(b.Close)

	broker := events.NewBroker()
	facade := playback.New(b, eng, queue, r, enrich.NewEnricher(r), broker)
	st, err := settings.NewStore(filepath.Join(t.TempDir(), "settings.yml"))
	if err != nil {
		t.Fatalf("settings: %v", err)
	}

	server := NewServer(facade, r, st, browse.New(root), broker, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go server.Serve(ctx, ln)

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	c := &client{conn: conn, reader: bufio.NewReader(conn)}
	greeting, err := c.reader.ReadString('\n')
	if err != nil {
		t.Fatalf("read greeting: %v", err)
	}
	if greeting != Greeting {
		t.Fatalf("greeting = %q, want %q", greeting, Greeting)
	}
	return server, c, root
}

func (c *client) send(t *testing.T, line string) {
	t.Helper()
	if _, err := c.conn.Write([]byte(line + "\n")); err != nil {
		t.Fatalf("write %q: %v", line, err)
	}
}

// response reads lines until the terminating OK or ACK.
func (c *client) response(t *testing.T) string {
	t.Helper()
	c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out strings.Builder
	for {
		line, err := c.reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read: %v (so far %q)", err, out.String())
		}
		out.WriteString(line)
		if line == "OK\n" || strings.HasPrefix(line, "ACK ") {
			return out.String()
		}
	}
}

func TestParseLineQuoting(t *testing.T) {
	cases := []struct {
		line string
		cmd  string
		args []string
	}{
		{`play`, "play", nil},
		{`add "file:///m/a b.mp3"`, "add", []string{"file:///m/a b.mp3"}},
		{`find album "He said \"hi\""`, "find", []string{"album", `He said "hi"`}},
		{`setvol 50`, "setvol", []string{"50"}},
	}
	for _, tc := range cases {
		cmd, args, err := parseLine(tc.line + "\n")
		if err != nil {
			t.Fatalf("parse %q: %v", tc.line, err)
		}
		if cmd != tc.cmd {
			t.Errorf("cmd = %q, want %q", cmd, tc.cmd)
		}
		if len(args) != len(tc.args) {
			t.Fatalf("args = %v, want %v", args, tc.args)
		}
		for i := range args {
			if args[i] != tc.args[i] {
				t.Errorf("arg %d = %q, want %q", i, args[i], tc.args[i])
			}
		}
	}

	if _, _, err := parseLine(`add "unterminated` + "\n"); err == nil {
		t.Error("unterminated quote accepted")
	}
}

func TestUnknownCommandACK(t *testing.T) {
	_, c, _ := startServer(t)
	c.send(t, "bogus")
	got := c.response(t)
	if !strings.HasPrefix(got, "ACK [5@0] {bogus}") {
		t.Errorf("response = %q", got)
	}
}

func TestAddAndPlaylistInfo(t *testing.T) {
	_, c, root := startServer(t)

	c.send(t, `add "file://`+filepath.Join(root, "a/t1.flac")+`"`)
	if got := c.response(t); got != "OK\n" {
		t.Fatalf("add = %q", got)
	}

	c.send(t, "playlistinfo")
	got := c.response(t)
	if !strings.Contains(got, "file: a/t1.flac\n") || !strings.Contains(got, "Pos: 0\n") {
		t.Errorf("playlistinfo = %q", got)
	}
}

func TestCommandListOkBatch(t *testing.T) {
	_, c, root := startServer(t)

	c.send(t, "command_list_ok_begin")
	c.send(t, "clear")
	c.send(t, `add "file://`+filepath.Join(root, "a/t1.flac")+`"`)
	c.send(t, "play")
	c.send(t, "command_list_end")

	got := c.response(t)
	want := "list_OK\nlist_OK\nlist_OK\nOK\n"
	if got != want {
		t.Errorf("batch = %q, want %q", got, want)
	}
}

func TestCommandListPlainBatch(t *testing.T) {
	_, c, _ := startServer(t)

	c.send(t, "command_list_begin")
	c.send(t, "getvol")
	c.send(t, "getvol")
	c.send(t, "command_list_end")

	got := c.response(t)
	if strings.Contains(got, "list_OK") {
		t.Errorf("plain batch contains list_OK: %q", got)
	}
	if strings.Count(got, "volume:") != 2 || !strings.HasSuffix(got, "OK\n") {
		t.Errorf("batch = %q", got)
	}
}

func TestBatchACKCarriesSubcommandIndex(t *testing.T) {
	_, c, _ := startServer(t)

	c.send(t, "command_list_ok_begin")
	c.send(t, "getvol")
	c.send(t, "delete 99")
	c.send(t, "getvol")
	c.send(t, "command_list_end")

	got := c.response(t)
	if !strings.Contains(got, "ACK [2@1] {delete} invalid argument") {
		t.Errorf("batch = %q", got)
	}
	if strings.Count(got, "list_OK\n") != 1 {
		t.Errorf("batch did not abort after failure: %q", got)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	_, c, _ := startServer(t)
	c.send(t, "delete 5")
	got := c.response(t)
	if !strings.HasPrefix(got, "ACK [2@0] {delete} invalid argument") {
		t.Errorf("response = %q", got)
	}
}

func TestStatusAndVolumeMapping(t *testing.T) {
	_, c, _ := startServer(t)

	c.send(t, "setvol 50")
	if got := c.response(t); got != "OK\n" {
		t.Fatalf("setvol = %q", got)
	}
	time.Sleep(50 * time.Millisecond) // bus apply

	c.send(t, "status")
	got := c.response(t)
	if !strings.Contains(got, "volume: 50\n") {
		t.Errorf("status = %q", got)
	}
	if !strings.Contains(got, "state: stop\n") {
		t.Errorf("status = %q", got)
	}
	if !strings.Contains(got, "playlistlength: 0\n") {
		t.Errorf("status = %q", got)
	}
}

func TestConfigRefusedForNonLoopback(t *testing.T) {
	server, c, root := startServer(t)

	// loopback client is allowed
	c.send(t, "config")
	if got := c.response(t); !strings.Contains(got, "music_directory: "+root) {
		t.Errorf("config = %q", got)
	}

	// a non-loopback session gets the permission ACK
	sess := &session{server: server, loopback: false}
	_, err := server.cmdConfig(sess, nil)
	a, ok := err.(*ackError)
	if !ok || a.code != ackErrorPermission {
		t.Fatalf("err = %v, want permission ACK", err)
	}
	if !strings.Contains(a.Error(), "{config} Command only permitted to local clients") {
		t.Errorf("ack = %q", a.Error())
	}
}

func TestTagTypesAndCommands(t *testing.T) {
	_, c, _ := startServer(t)

	c.send(t, "tagtypes")
	if got := c.response(t); !strings.Contains(got, "tagtype: Artist\n") {
		t.Errorf("tagtypes = %q", got)
	}

	c.send(t, "tagtypes clear")
	if got := c.response(t); got != "OK\n" {
		t.Errorf("tagtypes clear = %q", got)
	}

	c.send(t, "commands")
	if got := c.response(t); !strings.Contains(got, "command: play\n") {
		t.Errorf("commands = %q", got)
	}
}

func TestLsInfo(t *testing.T) {
	_, c, _ := startServer(t)
	c.send(t, "lsinfo")
	got := c.response(t)
	if !strings.Contains(got, "directory: a\n") {
		t.Errorf("lsinfo = %q", got)
	}
}

func TestVolumeMappingMath(t *testing.T) {
	cases := []struct {
		db      int
		percent int
	}{
		{-80, 0},
		{0, 100},
		{-40, 50},
	}
	for _, tc := range cases {
		if got := volumeToPercent(tc.db); got != tc.percent {
			t.Errorf("volumeToPercent(%d) = %d, want %d", tc.db, got, tc.percent)
		}
		if got := percentToDB(tc.percent); got != tc.db {
			t.Errorf("percentToDB(%d) = %d, want %d", tc.percent, got, tc.db)
		}
	}
}
