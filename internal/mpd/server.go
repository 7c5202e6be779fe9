/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package mpd is the line-oriented TCP translator mapping the MPD
// protocol onto the playback facade.
package mpd

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/tsirysndr/rockboxd/internal/browse"
	"github.com/tsirysndr/rockboxd/internal/events"
	"github.com/tsirysndr/rockboxd/internal/playback"
	"github.com/tsirysndr/rockboxd/internal/repo"
	"github.com/tsirysndr/rockboxd/internal/settings"
	"github.com/tsirysndr/rockboxd/internal/telemetry"
)

// ackError renders as an MPD ACK line. index is the zero-based
// subcommand index inside a command list.
type ackError struct {
	code  int
	index int
	cmd   string
	msg   string
}

func (e *ackError) Error() string {
	return fmt.Sprintf("ACK [%d@%d] {%s} %s\n", e.code, e.index, e.cmd, e.msg)
}

func ack(code int, cmd, format string, args ...any) *ackError {
	return &ackError{code: code, cmd: cmd, msg: fmt.Sprintf(format, args...)}
}

// Server speaks the MPD protocol over TCP.
type Server struct {
	facade   *playback.Facade
	repo     *repo.Repo
	settings *settings.Store
	browser  *browse.Browser
	broker   *events.Broker

	// rescan triggers a library scan; update/rescan run it in the
	// background.
	rescan func(ctx context.Context) error

	started  time.Time
	handlers map[string]func(s *session, args []string) (string, error)
}

// NewServer wires the translator.
func NewServer(facade *playback.Facade, r *repo.Repo, st *settings.Store, browser *browse.Browser, broker *events.Broker, rescan func(ctx context.Context) error) *Server {
	s := &Server{
		facade:   facade,
		repo:     r,
		settings: st,
		browser:  browser,
		broker:   broker,
		rescan:   rescan,
		started:  time.Now(),
	}
	s.registerHandlers()
	return s
}

// Serve accepts sessions until the listener closes or the context ends.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.handleConn(ctx, conn)
	}
}

// session is one client connection.
type session struct {
	server   *Server
	conn     net.Conn
	writer   *bufio.Writer
	lines    <-chan string
	loopback bool
	ctx      context.Context
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	telemetry.MPDSessions.Inc()
	defer telemetry.MPDSessions.Dec()

	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(conn)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	sess := &session{
		server:   s,
		conn:     conn,
		writer:   bufio.NewWriter(conn),
		lines:    lines,
		loopback: isLoopback(conn.RemoteAddr()),
		ctx:      ctx,
	}
	sess.write(Greeting)

	for {
		line, ok := sess.readLine()
		if !ok {
			return
		}
		cmd, args, err := parseLine(line)
		if err != nil {
			sess.write(ack(ackErrorUnknown, "", "%v", err).Error())
			continue
		}
		if cmd == "" {
			continue
		}

		switch cmd {
		case "command_list_begin", "command_list_ok_begin":
			s.runBatch(sess, cmd == "command_list_ok_begin")
		case "idle":
			s.runIdle(sess, args)
		case "noidle":
			sess.write("OK\n")
		case "close":
			return
		default:
			body, err := s.execute(sess, cmd, args, 0)
			if err != nil {
				sess.write(err.Error())
				continue
			}
			sess.write(body + "OK\n")
		}
	}
}

func (sess *session) readLine() (string, bool) {
	select {
	case line, ok := <-sess.lines:
		return line, ok
	case <-sess.ctx.Done():
		return "", false
	}
}

func (sess *session) write(text string) {
	sess.writer.WriteString(text)
	sess.writer.Flush()
}

// execute runs one command and returns the response body without its
// terminating OK.
func (s *Server) execute(sess *session, cmd string, args []string, index int) (string, *ackError) {
	handler, ok := s.handlers[cmd]
	if !ok {
		return "", &ackError{code: ackErrorUnknown, index: index, cmd: cmd, msg: fmt.Sprintf("unknown command %q", cmd)}
	}
	telemetry.MPDCommands.WithLabelValues(cmd).Inc()

	body, err := handler(sess, args)
	if err != nil {
		if a, ok := err.(*ackError); ok {
			a.index = index
			return "", a
		}
		return "", &ackError{code: ackErrorUnknown, index: index, cmd: cmd, msg: err.Error()}
	}
	return body, nil
}

// runBatch collects subcommands until command_list_end and executes them.
// In ok mode every subcommand emits list_OK; an ACK aborts the batch and
// carries the failing subcommand's index.
func (s *Server) runBatch(sess *session, okMode bool) {
	type sub struct {
		cmd  string
		args []string
	}
	var subs []sub
	for {
		line, ok := sess.readLine()
		if !ok {
			return
		}
		cmd, args, err := parseLine(line)
		if err != nil {
			sess.write(ack(ackErrorUnknown, "", "%v", err).Error())
			return
		}
		if cmd == "command_list_end" {
			break
		}
		subs = append(subs, sub{cmd: cmd, args: args})
	}

	var out strings.Builder
	for i, c := range subs {
		body, err := s.execute(sess, c.cmd, c.args, i)
		if err != nil {
			sess.write(out.String() + err.Error())
			return
		}
		out.WriteString(body)
		if okMode {
			out.WriteString("list_OK\n")
		}
	}
	sess.write(out.String() + "OK\n")
}

// runIdle blocks until a watched subsystem changes or the client sends
// another line. Any line cancels the wait; a non-noidle command runs
// afterwards.
func (s *Server) runIdle(sess *session, args []string) {
	watch := map[string]bool{}
	for _, sub := range args {
		watch[sub] = true
	}
	all := len(watch) == 0

	statusSub := s.broker.Status.Subscribe()
	playlistSub := s.broker.Playlist.Subscribe()
	defer statusSub.Unsubscribe()
	defer playlistSub.Unsubscribe()

	lastStatus := s.facade.Status()
	lastQueue := s.facade.Queue().GetCurrent()

	for {
		select {
		case line, ok := <-sess.lines:
			if !ok {
				return
			}
			cmd, cmdArgs, err := parseLine(line)
			if err != nil || cmd == "noidle" || cmd == "" {
				sess.write("OK\n")
				return
			}
			sess.write("OK\n")
			body, ackErr := s.execute(sess, cmd, cmdArgs, 0)
			if ackErr != nil {
				sess.write(ackErr.Error())
				return
			}
			sess.write(body + "OK\n")
			return
		case status, ok := <-statusSub.C():
			if !ok {
				return
			}
			if (all || watch["player"]) && status.Status != lastStatus.Status {
				sess.write("changed: player\nOK\n")
				return
			}
			lastStatus = status
		case snapshot, ok := <-playlistSub.C():
			if !ok {
				return
			}
			if (all || watch["playlist"]) && (snapshot.Amount != lastQueue.Amount || snapshot.Index != lastQueue.Index) {
				sess.write("changed: playlist\nOK\n")
				return
			}
		case <-sess.ctx.Done():
			return
		}
	}
}

func isLoopback(addr net.Addr) bool {
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return false
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Addr formats the listen address for logs.
func Addr(host string, port int) string {
	return net.JoinHostPort(host, fmt.Sprintf("%d", port))
}
