/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog/log"

	"github.com/tsirysndr/rockboxd/internal/covers"
	"github.com/tsirysndr/rockboxd/internal/telemetry"
)

// spaRoutes are client-side routes that resolve to the web UI entrypoint.
var spaRoutes = []string{"/", "/tracks", "/artists", "/albums", "/files", "/likes", "/search", "/playlists", "/settings"}

// Server exposes the HTTP surface: the GraphQL endpoint, websocket
// subscriptions, cover art, track downloads and the bundled web UI.
type Server struct {
	schema   graphql.Schema
	resolver *Resolver
	covers   *covers.Store
	webDir   string
	upgrader websocket.Upgrader
}

// NewServer builds the HTTP server. webDir may be empty when no UI
// bundle is installed.
func NewServer(r *Resolver, coverStore *covers.Store, webDir string) (*Server, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return &Server{
		schema:   schema,
		resolver: r,
		covers:   coverStore,
		webDir:   webDir,
		upgrader: websocket.Upgrader{
			CheckOrigin:  func(*http.Request) bool { return true },
			Subprotocols: []string{"graphql-ws", "graphql-transport-ws"},
		},
	}, nil
}

// Handler builds the router. grpcWeb, when non-nil, intercepts
// grpc-web requests before they reach the other routes.
func (s *Server) Handler(grpcWeb func(http.Handler) http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(telemetry.MetricsMiddleware)
	router.Use(corsMiddleware)
	if grpcWeb != nil {
		router.Use(grpcWeb)
	}

	router.HandleFunc("/graphql", s.handleGraphQL)
	router.Get("/covers/{file}", s.handleCover)
	router.Get("/tracks/{id}", s.handleTrackDownload)
	router.Get("/metrics", telemetry.Handler().ServeHTTP)
	for _, route := range spaRoutes {
		router.Get(route, s.handleSPA)
	}
	router.NotFound(s.handleSPA)
	return router
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		s.handleSubscriptions(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Debug().Err(err).Msg("failed to write graphql response")
	}
}

// wsMessage is the envelope shared by the graphql-ws and
// graphql-transport-ws subprotocols.
type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var writeMu sync.Mutex
	send := func(msg wsMessage) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(msg); err != nil {
			cancel()
		}
	}

	// legacy clients say start/stop/data, newer ones subscribe/complete/next
	legacy := conn.Subprotocol() != "graphql-transport-ws"
	dataType := "next"
	if legacy {
		dataType = "data"
	}

	cancels := map[string]context.CancelFunc{}
	defer func() {
		for _, stop := range cancels {
			stop()
		}
	}()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Type {
		case "connection_init":
			send(wsMessage{Type: "connection_ack"})
		case "ping":
			send(wsMessage{Type: "pong"})
		case "start", "subscribe":
			var req graphqlRequest
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				send(wsMessage{ID: msg.ID, Type: "error"})
				continue
			}
			opCtx, stop := context.WithCancel(ctx)
			cancels[msg.ID] = stop
			go func(id string) {
				results := graphql.Subscribe(graphql.Params{
					Schema:         s.schema,
					RequestString:  req.Query,
					OperationName:  req.OperationName,
					VariableValues: req.Variables,
					Context:        opCtx,
				})
				for result := range results {
					payload, err := json.Marshal(result)
					if err != nil {
						continue
					}
					send(wsMessage{ID: id, Type: dataType, Payload: payload})
				}
				send(wsMessage{ID: id, Type: "complete"})
			}(msg.ID)
		case "stop", "complete":
			if stop, ok := cancels[msg.ID]; ok {
				stop()
				delete(cancels, msg.ID)
			}
		case "connection_terminate":
			return
		}
	}
}

func (s *Server) handleCover(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "file")
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		http.NotFound(w, r)
		return
	}
	if !s.covers.Exists(name) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, s.covers.Path(name))
}

func (s *Server) handleTrackDownload(w http.ResponseWriter, r *http.Request) {
	track, err := s.resolver.Repo.Tracks.Find(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(track.Path); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filepath.Base(track.Path)))
	http.ServeFile(w, r, track.Path)
}

func (s *Server) handleSPA(w http.ResponseWriter, r *http.Request) {
	if s.webDir != "" {
		// real assets resolve directly, client routes fall back to the entrypoint
		asset := filepath.Join(s.webDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			http.ServeFile(w, r, asset)
			return
		}
		index := filepath.Join(s.webDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!doctype html><title>rockboxd</title><p>rockboxd is running. The web UI bundle is not installed.</p>")
}
