/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package telemetry exposes Prometheus metrics for the daemon.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CommandsConsumed counts playback commands applied by the engine consumer.
	CommandsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rockbox_commands_consumed_total",
		Help: "Playback commands consumed from the command bus",
	}, []string{"command"})

	// EventsPublished counts broker publishes per event type.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rockbox_events_published_total",
		Help: "Events fanned out by the in-process broker",
	}, []string{"type"})

	// EventsDropped counts events discarded on subscriber overflow.
	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rockbox_events_dropped_total",
		Help: "Events dropped because a subscriber queue was full",
	}, []string{"type"})

	// ScansTotal counts library scans by outcome.
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rockbox_library_scans_total",
		Help: "Library scans by outcome",
	}, []string{"outcome"})

	// TracksIndexed counts tracks upserted during scans.
	TracksIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rockbox_library_tracks_indexed_total",
		Help: "Tracks written to the library during scans",
	})

	// MPDSessions gauges open MPD client sessions.
	MPDSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rockbox_mpd_sessions",
		Help: "Currently open MPD protocol sessions",
	})

	// MPDCommands counts MPD commands handled.
	MPDCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rockbox_mpd_commands_total",
		Help: "MPD commands handled by name",
	}, []string{"command"})

	// APIRequestsTotal tracks HTTP API requests.
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rockbox_api_requests_total",
		Help: "HTTP requests by method, endpoint and status",
	}, []string{"method", "endpoint", "status"})

	// APIRequestDuration tracks HTTP request latency.
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rockbox_api_request_duration_seconds",
		Help:    "HTTP request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint", "status"})

	// APIActiveConnections gauges in-flight HTTP requests.
	APIActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rockbox_api_active_connections",
		Help: "In-flight HTTP requests",
	})
)

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
