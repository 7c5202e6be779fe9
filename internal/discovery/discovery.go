/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package discovery registers the daemon's services over mDNS and browses
// for peers on the local network.
package discovery

import (
	"context"
	"fmt"
	"sync"

	"github.com/libp2p/zeroconf/v2"
	"github.com/rs/zerolog/log"
)

const serviceType = "_rockbox._tcp"

// browsedTypes are the service types scanned for peers.
var browsedTypes = []string{
	serviceType,
	"_music-player._tcp",
	"_xbmc-jsonrpc-h._tcp",
	"_googlecast._tcp",
}

// Peer is a discovered remote player.
type Peer struct {
	Name string
	Host string
	Port int
	Type string
}

// Registration holds the advertised mDNS entries.
type Registration struct {
	servers []*zeroconf.Server
}

// Ports carries the four advertised endpoints.
type Ports struct {
	HTTP    int
	GraphQL int
	GRPC    int
	MPD     int
}

// Register announces the http, graphql, grpc and mpd endpoints under
// _rockbox._tcp. Instance names carry the device id so peers can group
// the four records.
func Register(deviceID, deviceName string, ports Ports) (*Registration, error) {
	entries := []struct {
		prefix string
		port   int
	}{
		{"http", ports.HTTP},
		{"graphql", ports.GraphQL},
		{"grpc", ports.GRPC},
		{"mpd", ports.MPD},
	}

	txt := []string{"path=/", "device_name=" + deviceName}
	reg := &Registration{}
	for _, entry := range entries {
		instance := fmt.Sprintf("%s-%s", entry.prefix, deviceID)
		server, err := zeroconf.Register(instance, serviceType, "local.", entry.port, txt, nil)
		if err != nil {
			reg.Shutdown()
			return nil, fmt.Errorf("register %s: %w", instance, err)
		}
		reg.servers = append(reg.servers, server)
		log.Debug().Str("instance", instance).Int("port", entry.port).Msg("mdns service registered")
	}
	return reg, nil
}

// Shutdown withdraws every advertised record.
func (r *Registration) Shutdown() {
	for _, server := range r.servers {
		server.Shutdown()
	}
	r.servers = nil
}

// Browser watches the network for peers.
type Browser struct {
	mu    sync.Mutex
	peers map[string]Peer
}

// NewBrowser returns an empty browser.
func NewBrowser() *Browser {
	return &Browser{peers: make(map[string]Peer)}
}

// Run browses every known service type until the context ends.
func (b *Browser) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, t := range browsedTypes {
		wg.Add(1)
		go func(serviceType string) {
			defer wg.Done()
			entries := make(chan *zeroconf.ServiceEntry)
			go b.collect(serviceType, entries)
			if err := zeroconf.Browse(ctx, serviceType, "local.", entries); err != nil {
				log.Debug().Err(err).Str("type", serviceType).Msg("mdns browse stopped")
			}
		}(t)
	}
	wg.Wait()
}

func (b *Browser) collect(serviceType string, entries <-chan *zeroconf.ServiceEntry) {
	for entry := range entries {
		host := ""
		if len(entry.AddrIPv4) > 0 {
			host = entry.AddrIPv4[0].String()
		}
		peer := Peer{
			Name: entry.Instance,
			Host: host,
			Port: entry.Port,
			Type: serviceType,
		}
		b.mu.Lock()
		b.peers[serviceType+"/"+entry.Instance] = peer
		b.mu.Unlock()
		log.Debug().Str("peer", entry.Instance).Str("type", serviceType).Msg("peer discovered")
	}
}

// Peers lists every peer seen so far.
func (b *Browser) Peers() []Peer {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Peer, 0, len(b.peers))
	for _, peer := range b.peers {
		out = append(out, peer)
	}
	return out
}
