/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package logbuffer provides an in-memory ring buffer for capturing logs.
package logbuffer

import (
	"encoding/json"
	"sync"
	"time"
)

// Entry is a single captured log line.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Component string    `json:"component,omitempty"`
	Raw       string    `json:"raw,omitempty"`
}

// Buffer is a thread-safe ring buffer for log entries. It doubles as an
// io.Writer so it can be attached to the zerolog multi writer.
type Buffer struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	head     int
	count    int
}

// New creates a log buffer with the specified capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 10000
	}
	return &Buffer{
		entries:  make([]Entry, capacity),
		capacity: capacity,
	}
}

// Write implements io.Writer for zerolog JSON output.
func (b *Buffer) Write(p []byte) (int, error) {
	entry := Entry{Timestamp: time.Now(), Raw: string(p)}

	var parsed struct {
		Level     string `json:"level"`
		Message   string `json:"message"`
		Component string `json:"component"`
	}
	if err := json.Unmarshal(p, &parsed); err == nil {
		entry.Level = parsed.Level
		entry.Message = parsed.Message
		entry.Component = parsed.Component
	}

	b.Add(entry)
	return len(p), nil
}

// Add appends a log entry, evicting the oldest once full.
func (b *Buffer) Add(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.head] = entry
	b.head = (b.head + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
}

// Len returns the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Tail returns up to n entries in chronological order, newest last.
// n <= 0 returns everything.
func (b *Buffer) Tail(n int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	start := 0
	if b.count == b.capacity {
		start = b.head
	}

	result := make([]Entry, 0, b.count)
	for i := 0; i < b.count; i++ {
		idx := (start + i) % b.capacity
		result = append(result, b.entries[idx])
	}

	if n > 0 && len(result) > n {
		result = result[len(result)-n:]
	}
	return result
}
