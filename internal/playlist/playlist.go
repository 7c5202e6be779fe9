/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package playlist holds the in-memory play queue and cursor. This is
// distinct from the user-named playlists kept in the database.
package playlist

import (
	"hash/crc32"
	"math/rand"
	"os"
	"strings"
	"sync"
)

// Repeat modes.
const (
	RepeatOff = 0
	RepeatAll = 1
	RepeatOne = 2
)

// Failure is the status returned by queue operations that reference a
// missing index or directory.
const Failure = -1

const defaultMaxSize = 32 * 1024

// Position says where inserted tracks land. Use the sentinels for appends;
// negative wire integers are translated by FromWire.
type Position struct {
	kind  int
	index int
}

const (
	kindAt = iota
	kindLast
	kindLastShuffled
)

// InsertLast appends at the end of the queue.
var InsertLast = Position{kind: kindLast}

// InsertLastShuffled appends at seed-derived positions after the cursor.
var InsertLastShuffled = Position{kind: kindLastShuffled}

// At inserts before the given index.
func At(index int) Position {
	return Position{kind: kindAt, index: index}
}

// FromWire maps the protocol's integer positions onto sentinels. The
// shuffled-append control value is -6; every other negative appends.
func FromWire(i int) Position {
	switch {
	case i == -6:
		return InsertLastShuffled
	case i < 0:
		return InsertLast
	default:
		return At(i)
	}
}

// Engine is the queue state machine. All operations take the writer lock;
// composite flows (Load) hold it across their whole sequence.
type Engine struct {
	mu sync.Mutex

	tracks            []string
	index             int
	firstIndex        int
	seed              int32
	lastInsertPos     int
	lastShuffledStart int
	modified          bool
	maxSize           int
	repeat            int
	dir               string
	loaded            bool
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{maxSize: defaultMaxSize}
}

// Create resets the queue rooted at dir. A directory that does not exist
// fails with -1 and leaves the queue empty.
func (e *Engine) Create(dir string, tracks []string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.create(dir, tracks)
}

func (e *Engine) create(dir string, tracks []string) int {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			e.reset()
			return Failure
		}
	}
	e.reset()
	e.dir = dir
	e.loaded = true
	if len(tracks) > 0 {
		e.insert(tracks, InsertLast)
	}
	return 0
}

func (e *Engine) reset() {
	e.tracks = nil
	e.index = 0
	e.firstIndex = 0
	e.lastInsertPos = Failure
	e.lastShuffledStart = 0
	e.modified = false
	e.dir = ""
	e.loaded = false
}

// InsertTracks adds paths at the given position and returns the first
// inserted index, or -1 when the queue was never created or is full.
func (e *Engine) InsertTracks(paths []string, pos Position) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.insert(paths, pos)
}

func (e *Engine) insert(paths []string, pos Position) int {
	if !e.loaded || len(e.tracks)+len(paths) > e.maxSize {
		return Failure
	}
	if len(paths) == 0 {
		return e.lastInsertPos
	}

	switch pos.kind {
	case kindLast:
		first := len(e.tracks)
		e.tracks = append(e.tracks, paths...)
		e.lastInsertPos = first
	case kindLastShuffled:
		rng := rand.New(rand.NewSource(int64(e.seed)))
		first := Failure
		for _, path := range paths {
			lo := e.index + 1
			if len(e.tracks) == 0 {
				lo = 0
			}
			at := lo + rng.Intn(len(e.tracks)-lo+1)
			e.tracks = append(e.tracks, "")
			copy(e.tracks[at+1:], e.tracks[at:])
			e.tracks[at] = path
			if first == Failure || at < first {
				first = at
			}
		}
		e.lastInsertPos = first
	default:
		at := pos.index
		if at < 0 || at > len(e.tracks) {
			return Failure
		}
		e.tracks = append(e.tracks, make([]string, len(paths))...)
		copy(e.tracks[at+len(paths):], e.tracks[at:])
		copy(e.tracks[at:], paths)
		if at <= e.index && len(e.tracks) > len(paths) {
			e.index += len(paths)
		}
		e.lastInsertPos = at
	}

	e.modified = true
	return e.lastInsertPos
}

// Shuffle permutes the tracks at start and beyond with a deterministic
// permutation derived from seed. The cursor follows its track.
func (e *Engine) Shuffle(seed int32, start int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shuffle(seed, start)
}

func (e *Engine) shuffle(seed int32, start int) int {
	if !e.loaded || start < 0 || start > len(e.tracks) {
		return Failure
	}
	e.seed = seed
	e.lastShuffledStart = start

	tail := e.tracks[start:]
	current := ""
	if e.index >= start && e.index < len(e.tracks) {
		current = e.tracks[e.index]
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	for i := len(tail) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tail[i], tail[j] = tail[j], tail[i]
	}

	if current != "" {
		for i := start; i < len(e.tracks); i++ {
			if e.tracks[i] == current {
				e.index = i
				break
			}
		}
	}
	e.modified = true
	return 0
}

// DeleteTrack removes one index. Deleting the cursor track leaves the
// cursor on the next playable entry, wrapping only under repeat-all.
func (e *Engine) DeleteTrack(i int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded || i < 0 || i >= len(e.tracks) {
		return Failure
	}
	e.tracks = append(e.tracks[:i], e.tracks[i+1:]...)
	switch {
	case i < e.index:
		e.index--
	case i == e.index && e.index >= len(e.tracks):
		if e.repeat == RepeatAll && len(e.tracks) > 0 {
			e.index = 0
		} else if len(e.tracks) > 0 {
			e.index = len(e.tracks) - 1
		} else {
			e.index = 0
		}
	}
	e.modified = true
	return 0
}

// RemoveAllTracks empties the queue but keeps it created.
func (e *Engine) RemoveAllTracks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return Failure
	}
	e.tracks = nil
	e.index = 0
	e.modified = true
	return 0
}

// Move relocates the track at from so it sits at to.
func (e *Engine) Move(from, to int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded || from < 0 || from >= len(e.tracks) || to < 0 || to >= len(e.tracks) {
		return Failure
	}
	if from == to {
		return 0
	}
	path := e.tracks[from]
	e.tracks = append(e.tracks[:from], e.tracks[from+1:]...)
	e.tracks = append(e.tracks[:to], append([]string{path}, e.tracks[to:]...)...)
	switch {
	case e.index == from:
		e.index = to
	case from < e.index && to >= e.index:
		e.index--
	case from > e.index && to <= e.index:
		e.index++
	}
	e.modified = true
	return 0
}

// Start positions the cursor for playback and returns 0, or -1 when the
// index does not exist.
func (e *Engine) Start(startIndex int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.start(startIndex)
}

func (e *Engine) start(startIndex int) int {
	if !e.loaded || startIndex < 0 || startIndex >= len(e.tracks) {
		return Failure
	}
	e.index = startIndex
	e.firstIndex = startIndex
	return 0
}

// CRC hashes the queue contents. Resume uses it to detect that the queue
// changed since the position was saved.
func (e *Engine) CRC() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return crc32.ChecksumIEEE([]byte(strings.Join(e.tracks, "\n")))
}

// ResumeTrack restores the cursor and returns the (elapsed, offset) to
// resume from. A CRC mismatch degrades to a fresh start at the index.
func (e *Engine) ResumeTrack(startIndex int, crc uint32, elapsed, offset int) (int, int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.start(startIndex) == Failure {
		return Failure, 0, 0
	}
	if crc32.ChecksumIEEE([]byte(strings.Join(e.tracks, "\n"))) != crc {
		return 0, 0, 0
	}
	return 0, elapsed, offset
}

// Load runs create, insert, optional shuffle and start as one logical
// operation under the writer lock. It returns the effective start index,
// or -1.
func (e *Engine) Load(dir string, tracks []string, shuffleSeed *int32, startIndex int) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.create(dir, nil) == Failure {
		return Failure
	}
	if e.insert(tracks, InsertLast) == Failure {
		return Failure
	}
	if shuffleSeed != nil {
		if e.shuffle(*shuffleSeed, 0) == Failure {
			return Failure
		}
	}
	if startIndex < 0 {
		startIndex = 0
	}
	if e.start(startIndex) == Failure {
		return Failure
	}
	return startIndex
}

// Next advances the cursor and returns the new index, or -1 at the end
// under repeat-off.
func (e *Engine) Next() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded || len(e.tracks) == 0 {
		return Failure
	}
	if e.repeat == RepeatOne {
		return e.index
	}
	if e.index+1 < len(e.tracks) {
		e.index++
		return e.index
	}
	if e.repeat == RepeatAll {
		e.index = 0
		return e.index
	}
	return Failure
}

// Prev moves the cursor back and returns the new index.
func (e *Engine) Prev() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded || len(e.tracks) == 0 {
		return Failure
	}
	if e.repeat == RepeatOne {
		return e.index
	}
	if e.index > 0 {
		e.index--
		return e.index
	}
	if e.repeat == RepeatAll {
		e.index = len(e.tracks) - 1
		return e.index
	}
	return e.index
}

// SetRepeat changes the repeat mode.
func (e *Engine) SetRepeat(mode int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if mode >= RepeatOff && mode <= RepeatOne {
		e.repeat = mode
	}
}

// Repeat returns the repeat mode.
func (e *Engine) Repeat() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.repeat
}

// Snapshot is a consistent read of the queue.
type Snapshot struct {
	Index      int
	FirstIndex int
	Amount     int
	Tracks     []string
	Modified   bool
}

// GetCurrent copies the queue state.
func (e *Engine) GetCurrent() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	tracks := make([]string, len(e.tracks))
	copy(tracks, e.tracks)
	return Snapshot{
		Index:      e.index,
		FirstIndex: e.firstIndex,
		Amount:     len(e.tracks),
		Tracks:     tracks,
		Modified:   e.modified,
	}
}

// Dir returns the directory the queue was created from.
func (e *Engine) Dir() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dir
}

// Amount returns the queue length.
func (e *Engine) Amount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tracks)
}

// Index returns the cursor.
func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// CurrentPath returns the cursor's track path.
func (e *Engine) CurrentPath() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index < 0 || e.index >= len(e.tracks) {
		return "", false
	}
	return e.tracks[e.index], true
}

// NextPath returns the track that would play after the current one.
func (e *Engine) NextPath() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.tracks) == 0 {
		return "", false
	}
	next := e.index + 1
	if next >= len(e.tracks) {
		if e.repeat != RepeatAll {
			return "", false
		}
		next = 0
	}
	return e.tracks[next], true
}
