package state

import (
	"encoding/json"
	"sync"
	"time"
)

// State is the shared jukebox snapshot every client polls for. Queue entries
// and the current song are opaque to the server: whatever track-shaped JSON
// the clients agree on is stored and returned verbatim.
type State struct {
	Queue       []json.RawMessage `json:"queue"`
	CurrentSong json.RawMessage   `json:"currentSong"`
	LastUpdate  float64           `json:"lastUpdate"`
}

// Store holds the single process-wide jukebox state behind a mutex. The lock
// is held only for the read or write touching the state, never across I/O.
type Store struct {
	mu sync.Mutex
	st State
}

// NewStore creates an empty jukebox state
func NewStore() *Store {
	return &Store{st: State{
		Queue:      []json.RawMessage{},
		LastUpdate: unixSeconds(),
	}}
}

// Snapshot returns a consistent copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := make([]json.RawMessage, len(s.st.Queue))
	copy(queue, s.st.Queue)

	return State{
		Queue:       queue,
		CurrentSong: s.st.CurrentSong,
		LastUpdate:  s.st.LastUpdate,
	}
}

// Replace overwrites the queue and current song in full. Last writer wins,
// there is no merging and no version check. A nil queue is stored as empty,
// a nil current song marshals as JSON null. LastUpdate is server-assigned
// and strictly increases across replaces.
func (s *Store) Replace(queue []json.RawMessage, currentSong json.RawMessage) {
	if queue == nil {
		queue = []json.RawMessage{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := unixSeconds()
	if now <= s.st.LastUpdate {
		now = s.st.LastUpdate + 1e-6
	}

	s.st.Queue = queue
	s.st.CurrentSong = currentSong
	s.st.LastUpdate = now
}

func unixSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
