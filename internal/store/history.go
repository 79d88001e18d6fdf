package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elliotskunk/stumble/internal/stumble"
)

// persistedHistoryLimit caps how many sessions survive a restart. The
// in-memory list during a run is unbounded; only the newest tail is
// written back.
const persistedHistoryLimit = 10

// History keeps the session list in memory and mirrors the newest tail
// into the history slot after every mutation. Database failures are
// reported to stderr and otherwise ignored; the in-memory copy stays
// authoritative.
type History struct {
	store *Store

	mu       sync.Mutex
	sessions []stumble.StumbleSession
}

var _ stumble.HistoryStore = (*History)(nil)

// LoadHistory reads the persisted sessions, seeding demo content when
// the slot is empty or unreadable.
func LoadHistory(s *Store) *History {
	h := &History{store: s}

	raw, ok, err := s.readSlot(slotHistory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read history: %v\n", err)
	}
	if ok && err == nil {
		var sessions []stumble.StumbleSession
		if jsonErr := json.Unmarshal([]byte(raw), &sessions); jsonErr == nil {
			h.sessions = sessions
			return h
		}
		fmt.Fprintln(os.Stderr, "warning: stored history is corrupt, starting over")
	}

	h.sessions = demoSessions()
	return h
}

// All returns a copy of every session, oldest first.
func (h *History) All() []stumble.StumbleSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]stumble.StumbleSession, len(h.sessions))
	copy(out, h.sessions)
	return out
}

// Append adds a finished session and persists the tail.
func (h *History) Append(s stumble.StumbleSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions = append(h.sessions, s)
	h.persistLocked()
}

// Update replaces the session with a matching ID. It reports whether a
// match was found; order is preserved either way.
func (h *History) Update(s stumble.StumbleSession) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.sessions {
		if h.sessions[i].ID == s.ID {
			h.sessions[i] = s
			h.persistLocked()
			return true
		}
	}
	return false
}

func (h *History) persistLocked() {
	if h.store == nil {
		return
	}

	tail := h.sessions
	if len(tail) > persistedHistoryLimit {
		tail = tail[len(tail)-persistedHistoryLimit:]
	}

	raw, err := json.Marshal(tail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode history: %v\n", err)
		return
	}
	if err := h.store.writeSlot(slotHistory, string(raw)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save history: %v\n", err)
	}
}
