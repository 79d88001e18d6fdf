package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elliotskunk/stumble/internal/stumble"
)

// DefaultGoal is the self-improvement goal new installs start with.
const DefaultGoal = "Become more outgoing and care less about what strangers think."

// Goals holds the user's current goal in memory and mirrors it into
// the goal slot on change.
type Goals struct {
	store *Store

	mu   sync.Mutex
	goal string
}

var _ stumble.GoalStore = (*Goals)(nil)

// LoadGoals reads the persisted goal, falling back to DefaultGoal when
// the slot is empty or unreadable.
func LoadGoals(s *Store) *Goals {
	g := &Goals{store: s, goal: DefaultGoal}

	raw, ok, err := s.readSlot(slotGoal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read goal: %v\n", err)
		return g
	}
	if !ok {
		return g
	}

	var goal string
	if jsonErr := json.Unmarshal([]byte(raw), &goal); jsonErr != nil || goal == "" {
		return g
	}
	g.goal = goal
	return g
}

// Goal returns the current goal.
func (g *Goals) Goal() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.goal
}

// SetGoal updates the goal and persists it.
func (g *Goals) SetGoal(goal string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.goal = goal

	if g.store == nil {
		return
	}
	raw, err := json.Marshal(goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode goal: %v\n", err)
		return
	}
	if err := g.store.writeSlot(slotGoal, string(raw)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save goal: %v\n", err)
	}
}
