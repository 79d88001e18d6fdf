package stumble

import (
	"time"

	"github.com/google/uuid"
)

// Controller is the session lifecycle controller: the single source of
// truth for the current phase, the in-flight draft, and the generating
// flag. All mutations of that state go through its transition methods.
// It is driven from the single-threaded Bubble Tea update loop, so no
// locking is needed.
type Controller struct {
	phase      Phase
	draft      SessionDraft
	generating bool

	history HistoryStore
	goals   GoalStore

	newID func() string
	now   func() time.Time
}

// NewController creates a Controller starting on the lock screen.
func NewController(history HistoryStore, goals GoalStore) *Controller {
	return &Controller{
		phase:   PhaseLockScreen,
		history: history,
		goals:   goals,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Draft returns a copy of the in-flight draft.
func (c *Controller) Draft() SessionDraft { return c.draft }

// Generating reports whether a generator call is in flight.
func (c *Controller) Generating() bool { return c.generating }

// Goal returns the stored growth goal.
func (c *Controller) Goal() string { return c.goals.Goal() }

// History returns the full in-memory history, oldest first.
func (c *Controller) History() []StumbleSession { return c.history.All() }

// UnlockWithNotification starts a fresh draft with a new id and the
// current timestamp, then enters the capture flow.
func (c *Controller) UnlockWithNotification() {
	c.draft = SessionDraft{
		ID:        c.newID(),
		Timestamp: c.now(),
		IsPrivate: false,
	}
	c.phase = PhaseCaptureBefore
}

// UnlockNormally skips the capture flow and lands on the friends feed.
func (c *Controller) UnlockNormally() {
	c.phase = PhaseFriends
}

// CaptureBefore records the environment photo and enters the analyzing
// phase. It reports whether the generator call should be started; a call
// outside capture-before is rejected by the phase gate (this is what
// makes re-entrant captures during analyzing impossible).
func (c *Controller) CaptureBefore(photo Photo) bool {
	if c.phase != PhaseCaptureBefore {
		return false
	}
	c.draft.BeforePhoto = photo
	c.phase = PhaseAnalyzing
	c.generating = true
	return true
}

// ChallengeReady records the generator result and activates the
// challenge. The generator cannot fail outward, so this is the only
// resolution of the analyzing phase.
func (c *Controller) ChallengeReady(ch ChallengeData) {
	if c.phase != PhaseAnalyzing {
		return
	}
	c.draft.Challenge = &ch
	c.generating = false
	c.phase = PhaseChallengeActive
}

// ChallengeComplete moves to the proof capture. The challenge screen
// cancels its countdown on this exit.
func (c *Controller) ChallengeComplete() {
	if c.phase != PhaseChallengeActive {
		return
	}
	c.phase = PhaseCaptureAfter
}

// TimeExpired is the designed failure path of a challenge: the draft is
// discarded and the user lands back on the friends feed.
func (c *Controller) TimeExpired() {
	if c.phase != PhaseChallengeActive {
		return
	}
	c.draft = SessionDraft{}
	c.phase = PhaseFriends
}

// CaptureAfter records the proof photo and enters review.
func (c *Controller) CaptureAfter(photo Photo) {
	if c.phase != PhaseCaptureAfter {
		return
	}
	c.draft.AfterPhoto = photo
	c.phase = PhaseReview
}

// SaveAndClose commits the draft with its note and privacy flag. An
// incomplete draft is silently discarded: the phase still resets and the
// draft is cleared, but nothing is appended.
func (c *Controller) SaveAndClose(note string, isPrivate bool) {
	if c.phase == PhaseReview && c.draft.Complete() {
		c.history.Append(StumbleSession{
			ID:          c.draft.ID,
			Timestamp:   c.draft.Timestamp,
			BeforePhoto: c.draft.BeforePhoto,
			AfterPhoto:  c.draft.AfterPhoto,
			Challenge:   c.draft.Challenge,
			Note:        note,
			IsPrivate:   isPrivate,
		})
	}
	c.draft = SessionDraft{}
	c.phase = PhaseFriends
}

// UpdateSession replaces the history entry with a matching id. Callable
// from the portfolio view at any phase; a miss is a no-op.
func (c *Controller) UpdateSession(s StumbleSession) {
	c.history.Update(s)
}

// UpdateGoal stores a new goal and returns to the friends feed.
func (c *Controller) UpdateGoal(goal string) {
	c.goals.SetGoal(goal)
	c.phase = PhaseFriends
}

// Navigate jumps directly between the resting phases. Targets inside the
// capture/challenge/review sub-flow are rejected.
func (c *Controller) Navigate(target Phase) {
	if !navigable[target] {
		return
	}
	// Navigating away abandons any in-flight draft.
	if !c.draft.Empty() {
		c.draft = SessionDraft{}
		c.generating = false
	}
	c.phase = target
}
