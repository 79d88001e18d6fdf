package stumble

import "time"

// Photo is an opaque encoded-image handle. The core passes it through
// unchanged; only the capture device and the challenge generator care
// about its contents.
type Photo string

// ChallengeData is a generated micro-challenge. Immutable once produced.
type ChallengeData struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	LocationIdentified string `json:"locationIdentified"`
	TimeLimitSeconds   int    `json:"timeLimitSeconds"`
}

// TimeLimit returns the challenge duration as a time.Duration.
func (c ChallengeData) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds) * time.Second
}

// SessionDraft is the in-progress, partially populated session. It exists
// only between unlock-with-notification and either a save or an
// abandonment, and is owned exclusively by the Controller.
type SessionDraft struct {
	ID          string
	Timestamp   time.Time
	BeforePhoto Photo
	Challenge   *ChallengeData
	AfterPhoto  Photo
	IsPrivate   bool
}

// Empty reports whether the draft carries no in-flight session.
func (d SessionDraft) Empty() bool {
	return d.ID == ""
}

// Complete reports whether the draft satisfies the save invariant.
// BeforePhoto and Timestamp are guaranteed by construction once the
// flow reaches review, so id, challenge and afterPhoto are what is checked.
func (d SessionDraft) Complete() bool {
	return d.ID != "" && d.Challenge != nil && d.AfterPhoto != ""
}

// StumbleSession is a committed before/after challenge record.
// After commit only Note and IsPrivate may change.
type StumbleSession struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	BeforePhoto Photo          `json:"beforePhoto"`
	AfterPhoto  Photo          `json:"afterPhoto"`
	Challenge   *ChallengeData `json:"challenge"`
	Note        string         `json:"note,omitempty"`
	IsPrivate   bool           `json:"isPrivate"`
}

// HistoryStore is the controller's view of the session history.
// Implemented by store.History.
type HistoryStore interface {
	// All returns the full in-memory history, oldest first.
	All() []StumbleSession

	// Append adds a committed session to the end of the history.
	Append(s StumbleSession)

	// Update replaces the entry whose ID matches s.ID, preserving its
	// position. Reports whether a matching entry was found.
	Update(s StumbleSession) bool
}

// GoalStore is the controller's view of the persisted user goal.
// Implemented by store.Goals.
type GoalStore interface {
	Goal() string
	SetGoal(goal string)
}
