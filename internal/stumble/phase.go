package stumble

// Phase identifies the single active screen/mode of the app.
// Exactly one phase is active at a time; the app model mounts the
// corresponding screen and nothing else.
type Phase string

const (
	PhaseLockScreen      Phase = "lock-screen"
	PhaseIdle            Phase = "idle"
	PhaseSettings        Phase = "settings"
	PhasePortfolio       Phase = "portfolio"
	PhaseFriends         Phase = "friends"
	PhaseCaptureBefore   Phase = "capture-before"
	PhaseAnalyzing       Phase = "analyzing"
	PhaseChallengeActive Phase = "challenge-active"
	PhaseCaptureAfter    Phase = "capture-after"
	PhaseReview          Phase = "review"
)

// AllPhases lists every phase the controller may ever occupy.
var AllPhases = []Phase{
	PhaseLockScreen,
	PhaseIdle,
	PhaseSettings,
	PhasePortfolio,
	PhaseFriends,
	PhaseCaptureBefore,
	PhaseAnalyzing,
	PhaseChallengeActive,
	PhaseCaptureAfter,
	PhaseReview,
}

// Valid reports whether p is one of the defined phases.
func (p Phase) Valid() bool {
	for _, known := range AllPhases {
		if p == known {
			return true
		}
	}
	return false
}

// navigable holds the phases reachable via direct navigation (bottom nav,
// cancel actions). The capture/challenge/review sub-flow is only entered
// through UnlockWithNotification, never by navigation.
var navigable = map[Phase]bool{
	PhaseFriends:    true,
	PhasePortfolio:  true,
	PhaseSettings:   true,
	PhaseLockScreen: true,
}
