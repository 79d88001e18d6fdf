package stumble

// Transition messages emitted by screens and delivered to the app model,
// which translates them into Controller calls. They are plain structs so
// the domain package stays free of UI imports; the app model uses them
// as tea.Msg values.

// UnlockWithNotificationMsg opens the Stumble notification from the lock
// screen, starting a fresh session draft.
type UnlockWithNotificationMsg struct{}

// UnlockNormallyMsg is a plain unlock (swipe up); no session starts.
type UnlockNormallyMsg struct{}

// CapturedMsg carries a photo from the capture device. The controller
// phase decides whether it is the before or after shot.
type CapturedMsg struct {
	Photo Photo
}

// ChallengeReadyMsg is delivered when the generator resolves. The
// generator never fails outward, so there is no error variant.
type ChallengeReadyMsg struct {
	Challenge ChallengeData
}

// ChallengeCompleteMsg reports the user finished the challenge in time.
type ChallengeCompleteMsg struct{}

// TimeExpiredMsg reports the countdown reached zero.
type TimeExpiredMsg struct{}

// SaveMsg commits the reviewed session with its caption and privacy flag.
type SaveMsg struct {
	Note      string
	IsPrivate bool
}

// UpdateSessionMsg replaces a history entry wholesale (portfolio edits).
type UpdateSessionMsg struct {
	Session StumbleSession
}

// UpdateGoalMsg stores a new growth goal from the settings screen.
type UpdateGoalMsg struct {
	Goal string
}

// NavigateMsg is a direct phase change from the bottom nav or a cancel
// action. Only resting phases are legal targets.
type NavigateMsg struct {
	Target Phase
}
