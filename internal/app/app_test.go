package app

import (
	"testing"

	"github.com/elliotskunk/stumble/internal/capture"
	"github.com/elliotskunk/stumble/internal/challenge"
	"github.com/elliotskunk/stumble/internal/stumble"
)

type fakeHistory struct {
	sessions []stumble.StumbleSession
}

func (f *fakeHistory) All() []stumble.StumbleSession  { return f.sessions }
func (f *fakeHistory) Append(s stumble.StumbleSession) { f.sessions = append(f.sessions, s) }
func (f *fakeHistory) Update(s stumble.StumbleSession) bool {
	for i := range f.sessions {
		if f.sessions[i].ID == s.ID {
			f.sessions[i] = s
			return true
		}
	}
	return false
}

type fakeGoals struct{ goal string }

func (f *fakeGoals) Goal() string        { return f.goal }
func (f *fakeGoals) SetGoal(goal string) { f.goal = goal }

func newTestModel() (*AppModel, *fakeHistory) {
	hist := &fakeHistory{}
	ctrl := stumble.NewController(hist, &fakeGoals{goal: "test goal"})
	gen := challenge.Static{Challenge: challenge.Fallback()}
	m := newAppModel(ctrl, gen, capture.NewStubDevice())
	return m, hist
}

func TestStartsOnLockScreen(t *testing.T) {
	m, _ := newTestModel()
	if m.ctrl.Phase() != stumble.PhaseLockScreen {
		t.Errorf("expected lock-screen, got %v", m.ctrl.Phase())
	}
}

func TestFullSessionFlow(t *testing.T) {
	m, hist := newTestModel()

	m.Update(stumble.UnlockWithNotificationMsg{})
	if m.ctrl.Phase() != stumble.PhaseCaptureBefore {
		t.Fatalf("after unlock expected capture-before, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.CapturedMsg{Photo: "before"})
	if m.ctrl.Phase() != stumble.PhaseAnalyzing {
		t.Fatalf("after before shot expected analyzing, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.ChallengeReadyMsg{Challenge: challenge.Fallback()})
	if m.ctrl.Phase() != stumble.PhaseChallengeActive {
		t.Fatalf("after challenge ready expected challenge-active, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.ChallengeCompleteMsg{})
	if m.ctrl.Phase() != stumble.PhaseCaptureAfter {
		t.Fatalf("after completion expected capture-after, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.CapturedMsg{Photo: "after"})
	if m.ctrl.Phase() != stumble.PhaseReview {
		t.Fatalf("after proof shot expected review, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.SaveMsg{Note: "did it", IsPrivate: true})
	if m.ctrl.Phase() != stumble.PhaseFriends {
		t.Fatalf("after save expected friends, got %v", m.ctrl.Phase())
	}

	if len(hist.sessions) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(hist.sessions))
	}
	saved := hist.sessions[0]
	if saved.Note != "did it" || !saved.IsPrivate {
		t.Errorf("saved session lost review edits: %+v", saved)
	}
	if saved.BeforePhoto != "before" || saved.AfterPhoto != "after" {
		t.Errorf("saved session lost photos: %+v", saved)
	}
}

func TestExpiryLandsOnFriendsAndDiscards(t *testing.T) {
	m, hist := newTestModel()

	m.Update(stumble.UnlockWithNotificationMsg{})
	m.Update(stumble.CapturedMsg{Photo: "before"})
	m.Update(stumble.ChallengeReadyMsg{Challenge: challenge.Fallback()})
	m.Update(stumble.TimeExpiredMsg{})

	if m.ctrl.Phase() != stumble.PhaseFriends {
		t.Fatalf("after expiry expected friends, got %v", m.ctrl.Phase())
	}
	if len(hist.sessions) != 0 {
		t.Errorf("expired session must not be saved, got %d", len(hist.sessions))
	}
	if !m.ctrl.Draft().Empty() {
		t.Error("expired draft should be discarded")
	}
}

func TestLateChallengeResultIgnoredAfterNavigation(t *testing.T) {
	m, _ := newTestModel()

	m.Update(stumble.UnlockWithNotificationMsg{})
	m.Update(stumble.CapturedMsg{Photo: "before"})
	// Abandon the session mid-generation.
	m.Update(stumble.NavigateMsg{Target: stumble.PhaseFriends})

	m.Update(stumble.ChallengeReadyMsg{Challenge: challenge.Fallback()})
	if m.ctrl.Phase() != stumble.PhaseFriends {
		t.Errorf("late challenge result must not change phase, got %v", m.ctrl.Phase())
	}
}

func TestNavigationBetweenRestingViews(t *testing.T) {
	m, _ := newTestModel()

	m.Update(stumble.UnlockNormallyMsg{})
	if m.ctrl.Phase() != stumble.PhaseFriends {
		t.Fatalf("plain unlock should land on friends, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.NavigateMsg{Target: stumble.PhasePortfolio})
	if m.ctrl.Phase() != stumble.PhasePortfolio {
		t.Fatalf("expected portfolio, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.NavigateMsg{Target: stumble.PhaseSettings})
	if m.ctrl.Phase() != stumble.PhaseSettings {
		t.Fatalf("expected settings, got %v", m.ctrl.Phase())
	}

	m.Update(stumble.UpdateGoalMsg{Goal: "new goal"})
	if m.ctrl.Phase() != stumble.PhaseFriends {
		t.Fatalf("goal update should return home, got %v", m.ctrl.Phase())
	}
	if m.ctrl.Goal() != "new goal" {
		t.Errorf("goal not stored, got %q", m.ctrl.Goal())
	}

	m.Update(stumble.NavigateMsg{Target: stumble.PhaseLockScreen})
	if m.ctrl.Phase() != stumble.PhaseLockScreen {
		t.Fatalf("expected lock-screen, got %v", m.ctrl.Phase())
	}
}
