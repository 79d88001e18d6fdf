package stumble

import (
	"fmt"
	"testing"
	"time"
)

// fakeHistory implements HistoryStore in memory, without persistence.
type fakeHistory struct {
	sessions []StumbleSession
}

func (h *fakeHistory) All() []StumbleSession { return h.sessions }

func (h *fakeHistory) Append(s StumbleSession) {
	h.sessions = append(h.sessions, s)
}

func (h *fakeHistory) Update(s StumbleSession) bool {
	for i := range h.sessions {
		if h.sessions[i].ID == s.ID {
			h.sessions[i] = s
			return true
		}
	}
	return false
}

// fakeGoals implements GoalStore in memory.
type fakeGoals struct {
	goal string
}

func (g *fakeGoals) Goal() string        { return g.goal }
func (g *fakeGoals) SetGoal(goal string) { g.goal = goal }

func testController() (*Controller, *fakeHistory, *fakeGoals) {
	h := &fakeHistory{}
	g := &fakeGoals{goal: "test goal"}
	c := NewController(h, g)

	seq := 0
	c.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	c.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	}
	return c, h, g
}

func TestInitialPhase(t *testing.T) {
	c, _, _ := testController()
	if c.Phase() != PhaseLockScreen {
		t.Fatalf("initial phase = %q, want %q", c.Phase(), PhaseLockScreen)
	}
	if !c.Draft().Empty() {
		t.Fatal("expected empty draft at start")
	}
}

func TestUnlockWithNotification_StartsFreshDraft(t *testing.T) {
	c, _, _ := testController()

	c.UnlockWithNotification()

	if c.Phase() != PhaseCaptureBefore {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseCaptureBefore)
	}
	d := c.Draft()
	if d.ID == "" {
		t.Fatal("expected draft to have an id")
	}
	if d.Timestamp.IsZero() {
		t.Fatal("expected draft timestamp to be set")
	}
	if d.IsPrivate {
		t.Fatal("expected draft to default to public")
	}
}

func TestUnlockWithNotification_FreshIDEachTime(t *testing.T) {
	c, _, _ := testController()

	seen := map[string]bool{}
	for range 5 {
		c.UnlockWithNotification()
		id := c.Draft().ID
		if seen[id] {
			t.Fatalf("duplicate draft id %q", id)
		}
		seen[id] = true
		c.Navigate(PhaseLockScreen)
	}
}

func TestUnlockNormally_BypassesCapture(t *testing.T) {
	c, _, _ := testController()

	c.UnlockNormally()

	if c.Phase() != PhaseFriends {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseFriends)
	}
}

func TestCaptureBefore_EntersAnalyzing(t *testing.T) {
	c, _, _ := testController()
	c.UnlockWithNotification()

	started := c.CaptureBefore("imgA")

	if !started {
		t.Fatal("expected generation to start")
	}
	if c.Phase() != PhaseAnalyzing {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseAnalyzing)
	}
	if !c.Generating() {
		t.Fatal("expected generating flag to be set")
	}
	if c.Draft().BeforePhoto != "imgA" {
		t.Fatalf("beforePhoto = %q, want %q", c.Draft().BeforePhoto, "imgA")
	}
}

func TestCaptureBefore_PhaseGated(t *testing.T) {
	c, _, _ := testController()
	c.UnlockWithNotification()
	c.CaptureBefore("imgA")

	// A second capture while analyzing must be rejected.
	if c.CaptureBefore("imgB") {
		t.Fatal("expected re-entrant capture to be rejected")
	}
	if c.Draft().BeforePhoto != "imgA" {
		t.Fatalf("beforePhoto = %q, want %q", c.Draft().BeforePhoto, "imgA")
	}
}

func TestChallengeReady_ActivatesChallenge(t *testing.T) {
	c, _, _ := testController()
	c.UnlockWithNotification()
	c.CaptureBefore("imgA")

	c.ChallengeReady(ChallengeData{Title: "T", Description: "D", LocationIdentified: "Park", TimeLimitSeconds: 90})

	if c.Phase() != PhaseChallengeActive {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseChallengeActive)
	}
	if c.Generating() {
		t.Fatal("expected generating flag to be cleared")
	}
	if c.Draft().Challenge == nil || c.Draft().Challenge.Title != "T" {
		t.Fatalf("challenge = %+v, want title T", c.Draft().Challenge)
	}
}

func TestTimeExpired_DiscardsDraft(t *testing.T) {
	c, h, _ := testController()
	c.UnlockWithNotification()
	c.CaptureBefore("imgA")
	c.ChallengeReady(ChallengeData{Title: "T", TimeLimitSeconds: 60})

	c.TimeExpired()

	if c.Phase() != PhaseFriends {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseFriends)
	}
	if !c.Draft().Empty() {
		t.Fatal("expected draft to be discarded")
	}
	if len(h.sessions) != 0 {
		t.Fatalf("history length = %d, want 0", len(h.sessions))
	}
}

func TestSaveAndClose_CommitsCompleteDraft(t *testing.T) {
	c, h, _ := testController()
	c.UnlockWithNotification()
	id := c.Draft().ID
	c.CaptureBefore("imgA")
	c.ChallengeReady(ChallengeData{Title: "T", Description: "D", LocationIdentified: "Park", TimeLimitSeconds: 90})
	c.ChallengeComplete()
	c.CaptureAfter("imgB")

	if c.Phase() != PhaseReview {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseReview)
	}

	c.SaveAndClose("felt great", false)

	if c.Phase() != PhaseFriends {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseFriends)
	}
	if !c.Draft().Empty() {
		t.Fatal("expected draft reset after save")
	}
	if len(h.sessions) != 1 {
		t.Fatalf("history length = %d, want 1", len(h.sessions))
	}

	got := h.sessions[0]
	if got.ID != id {
		t.Errorf("id = %q, want %q", got.ID, id)
	}
	if got.BeforePhoto != "imgA" || got.AfterPhoto != "imgB" {
		t.Errorf("photos = %q/%q, want imgA/imgB", got.BeforePhoto, got.AfterPhoto)
	}
	if got.Challenge.Title != "T" {
		t.Errorf("challenge title = %q, want T", got.Challenge.Title)
	}
	if got.Note != "felt great" {
		t.Errorf("note = %q, want %q", got.Note, "felt great")
	}
	if got.IsPrivate {
		t.Error("expected public session")
	}
}

func TestSaveAndClose_IncompleteDraftSilentlyDropped(t *testing.T) {
	c, h, _ := testController()
	c.UnlockWithNotification()
	c.CaptureBefore("imgA")
	// Force review without a challenge or after photo.
	c.phase = PhaseReview

	c.SaveAndClose("note", true)

	if len(h.sessions) != 0 {
		t.Fatalf("history length = %d, want 0", len(h.sessions))
	}
	if c.Phase() != PhaseFriends {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseFriends)
	}
	if !c.Draft().Empty() {
		t.Fatal("expected draft cleared even on discarded save")
	}
}

func TestUpdateSession_MatchingIDOnly(t *testing.T) {
	c, h, _ := testController()
	h.sessions = []StumbleSession{
		{ID: "a", Note: "one"},
		{ID: "b", Note: "two"},
		{ID: "c", Note: "three"},
	}

	c.UpdateSession(StumbleSession{ID: "b", Note: "edited", IsPrivate: true})

	if h.sessions[0].Note != "one" || h.sessions[2].Note != "three" {
		t.Fatal("expected other entries unchanged")
	}
	if h.sessions[1].Note != "edited" || !h.sessions[1].IsPrivate {
		t.Fatalf("entry b = %+v, want edited/private", h.sessions[1])
	}

	// Unknown id is a no-op.
	c.UpdateSession(StumbleSession{ID: "zzz", Note: "ghost"})
	if len(h.sessions) != 3 {
		t.Fatalf("history length = %d, want 3", len(h.sessions))
	}
}

func TestUpdateGoal_StoresAndReturnsHome(t *testing.T) {
	c, _, g := testController()
	c.UnlockNormally()
	c.Navigate(PhaseSettings)

	c.UpdateGoal("learn to laugh at my mistakes")

	if g.goal != "learn to laugh at my mistakes" {
		t.Fatalf("goal = %q", g.goal)
	}
	if c.Phase() != PhaseFriends {
		t.Fatalf("phase = %q, want %q", c.Phase(), PhaseFriends)
	}
}

func TestNavigate_RestingPhasesOnly(t *testing.T) {
	c, _, _ := testController()
	c.UnlockNormally()

	for _, target := range []Phase{PhasePortfolio, PhaseSettings, PhaseFriends, PhaseLockScreen} {
		c.Navigate(target)
		if c.Phase() != target {
			t.Fatalf("phase = %q, want %q", c.Phase(), target)
		}
	}

	// The capture sub-flow is unreachable by navigation.
	c.Navigate(PhaseFriends)
	for _, target := range []Phase{PhaseCaptureBefore, PhaseAnalyzing, PhaseChallengeActive, PhaseCaptureAfter, PhaseReview, PhaseIdle} {
		c.Navigate(target)
		if c.Phase() != PhaseFriends {
			t.Fatalf("navigate to %q moved phase to %q", target, c.Phase())
		}
	}
}

func TestNavigate_AbandonsInFlightDraft(t *testing.T) {
	c, h, _ := testController()
	c.UnlockWithNotification()
	c.CaptureBefore("imgA")

	c.Navigate(PhaseFriends)

	if !c.Draft().Empty() {
		t.Fatal("expected draft discarded on navigate away")
	}
	if c.Generating() {
		t.Fatal("expected generating flag cleared")
	}
	if len(h.sessions) != 0 {
		t.Fatalf("history length = %d, want 0", len(h.sessions))
	}
}

// TestFullScenario walks the complete happy path: unlock, capture,
// generate, complete, proof, save.
func TestFullScenario(t *testing.T) {
	c, h, _ := testController()

	c.UnlockWithNotification()
	c.CaptureBefore("imgA")
	c.ChallengeReady(ChallengeData{Title: "T", Description: "D", LocationIdentified: "Park", TimeLimitSeconds: 90})
	c.ChallengeComplete()
	c.CaptureAfter("imgB")
	c.SaveAndClose("felt great", false)

	if c.Phase() != PhaseFriends {
		t.Fatalf("final phase = %q, want %q", c.Phase(), PhaseFriends)
	}
	if len(h.sessions) != 1 {
		t.Fatalf("history length = %d, want 1", len(h.sessions))
	}
	s := h.sessions[0]
	if s.BeforePhoto != "imgA" || s.AfterPhoto != "imgB" || s.Challenge.Title != "T" || s.Note != "felt great" || s.IsPrivate {
		t.Fatalf("committed session = %+v", s)
	}
}

func TestPhaseAlwaysValid(t *testing.T) {
	c, _, _ := testController()

	steps := []func(){
		c.UnlockWithNotification,
		func() { c.CaptureBefore("img") },
		func() { c.ChallengeReady(ChallengeData{TimeLimitSeconds: 60}) },
		c.ChallengeComplete,
		func() { c.CaptureAfter("img2") },
		func() { c.SaveAndClose("", false) },
		func() { c.Navigate(PhasePortfolio) },
		func() { c.Navigate(PhaseLockScreen) },
		c.UnlockWithNotification,
		func() { c.CaptureBefore("img") },
		func() { c.ChallengeReady(ChallengeData{TimeLimitSeconds: 60}) },
		c.TimeExpired,
	}
	for i, step := range steps {
		step()
		if !c.Phase().Valid() {
			t.Fatalf("step %d left invalid phase %q", i, c.Phase())
		}
	}
}
