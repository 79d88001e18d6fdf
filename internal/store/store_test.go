package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/elliotskunk/stumble/internal/stumble"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "stumble.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSession(id string) stumble.StumbleSession {
	return stumble.StumbleSession{
		ID:          id,
		Timestamp:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		BeforePhoto: stumble.Photo("before-" + id),
		AfterPhoto:  stumble.Photo("after-" + id),
		Challenge: &stumble.ChallengeData{
			Title:            "Session " + id,
			TimeLimitSeconds: 60,
		},
	}
}

func TestHistorySeedsDemoWhenEmpty(t *testing.T) {
	s := openTestStore(t)
	h := LoadHistory(s)

	all := h.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 demo sessions, got %d", len(all))
	}
	if all[0].Challenge.Title != "Distorted Face" {
		t.Errorf("unexpected first demo session: %q", all[0].Challenge.Title)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stumble.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	h := LoadHistory(s)
	h.Append(testSession("s1"))
	h.Append(testSession("s2"))
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	h = LoadHistory(s)
	all := h.All()
	if len(all) != 6 {
		t.Fatalf("expected 4 demo + 2 saved sessions, got %d", len(all))
	}
	if all[5].ID != "s2" {
		t.Errorf("expected newest session last, got %q", all[5].ID)
	}
	if all[5].Challenge == nil || all[5].Challenge.Title != "Session s2" {
		t.Errorf("challenge did not survive the round trip: %+v", all[5].Challenge)
	}
}

func TestHistoryPersistsOnlyNewestTen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stumble.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	h := &History{store: s}
	for i := 0; i < 15; i++ {
		h.Append(testSession(fmt.Sprintf("s%02d", i)))
	}
	if got := len(h.All()); got != 15 {
		t.Fatalf("in-memory history should be unbounded, got %d", got)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	all := LoadHistory(s).All()
	if len(all) != 10 {
		t.Fatalf("expected 10 persisted sessions, got %d", len(all))
	}
	if all[0].ID != "s05" || all[9].ID != "s14" {
		t.Errorf("expected newest tail s05..s14, got %q..%q", all[0].ID, all[9].ID)
	}
}

func TestHistoryUpdatePreservesOrder(t *testing.T) {
	h := &History{}
	h.Append(testSession("a"))
	h.Append(testSession("b"))
	h.Append(testSession("c"))

	edited := testSession("b")
	edited.Note = "edited"
	edited.IsPrivate = true
	if !h.Update(edited) {
		t.Fatal("Update should report a match for an existing ID")
	}

	all := h.All()
	if all[1].ID != "b" || all[1].Note != "edited" || !all[1].IsPrivate {
		t.Errorf("session b not updated in place: %+v", all[1])
	}
	if all[0].ID != "a" || all[2].ID != "c" {
		t.Errorf("update reordered history: %q, %q", all[0].ID, all[2].ID)
	}

	missing := testSession("zzz")
	if h.Update(missing) {
		t.Error("Update should report no match for an unknown ID")
	}
	if len(h.All()) != 3 {
		t.Errorf("failed update must not append, got %d sessions", len(h.All()))
	}
}

func TestHistoryRecoversFromCorruptSlot(t *testing.T) {
	s := openTestStore(t)
	if err := s.writeSlot(slotHistory, "{not json"); err != nil {
		t.Fatalf("writeSlot: %v", err)
	}

	all := LoadHistory(s).All()
	if len(all) != 4 {
		t.Fatalf("corrupt slot should fall back to demo sessions, got %d", len(all))
	}
}

func TestGoalDefaultsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stumble.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	g := LoadGoals(s)
	if g.Goal() != DefaultGoal {
		t.Errorf("fresh store should use the default goal, got %q", g.Goal())
	}

	g.SetGoal("Learn to talk to strangers.")
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if got := LoadGoals(s).Goal(); got != "Learn to talk to strangers." {
		t.Errorf("goal did not persist, got %q", got)
	}
}

func TestRecordLLMCall(t *testing.T) {
	s := openTestStore(t)

	err := s.RecordLLMCall(context.Background(), LLMCallRecord{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "challenge",
		InputTokens:  120,
		OutputTokens: 45,
		LatencyMs:    830,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("RecordLLMCall: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM llm_calls`).Scan(&count); err != nil {
		t.Fatalf("count llm_calls: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 call record, got %d", count)
	}
}
