package review

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/elliotskunk/stumble/internal/stumble"
)

func testDraft() stumble.SessionDraft {
	return stumble.SessionDraft{
		ID:          "d1",
		BeforePhoto: "before",
		AfterPhoto:  "after",
		Challenge: &stumble.ChallengeData{
			Title:            "Wall Sit",
			TimeLimitSeconds: 120,
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSaveEmitsNoteAndPrivacy(t *testing.T) {
	s := New(testDraft())

	// Toggle privacy, then save.
	s.Update(keyPress('p'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("save should emit a command")
	}

	msg, ok := cmd().(stumble.SaveMsg)
	if !ok {
		t.Fatalf("expected SaveMsg, got %T", cmd())
	}
	if !msg.IsPrivate {
		t.Error("privacy toggle not reflected in save")
	}
}

func TestNoteEditingSwallowsSave(t *testing.T) {
	s := New(testDraft())

	s.Update(keyPress('n'))
	// Enter while editing closes the note, it must not save.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		if _, ok := cmd().(stumble.SaveMsg); ok {
			t.Error("enter while editing must not emit SaveMsg")
		}
	}
}
