package review

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// ReviewScreen shows the finished before/after pair and lets the user
// caption it and choose privacy before saving.
type ReviewScreen struct {
	draft stumble.SessionDraft

	note    components.TextInput
	private components.Toggle
	editing bool
}

var _ screen.Screen = (*ReviewScreen)(nil)

// New creates a ReviewScreen for the completed draft.
func New(draft stumble.SessionDraft) *ReviewScreen {
	note := components.NewTextInput("How did it feel?", 120)
	note.Blur()
	return &ReviewScreen{
		draft:   draft,
		note:    note,
		private: components.NewToggle("Private", draft.IsPrivate),
	}
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	if r.editing {
		switch kmsg.String() {
		case "enter", "esc":
			r.editing = false
			r.note.Blur()
			return r, nil
		default:
			var cmd tea.Cmd
			r.note, cmd = r.note.Update(msg)
			return r, cmd
		}
	}

	switch kmsg.String() {
	case "n":
		r.editing = true
		return r, r.note.Focus()
	case "p":
		r.private.Flip()
		return r, nil
	case "enter":
		note := r.note.Value()
		private := r.private.On
		return r, func() tea.Msg {
			return stumble.SaveMsg{Note: note, IsPrivate: private}
		}
	}

	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	title := "Challenge Complete"
	if r.draft.Challenge != nil {
		title = r.draft.Challenge.Title
	}

	pair := lipgloss.JoinHorizontal(lipgloss.Top,
		components.PhoneCard(theme.Subtitle.Render("Before")+"\n"+photoThumb(r.draft.BeforePhoto), cw/2),
		" ",
		components.PhoneCard(theme.Subtitle.Render("After")+"\n"+photoThumb(r.draft.AfterPhoto), cw/2),
	)

	noteLabel := theme.Hint.Render("n add a note")
	if r.editing || r.note.Value() != "" {
		noteLabel = r.note.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(title),
		"",
		pair,
		"",
		noteLabel,
		r.private.View(),
		"",
		components.NewButton("SAVE STUMBLE", !r.editing, nil).View(),
	)

	return components.PhoneFrame(content, width, height)
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	if r.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save"},
		{Key: "N", Description: "Note"},
		{Key: "P", Description: "Privacy"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// photoThumb stands in for an image preview in the terminal.
func photoThumb(p stumble.Photo) string {
	if p == "" {
		return theme.Hint.Render("(missing)")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("▦ photo")
}
