package portfolio

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// detailScreen shows one saved stumble. Note and privacy edits are
// committed immediately; everything else is frozen at save time.
type detailScreen struct {
	session stumble.StumbleSession

	note    components.TextInput
	private components.Toggle
	editing bool
}

var _ screen.Screen = (*detailScreen)(nil)

func newDetail(s stumble.StumbleSession) *detailScreen {
	note := components.NewTextInput("Add a note", 120)
	note.SetValue(s.Note)
	note.Blur()
	return &detailScreen{
		session: s,
		note:    note,
		private: components.NewToggle("Private", s.IsPrivate),
	}
}

func (d *detailScreen) Title() string {
	return "Stumble"
}

func (d *detailScreen) Init() tea.Cmd {
	return nil
}

func (d *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	if d.editing {
		switch kmsg.String() {
		case "enter", "esc":
			d.editing = false
			d.note.Blur()
			return d, d.commit()
		default:
			var cmd tea.Cmd
			d.note, cmd = d.note.Update(msg)
			return d, cmd
		}
	}

	switch kmsg.String() {
	case "n":
		d.editing = true
		return d, d.note.Focus()
	case "p":
		d.private.Flip()
		return d, d.commit()
	}

	return d, nil
}

// commit emits the edited session for the history store.
func (d *detailScreen) commit() tea.Cmd {
	updated := d.session
	updated.Note = d.note.Value()
	updated.IsPrivate = d.private.On
	d.session = updated
	return func() tea.Msg {
		return stumble.UpdateSessionMsg{Session: updated}
	}
}

func (d *detailScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	title := "Untitled"
	desc := ""
	location := ""
	if d.session.Challenge != nil {
		title = d.session.Challenge.Title
		desc = d.session.Challenge.Description
		location = d.session.Challenge.LocationIdentified
	}

	pair := lipgloss.JoinHorizontal(lipgloss.Top,
		components.PhoneCard(theme.Subtitle.Render("Before"), cw/2),
		" ",
		components.PhoneCard(theme.Subtitle.Render("After"), cw/2),
	)

	noteView := theme.Hint.Render("n add a note")
	if d.editing || d.note.Value() != "" {
		noteView = d.note.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(title),
		theme.Subtitle.Render(location+" · "+d.session.Timestamp.Format("Jan 2 15:04")),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).Render(desc),
		"",
		pair,
		"",
		noteView,
		d.private.View(),
	)

	return components.PhoneFrame(content, width, height)
}

func (d *detailScreen) KeyHints() []layout.KeyHint {
	if d.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "N", Description: "Note"},
		{Key: "P", Description: "Privacy"},
		{Key: "Esc", Description: "Back"},
	}
}
