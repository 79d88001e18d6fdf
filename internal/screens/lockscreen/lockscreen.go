package lockscreen

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

type tickMsg time.Time

// LockScreen is the phone lock screen: a live clock and the Stumble
// notification inviting the user to start a session.
type LockScreen struct {
	now time.Time
}

var _ screen.Screen = (*LockScreen)(nil)

// New creates a LockScreen.
func New() *LockScreen {
	return &LockScreen{now: time.Now()}
}

func (l *LockScreen) Title() string {
	return ""
}

func (l *LockScreen) Init() tea.Cmd {
	return tickCmd()
}

func (l *LockScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		l.now = time.Time(msg)
		return l, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return l, func() tea.Msg { return stumble.UnlockWithNotificationMsg{} }
		case "s":
			return l, func() tea.Msg { return stumble.UnlockNormallyMsg{} }
		}
	}

	return l, nil
}

func (l *LockScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	clock := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(l.now.Format("15:04"))

	date := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(l.now.Format("Monday, January 2"))

	notification := theme.NotificationCard.Width(cw).Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("STUMBLE") + "\n" +
			theme.Body.Render("Time to stumble.") + "\n" +
			theme.Hint.Render("Open to capture your surroundings."),
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		clock,
		date,
		"",
		notification,
		"",
		theme.Hint.Render("enter open notification · s swipe up"),
	)

	return components.PhoneFrame(content, width, height)
}

func (l *LockScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open notification"},
		{Key: "S", Description: "Swipe up"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// tickCmd returns a 1-second tick command to keep the clock current.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
