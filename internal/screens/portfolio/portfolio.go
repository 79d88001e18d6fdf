package portfolio

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/router"
	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// PortfolioScreen lists the user's saved stumbles, newest first.
// Selecting one pushes a detail view where the note and privacy can be
// edited.
type PortfolioScreen struct {
	sessions []stumble.StumbleSession
	selected int
}

var _ screen.Screen = (*PortfolioScreen)(nil)

// New creates a PortfolioScreen from the full history (oldest first,
// as the store keeps it).
func New(history []stumble.StumbleSession) *PortfolioScreen {
	// Newest first for display.
	sessions := make([]stumble.StumbleSession, len(history))
	for i, s := range history {
		sessions[len(history)-1-i] = s
	}
	return &PortfolioScreen{sessions: sessions}
}

func (p *PortfolioScreen) Title() string {
	return "Portfolio"
}

func (p *PortfolioScreen) Init() tea.Cmd {
	return nil
}

func (p *PortfolioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.sessions)-1 {
			p.selected++
		}
	case "enter":
		if len(p.sessions) > 0 {
			sess := p.sessions[p.selected]
			return p, func() tea.Msg {
				return router.PushScreenMsg{Screen: newDetail(sess)}
			}
		}
	case "f":
		return p, navigateCmd(stumble.PhaseFriends)
	case "s":
		return p, navigateCmd(stumble.PhaseSettings)
	case "l":
		return p, navigateCmd(stumble.PhaseLockScreen)
	}

	return p, nil
}

func (p *PortfolioScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	if len(p.sessions) == 0 {
		return components.PhoneFrame(
			theme.Subtitle.Render("No stumbles yet.\nAnswer the next notification."),
			width, height,
		)
	}

	parts := make([]string, 0, len(p.sessions))
	for i, s := range p.sessions {
		parts = append(parts, renderEntry(s, i == p.selected, cw))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().MaxHeight(height).Render(content),
	)
}

func renderEntry(s stumble.StumbleSession, selected bool, cw int) string {
	title := "Untitled"
	location := ""
	if s.Challenge != nil {
		title = s.Challenge.Title
		location = s.Challenge.LocationIdentified
	}

	line := theme.Body.Bold(true).Render(title) + "  " +
		theme.Hint.Render(s.Timestamp.Format("Jan 2 15:04"))
	meta := theme.Subtitle.Render(location)
	if s.IsPrivate {
		meta += "  " + theme.Private.Render("private")
	}

	border := theme.Border
	if selected {
		border = theme.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Padding(0, 1).
		Render(line + "\n" + meta)
}

func (p *PortfolioScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Open"},
		{Key: "F", Description: "Friends"},
		{Key: "S", Description: "Settings"},
		{Key: "L", Description: "Lock"},
	}
}

func navigateCmd(target stumble.Phase) tea.Cmd {
	return func() tea.Msg { return stumble.NavigateMsg{Target: target} }
}
