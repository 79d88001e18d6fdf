package settings

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// SettingsScreen edits the self-improvement goal that steers challenge
// generation.
type SettingsScreen struct {
	goal    components.TextInput
	saved   string
	editing bool
}

var _ screen.Screen = (*SettingsScreen)(nil)

// New creates a SettingsScreen pre-filled with the current goal.
func New(goal string) *SettingsScreen {
	input := components.NewTextInput("Your goal", 200)
	input.SetValue(goal)
	input.Blur()
	return &SettingsScreen{goal: input, saved: goal}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.editing {
		switch kmsg.String() {
		case "enter":
			s.editing = false
			s.goal.Blur()
			goal := s.goal.Value()
			if goal == "" || goal == s.saved {
				return s, nil
			}
			return s, func() tea.Msg { return stumble.UpdateGoalMsg{Goal: goal} }
		case "esc":
			s.editing = false
			s.goal.SetValue(s.saved)
			s.goal.Blur()
			return s, nil
		default:
			var cmd tea.Cmd
			s.goal, cmd = s.goal.Update(msg)
			return s, cmd
		}
	}

	switch kmsg.String() {
	case "e", "enter":
		s.editing = true
		return s, s.goal.Focus()
	case "f":
		return s, navigateCmd(stumble.PhaseFriends)
	case "p":
		return s, navigateCmd(stumble.PhasePortfolio)
	case "l":
		return s, navigateCmd(stumble.PhaseLockScreen)
	}

	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	goalCard := components.PhoneCard(
		theme.Subtitle.Render("Your goal")+"\n"+s.goal.View(),
		cw,
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Settings"),
		"",
		goalCard,
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).
			Render("Challenges are generated from your goal and wherever you happen to be."),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).
			Render("Examples:\n\"Become more confident at the gym\"\n\"Learn to laugh at my mistakes\"\n\"Practice public speaking skills\""),
		"",
		theme.Hint.Render("l lock phone"),
	)

	return components.PhoneFrame(content, width, height)
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Discard"},
		}
	}
	return []layout.KeyHint{
		{Key: "E", Description: "Edit goal"},
		{Key: "F", Description: "Friends"},
		{Key: "P", Description: "Portfolio"},
		{Key: "L", Description: "Lock"},
	}
}

func navigateCmd(target stumble.Phase) tea.Cmd {
	return func() tea.Msg { return stumble.NavigateMsg{Target: target} }
}
