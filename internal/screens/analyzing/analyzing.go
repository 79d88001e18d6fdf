package analyzing

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// AnalyzingScreen is shown while the challenge generator works on the
// environment photo. It is purely presentational; the app model swaps
// it out when the challenge arrives.
type AnalyzingScreen struct {
	spinner spinner.Model
}

var _ screen.Screen = (*AnalyzingScreen)(nil)

// New creates an AnalyzingScreen.
func New() *AnalyzingScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return &AnalyzingScreen{spinner: sp}
}

func (a *AnalyzingScreen) Title() string {
	return "Analyzing"
}

func (a *AnalyzingScreen) Init() tea.Cmd {
	return a.spinner.Tick
}

func (a *AnalyzingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	a.spinner, cmd = a.spinner.Update(msg)
	return a, cmd
}

func (a *AnalyzingScreen) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		a.spinner.View()+" "+theme.Body.Render("Scanning vibes..."),
		"",
		theme.Hint.Render("Cooking up a challenge."),
	)
	return components.PhoneFrame(content, width, height)
}

func (a *AnalyzingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
