package components

import (
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// Toggle is an on/off switch with a label.
type Toggle struct {
	Label string
	On    bool
}

// NewToggle creates a toggle in the given state.
func NewToggle(label string, on bool) Toggle {
	return Toggle{Label: label, On: on}
}

// Flip inverts the toggle.
func (t *Toggle) Flip() {
	t.On = !t.On
}

// View renders the toggle.
func (t Toggle) View() string {
	var sw string
	if t.On {
		sw = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("[on] ")
	} else {
		sw = lipgloss.NewStyle().Foreground(theme.TextDim).Render("[off]")
	}
	return theme.Body.Render(t.Label+"  ") + sw
}
