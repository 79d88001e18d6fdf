package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// TimerBar displays how much of a countdown remains.
type TimerBar struct {
	Remaining int
	Total     int
	Width     int
}

// NewTimerBar creates a timer bar for remaining/total seconds.
func NewTimerBar(remaining, total, width int) TimerBar {
	return TimerBar{Remaining: remaining, Total: total, Width: width}
}

// View renders the bar. It drains left to right as time passes and
// switches to the urgent color in the final stretch.
func (t TimerBar) View() string {
	barWidth := t.Width
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if t.Total > 0 {
		frac = float64(t.Remaining) / float64(t.Total)
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.TimerFilled
	if t.Remaining < 30 {
		fillStyle = lipgloss.NewStyle().Background(theme.Urgent)
	}

	return fillStyle.Render(strings.Repeat(" ", filled)) +
		theme.TimerEmpty.Render(strings.Repeat(" ", empty))
}
