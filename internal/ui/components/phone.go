package components

import (
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// PhoneWidth returns the uniform inner width used for phone-style
// content so cards and notifications visually align.
func PhoneWidth(frameWidth int) int {
	// Leave room for the frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 44 {
		w = 44
	}
	if w < 20 {
		w = 20
	}
	return w
}

// PhoneFrame wraps content in a double-border frame shaped like a
// phone screen, centered within the given dimensions.
func PhoneFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// PhoneCard wraps content in a rounded-border card at the given
// content width.
func PhoneCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}
