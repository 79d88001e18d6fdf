package camera

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/capture"
	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// CameraScreen drives one capture: the environment shot before the
// challenge or the proof shot after. The label tells the user which.
type CameraScreen struct {
	device  capture.Device
	label   string
	lastErr error
}

var _ screen.Screen = (*CameraScreen)(nil)

// New creates a CameraScreen using the given device. label is shown to
// the user, e.g. "Capture your environment".
func New(device capture.Device, label string) *CameraScreen {
	return &CameraScreen{device: device, label: label}
}

func (c *CameraScreen) Title() string {
	return "Camera"
}

func (c *CameraScreen) Init() tea.Cmd {
	return nil
}

func (c *CameraScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "enter", " ", "space":
		photo, err := c.device.Capture()
		if err != nil {
			c.lastErr = err
			return c, nil
		}
		c.lastErr = nil
		return c, func() tea.Msg { return stumble.CapturedMsg{Photo: photo} }
	}

	return c, nil
}

func (c *CameraScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	viewfinder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Height(7).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Hint.Render("[ " + c.device.Name() + " ]"))

	parts := []string{
		theme.Title.Render(c.label),
		"",
		viewfinder,
		"",
		components.NewButton("SNAP", true, nil).View(),
	}

	if c.lastErr != nil {
		parts = append(parts, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("Capture failed: %v", c.lastErr)),
			theme.Hint.Render("Press enter to retry."),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return components.PhoneFrame(content, width, height)
}

func (c *CameraScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Snap"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
