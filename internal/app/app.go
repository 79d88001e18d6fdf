// Package app owns the root Bubble Tea model. Screens emit domain
// messages; the model translates them into session controller calls
// and mounts the screen matching the controller's phase.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/capture"
	"github.com/elliotskunk/stumble/internal/challenge"
	"github.com/elliotskunk/stumble/internal/router"
	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/screens/analyzing"
	"github.com/elliotskunk/stumble/internal/screens/camera"
	challengescreen "github.com/elliotskunk/stumble/internal/screens/challenge"
	"github.com/elliotskunk/stumble/internal/screens/friends"
	"github.com/elliotskunk/stumble/internal/screens/lockscreen"
	"github.com/elliotskunk/stumble/internal/screens/portfolio"
	"github.com/elliotskunk/stumble/internal/screens/review"
	"github.com/elliotskunk/stumble/internal/screens/settings"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl      *stumble.Controller
	generator challenge.Generator
	device    capture.Device

	router  *router.Router
	expired bool
	width   int
	height  int
}

// newAppModel wires the model and mounts the controller's starting
// phase (the lock screen).
func newAppModel(ctrl *stumble.Controller, gen challenge.Generator, device capture.Device) *AppModel {
	m := &AppModel{
		ctrl:      ctrl,
		generator: gen,
		device:    device,
	}
	m.router = router.New(m.screenFor(ctrl.Phase()))
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}

	case stumble.UnlockWithNotificationMsg:
		m.ctrl.UnlockWithNotification()
		return m, m.mountPhase()

	case stumble.UnlockNormallyMsg:
		m.ctrl.UnlockNormally()
		return m, m.mountPhase()

	case stumble.CapturedMsg:
		return m, m.handleCapture(msg.Photo)

	case stumble.ChallengeReadyMsg:
		// A late result after the user navigated away is dropped by
		// the controller; don't remount in that case.
		prev := m.ctrl.Phase()
		m.ctrl.ChallengeReady(msg.Challenge)
		if m.ctrl.Phase() == prev {
			return m, nil
		}
		return m, m.mountPhase()

	case stumble.ChallengeCompleteMsg:
		m.ctrl.ChallengeComplete()
		return m, m.mountPhase()

	case stumble.TimeExpiredMsg:
		m.ctrl.TimeExpired()
		m.expired = true
		return m, m.mountPhase()

	case stumble.SaveMsg:
		m.ctrl.SaveAndClose(msg.Note, msg.IsPrivate)
		return m, m.mountPhase()

	case stumble.UpdateSessionMsg:
		m.ctrl.UpdateSession(msg.Session)
		return m, nil

	case stumble.UpdateGoalMsg:
		m.ctrl.UpdateGoal(msg.Goal)
		return m, m.mountPhase()

	case stumble.NavigateMsg:
		prev := m.ctrl.Phase()
		m.ctrl.Navigate(msg.Target)
		if m.ctrl.Phase() == prev {
			return m, nil
		}
		return m, m.mountPhase()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleCapture routes a fresh photo by phase: the before shot kicks
// off challenge generation, the after shot moves to review.
func (m *AppModel) handleCapture(photo stumble.Photo) tea.Cmd {
	switch m.ctrl.Phase() {
	case stumble.PhaseCaptureBefore:
		startGeneration := m.ctrl.CaptureBefore(photo)
		cmds := []tea.Cmd{m.mountPhase()}
		if startGeneration {
			cmds = append(cmds, m.generateCmd(photo, m.ctrl.Goal()))
		}
		return tea.Batch(cmds...)

	case stumble.PhaseCaptureAfter:
		m.ctrl.CaptureAfter(photo)
		return m.mountPhase()
	}
	return nil
}

// generateCmd runs the challenge generator off the UI loop. The
// generator never fails outward, so the result is always a
// ChallengeReadyMsg.
func (m *AppModel) generateCmd(photo stumble.Photo, goal string) tea.Cmd {
	gen := m.generator
	return func() tea.Msg {
		data := gen.Generate(context.Background(), photo, goal)
		return stumble.ChallengeReadyMsg{Challenge: data}
	}
}

// mountPhase replaces the screen stack with the screen for the
// controller's current phase.
func (m *AppModel) mountPhase() tea.Cmd {
	return m.router.Replace(m.screenFor(m.ctrl.Phase()))
}

func (m *AppModel) screenFor(phase stumble.Phase) screen.Screen {
	switch phase {
	case stumble.PhaseLockScreen:
		return lockscreen.New()
	case stumble.PhaseCaptureBefore:
		return camera.New(m.device, "Capture your environment")
	case stumble.PhaseAnalyzing:
		return analyzing.New()
	case stumble.PhaseChallengeActive:
		draft := m.ctrl.Draft()
		if draft.Challenge != nil {
			return challengescreen.New(*draft.Challenge)
		}
		return challengescreen.New(challenge.Fallback())
	case stumble.PhaseCaptureAfter:
		return camera.New(m.device, "Prove it")
	case stumble.PhaseReview:
		return review.New(m.ctrl.Draft())
	case stumble.PhasePortfolio:
		return portfolio.New(m.ctrl.History())
	case stumble.PhaseSettings:
		return settings.New(m.ctrl.Goal())
	default:
		expired := m.expired
		m.expired = false
		return friends.New(expired)
	}
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, len(m.ctrl.History()), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(ctrl *stumble.Controller, gen challenge.Generator, device capture.Device) error {
	p := tea.NewProgram(newAppModel(ctrl, gen, device))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
