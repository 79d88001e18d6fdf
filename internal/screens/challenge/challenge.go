package challenge

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/countdown"
	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// urgentThreshold is when the countdown switches to the urgent style.
const urgentThreshold = 30 * time.Second

type timerTickMsg struct {
	remaining time.Duration
}

type timerExpiredMsg struct{}

// ChallengeScreen shows the active micro-challenge and runs its
// countdown. The countdown's goroutine callbacks are bridged into the
// Bubble Tea loop through a buffered channel.
type ChallengeScreen struct {
	data  stumble.ChallengeData
	timer *countdown.Timer

	remaining time.Duration
	events    chan tea.Msg
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.Shutdowner = (*ChallengeScreen)(nil)

// New creates a ChallengeScreen for the given challenge.
func New(data stumble.ChallengeData) *ChallengeScreen {
	return &ChallengeScreen{
		data:      data,
		timer:     countdown.New(),
		remaining: data.TimeLimit(),
		// Buffered generously so timer callbacks never block even if
		// the UI loop lags.
		events: make(chan tea.Msg, 64),
	}
}

func (c *ChallengeScreen) Title() string {
	return "Challenge"
}

func (c *ChallengeScreen) Init() tea.Cmd {
	c.timer.Start(c.data.TimeLimit(),
		func(remaining time.Duration) {
			c.events <- timerTickMsg{remaining: remaining}
		},
		func() {
			c.events <- timerExpiredMsg{}
		},
	)
	return c.waitForTimer()
}

// waitForTimer relays the next timer event into the update loop.
func (c *ChallengeScreen) waitForTimer() tea.Cmd {
	return func() tea.Msg {
		return <-c.events
	}
}

func (c *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		c.remaining = msg.remaining
		return c, c.waitForTimer()

	case timerExpiredMsg:
		return c, func() tea.Msg { return stumble.TimeExpiredMsg{} }

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "d":
			c.timer.Cancel()
			return c, func() tea.Msg { return stumble.ChallengeCompleteMsg{} }
		}
	}

	return c, nil
}

// Shutdown stops the countdown goroutine when the screen is unmounted
// for any reason.
func (c *ChallengeScreen) Shutdown() {
	c.timer.Cancel()
}

func (c *ChallengeScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	countdownStyle := theme.Countdown
	if c.remaining < urgentThreshold {
		countdownStyle = theme.CountdownUrgent
	}

	secs := int(c.remaining / time.Second)
	clock := countdownStyle.Render(fmt.Sprintf("%02d:%02d", secs/60, secs%60))

	bar := components.NewTimerBar(secs, c.data.TimeLimitSeconds, cw).View()

	card := components.PhoneCard(
		theme.Title.Render(c.data.Title)+"\n\n"+
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(c.data.Description),
		cw,
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Detected: "+c.data.LocationIdentified),
		"",
		card,
		"",
		clock,
		bar,
		"",
		theme.Hint.Render("Do it. Right now."),
	)

	return components.PhoneFrame(content, width, height)
}

func (c *ChallengeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "I did it"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
