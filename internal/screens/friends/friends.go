package friends

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/elliotskunk/stumble/internal/feed"
	"github.com/elliotskunk/stumble/internal/screen"
	"github.com/elliotskunk/stumble/internal/stumble"
	"github.com/elliotskunk/stumble/internal/ui/components"
	"github.com/elliotskunk/stumble/internal/ui/layout"
	"github.com/elliotskunk/stumble/internal/ui/theme"
)

// FriendsScreen is the home view: a static feed of friends' challenge
// attempts. When the user arrives here because their own countdown ran
// out, a notice says so.
type FriendsScreen struct {
	posts        []feed.Post
	selected     int
	showComments bool
	expired      bool
}

var _ screen.Screen = (*FriendsScreen)(nil)

// New creates a FriendsScreen. expired marks an arrival caused by a
// run-out countdown.
func New(expired bool) *FriendsScreen {
	return &FriendsScreen{
		posts:   feed.Posts(),
		expired: expired,
	}
}

func (f *FriendsScreen) Title() string {
	return "Friends"
}

func (f *FriendsScreen) Init() tea.Cmd {
	return nil
}

func (f *FriendsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if f.selected > 0 {
			f.selected--
			f.showComments = false
		}
	case "down", "j":
		if f.selected < len(f.posts)-1 {
			f.selected++
			f.showComments = false
		}
	case "c":
		f.showComments = !f.showComments
	case "p":
		return f, navigateCmd(stumble.PhasePortfolio)
	case "s":
		return f, navigateCmd(stumble.PhaseSettings)
	case "l":
		return f, navigateCmd(stumble.PhaseLockScreen)
	}

	return f, nil
}

func (f *FriendsScreen) View(width, height int) string {
	cw := components.PhoneWidth(width)

	parts := make([]string, 0, len(f.posts)+2)

	if f.expired {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Urgent).Bold(true).Width(cw).Align(lipgloss.Center).
				Render("Time's up. The moment passed."),
			"",
		)
	}

	for i, post := range f.posts {
		parts = append(parts, f.renderPost(post, i == f.selected, cw))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().MaxHeight(height).Render(content),
	)
}

func (f *FriendsScreen) renderPost(post feed.Post, selected bool, cw int) string {
	status := lipgloss.NewStyle().Foreground(theme.Success).Render("✓ completed")
	if !post.Completed {
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("✗ chickened out")
	}

	header := theme.Body.Bold(true).Render(post.User) + "  " + theme.Hint.Render(post.Age)
	body := theme.Body.Render(post.ChallengeTitle) + "\n" + status

	if selected && f.showComments {
		for _, c := range post.Comments {
			body += "\n" + theme.Hint.Render("  "+c.User+": "+c.Text)
		}
	}

	card := components.PhoneCard(header+"\n"+body, cw)
	if selected {
		card = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Width(cw-2).
			Padding(0, 1).
			Render(header + "\n" + body)
	}
	return card
}

func (f *FriendsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "C", Description: "Comments"},
		{Key: "P", Description: "Portfolio"},
		{Key: "S", Description: "Settings"},
		{Key: "L", Description: "Lock"},
	}
}

func navigateCmd(target stumble.Phase) tea.Cmd {
	return func() tea.Msg { return stumble.NavigateMsg{Target: target} }
}
