package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — near-black phone UI with warm accents
var (
	Primary   = lipgloss.Color("#A855F7") // Purple
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Urgent    = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#FAFAFA") // White
	TextDim   = lipgloss.Color("#A3A3A3") // Neutral 400
	TextFaint = lipgloss.Color("#525252") // Neutral 600
	BgDark    = lipgloss.Color("#0A0A0A") // Near black
	BgCard    = lipgloss.Color("#171717") // Neutral 900
	Border    = lipgloss.Color("#262626") // Neutral 800
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Private = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Countdown = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	CountdownUrgent = lipgloss.NewStyle().
			Foreground(Urgent).
			Bold(true)
)

// Components
var (
	TimerFilled = lipgloss.NewStyle().
			Background(Accent)

	TimerEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Text).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	NotificationCard = lipgloss.NewStyle().
				Background(BgCard).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(1, 2)
)
