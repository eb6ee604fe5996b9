package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Dark-fantasy, readable on a black terminal.
var (
	Primary   = lipgloss.Color("#A78BFA") // Arcane Violet
	Secondary = lipgloss.Color("#34D399") // Glyph Green
	Accent    = lipgloss.Color("#FBBF24") // Ember Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F5F0E6") // Parchment
	TextDim   = lipgloss.Color("#8B8578") // Faded Ink
	BgDark    = lipgloss.Color("#120E1A") // Tower Night
	BgCard    = lipgloss.Color("#221B30") // Dusk Slate
	Border    = lipgloss.Color("#3E3452") // Worn Violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Lore = lipgloss.NewStyle().
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
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Combat
var (
	HeroHP = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	MonsterHP = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Gold = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
