package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/halvden/grimoire/internal/ui/theme"
)

// ProgressBar displays a horizontal bar. Used for HP and XP.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	FillColor   color.Color
}

// NewProgressBar creates a new progress bar with the default fill color.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		FillColor:   theme.Secondary,
	}
}

// NewHPBar creates a bar colored for hit points: green above 50%,
// gold above 25%, red below.
func NewHPBar(label string, current, max, width int) ProgressBar {
	percent := 0.0
	if max > 0 {
		percent = float64(current) / float64(max)
	}
	if percent < 0 {
		percent = 0
	}

	fill := theme.Success
	switch {
	case percent < 0.25:
		fill = theme.Error
	case percent < 0.5:
		fill = theme.Accent
	}

	return ProgressBar{
		Label:     fmt.Sprintf("%s %d/%d", label, maxInt(current, 0), max),
		Percent:   percent,
		Width:     width,
		FillColor: fill,
	}
}

// View renders the bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(p.FillColor).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
