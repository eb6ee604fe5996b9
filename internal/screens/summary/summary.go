// Package summary shows the battle tally and persists the player
// snapshot before returning to the tower hall.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halvden/grimoire/internal/router"
	"github.com/halvden/grimoire/internal/screen"
	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/store"
	"github.com/halvden/grimoire/internal/ui/layout"
	"github.com/halvden/grimoire/internal/ui/theme"
)

// snapshotKeep bounds the snapshot history retained per database.
const snapshotKeep = 20

// SummaryScreen displays the battle summary.
type SummaryScreen struct {
	player  *session.Player
	summary *session.Summary
	st      *store.Store
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// snapshotSavedMsg reports the outcome of the background save.
type snapshotSavedMsg struct{ err error }

// New creates a summary screen. The store may be nil; the tally then
// shows without persisting.
func New(player *session.Player, summary *session.Summary, st *store.Store) *SummaryScreen {
	return &SummaryScreen{player: player, summary: summary, st: st}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.st == nil {
		return nil
	}
	return s.saveSnapshot()
}

// saveSnapshot writes the post-battle player state and prunes old
// snapshots.
func (s *SummaryScreen) saveSnapshot() tea.Cmd {
	player := s.player
	st := s.st
	return func() tea.Msg {
		ctx := context.Background()
		seq, err := st.NextSequence(ctx)
		if err != nil {
			return snapshotSavedMsg{err: err}
		}
		snap := &store.Snapshot{
			Sequence:  seq,
			Timestamp: time.Now(),
			Data:      player.ToSnapshot(),
		}
		if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
			return snapshotSavedMsg{err: err}
		}
		return snapshotSavedMsg{err: st.SnapshotRepo().Prune(ctx, snapshotKeep)}
	}
}

func (s *SummaryScreen) Title() string {
	return "Battle Tally"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Return to the hall"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotSavedMsg:
		s.saveErr = msg.err
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	headline := "Victory over " + sum.Monster + "!"
	headStyle := theme.Correct
	if !sum.Victory {
		headline = sum.Monster + " escapes into the dark."
		headStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(headStyle.Render(headline)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Spells: %d        Landed: %d        Accuracy: %.0f%%",
		sum.CardsReviewed, sum.CorrectAnswers, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Spoils")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	spoils := fmt.Sprintf("+%d XP        %s", sum.XPEarned,
		theme.Gold.Render(fmt.Sprintf("+%d gold", sum.GoldEarned)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, spoils))
	b.WriteString("\n")

	if sum.LevelsGained > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render(fmt.Sprintf("Level up! You are now level %d.", sum.HeroLevel))))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("warning: progress not saved: "+s.saveErr.Error())))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
