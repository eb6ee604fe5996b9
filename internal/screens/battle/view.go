package battle

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/halvden/grimoire/internal/retrieval"
	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/ui/components"
	"github.com/halvden/grimoire/internal/ui/theme"
)

// modeInstructions tells the player what each retrieval mode asks for.
var modeInstructions = map[retrieval.Mode]string{
	retrieval.Standard: "Recall the incantation.",
	retrieval.Reversed: "The incantation is shown. Recall what it invokes.",
	retrieval.Teach:    "Teach this spell, in your own words, to an invisible apprentice.",
	retrieval.Connect:  "Bind this spell to something else you know.",
	retrieval.Generate: "Conjure your own example from the cue alone.",
}

func (b *BattleScreen) View(width, height int) string {
	switch {
	case b.errMsg != "":
		return b.renderError(width, height)
	case b.battle == nil:
		return centered(width, height, theme.Hint.Render("The monster approaches..."))
	case b.battle.Finished():
		return b.renderFeedback(width, height, true)
	case b.battle.Phase == session.PhaseFeedback:
		return b.renderFeedback(width, height, false)
	default:
		return b.renderPrompt(width, height)
	}
}

func (b *BattleScreen) renderError(width, height int) string {
	return centered(width, height,
		theme.Incorrect.Render(b.errMsg)+"\n\n"+theme.Hint.Render("Press Esc to return"))
}

func (b *BattleScreen) renderPrompt(width, height int) string {
	bt := b.battle
	entry := bt.CurrentEntry()
	if entry == nil {
		return ""
	}

	var out strings.Builder

	out.WriteString(b.renderCombatBars(width))
	out.WriteString("\n")
	out.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	out.WriteString("\n\n")

	// Queue position and timer.
	mins := int(b.remaining.Minutes())
	secs := int(b.remaining.Seconds()) % 60
	info := fmt.Sprintf("Spell %d/%d  ·  %s  ·  %d:%02d",
		bt.Index+1, len(bt.Plan.Entries),
		strings.ToUpper(bt.CurrentMode.String()),
		mins, secs)
	out.WriteString(centerLine(width, theme.Subtitle.Render(info)))
	out.WriteString("\n\n")

	// The cue. Reversed mode shows the back.
	cue := entry.Card.Front
	if bt.CurrentMode == retrieval.Reversed {
		cue = entry.Card.Back
	}
	out.WriteString(centerLine(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(cue)))
	out.WriteString("\n")
	if entry.Card.Lore != "" {
		out.WriteString(centerLine(width, theme.Lore.Render(entry.Card.Lore)))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(centerLine(width, theme.Hint.Render(modeInstructions[bt.CurrentMode])))
	out.WriteString("\n\n")

	if b.revealed {
		out.WriteString(b.renderReveal(width, entry))
	} else {
		out.WriteString(centerLine(width, "Answer: "+b.input.View()))
	}

	return out.String()
}

// renderReveal shows the hidden side and the grade suggestion while the
// player picks a final grade.
func (b *BattleScreen) renderReveal(width int, entry *session.QueueEntry) string {
	var out strings.Builder

	hidden := entry.Card.Back
	if b.battle.CurrentMode == retrieval.Reversed {
		hidden = entry.Card.Front
	}
	out.WriteString(centerLine(width, theme.Body.Render("The grimoire reads: ")+
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(hidden)))
	out.WriteString("\n")
	if b.answer != "" {
		out.WriteString(centerLine(width, theme.Hint.Render("You said: "+b.answer)))
		out.WriteString("\n")
	}
	out.WriteString("\n")

	switch {
	case b.judging:
		out.WriteString(centerLine(width, theme.Hint.Render("The arbiter weighs your answer...")))
	case b.verdict != nil:
		gradeStyle := theme.Correct
		if !b.verdict.Grade.Success() {
			gradeStyle = theme.Incorrect
		}
		out.WriteString(centerLine(width, "Arbiter's verdict: "+gradeStyle.Render(strings.ToUpper(b.verdict.Grade.String()))))
		out.WriteString("\n")
		out.WriteString(centerLine(width, theme.Hint.Render(b.verdict.Feedback)))
		out.WriteString("\n\n")
		out.WriteString(centerLine(width, theme.Subtitle.Render("Enter to accept, or grade yourself: 1 perfect · 2 correct · 3 partial · 4 wrong")))
	default:
		label := "a miss"
		if b.suggested.Success() {
			label = "a hit"
		}
		out.WriteString(centerLine(width, theme.Subtitle.Render(
			fmt.Sprintf("Looks like %s. Enter to accept, or grade yourself: 1 perfect · 2 correct · 3 partial · 4 wrong", label))))
	}

	return out.String()
}

func (b *BattleScreen) renderFeedback(width, height int, final bool) string {
	bt := b.battle
	out := bt.LastOutcome
	if out == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(b.renderCombatBars(width))
	sb.WriteString("\n\n")

	if out.Correct {
		sb.WriteString(centerLine(width, theme.Correct.Render(
			fmt.Sprintf("The spell lands for %d damage!", out.Damage))))
		if bt.Combo > 1 {
			sb.WriteString("\n")
			sb.WriteString(centerLine(width, theme.Subtitle.Render(fmt.Sprintf("combo ×%d", bt.Combo))))
		}
		sb.WriteString("\n\n")
		sb.WriteString(centerLine(width, theme.Body.Render(
			fmt.Sprintf("+%d XP   +%d gold", out.Reward.XP, out.Reward.Gold))))
		if out.LevelsUp > 0 {
			sb.WriteString("\n")
			sb.WriteString(centerLine(width, theme.Correct.Render("LEVEL UP!")))
		}
	} else {
		verb := "fizzles"
		if out.Grade == srs.Timeout {
			verb = "fizzles out of time"
		}
		sb.WriteString(centerLine(width, theme.Incorrect.Render(
			fmt.Sprintf("The spell %s. %s strikes for %d!", verb, bt.Monster.Name, out.Strike))))
		sb.WriteString("\n\n")
		sb.WriteString(centerLine(width, theme.Body.Render("The words were: ")+
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(out.Card.Card.Back)))
	}

	sb.WriteString("\n\n")
	if !out.NextDue.IsZero() {
		sb.WriteString(centerLine(width, theme.Hint.Render(
			"This spell returns "+out.NextDue.Format("Mon, Jan 2"))))
		sb.WriteString("\n")
	}

	if final {
		sb.WriteString("\n")
		switch {
		case bt.Victory():
			sb.WriteString(centerLine(width, theme.Correct.Render(bt.Monster.Name+" is defeated!")))
		case bt.HeroHP <= 0:
			sb.WriteString(centerLine(width, theme.Incorrect.Render("You stagger from the tower...")))
		default:
			sb.WriteString(centerLine(width, theme.Subtitle.Render("The queue is exhausted. The battle ends.")))
		}
		sb.WriteString("\n")
		sb.WriteString(centerLine(width, theme.Hint.Render("Enter to see the tally")))
	}

	return sb.String()
}

func (b *BattleScreen) renderCombatBars(width int) string {
	bt := b.battle
	barWidth := (width - 8) / 2
	if barWidth < 12 {
		barWidth = 12
	}
	hero := components.NewHPBar(bt.Player.Hero.Name, bt.HeroHP, bt.Player.Hero.NewBattleHP(), barWidth)
	monster := components.NewHPBar(bt.Monster.Name, bt.Monster.HP, bt.Monster.MaxHP, barWidth)
	return "  " + hero.View() + "    " + monster.View()
}

func centerLine(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

func centered(width, height int, s string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(s)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
