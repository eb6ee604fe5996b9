// Package battle runs the review loop as a monster fight: a card is a
// spell prompt, a graded recall is a strike, a lapse is a hit taken.
package battle

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/halvden/grimoire/internal/arbiter"
	"github.com/halvden/grimoire/internal/retrieval"
	"github.com/halvden/grimoire/internal/router"
	"github.com/halvden/grimoire/internal/screen"
	"github.com/halvden/grimoire/internal/screens/summary"
	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/store"
	"github.com/halvden/grimoire/internal/ui/components"
	"github.com/halvden/grimoire/internal/ui/layout"
)

// ResponseTimeout is how long the player has per card before the spell
// fizzles into a Timeout grade.
const ResponseTimeout = 30 * time.Second

// errNothingToReview is shown when the plan comes back empty.
var errNothingToReview = errors.New("nothing to review in this deck right now")

// BattleScreen implements screen.Screen for an active battle.
type BattleScreen struct {
	player    *session.Player
	st        *store.Store
	arb       *arbiter.Arbiter
	scheduler srs.Scheduler
	retention srs.Retention
	deckID    string

	battle    *session.Battle
	input     components.TextInput
	answer    string
	revealed  bool
	judging   bool
	verdict   *arbiter.Verdict
	suggested srs.Grade
	remaining time.Duration
	errMsg    string
}

var _ screen.Screen = (*BattleScreen)(nil)
var _ screen.KeyHintProvider = (*BattleScreen)(nil)

// New creates a battle screen for the given deck.
func New(player *session.Player, deckID string, st *store.Store, arb *arbiter.Arbiter, scheduler srs.Scheduler, retention srs.Retention) *BattleScreen {
	return &BattleScreen{
		player:    player,
		st:        st,
		arb:       arb,
		scheduler: scheduler,
		retention: retention,
		deckID:    deckID,
		input:     components.NewTextInput("Speak the words...", 200),
	}
}

func (b *BattleScreen) Init() tea.Cmd {
	return tea.Batch(b.initBattle(), b.input.Init(), tickCmd())
}

func (b *BattleScreen) Title() string {
	return "Battle"
}

func (b *BattleScreen) KeyHints() []layout.KeyHint {
	switch {
	case b.errMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case b.battle == nil:
		return nil
	case b.battle.Finished() || b.battle.Phase == session.PhaseFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	case b.revealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Accept"},
			{Key: "1-4", Description: "Perfect/Correct/Partial/Wrong"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Cast"},
			{Key: "Esc", Description: "Flee"},
		}
	}
}

// initBattle builds the plan off the UI thread and opens with the
// battle-start event.
func (b *BattleScreen) initBattle() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		plan, err := session.BuildPlan(b.player, b.deckID, now)
		if err != nil {
			return battleReadyMsg{Err: err}
		}
		if len(plan.Entries) == 0 {
			return battleReadyMsg{Err: errNothingToReview}
		}

		battle := session.NewBattle(b.player, plan, b.scheduler, b.retention, now)
		if b.st != nil {
			battle.EventRepo = b.st.EventRepo()
		}
		battle.Start()
		return battleReadyMsg{Battle: battle}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case battleReadyMsg:
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		b.battle = msg.Battle
		b.remaining = ResponseTimeout
		return b, nil

	case tickMsg:
		return b.handleTick()

	case verdictMsg:
		b.judging = false
		if msg.Err == nil && msg.Verdict != nil {
			b.verdict = msg.Verdict
			b.suggested = msg.Verdict.Grade
			b.input.Submit(b.suggested.Success())
		}
		// On judging failure the player self-grades; nothing to do here.
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	if b.battle != nil && b.battle.Phase == session.PhasePrompt && !b.revealed {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *BattleScreen) handleTick() (screen.Screen, tea.Cmd) {
	if b.battle == nil || b.battle.Finished() {
		return b, tickCmd()
	}
	if b.battle.Phase == session.PhasePrompt && !b.revealed {
		b.remaining -= time.Second
		if b.remaining <= 0 {
			return b.resolve(srs.Timeout)
		}
	}
	return b, tickCmd()
}

func (b *BattleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if b.errMsg != "" {
		if msg.String() == "enter" || msg.String() == "esc" {
			return b, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return b, nil
	}
	if b.battle == nil {
		return b, nil
	}

	if b.battle.Finished() {
		if msg.String() == "enter" {
			return b, b.finish()
		}
		return b, nil
	}

	switch b.battle.Phase {
	case session.PhasePrompt:
		if b.revealed {
			return b.handleGradeKey(msg)
		}
		if msg.String() == "enter" {
			return b.reveal()
		}
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd

	case session.PhaseFeedback:
		if msg.String() == "enter" {
			b.battle.Advance(time.Now())
			b.nextCard()
		}
		return b, nil
	}
	return b, nil
}

// reveal shows the card's back and either dispatches the arbiter or
// precomputes a suggestion from an exact-match check.
func (b *BattleScreen) reveal() (screen.Screen, tea.Cmd) {
	entry := b.battle.CurrentEntry()
	if entry == nil {
		return b, nil
	}
	b.answer = b.input.Value()
	b.revealed = true

	mode := b.battle.CurrentMode
	if mode.FreeText() && b.arb.Available() {
		b.judging = true
		return b, b.judgeCmd(entry, mode)
	}

	// Structured modes: exact match against the hidden side.
	expected := entry.Card.Back
	if mode == retrieval.Reversed {
		expected = entry.Card.Front
	}
	if answersMatch(b.answer, expected) {
		b.suggested = srs.Correct
	} else {
		b.suggested = srs.Wrong
	}
	b.input.Submit(b.suggested.Success())
	return b, nil
}

func (b *BattleScreen) judgeCmd(entry *session.QueueEntry, mode retrieval.Mode) tea.Cmd {
	req := arbiter.JudgeRequest{
		Mode:   mode,
		Front:  entry.Card.Front,
		Back:   entry.Card.Back,
		Answer: b.answer,
	}
	arb := b.arb
	return func() tea.Msg {
		v, err := arb.Judge(context.Background(), req)
		return verdictMsg{Verdict: v, Err: err}
	}
}

func (b *BattleScreen) handleGradeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if b.judging {
		return b, nil // verdict pending
	}
	switch msg.String() {
	case "1":
		return b.resolve(srs.Perfect)
	case "2":
		return b.resolve(srs.Correct)
	case "3":
		return b.resolve(srs.Partial)
	case "4":
		return b.resolve(srs.Wrong)
	case "enter":
		if b.suggested.IsValid() {
			return b.resolve(b.suggested)
		}
	}
	return b, nil
}

// resolve applies the final grade and moves to feedback (or the end).
func (b *BattleScreen) resolve(grade srs.Grade) (screen.Screen, tea.Cmd) {
	session.HandleAnswer(b.battle, grade, time.Now())
	if b.battle.Finished() {
		b.battle.End(time.Now())
	}
	b.revealed = false
	b.judging = false
	return b, nil
}

// nextCard resets per-card state after feedback.
func (b *BattleScreen) nextCard() {
	b.input = components.NewTextInput("Speak the words...", 200)
	b.answer = ""
	b.verdict = nil
	b.suggested = srs.Grade(0)
	b.remaining = ResponseTimeout
}

// finish swaps in the summary screen, which persists the snapshot.
func (b *BattleScreen) finish() tea.Cmd {
	sum := session.BuildSummary(b.battle, time.Now())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(b.player, sum, b.st),
		}
	}
}

// answersMatch compares a typed answer to the expected side, ignoring
// case and whitespace runs.
func answersMatch(got, want string) bool {
	return normalizeAnswer(got) == normalizeAnswer(want) && normalizeAnswer(want) != ""
}

func normalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
