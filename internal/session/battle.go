package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/halvden/grimoire/internal/game"
	"github.com/halvden/grimoire/internal/retrieval"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/store"
)

// ErrNoSuchDeck is returned when planning a battle for an unknown deck.
var ErrNoSuchDeck = errors.New("session: no such deck")

// Phase is the battle's current phase.
type Phase int

const (
	PhasePrompt   Phase = iota // a card is on screen, waiting for an answer
	PhaseFeedback              // the outcome of the last answer is on screen
	PhaseEnded                 // victory, defeat or queue exhausted
)

// monsterNames is the bestiary battles draw from.
var monsterNames = []string{
	"Mud Imp",
	"Hollow Scribe",
	"Ink Wraith",
	"Forgetting Mist",
	"Margin Ghoul",
	"Dusk Basilisk",
}

// Battle is the runtime state of one battle. It is driven by the battle
// screen: Serve presents a card, HandleAnswer grades it.
type Battle struct {
	ID     string
	Plan   *Plan
	Player *Player

	Scheduler srs.Scheduler
	Retention srs.Retention

	// RNG drives mode selection. Injected so tests are deterministic.
	RNG func() float64

	Monster game.Monster
	HeroHP  int
	Combo   int

	Index       int
	CurrentMode retrieval.Mode
	Phase       Phase

	CardsReviewed  int
	CorrectAnswers int
	XPEarned       int
	GoldEarned     int
	LevelsGained   int

	StartTime time.Time
	CardStart time.Time

	SessionHist retrieval.History
	LastOutcome *Outcome

	// EventRepo records review and battle events. Nil disables logging.
	EventRepo store.EventRepo
}

// Outcome is everything the feedback screen needs about one answer.
type Outcome struct {
	Card        QueueEntry
	Mode        retrieval.Mode
	Grade       srs.Grade
	Correct     bool
	Damage      int
	Strike      int
	Reward      game.Reward
	LevelsUp    int
	StateBefore srs.CardState
	StateAfter  srs.CardState
	NextDue     time.Time
	Defeated    bool // monster down
	HeroDown    bool
}

// NewBattle starts a battle over the given plan and records the start
// event. The monster is drawn from the bestiary and scaled to the queue.
func NewBattle(p *Player, plan *Plan, scheduler srs.Scheduler, target srs.Retention, now time.Time) *Battle {
	rng := rand.Float64
	name := monsterNames[rand.IntN(len(monsterNames))]

	b := &Battle{
		ID:        uuid.NewString(),
		Plan:      plan,
		Player:    p,
		Scheduler: scheduler,
		Retention: target,
		RNG:       rng,
		Monster:   game.NewMonster(name, len(plan.Entries)),
		HeroHP:    p.Hero.NewBattleHP(),
		StartTime: now,
	}
	b.Serve(now)
	return b
}

// Start records the battle-start event.
func (b *Battle) Start() {
	b.appendBattleEvent("start", b.StartTime)
}

// CurrentEntry returns the card currently being served, or nil when the
// queue is exhausted.
func (b *Battle) CurrentEntry() *QueueEntry {
	if b.Index >= len(b.Plan.Entries) {
		return nil
	}
	return &b.Plan.Entries[b.Index]
}

// Serve picks the retrieval mode for the current card and arms the
// response clock.
func (b *Battle) Serve(now time.Time) {
	entry := b.CurrentEntry()
	if entry == nil {
		b.Phase = PhaseEnded
		return
	}
	state := scheduleState(b.Player, entry.Legacy, entry.Card.ID)
	cardHist := b.Player.ModeHistory[entry.Card.ID]
	b.CurrentMode = retrieval.Select(state, cardHist, b.SessionHist, b.RNG)
	b.CardStart = now
	b.Phase = PhasePrompt
}

// HandleAnswer grades the current card, updates the schedule, the recall
// tracker, the mode histories and the combat state, and returns the
// outcome. The battle advances to feedback phase; call Advance to serve
// the next card.
func HandleAnswer(b *Battle, grade srs.Grade, now time.Time) *Outcome {
	entry := b.CurrentEntry()
	if entry == nil || b.Phase != PhasePrompt {
		return nil
	}

	out := &Outcome{
		Card:    *entry,
		Mode:    b.CurrentMode,
		Grade:   grade,
		Correct: grade.Success(),
	}

	// Scheduling.
	if entry.Legacy {
		s, ok := b.Player.LegacySchedules[entry.Card.ID]
		if !ok {
			s = srs.NewLegacySchedule(entry.Card.ID)
		}
		s = srs.UpdateLegacy(s, grade, now)
		b.Player.LegacySchedules[entry.Card.ID] = s
		out.NextDue = s.NextReview
	} else {
		s, ok := b.Player.Schedules[entry.Card.ID]
		if !ok {
			s = b.Scheduler.NewSchedule(entry.Card.ID, now)
		}
		out.StateBefore = s.State
		s = b.Scheduler.Update(s, grade, b.Retention, now)
		b.Player.Schedules[entry.Card.ID] = s
		out.StateAfter = s.State
		out.NextDue = s.Due
	}

	// Recall tracking and mode history.
	elapsed := now.Sub(b.CardStart)
	b.Player.Tracker.RecordAttempt(entry.Card.ID, out.Correct, elapsed)
	hist := b.Player.ModeHistory[entry.Card.ID]
	hist.Push(b.CurrentMode)
	b.Player.ModeHistory[entry.Card.ID] = hist
	b.SessionHist.Push(b.CurrentMode)

	// Combat.
	if out.Correct {
		b.Combo++
	} else {
		b.Combo = 0
	}
	out.Damage = game.Damage(grade, b.Combo)
	out.Strike = game.Strike(grade)
	b.Monster.HP -= out.Damage
	b.HeroHP -= out.Strike

	out.Reward = game.RewardFor(grade, out.StateAfter)
	out.LevelsUp = b.Player.Hero.GainXP(out.Reward.XP)
	b.Player.Hero.GainGold(out.Reward.Gold)

	// Tallies.
	b.CardsReviewed++
	if out.Correct {
		b.CorrectAnswers++
	}
	b.XPEarned += out.Reward.XP
	b.GoldEarned += out.Reward.Gold
	b.LevelsGained += out.LevelsUp

	out.Defeated = b.Monster.HP <= 0
	out.HeroDown = b.HeroHP <= 0

	b.appendReviewEvent(entry, out, elapsed, now)

	b.LastOutcome = out
	b.Index++
	if out.Defeated || out.HeroDown || b.CurrentEntry() == nil {
		b.Phase = PhaseEnded
	} else {
		b.Phase = PhaseFeedback
	}
	return out
}

// Advance serves the next card after feedback.
func (b *Battle) Advance(now time.Time) {
	if b.Phase != PhaseFeedback {
		return
	}
	b.Serve(now)
}

// Finished reports whether the battle is over.
func (b *Battle) Finished() bool {
	return b.Phase == PhaseEnded
}

// Victory reports whether the monster went down before the hero did.
func (b *Battle) Victory() bool {
	return b.Monster.HP <= 0 && b.HeroHP > 0
}

// End records the battle-end event. Call once, after Finished.
func (b *Battle) End(now time.Time) {
	b.appendBattleEvent("end", now)
}

func (b *Battle) appendReviewEvent(entry *QueueEntry, out *Outcome, elapsed time.Duration, now time.Time) {
	if b.EventRepo == nil {
		return
	}
	data := store.ReviewEventData{
		BattleID: b.ID,
		DeckID:   entry.DeckID,
		CardID:   entry.Card.ID,
		Mode:     out.Mode.String(),
		Grade:    out.Grade.String(),
		Correct:  out.Correct,
		TimeMs:   int(elapsed.Milliseconds()),
		DueAt:    out.NextDue,
	}
	if !entry.Legacy {
		data.StateBefore = out.StateBefore.String()
		data.StateAfter = out.StateAfter.String()
		data.Stability = b.Player.Schedules[entry.Card.ID].Stability
	}
	if err := b.EventRepo.AppendReviewEvent(context.Background(), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log review event: %v\n", err)
	}
}

func (b *Battle) appendBattleEvent(action string, now time.Time) {
	if b.EventRepo == nil {
		return
	}
	data := store.BattleEventData{
		BattleID: b.ID,
		DeckID:   b.Plan.DeckID,
		Action:   action,
		Monster:  b.Monster.Name,
	}
	if action == "end" {
		data.CardsReviewed = b.CardsReviewed
		data.CorrectAnswers = b.CorrectAnswers
		data.XPEarned = b.XPEarned
		data.GoldEarned = b.GoldEarned
		data.Victory = b.Victory()
		data.DurationSecs = int(now.Sub(b.StartTime).Seconds())
	}
	if err := b.EventRepo.AppendBattleEvent(context.Background(), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log battle event: %v\n", err)
	}
}
