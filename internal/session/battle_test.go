package session

import (
	"testing"
	"time"

	"github.com/halvden/grimoire/internal/game"
	"github.com/halvden/grimoire/internal/srs"
)

// newTestBattle builds a deterministic battle: fixed RNG (always draws
// the first eligible mode) and no event logging.
func newTestBattle(t *testing.T, p *Player, deckID string) *Battle {
	t.Helper()
	plan, err := BuildPlan(p, deckID, testNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	b := &Battle{
		ID:        "battle-test",
		Plan:      plan,
		Player:    p,
		Scheduler: srs.NewScheduler(srs.DefaultParams()),
		Retention: srs.DefaultRetention,
		RNG:       func() float64 { return 0 },
		Monster:   game.NewMonster("Test Wisp", len(plan.Entries)),
		HeroHP:    p.Hero.NewBattleHP(),
		StartTime: testNow,
	}
	b.Serve(testNow)
	return b
}

func TestHandleAnswerCorrectUpdatesEverything(t *testing.T) {
	p := testPlayer()
	b := newTestBattle(t, p, "starter")

	entry := b.CurrentEntry()
	if entry == nil {
		t.Fatal("no current entry")
	}
	cardID := entry.Card.ID
	monsterHP := b.Monster.HP

	out := HandleAnswer(b, srs.Correct, testNow.Add(4*time.Second))
	if out == nil {
		t.Fatal("nil outcome")
	}

	// Schedule created and advanced.
	s, ok := p.Schedules[cardID]
	if !ok {
		t.Fatal("no schedule after first review")
	}
	if !s.Due.After(testNow) {
		t.Errorf("due = %v, want after now", s.Due)
	}
	if out.StateBefore != srs.StateNew {
		t.Errorf("state before = %v, want New", out.StateBefore)
	}

	// Tracker recorded the attempt.
	stats, ok := p.Tracker.Stats(cardID)
	if !ok || stats.Attempts != 1 || stats.Correct != 1 {
		t.Errorf("tracker stats = %+v", stats)
	}

	// Mode history recorded on both card and session.
	if p.ModeHistory[cardID].Len() != 1 {
		t.Errorf("card history len = %d, want 1", p.ModeHistory[cardID].Len())
	}
	if b.SessionHist.Len() != 1 {
		t.Errorf("session history len = %d, want 1", b.SessionHist.Len())
	}

	// Combat: monster took damage, hero untouched and rewarded.
	if b.Monster.HP >= monsterHP {
		t.Errorf("monster HP %d, want below %d", b.Monster.HP, monsterHP)
	}
	if out.Strike != 0 {
		t.Errorf("strike = %d on success", out.Strike)
	}
	if p.Hero.XP == 0 || p.Hero.Gold == 0 {
		t.Errorf("hero not rewarded: %+v", p.Hero)
	}
	if b.CardsReviewed != 1 || b.CorrectAnswers != 1 {
		t.Errorf("tallies = %d/%d", b.CorrectAnswers, b.CardsReviewed)
	}
}

func TestHandleAnswerFailureStrikesBack(t *testing.T) {
	p := testPlayer()
	b := newTestBattle(t, p, "starter")
	heroHP := b.HeroHP
	monsterHP := b.Monster.HP

	out := HandleAnswer(b, srs.Wrong, testNow.Add(10*time.Second))
	if out.Damage != 0 {
		t.Errorf("damage = %d on failure", out.Damage)
	}
	if b.HeroHP >= heroHP {
		t.Errorf("hero HP %d, want below %d", b.HeroHP, heroHP)
	}
	if b.Monster.HP != monsterHP {
		t.Errorf("monster HP changed on failure")
	}
	if b.Combo != 0 {
		t.Errorf("combo = %d after failure", b.Combo)
	}
	if p.Hero.XP != 0 {
		t.Errorf("xp = %d for failed recall", p.Hero.XP)
	}
}

func TestTimeoutStrikesHarder(t *testing.T) {
	wrong := game.Strike(srs.Wrong)
	timeout := game.Strike(srs.Timeout)
	if timeout <= wrong {
		t.Errorf("timeout strike %d, want above wrong strike %d", timeout, wrong)
	}
}

func TestComboGrowsDamage(t *testing.T) {
	p := testPlayer()
	b := newTestBattle(t, p, "starter")

	out1 := HandleAnswer(b, srs.Correct, testNow.Add(time.Second))
	b.Advance(testNow.Add(2 * time.Second))
	if b.Finished() {
		t.Skip("monster down after one hit")
	}
	out2 := HandleAnswer(b, srs.Correct, testNow.Add(3*time.Second))

	if out2.Damage <= out1.Damage {
		t.Errorf("second hit %d, want above first %d", out2.Damage, out1.Damage)
	}
}

func TestBattleEndsWhenMonsterFalls(t *testing.T) {
	p := testPlayer()
	b := newTestBattle(t, p, "starter")

	for i := 0; !b.Finished() && i < 100; i++ {
		HandleAnswer(b, srs.Perfect, testNow.Add(time.Duration(i)*time.Second))
		if !b.Finished() {
			b.Advance(testNow.Add(time.Duration(i) * time.Second))
		}
	}

	if !b.Finished() {
		t.Fatal("battle never ended")
	}
	if !b.Victory() {
		t.Errorf("perfect streak should win: monster HP %d, hero HP %d", b.Monster.HP, b.HeroHP)
	}
}

func TestPhaseTransitions(t *testing.T) {
	p := testPlayer()
	b := newTestBattle(t, p, "starter")

	if b.Phase != PhasePrompt {
		t.Fatalf("phase = %v, want prompt", b.Phase)
	}

	// Answering out of phase does nothing.
	b.Phase = PhaseFeedback
	if out := HandleAnswer(b, srs.Correct, testNow); out != nil {
		t.Error("answer accepted during feedback phase")
	}
	b.Phase = PhasePrompt

	out := HandleAnswer(b, srs.Partial, testNow.Add(time.Second))
	if out == nil {
		t.Fatal("nil outcome")
	}
	if b.Phase != PhaseFeedback && !b.Finished() {
		t.Errorf("phase = %v after answer", b.Phase)
	}

	before := b.Index
	b.Advance(testNow.Add(2 * time.Second))
	if !b.Finished() && b.CurrentEntry() == nil {
		t.Error("advance lost the queue")
	}
	if b.Index != before {
		t.Error("advance must not skip cards")
	}
}

func TestSummaryAggregates(t *testing.T) {
	p := testPlayer()
	b := newTestBattle(t, p, "starter")

	HandleAnswer(b, srs.Correct, testNow.Add(time.Second))
	if !b.Finished() {
		b.Advance(testNow.Add(2 * time.Second))
		HandleAnswer(b, srs.Wrong, testNow.Add(3*time.Second))
	}

	sum := BuildSummary(b, testNow.Add(5*time.Minute))
	if sum.CardsReviewed != b.CardsReviewed {
		t.Errorf("cards = %d, want %d", sum.CardsReviewed, b.CardsReviewed)
	}
	wantAcc := float64(b.CorrectAnswers) / float64(b.CardsReviewed)
	if sum.Accuracy != wantAcc {
		t.Errorf("accuracy = %v, want %v", sum.Accuracy, wantAcc)
	}
	if sum.Duration != 5*time.Minute {
		t.Errorf("duration = %v", sum.Duration)
	}
	if sum.XPEarned != b.XPEarned || sum.GoldEarned != b.GoldEarned {
		t.Errorf("rewards = %d/%d", sum.XPEarned, sum.GoldEarned)
	}
}
