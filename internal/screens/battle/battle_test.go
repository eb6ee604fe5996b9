package battle

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/halvden/grimoire/internal/screen"
	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/srs"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testBattleScreen builds a screen with a live battle over the starter
// deck's fresh cards, skipping the async init command.
func testBattleScreen(t *testing.T) *BattleScreen {
	t.Helper()
	player := session.NewPlayer("Tester")
	scheduler := srs.NewScheduler(srs.DefaultParams())

	b := New(player, player.Decks[0].ID, nil, nil, scheduler, srs.DefaultRetention)

	now := time.Now()
	plan, err := session.BuildPlan(player, player.Decks[0].ID, now)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	var scr screen.Screen = b
	scr, _ = scr.Update(battleReadyMsg{Battle: session.NewBattle(player, plan, scheduler, srs.DefaultRetention, now)})
	return scr.(*BattleScreen)
}

func typeAnswer(t *testing.T, scr screen.Screen, answer string) screen.Screen {
	t.Helper()
	for _, r := range answer {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestBattleScreen_Title(t *testing.T) {
	b := testBattleScreen(t)
	if b.Title() != "Battle" {
		t.Errorf("Title = %q, want %q", b.Title(), "Battle")
	}
}

func TestBattleScreen_View_Loading(t *testing.T) {
	player := session.NewPlayer("Tester")
	b := New(player, player.Decks[0].ID, nil, nil, srs.NewScheduler(srs.DefaultParams()), srs.DefaultRetention)
	if b.View(80, 24) == "" {
		t.Error("expected non-empty view while the battle loads")
	}
}

func TestBattleScreen_View_Error(t *testing.T) {
	player := session.NewPlayer("Tester")
	b := New(player, player.Decks[0].ID, nil, nil, srs.NewScheduler(srs.DefaultParams()), srs.DefaultRetention)

	var scr screen.Screen = b
	scr, _ = scr.Update(battleReadyMsg{Err: errNothingToReview})
	b = scr.(*BattleScreen)

	if b.errMsg == "" {
		t.Fatal("expected error message")
	}
	if b.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestBattleScreen_RevealSuggestsFromExactMatch(t *testing.T) {
	b := testBattleScreen(t)
	entry := b.battle.CurrentEntry()

	var scr screen.Screen = typeAnswer(t, b, entry.Card.Back)
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	b = scr.(*BattleScreen)

	if !b.revealed {
		t.Fatal("expected reveal after Enter")
	}
	if b.suggested != srs.Correct {
		t.Errorf("suggested = %v, want Correct for an exact match", b.suggested)
	}
}

func TestBattleScreen_WrongAnswerSuggestsWrong(t *testing.T) {
	b := testBattleScreen(t)

	var scr screen.Screen = typeAnswer(t, b, "not the words")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	b = scr.(*BattleScreen)

	if b.suggested != srs.Wrong {
		t.Errorf("suggested = %v, want Wrong for a mismatch", b.suggested)
	}
}

func TestBattleScreen_GradeKeyResolves(t *testing.T) {
	b := testBattleScreen(t)

	var scr screen.Screen = typeAnswer(t, b, "guess")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('2'))
	b = scr.(*BattleScreen)

	out := b.battle.LastOutcome
	if out == nil {
		t.Fatal("expected an outcome after grading")
	}
	if out.Grade != srs.Correct {
		t.Errorf("grade = %v, want Correct for key 2", out.Grade)
	}
	if b.battle.Phase != session.PhaseFeedback && !b.battle.Finished() {
		t.Errorf("phase = %v, want feedback", b.battle.Phase)
	}
}

func TestBattleScreen_EnterAcceptsSuggestion(t *testing.T) {
	b := testBattleScreen(t)
	entry := b.battle.CurrentEntry()

	var scr screen.Screen = typeAnswer(t, b, entry.Card.Back)
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // reveal
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // accept
	b = scr.(*BattleScreen)

	out := b.battle.LastOutcome
	if out == nil || out.Grade != srs.Correct {
		t.Fatalf("expected suggested Correct to be applied, got %+v", out)
	}
}

func TestBattleScreen_TimeoutOnTick(t *testing.T) {
	b := testBattleScreen(t)
	b.remaining = time.Second

	var scr screen.Screen = b
	scr, _ = scr.Update(tickMsg(time.Now()))
	b = scr.(*BattleScreen)

	out := b.battle.LastOutcome
	if out == nil {
		t.Fatal("expected an outcome after the clock ran out")
	}
	if out.Grade != srs.Timeout {
		t.Errorf("grade = %v, want Timeout", out.Grade)
	}
}

func TestBattleScreen_FeedbackAdvances(t *testing.T) {
	b := testBattleScreen(t)
	index := b.battle.Index

	var scr screen.Screen = typeAnswer(t, b, "guess")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('4'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	b = scr.(*BattleScreen)

	if b.battle.Finished() {
		return // monster or hero fell, also a valid exit
	}
	if b.battle.Index != index+1 {
		t.Errorf("index = %d, want %d after feedback dismiss", b.battle.Index, index+1)
	}
	if b.revealed {
		t.Error("expected per-card state to reset")
	}
}

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		got, want string
		match     bool
	}{
		{"lumen", "lumen", true},
		{"  Lumen ", "lumen", true},
		{"the  spell", "The Spell", true},
		{"lumen", "ignis", false},
		{"", "lumen", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if answersMatch(tt.got, tt.want) != tt.match {
			t.Errorf("answersMatch(%q, %q) = %v, want %v", tt.got, tt.want, !tt.match, tt.match)
		}
	}
}
