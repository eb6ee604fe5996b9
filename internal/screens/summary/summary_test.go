package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/halvden/grimoire/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Monster:        "Ink Wraith",
		Victory:        true,
		Duration:       7 * time.Minute,
		CardsReviewed:  10,
		CorrectAnswers: 8,
		Accuracy:       0.8,
		XPEarned:       95,
		GoldEarned:     21,
		LevelsGained:   1,
		HeroLevel:      3,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(session.NewPlayer("Apprentice"), testSummary(), nil)
	if s.Title() != "Battle Tally" {
		t.Errorf("Title = %q, want %q", s.Title(), "Battle Tally")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(session.NewPlayer("Apprentice"), testSummary(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Ink Wraith") {
		t.Error("expected view to name the monster")
	}
	if !strings.Contains(view, "Level up") {
		t.Error("expected level-up line when levels were gained")
	}
}

func TestSummaryScreen_DefeatHeadline(t *testing.T) {
	sum := testSummary()
	sum.Victory = false
	sum.LevelsGained = 0
	s := New(session.NewPlayer("Apprentice"), sum, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "escapes") {
		t.Error("expected defeat headline")
	}
	if strings.Contains(view, "Level up") {
		t.Error("did not expect level-up line")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(session.NewPlayer("Apprentice"), testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_NilStoreInit(t *testing.T) {
	s := New(session.NewPlayer("Apprentice"), testSummary(), nil)
	if cmd := s.Init(); cmd != nil {
		t.Error("expected no save command without a store")
	}
}
