package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/halvden/grimoire/internal/session"
	"github.com/halvden/grimoire/internal/srs"
)

func testHome() *HomeScreen {
	player := session.NewPlayer("Tester")
	return New(player, nil, nil, srs.NewScheduler(srs.DefaultParams()), srs.DefaultRetention)
}

func TestHomeScreen_Title(t *testing.T) {
	h := testHome()
	if h.Title() != "Tower Hall" {
		t.Errorf("Title = %q, want %q", h.Title(), "Tower Hall")
	}
}

func TestHomeScreen_ViewShowsHeroAndDecks(t *testing.T) {
	h := testHome()
	view := h.View(100, 30)
	if !strings.Contains(view, "Tester") {
		t.Error("expected hero name in view")
	}
	if !strings.Contains(view, "Apprentice's Primer") {
		t.Error("expected starter deck in menu")
	}
}

func TestHomeScreen_EnterOnDeckPushesBattle(t *testing.T) {
	h := testHome()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command when selecting a deck")
	}
}
