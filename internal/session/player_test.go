package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/halvden/grimoire/internal/deck"
	"github.com/halvden/grimoire/internal/retrieval"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/store"
)

func TestPlayerSnapshotRoundTrip(t *testing.T) {
	p := NewPlayer("Wren")
	p.Hero.GainXP(250)
	p.Hero.GainGold(17)

	runes := deck.Deck{
		ID: "runes", Name: "Old Runes", Legacy: true,
		Cards: []deck.Card{{ID: "r1", Front: "fehu", Back: "wealth", Tags: []string{"elder"}}},
	}
	if err := p.AddDeck(runes); err != nil {
		t.Fatalf("add deck: %v", err)
	}

	sched := srs.NewScheduler(srs.DefaultParams())
	s := sched.NewSchedule("starter-01", testNow)
	s = sched.Update(s, srs.Correct, srs.DefaultRetention, testNow)
	p.Schedules["starter-01"] = s

	ls := srs.NewLegacySchedule("r1")
	ls = srs.UpdateLegacy(ls, srs.Perfect, testNow)
	p.LegacySchedules["r1"] = ls

	p.Tracker.RecordAttempt("starter-01", true, 3*time.Second)
	p.Tracker.RecordAttempt("starter-01", false, 9*time.Second)

	hist := p.ModeHistory["starter-01"]
	hist.Push(retrieval.Standard)
	hist.Push(retrieval.Teach)
	p.ModeHistory["starter-01"] = hist

	data := p.ToSnapshot()
	if data.Version != SnapshotVersion {
		t.Errorf("version = %d", data.Version)
	}

	back, err := PlayerFromSnapshot(data)
	if err != nil {
		t.Fatalf("from snapshot: %v", err)
	}

	if back.Hero != p.Hero {
		t.Errorf("hero = %+v, want %+v", back.Hero, p.Hero)
	}
	if len(back.Decks) != 2 || back.Decks[1].Legacy != true {
		t.Errorf("decks did not survive: %+v", back.Decks)
	}
	if !reflect.DeepEqual(back.Decks[1].Cards, runes.Cards) {
		t.Errorf("cards = %+v", back.Decks[1].Cards)
	}

	gs := back.Schedules["starter-01"]
	if gs.Stability != s.Stability || gs.State != s.State || !gs.Due.Equal(s.Due) {
		t.Errorf("schedule = %+v, want %+v", gs, s)
	}
	gls := back.LegacySchedules["r1"]
	if gls.EaseFactor != ls.EaseFactor || gls.IntervalDays != ls.IntervalDays {
		t.Errorf("legacy schedule = %+v, want %+v", gls, ls)
	}

	stats, ok := back.Tracker.Stats("starter-01")
	if !ok || stats.Attempts != 2 || stats.Correct != 1 || stats.TotalElapsed != 12*time.Second {
		t.Errorf("stats = %+v", stats)
	}

	if got := back.ModeHistory["starter-01"].Slice(); !reflect.DeepEqual(got, []retrieval.Mode{retrieval.Standard, retrieval.Teach}) {
		t.Errorf("mode history = %v", got)
	}
}

func TestPlayerFromEmptySnapshot(t *testing.T) {
	p, err := PlayerFromSnapshot(store.SnapshotData{Version: SnapshotVersion})
	if err != nil {
		t.Fatalf("from snapshot: %v", err)
	}
	if p.Tracker == nil || p.Schedules == nil {
		t.Fatal("maps not initialized")
	}
}

func TestAddDeckRejectsDuplicate(t *testing.T) {
	p := NewPlayer("Wren")
	if err := p.AddDeck(deck.StarterDeck()); err == nil {
		t.Error("expected duplicate deck error")
	}
}
