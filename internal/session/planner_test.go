package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/halvden/grimoire/internal/deck"
	"github.com/halvden/grimoire/internal/srs"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testPlayer() *Player {
	return NewPlayer("Wren")
}

func TestBuildPlanOrdersDueByOverdue(t *testing.T) {
	p := testPlayer()
	sched := srs.NewScheduler(srs.DefaultParams())

	// starter-01 one day overdue, starter-02 three days overdue,
	// starter-03 not due yet.
	s1 := sched.NewSchedule("starter-01", testNow.AddDate(0, 0, -2))
	s1.Due = testNow.AddDate(0, 0, -1)
	s2 := sched.NewSchedule("starter-02", testNow.AddDate(0, 0, -4))
	s2.Due = testNow.AddDate(0, 0, -3)
	s3 := sched.NewSchedule("starter-03", testNow)
	s3.Due = testNow.AddDate(0, 0, 5)
	p.Schedules["starter-01"] = s1
	p.Schedules["starter-02"] = s2
	p.Schedules["starter-03"] = s3

	plan, err := BuildPlan(p, "starter", testNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}

	if len(plan.Entries) < 2 {
		t.Fatalf("entries = %d, want at least the two due cards", len(plan.Entries))
	}
	if plan.Entries[0].Card.ID != "starter-02" || plan.Entries[0].Category != CategoryDue {
		t.Errorf("first entry = %+v, want most overdue card", plan.Entries[0])
	}
	if plan.Entries[1].Card.ID != "starter-01" {
		t.Errorf("second entry = %s, want starter-01", plan.Entries[1].Card.ID)
	}

	// starter-03 has a schedule and is not due: it must not appear.
	for _, e := range plan.Entries {
		if e.Card.ID == "starter-03" {
			t.Error("not-due scheduled card included in plan")
		}
	}
}

func TestBuildPlanIncludesWeakAndFresh(t *testing.T) {
	p := testPlayer()
	sched := srs.NewScheduler(srs.DefaultParams())

	// starter-01 scheduled far in the future but historically weak.
	s1 := sched.NewSchedule("starter-01", testNow)
	s1.Due = testNow.AddDate(0, 0, 30)
	p.Schedules["starter-01"] = s1
	for i := 0; i < 4; i++ {
		p.Tracker.RecordAttempt("starter-01", i == 0, time.Second)
	}

	plan, err := BuildPlan(p, "starter", testNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}

	foundWeak := false
	fresh := 0
	for _, e := range plan.Entries {
		switch e.Category {
		case CategoryWeak:
			if e.Card.ID != "starter-01" {
				t.Errorf("unexpected weak card %s", e.Card.ID)
			}
			foundWeak = true
		case CategoryFresh:
			fresh++
		case CategoryDue:
			t.Errorf("no card is due, got due entry %s", e.Card.ID)
		}
	}
	if !foundWeak {
		t.Error("weak card missing from plan")
	}
	if fresh != MaxNewCards {
		t.Errorf("fresh cards = %d, want %d", fresh, MaxNewCards)
	}
}

func TestBuildPlanCapsQueue(t *testing.T) {
	p := testPlayer()
	big := deck.Deck{ID: "big", Name: "Big"}
	sched := srs.NewScheduler(srs.DefaultParams())
	for i := 0; i < 30; i++ {
		id := fmt.Sprintf("big-%02d", i)
		big.Cards = append(big.Cards, deck.Card{ID: id, Front: "f", Back: "b"})
		s := sched.NewSchedule(id, testNow.AddDate(0, 0, -2))
		s.Due = testNow.AddDate(0, 0, -1)
		p.Schedules[id] = s
	}
	if err := p.AddDeck(big); err != nil {
		t.Fatalf("add deck: %v", err)
	}

	plan, err := BuildPlan(p, "big", testNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if len(plan.Entries) != MaxQueueLen {
		t.Errorf("entries = %d, want %d", len(plan.Entries), MaxQueueLen)
	}
}

func TestBuildPlanLegacyDeck(t *testing.T) {
	p := testPlayer()
	legacy := deck.Deck{
		ID: "runes", Name: "Old Runes", Legacy: true,
		Cards: []deck.Card{
			{ID: "r1", Front: "f", Back: "b"},
			{ID: "r2", Front: "f", Back: "b"},
		},
	}
	if err := p.AddDeck(legacy); err != nil {
		t.Fatalf("add deck: %v", err)
	}

	s := srs.NewLegacySchedule("r1")
	s.NextReview = testNow.AddDate(0, 0, -1)
	p.LegacySchedules["r1"] = s

	plan, err := BuildPlan(p, "runes", testNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}

	if plan.Entries[0].Card.ID != "r1" || plan.Entries[0].Category != CategoryDue {
		t.Errorf("first entry = %+v, want due legacy card", plan.Entries[0])
	}
	for _, e := range plan.Entries {
		if !e.Legacy {
			t.Errorf("entry %s not marked legacy", e.Card.ID)
		}
	}
}

func TestBuildPlanUnknownDeck(t *testing.T) {
	if _, err := BuildPlan(testPlayer(), "nope", testNow); err != ErrNoSuchDeck {
		t.Errorf("err = %v, want ErrNoSuchDeck", err)
	}
}
