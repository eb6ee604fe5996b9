package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Hero:    &HeroData{Name: "Wren", Level: 3, XP: 450, Gold: 12},
			Schedules: map[string]ScheduleData{
				"card-1": {CardID: "card-1", Stability: 4.5, Difficulty: 5, State: "review"},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.Sequence != 42 {
		t.Fatalf("latest = %+v, want sequence 42", got)
	}
	if got.Data.Hero == nil || got.Data.Hero.Name != "Wren" {
		t.Errorf("hero did not round-trip: %+v", got.Data.Hero)
	}
	if got.Data.Schedules["card-1"].Stability != 4.5 {
		t.Errorf("schedule did not round-trip: %+v", got.Data.Schedules["card-1"])
	}
}

func TestReviewEventsAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, err := repo.CardAccuracy(ctx, "card-1")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy with no reviews = %v, want 0", acc)
	}

	base := ReviewEventData{
		BattleID:    "b1",
		DeckID:      "d1",
		CardID:      "card-1",
		Mode:        "standard",
		StateBefore: "learning",
		StateAfter:  "learning",
		Stability:   1.0,
		DueAt:       time.Now().Add(24 * time.Hour),
		TimeMs:      1200,
	}
	for _, g := range []struct {
		grade   string
		correct bool
	}{{"correct", true}, {"perfect", true}, {"wrong", false}, {"correct", true}} {
		ev := base
		ev.Grade = g.grade
		ev.Correct = g.correct
		if err := repo.AppendReviewEvent(ctx, ev); err != nil {
			t.Fatalf("append review event: %v", err)
		}
	}

	acc, err = repo.CardAccuracy(ctx, "card-1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestBattleSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := BattleEventData{BattleID: "b1", DeckID: "d1", Action: "start", Monster: "Mud Imp"}
	if err := repo.AppendBattleEvent(ctx, start); err != nil {
		t.Fatalf("append start: %v", err)
	}
	end := BattleEventData{
		BattleID: "b1", DeckID: "d1", Action: "end", Monster: "Mud Imp",
		CardsReviewed: 8, CorrectAnswers: 6, XPEarned: 80, GoldEarned: 14,
		Victory: true, DurationSecs: 300,
	}
	if err := repo.AppendBattleEvent(ctx, end); err != nil {
		t.Fatalf("append end: %v", err)
	}

	records, err := repo.QueryBattleSummaries(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (start events excluded)", len(records))
	}
	r := records[0]
	if !r.Victory || r.CardsReviewed != 8 || r.Monster != "Mud Imp" {
		t.Errorf("summary record = %+v", r)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev := int64(0)
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
