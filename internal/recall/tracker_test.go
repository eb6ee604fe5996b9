package recall

import (
	"testing"
	"time"
)

func TestRecordAttemptCounters(t *testing.T) {
	tr := NewTracker()
	tr.RecordAttempt("a", true, 2*time.Second)
	tr.RecordAttempt("a", true, 4*time.Second)
	tr.RecordAttempt("a", false, 6*time.Second)
	tr.RecordAttempt("a", true, 2*time.Second)

	s, ok := tr.Stats("a")
	if !ok {
		t.Fatal("no stats recorded")
	}
	if s.Attempts != 4 || s.Correct != 3 {
		t.Errorf("attempts/correct = %d/%d, want 4/3", s.Attempts, s.Correct)
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1 (reset by failure, then one success)", s.Streak)
	}
	if s.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", s.BestStreak)
	}
	if s.TotalElapsed != 14*time.Second {
		t.Errorf("total elapsed = %v, want 14s", s.TotalElapsed)
	}
	if s.AverageElapsed() != 3500*time.Millisecond {
		t.Errorf("average elapsed = %v, want 3.5s", s.AverageElapsed())
	}
}

func TestFailureResetsStreakNotTotals(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.RecordAttempt("a", true, time.Second)
	}
	before, _ := tr.Stats("a")

	tr.RecordAttempt("a", false, time.Second)
	after, _ := tr.Stats("a")

	if after.Streak != 0 {
		t.Errorf("streak = %d after failure, want 0", after.Streak)
	}
	if after.Correct != before.Correct {
		t.Errorf("correct total changed on failure: %d -> %d", before.Correct, after.Correct)
	}
	if after.Attempts != before.Attempts+1 {
		t.Errorf("attempts = %d, want %d", after.Attempts, before.Attempts+1)
	}
	if after.BestStreak != 5 {
		t.Errorf("best streak = %d, want 5", after.BestStreak)
	}
}

func TestDifficultyLabel(t *testing.T) {
	tr := NewTracker()

	if _, ok := tr.DifficultyLabel("missing"); ok {
		t.Error("label defined for card with no attempts")
	}

	// 9/10 correct → easy, 7/10 → medium, 3/10 → hard.
	feed := func(id string, correct, wrong int) {
		for i := 0; i < correct; i++ {
			tr.RecordAttempt(id, true, time.Second)
		}
		for i := 0; i < wrong; i++ {
			tr.RecordAttempt(id, false, time.Second)
		}
	}
	feed("easy", 9, 1)
	feed("medium", 7, 3)
	feed("hard", 3, 7)

	cases := map[string]Label{"easy": LabelEasy, "medium": LabelMedium, "hard": LabelHard}
	for id, want := range cases {
		got, ok := tr.DifficultyLabel(id)
		if !ok || got != want {
			t.Errorf("label(%s) = %v/%v, want %v", id, got, ok, want)
		}
	}
}

func TestWeakestOrdering(t *testing.T) {
	tr := NewTracker()
	tr.RecordAttempt("strong", true, time.Second)
	tr.RecordAttempt("weak", false, time.Second)
	tr.RecordAttempt("mid", true, time.Second)
	tr.RecordAttempt("mid", false, time.Second)

	got := tr.Weakest(2)
	if len(got) != 2 || got[0] != "weak" || got[1] != "mid" {
		t.Errorf("Weakest(2) = %v, want [weak mid]", got)
	}

	// Asking for more than exist returns only attempted cards.
	if got := tr.Weakest(10); len(got) != 3 {
		t.Errorf("Weakest(10) returned %d cards, want 3", len(got))
	}
}

func TestWeakestDeterministicTieBreak(t *testing.T) {
	tr := NewTracker()
	tr.RecordAttempt("b", false, time.Second)
	tr.RecordAttempt("a", false, time.Second)

	for i := 0; i < 10; i++ {
		got := tr.Weakest(2)
		if got[0] != "a" || got[1] != "b" {
			t.Fatalf("tie-break not deterministic: %v", got)
		}
	}
}

func TestTrackerSnapshotRoundTrip(t *testing.T) {
	tr := NewTracker()
	tr.RecordAttempt("a", true, 2*time.Second)
	tr.RecordAttempt("b", false, time.Second)

	restored := FromSnapshot(tr.Snapshot())

	for _, id := range []string{"a", "b"} {
		want, _ := tr.Stats(id)
		got, ok := restored.Stats(id)
		if !ok || got != want {
			t.Errorf("restored stats(%s) = %+v, want %+v", id, got, want)
		}
	}
}
