package srs

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestNewLegacySchedule(t *testing.T) {
	s := NewLegacySchedule("card-1")
	if s.EaseFactor != 2.5 {
		t.Errorf("ease factor = %v, want 2.5", s.EaseFactor)
	}
	if s.IntervalDays != 0 || s.Repetitions != 0 {
		t.Errorf("interval/reps = %d/%d, want 0/0", s.IntervalDays, s.Repetitions)
	}
}

func TestLegacyCorrectStreak(t *testing.T) {
	now := testNow
	s := NewLegacySchedule("card-1")

	s = UpdateLegacy(s, Correct, now)
	if s.Repetitions != 1 || s.IntervalDays != 1 {
		t.Errorf("first correct: reps=%d interval=%d, want 1/1", s.Repetitions, s.IntervalDays)
	}

	s = UpdateLegacy(s, Correct, now)
	if s.Repetitions != 2 || s.IntervalDays != 6 {
		t.Errorf("second correct: reps=%d interval=%d, want 2/6", s.Repetitions, s.IntervalDays)
	}

	prevEase := s.EaseFactor
	s = UpdateLegacy(s, Correct, now)
	want := int(math.Round(6 * s.EaseFactor))
	if s.Repetitions != 3 || s.IntervalDays != want {
		t.Errorf("third correct: reps=%d interval=%d, want 3/%d", s.Repetitions, s.IntervalDays, want)
	}
	if s.IntervalDays <= 6 {
		t.Errorf("third correct interval %d should exceed 6", s.IntervalDays)
	}
	// Correct (q=4) nudges ease down by 0.08+0.02-0.1 = 0.
	if s.EaseFactor != prevEase {
		t.Errorf("ease factor changed on Correct: %v -> %v", prevEase, s.EaseFactor)
	}
}

func TestLegacyFailureResets(t *testing.T) {
	now := testNow
	s := NewLegacySchedule("card-1")
	for i := 0; i < 5; i++ {
		s = UpdateLegacy(s, Correct, now)
	}

	s = UpdateLegacy(s, Wrong, now)
	if s.Repetitions != 0 || s.IntervalDays != 1 {
		t.Errorf("after Wrong: reps=%d interval=%d, want 0/1", s.Repetitions, s.IntervalDays)
	}
	if !s.NextReview.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("next review = %v, want one day out", s.NextReview)
	}
}

func TestLegacyEaseFloor(t *testing.T) {
	now := testNow
	s := NewLegacySchedule("card-1")
	for i := 0; i < 20; i++ {
		s = UpdateLegacy(s, Wrong, now)
		if s.EaseFactor < 1.3 {
			t.Fatalf("ease factor %v dropped below 1.3 after %d failures", s.EaseFactor, i+1)
		}
	}
}

func TestLegacyPerfectRaisesEase(t *testing.T) {
	s := NewLegacySchedule("card-1")
	s = UpdateLegacy(s, Perfect, testNow)
	if s.EaseFactor <= 2.5 {
		t.Errorf("ease factor = %v after Perfect, want > 2.5", s.EaseFactor)
	}
}

func TestLegacyIsDue(t *testing.T) {
	s := UpdateLegacy(NewLegacySchedule("card-1"), Correct, testNow)

	if s.IsDue(testNow) {
		t.Error("card due immediately after review")
	}
	if !s.IsDue(s.NextReview) {
		t.Error("card not due exactly at next review time")
	}
	if !s.IsDue(s.NextReview.Add(time.Hour)) {
		t.Error("card not due past next review time")
	}
}

func TestLegacyRoundTrip(t *testing.T) {
	now := testNow
	s := NewLegacySchedule("card-1")
	for _, g := range []Grade{Correct, Correct, Perfect} {
		s = UpdateLegacy(s, g, now)
		now = s.NextReview
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored LegacySchedule
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	a := UpdateLegacy(s, Correct, now)
	b := UpdateLegacy(restored, Correct, now)
	if a.EaseFactor != b.EaseFactor || a.IntervalDays != b.IntervalDays || !a.NextReview.Equal(b.NextReview) {
		t.Errorf("round-trip diverged: %+v vs %+v", a, b)
	}
}
