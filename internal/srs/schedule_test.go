package srs

import (
	"encoding/json"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// warmToReview drives a fresh card into the Review state with repeated
// Correct grades, reviewing exactly at each due date.
func warmToReview(t *testing.T, sched Scheduler, target Retention) (Schedule, time.Time) {
	t.Helper()
	now := testNow
	s := sched.NewSchedule("card-1", now)
	for i := 0; i < 4; i++ {
		s = sched.Update(s, Correct, target, now)
		now = s.Due
	}
	if s.State != StateReview {
		t.Fatalf("expected Review after warm-up, got %v", s.State)
	}
	return s, now
}

func TestNewSchedule(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	s := sched.NewSchedule("card-1", testNow)

	if s.State != StateNew {
		t.Errorf("new schedule state = %v, want %v", s.State, StateNew)
	}
	if s.Repetitions != 0 || s.Lapses != 0 {
		t.Errorf("new schedule counters = %d reps %d lapses, want 0/0", s.Repetitions, s.Lapses)
	}
	if s.Stability != DefaultParams().InitialStability {
		t.Errorf("new schedule stability = %v, want %v", s.Stability, DefaultParams().InitialStability)
	}
	if !s.Due.Equal(testNow) {
		t.Errorf("new schedule due = %v, want %v", s.Due, testNow)
	}
}

func TestSuccessNeverDecreasesStability(t *testing.T) {
	sched := NewScheduler(DefaultParams())

	for _, grade := range []Grade{Perfect, Correct, Partial} {
		now := testNow
		s := sched.NewSchedule("card-1", now)
		for i := 0; i < 6; i++ {
			prev := s.Stability
			s = sched.Update(s, grade, DefaultRetention, now)
			if s.Stability < prev {
				t.Errorf("%v review %d: stability decreased %v -> %v", grade, i, prev, s.Stability)
			}
			now = s.Due
		}
	}
}

func TestSuccessNeverRegressesState(t *testing.T) {
	rank := map[CardState]int{StateNew: 0, StateLearning: 1, StateRelearning: 1, StateReview: 2}
	sched := NewScheduler(DefaultParams())

	now := testNow
	s := sched.NewSchedule("card-1", now)
	for i := 0; i < 6; i++ {
		prev := s.State
		s = sched.Update(s, Correct, DefaultRetention, now)
		if rank[s.State] < rank[prev] {
			t.Errorf("review %d: state regressed %v -> %v on success", i, prev, s.State)
		}
		now = s.Due
	}
}

func TestStabilityGainScalesWithGrade(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	base, now := warmToReview(t, sched, DefaultRetention)

	partial := sched.Update(base, Partial, DefaultRetention, now).Stability
	correct := sched.Update(base, Correct, DefaultRetention, now).Stability
	perfect := sched.Update(base, Perfect, DefaultRetention, now).Stability

	if !(partial < correct && correct < perfect) {
		t.Errorf("stability gains not ordered by grade: partial=%v correct=%v perfect=%v",
			partial, correct, perfect)
	}
}

func TestLapseFromReview(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	base, now := warmToReview(t, sched, DefaultRetention)

	for _, grade := range []Grade{Wrong, Timeout} {
		next := sched.Update(base, grade, DefaultRetention, now)

		if next.Lapses != base.Lapses+1 {
			t.Errorf("%v: lapses = %d, want %d", grade, next.Lapses, base.Lapses+1)
		}
		if next.Stability >= base.Stability {
			t.Errorf("%v: stability did not collapse: %v -> %v", grade, base.Stability, next.Stability)
		}
		if next.State != StateRelearning {
			t.Errorf("%v: state = %v, want %v", grade, next.State, StateRelearning)
		}
		if next.Difficulty <= base.Difficulty {
			t.Errorf("%v: difficulty did not rise: %v -> %v", grade, base.Difficulty, next.Difficulty)
		}
	}
}

func TestFailureResetsRepetitionsInLearning(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	now := testNow
	s := sched.NewSchedule("card-1", now)
	s = sched.Update(s, Correct, DefaultRetention, now)
	if s.Repetitions != 1 || s.State != StateLearning {
		t.Fatalf("setup: reps=%d state=%v", s.Repetitions, s.State)
	}

	s = sched.Update(s, Wrong, DefaultRetention, s.Due)
	if s.Repetitions != 0 {
		t.Errorf("repetitions = %d after Learning failure, want 0", s.Repetitions)
	}
	if s.State != StateLearning {
		t.Errorf("state = %v after Learning failure, want %v", s.State, StateLearning)
	}
}

func TestRelearningRecoversToReview(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	base, now := warmToReview(t, sched, DefaultRetention)

	lapsed := sched.Update(base, Wrong, DefaultRetention, now)
	recovered := sched.Update(lapsed, Correct, DefaultRetention, lapsed.Due)
	if recovered.State != StateReview {
		t.Errorf("state after Relearning success = %v, want %v", recovered.State, StateReview)
	}
}

func TestRetentionIntervalMonotonicity(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	base, now := warmToReview(t, sched, DefaultRetention)

	low := sched.Update(base, Correct, 0.70, now)
	high := sched.Update(base, Correct, 0.95, now)

	lowOffset := low.Due.Sub(low.LastReview)
	highOffset := high.Due.Sub(high.LastReview)
	if lowOffset <= highOffset {
		t.Errorf("retention 0.70 offset %v not greater than 0.95 offset %v", lowOffset, highOffset)
	}
}

func TestDueStrictlyAfterLastReview(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	now := testNow
	s := sched.NewSchedule("card-1", now)

	grades := []Grade{Correct, Wrong, Partial, Timeout, Perfect, Correct, Correct, Wrong}
	for i, g := range grades {
		s = sched.Update(s, g, DefaultRetention, now)
		if !s.LastReview.Equal(now) {
			t.Errorf("step %d: lastReview = %v, want %v", i, s.LastReview, now)
		}
		if !s.Due.After(s.LastReview) {
			t.Errorf("step %d: due %v not strictly after lastReview %v", i, s.Due, s.LastReview)
		}
		now = s.Due
	}
}

func TestDifficultyStaysBounded(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	now := testNow

	s := sched.NewSchedule("card-1", now)
	for i := 0; i < 30; i++ {
		s = sched.Update(s, Wrong, DefaultRetention, now)
		now = s.Due
	}
	if s.Difficulty > MaxDifficulty {
		t.Errorf("difficulty %v exceeds ceiling after repeated failures", s.Difficulty)
	}
	if s.Stability < MinStability {
		t.Errorf("stability %v below floor after repeated failures", s.Stability)
	}

	for i := 0; i < 30; i++ {
		s = sched.Update(s, Perfect, DefaultRetention, now)
		now = s.Due
	}
	if s.Difficulty < MinDifficulty {
		t.Errorf("difficulty %v below floor after repeated successes", s.Difficulty)
	}
}

func TestStateTransitionTotality(t *testing.T) {
	states := []CardState{StateNew, StateLearning, StateReview, StateRelearning}
	for _, st := range states {
		for _, success := range []bool{true, false} {
			for reps := 0; reps <= 3; reps++ {
				got := nextState(st, success, reps, 2)
				if !got.IsValid() {
					t.Errorf("nextState(%v, %v, %d) = %v, not a valid state", st, success, reps, got)
				}
			}
		}
	}
}

func TestRetrievabilityMonotonicity(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	base, now := warmToReview(t, sched, DefaultRetention)

	// Decreasing in elapsed time.
	prev := 1.1
	for days := 0; days <= 60; days += 5 {
		r := sched.Retrievability(base, now.AddDate(0, 0, days))
		if r > prev {
			t.Errorf("retrievability rose with elapsed time at %d days: %v > %v", days, r, prev)
		}
		prev = r
	}

	// Increasing in stability at fixed elapsed time.
	weaker := base
	weaker.Stability = base.Stability / 2
	at := now.AddDate(0, 0, 10)
	if sched.Retrievability(weaker, at) >= sched.Retrievability(base, at) {
		t.Error("lower stability did not lower retrievability")
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	sched := NewScheduler(DefaultParams())
	base, now := warmToReview(t, sched, DefaultRetention)

	data, err := json.Marshal(base)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored Schedule
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// The restored state must produce bit-identical subsequent updates.
	a := sched.Update(base, Correct, DefaultRetention, now)
	b := sched.Update(restored, Correct, DefaultRetention, now)

	if a.Stability != b.Stability || a.Difficulty != b.Difficulty {
		t.Errorf("round-trip diverged: stability %v vs %v, difficulty %v vs %v",
			a.Stability, b.Stability, a.Difficulty, b.Difficulty)
	}
	if !a.Due.Equal(b.Due) || a.State != b.State || a.Repetitions != b.Repetitions {
		t.Errorf("round-trip diverged: due %v vs %v, state %v vs %v", a.Due, b.Due, a.State, b.State)
	}
}
