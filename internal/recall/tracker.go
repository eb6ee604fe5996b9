// Package recall accumulates raw attempt counters per card: accuracy,
// streaks and response times. It labels coarse difficulty and ranks weak
// cards for the session planner; it feeds presentation ordering, not the
// scheduler.
package recall

import (
	"sort"
	"time"
)

// Label is the coarse difficulty bucket derived from accuracy.
type Label string

const (
	LabelEasy   Label = "easy"   // accuracy >= 90%
	LabelMedium Label = "medium" // accuracy in [60%, 90%)
	LabelHard   Label = "hard"   // accuracy < 60%
)

// Stats holds the raw counters for one card. Totals only grow; a wrong
// answer resets the running streak, never the totals.
type Stats struct {
	Attempts     int           `json:"attempts"`
	Correct      int           `json:"correct"`
	Streak       int           `json:"streak"`
	BestStreak   int           `json:"best_streak"`
	TotalElapsed time.Duration `json:"total_elapsed"`
}

// Accuracy returns the fraction of correct attempts, 0 with no attempts.
func (s Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// AverageElapsed returns the mean response time across all attempts.
func (s Stats) AverageElapsed() time.Duration {
	if s.Attempts == 0 {
		return 0
	}
	return s.TotalElapsed / time.Duration(s.Attempts)
}

// Tracker accumulates attempt counters per card. The zero value is not
// usable; create one with NewTracker.
type Tracker struct {
	stats map[string]*Stats
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{stats: make(map[string]*Stats)}
}

// RecordAttempt folds one graded attempt into the card's counters.
func (t *Tracker) RecordAttempt(cardID string, correct bool, elapsed time.Duration) {
	s := t.stats[cardID]
	if s == nil {
		s = &Stats{}
		t.stats[cardID] = s
	}
	s.Attempts++
	s.TotalElapsed += elapsed
	if correct {
		s.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}
}

// Stats returns a copy of the card's counters and whether any attempt
// has been recorded.
func (t *Tracker) Stats(cardID string) (Stats, bool) {
	s, ok := t.stats[cardID]
	if !ok {
		return Stats{}, false
	}
	return *s, true
}

// Accuracy returns the card's accuracy and whether it is defined
// (at least one attempt recorded).
func (t *Tracker) Accuracy(cardID string) (float64, bool) {
	s, ok := t.stats[cardID]
	if !ok {
		return 0, false
	}
	return s.Accuracy(), true
}

// DifficultyLabel buckets the card's accuracy. Undefined until the card
// has at least one attempt.
func (t *Tracker) DifficultyLabel(cardID string) (Label, bool) {
	s, ok := t.stats[cardID]
	if !ok || s.Attempts == 0 {
		return "", false
	}
	acc := s.Accuracy()
	switch {
	case acc >= 0.9:
		return LabelEasy, true
	case acc >= 0.6:
		return LabelMedium, true
	default:
		return LabelHard, true
	}
}

// Weakest returns up to n card IDs with the lowest accuracy among cards
// with at least one attempt, weakest first. Ties break on attempt count
// (more attempts = more evidence of weakness) and then card ID, so the
// ordering is deterministic.
func (t *Tracker) Weakest(n int) []string {
	type ranked struct {
		id       string
		accuracy float64
		attempts int
	}
	all := make([]ranked, 0, len(t.stats))
	for id, s := range t.stats {
		if s.Attempts == 0 {
			continue
		}
		all = append(all, ranked{id: id, accuracy: s.Accuracy(), attempts: s.Attempts})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].accuracy != all[j].accuracy {
			return all[i].accuracy < all[j].accuracy
		}
		if all[i].attempts != all[j].attempts {
			return all[i].attempts > all[j].attempts
		}
		return all[i].id < all[j].id
	})

	if n > len(all) {
		n = len(all)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = all[i].id
	}
	return out
}

// Snapshot exports all counters for persistence, keyed by card ID.
func (t *Tracker) Snapshot() map[string]Stats {
	out := make(map[string]Stats, len(t.stats))
	for id, s := range t.stats {
		out[id] = *s
	}
	return out
}

// FromSnapshot rebuilds a tracker from persisted counters.
func FromSnapshot(snap map[string]Stats) *Tracker {
	t := NewTracker()
	for id, s := range snap {
		copied := s
		t.stats[id] = &copied
	}
	return t
}
