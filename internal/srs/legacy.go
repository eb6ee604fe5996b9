package srs

import (
	"math"
	"time"
)

// Legacy SM-2 constants.
const (
	legacyInitialEase = 2.5
	legacyMinEase     = 1.3
)

// LegacySchedule is the SM-2 state kept for decks created before the
// forgetting-curve model. It is an independent scheduling strategy, not
// a variant of Schedule; the caller picks one per deck.
type LegacySchedule struct {
	CardID       string    `json:"card_id"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	NextReview   time.Time `json:"next_review"`
}

// NewLegacySchedule returns the SM-2 state for a card that has never
// been reviewed.
func NewLegacySchedule(cardID string) LegacySchedule {
	return LegacySchedule{
		CardID:     cardID,
		EaseFactor: legacyInitialEase,
	}
}

// IsDue reports whether the card is due at or past its next review time.
func (s LegacySchedule) IsDue(now time.Time) bool {
	return !now.Before(s.NextReview)
}

// UpdateLegacy applies one graded attempt under the SM-2 formula and
// returns the next state. The ease factor is adjusted on every attempt
// and floored at 1.3. A qualifying success (quality ≥ 3) advances the
// interval 1 → 6 → round(prev · ease); a failure resets repetitions and
// schedules the card one day out.
func UpdateLegacy(s LegacySchedule, grade Grade, now time.Time) LegacySchedule {
	next := s

	q := float64(grade.Quality())
	ease := s.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < legacyMinEase {
		ease = legacyMinEase
	}
	next.EaseFactor = ease

	if grade.Quality() >= 3 {
		next.Repetitions = s.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * ease))
		}
	} else {
		next.Repetitions = 0
		next.IntervalDays = 1
	}

	next.NextReview = now.AddDate(0, 0, next.IntervalDays)
	return next
}
