package srs

import (
	"math"
	"time"
)

// Schedule holds the memory-model state for a single card. It is mutated
// only by Scheduler.Update; callers persist it between reviews.
type Schedule struct {
	CardID      string    `json:"card_id"`
	Difficulty  float64   `json:"difficulty"`
	Stability   float64   `json:"stability"`
	Repetitions int       `json:"repetitions"`
	Lapses      int       `json:"lapses"`
	State       CardState `json:"state"`
	Due         time.Time `json:"due"`
	LastReview  time.Time `json:"last_review"`
}

// IsDue reports whether the card is due for review at or past its due date.
func (s Schedule) IsDue(now time.Time) bool {
	return !now.Before(s.Due)
}

// OverdueDays returns how many days past due the card is, 0 if not yet due.
func (s Schedule) OverdueDays(now time.Time) float64 {
	if now.Before(s.Due) {
		return 0
	}
	return now.Sub(s.Due).Hours() / 24.0
}

// Scheduler computes schedule updates under a fixed parameter set.
// It is a value type; all methods are pure functions of their inputs.
type Scheduler struct {
	params Params
	factor float64 // 0.9^(1/decay) - 1, precomputed
}

// NewScheduler returns a Scheduler using the given parameters.
func NewScheduler(p Params) Scheduler {
	return Scheduler{
		params: p,
		factor: math.Pow(0.9, 1.0/p.Decay) - 1.0,
	}
}

// Params returns the parameter set the scheduler was built with.
func (sc Scheduler) Params() Params {
	return sc.params
}

// NewSchedule returns the schedule for a card that has never been
// reviewed: state New, minimal stability, due immediately.
func (sc Scheduler) NewSchedule(cardID string, now time.Time) Schedule {
	return Schedule{
		CardID:     cardID,
		Difficulty: sc.params.InitialDifficulty,
		Stability:  sc.params.InitialStability,
		State:      StateNew,
		Due:        now,
	}
}

// Retrievability returns the modeled recall probability for the card at
// the given time, per the power-law forgetting curve
// R(t,S) = (1 + factor·t/S)^decay. A card that has never been reviewed
// has retrievability 1.
func (sc Scheduler) Retrievability(s Schedule, now time.Time) float64 {
	if s.LastReview.IsZero() {
		return 1.0
	}
	elapsed := now.Sub(s.LastReview).Hours() / 24.0
	if elapsed < 0 {
		elapsed = 0
	}
	return math.Pow(1+sc.factor*elapsed/s.Stability, sc.params.Decay)
}

// Interval solves the forgetting curve for the elapsed time at which
// retrievability decays to the target, in whole days clamped to
// [1, MaxIntervalDays]. Lower targets yield longer intervals.
func (sc Scheduler) Interval(stability float64, target Retention) int {
	ivl := stability / sc.factor * (math.Pow(float64(target), 1.0/sc.params.Decay) - 1)
	days := int(math.Round(ivl))
	if days < 1 {
		days = 1
	}
	if days > sc.params.MaxIntervalDays {
		days = sc.params.MaxIntervalDays
	}
	return days
}

// Update applies one graded attempt to the schedule and returns the next
// schedule. now is the caller's clock reading for the attempt; target is
// the retention the next interval should aim for. The input schedule is
// not modified.
func (sc Scheduler) Update(s Schedule, grade Grade, target Retention, now time.Time) Schedule {
	next := s
	retr := sc.Retrievability(s, now)

	if grade.Success() {
		next.Stability = sc.nextSuccessStability(s, grade, retr)
		next.Difficulty = clampDifficulty(s.Difficulty - sc.params.DifficultyStep*gradeDifficultyScale(grade))
		next.Repetitions = s.Repetitions + 1
	} else {
		next.Stability = clampStability(s.Stability * sc.params.ForgetFactor)
		next.Difficulty = clampDifficulty(s.Difficulty + sc.params.DifficultyStep*sc.params.FailDifficultyScale)
		next.Lapses = s.Lapses + 1
		if s.State != StateReview {
			next.Repetitions = 0
		}
	}

	next.State = nextState(s.State, grade.Success(), next.Repetitions, sc.params.GraduationReps)
	next.LastReview = now
	next.Due = now.AddDate(0, 0, sc.Interval(next.Stability, target))
	return next
}

// nextSuccessStability grows stability after a successful recall. The
// gain shrinks for hard cards (11−D term), for already-stable cards
// (S^−sp term), and for recall at high retrievability (little new
// information when the card was barely forgotten). The first-ever review
// seeds stability from the grade instead, since no elapsed interval
// exists to learn from.
func (sc Scheduler) nextSuccessStability(s Schedule, grade Grade, retr float64) float64 {
	p := sc.params
	if s.State == StateNew {
		return clampStability(p.InitialStability * firstReviewScale(grade))
	}
	gain := math.Exp(p.Growth) *
		(11 - s.Difficulty) *
		math.Pow(s.Stability, -p.StabilityPower) *
		(math.Exp((1-retr)*p.RetrievabilityBoost) - 1) *
		gradeStabilityFactor(grade, p)
	return clampStability(s.Stability * (1 + gain))
}

// gradeStabilityFactor scales the stability gain by grade strength.
func gradeStabilityFactor(g Grade, p Params) float64 {
	switch g {
	case Perfect:
		return p.PerfectFactor
	case Partial:
		return p.PartialFactor
	default:
		return 1.0
	}
}

// gradeDifficultyScale scales the success-side difficulty step: stronger
// grades pull difficulty further toward the floor.
func gradeDifficultyScale(g Grade) float64 {
	switch g {
	case Perfect:
		return 2.0
	case Correct:
		return 1.0
	default:
		return 0.5
	}
}

// firstReviewScale seeds stability on a card's first graded attempt.
func firstReviewScale(g Grade) float64 {
	switch g {
	case Perfect:
		return 4.0
	case Correct:
		return 2.5
	default:
		return 1.0
	}
}
