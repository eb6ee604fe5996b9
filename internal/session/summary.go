package session

import "time"

// Summary holds the data displayed on the battle summary screen.
type Summary struct {
	Monster        string
	Victory        bool
	Duration       time.Duration
	CardsReviewed  int
	CorrectAnswers int
	Accuracy       float64
	XPEarned       int
	GoldEarned     int
	LevelsGained   int
	HeroLevel      int
}

// BuildSummary creates a Summary from a finished battle.
func BuildSummary(b *Battle, now time.Time) *Summary {
	var accuracy float64
	if b.CardsReviewed > 0 {
		accuracy = float64(b.CorrectAnswers) / float64(b.CardsReviewed)
	}
	return &Summary{
		Monster:        b.Monster.Name,
		Victory:        b.Victory(),
		Duration:       now.Sub(b.StartTime),
		CardsReviewed:  b.CardsReviewed,
		CorrectAnswers: b.CorrectAnswers,
		Accuracy:       accuracy,
		XPEarned:       b.XPEarned,
		GoldEarned:     b.GoldEarned,
		LevelsGained:   b.LevelsGained,
		HeroLevel:      b.Player.Hero.Level,
	}
}
