package game

import (
	"github.com/halvden/grimoire/internal/srs"
)

// Base combat numbers. Damage scales with grade and combo; the monster
// strikes back on failed recalls.
const (
	baseDamage       = 4
	comboCap         = 5
	monsterStrike    = 3
	timeoutStrikeMod = 2 // timeouts hurt extra: the spell fizzled mid-cast
)

// Monster is the battle opponent. Its HP scales with the number of
// cards queued for the battle, so a battle ends roughly when the queue does.
type Monster struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
}

// NewMonster scales a monster to the battle queue length.
func NewMonster(name string, queueLen int) Monster {
	hp := queueLen * (baseDamage + 2)
	if hp < 10 {
		hp = 10
	}
	return Monster{Name: name, HP: hp, MaxHP: hp}
}

// Damage returns the damage dealt by a recall attempt: zero on failure,
// otherwise base damage scaled by grade strength and the current combo
// streak (capped).
func Damage(grade srs.Grade, combo int) int {
	if !grade.Success() {
		return 0
	}
	if combo > comboCap {
		combo = comboCap
	}
	mult := 1.0
	switch grade {
	case srs.Perfect:
		mult = 2.0
	case srs.Correct:
		mult = 1.5
	case srs.Partial:
		mult = 1.0
	}
	return int(float64(baseDamage)*mult) + combo
}

// Strike returns the damage the monster deals back on a failed recall.
func Strike(grade srs.Grade) int {
	if grade.Success() {
		return 0
	}
	if grade == srs.Timeout {
		return monsterStrike + timeoutStrikeMod
	}
	return monsterStrike
}

// Reward is the XP and gold earned for one recall attempt.
type Reward struct {
	XP   int
	Gold int
}

// RewardFor returns the reward for a graded attempt. Failures pay
// nothing; Review-state cards pay extra because long-interval recalls
// are the work the game exists to drive.
func RewardFor(grade srs.Grade, state srs.CardState) Reward {
	if !grade.Success() {
		return Reward{}
	}
	r := Reward{XP: 10, Gold: 2}
	switch grade {
	case srs.Perfect:
		r.XP += 5
		r.Gold += 2
	case srs.Partial:
		r.XP -= 5
		r.Gold--
	}
	if state == srs.StateReview {
		r.XP += 5
		r.Gold++
	}
	return r
}
