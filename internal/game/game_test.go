package game

import (
	"testing"

	"github.com/halvden/grimoire/internal/srs"
)

func TestHeroLevelCurve(t *testing.T) {
	h := NewHero("Wren")
	if h.Level != 1 {
		t.Fatalf("new hero level = %d", h.Level)
	}

	if gained := h.GainXP(99); gained != 0 || h.Level != 1 {
		t.Errorf("99 XP: gained %d levels at level %d", gained, h.Level)
	}
	if gained := h.GainXP(1); gained != 1 || h.Level != 2 {
		t.Errorf("100 XP total: gained %d levels at level %d, want 1/2", gained, h.Level)
	}
	// 400 total reaches level 3, 900 level 4; a big grant can skip levels.
	if gained := h.GainXP(800); gained != 2 || h.Level != 4 {
		t.Errorf("900 XP total: gained %d levels at level %d, want 2/4", gained, h.Level)
	}
	if h.XPToNext() != xpForLevel(5)-h.XP {
		t.Errorf("XPToNext = %d", h.XPToNext())
	}
}

func TestGainXPIgnoresNegative(t *testing.T) {
	h := NewHero("Wren")
	h.GainXP(-50)
	if h.XP != 0 {
		t.Errorf("XP = %d after negative grant", h.XP)
	}
}

func TestDamageScalesWithGradeAndCombo(t *testing.T) {
	if d := Damage(srs.Wrong, 3); d != 0 {
		t.Errorf("failure damage = %d, want 0", d)
	}
	partial := Damage(srs.Partial, 0)
	correct := Damage(srs.Correct, 0)
	perfect := Damage(srs.Perfect, 0)
	if !(partial < correct && correct < perfect) {
		t.Errorf("damage not ordered by grade: %d %d %d", partial, correct, perfect)
	}

	if Damage(srs.Correct, 2) <= Damage(srs.Correct, 0) {
		t.Error("combo did not increase damage")
	}
	if Damage(srs.Correct, comboCap) != Damage(srs.Correct, comboCap+10) {
		t.Error("combo bonus not capped")
	}
}

func TestMonsterStrike(t *testing.T) {
	if Strike(srs.Correct) != 0 {
		t.Error("monster struck on a success")
	}
	if Strike(srs.Timeout) <= Strike(srs.Wrong) {
		t.Error("timeout should hurt more than a plain wrong answer")
	}
}

func TestMonsterScaling(t *testing.T) {
	small := NewMonster("Mud Imp", 1)
	big := NewMonster("Bone Colossus", 20)
	if small.HP < 10 {
		t.Errorf("monster HP floor violated: %d", small.HP)
	}
	if big.HP <= small.HP {
		t.Errorf("monster HP did not scale with queue: %d <= %d", big.HP, small.HP)
	}
	if big.HP != big.MaxHP {
		t.Errorf("fresh monster HP %d != MaxHP %d", big.HP, big.MaxHP)
	}
}

func TestRewards(t *testing.T) {
	if r := RewardFor(srs.Wrong, srs.StateReview); r != (Reward{}) {
		t.Errorf("failure reward = %+v, want zero", r)
	}

	learning := RewardFor(srs.Correct, srs.StateLearning)
	review := RewardFor(srs.Correct, srs.StateReview)
	if review.XP <= learning.XP || review.Gold <= learning.Gold {
		t.Errorf("review bonus missing: %+v vs %+v", review, learning)
	}

	perfect := RewardFor(srs.Perfect, srs.StateLearning)
	partial := RewardFor(srs.Partial, srs.StateLearning)
	if perfect.XP <= partial.XP {
		t.Errorf("rewards not ordered by grade: perfect %+v, partial %+v", perfect, partial)
	}
}
