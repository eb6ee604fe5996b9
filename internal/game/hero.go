// Package game holds the RPG layer: hero progression, monster scaling
// and battle arithmetic. It consumes the scheduling core's output (grades
// and lifecycle states) and owns none of the scheduling logic itself.
package game

// Hero is the player character. XP and gold only ever grow; HP is
// per-battle and refilled by NewBattleHP.
type Hero struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	XP    int    `json:"xp"`
	Gold  int    `json:"gold"`
}

// NewHero creates a level-1 hero.
func NewHero(name string) Hero {
	return Hero{Name: name, Level: 1}
}

// xpForLevel is the total XP required to reach the given level.
// Quadratic curve: level 2 at 100, level 3 at 400, level 4 at 900.
func xpForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	n := level - 1
	return 100 * n * n
}

// XPToNext returns how much XP remains until the next level.
func (h Hero) XPToNext() int {
	return xpForLevel(h.Level+1) - h.XP
}

// GainXP adds XP and applies any level-ups. It returns the number of
// levels gained.
func (h *Hero) GainXP(xp int) int {
	if xp < 0 {
		return 0
	}
	h.XP += xp
	levels := 0
	for h.XP >= xpForLevel(h.Level+1) {
		h.Level++
		levels++
	}
	return levels
}

// GainGold adds gold to the purse.
func (h *Hero) GainGold(gold int) {
	if gold > 0 {
		h.Gold += gold
	}
}

// NewBattleHP is the hero's hit points at the start of a battle,
// growing slowly with level.
func (h Hero) NewBattleHP() int {
	return 20 + 2*(h.Level-1)
}
