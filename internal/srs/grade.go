// Package srs implements the spaced-repetition scheduling engine: a
// forgetting-curve memory model that decides, per card, when it is next
// due and how its memory state evolves from each graded recall attempt.
// All functions are pure; the caller supplies the clock and persists the
// returned states.
package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Grade is the recall-quality label assigned to one attempt at a card.
type Grade int

const (
	Perfect Grade = iota + 1 // Instant, effortless recall.
	Correct                  // Recalled with some effort.
	Partial                  // Recalled incompletely or with hints.
	Wrong                    // Failed to recall.
	Timeout                  // Ran out of time before answering.
)

var (
	gradeNames = [...]string{
		Perfect: "perfect",
		Correct: "correct",
		Partial: "partial",
		Wrong:   "wrong",
		Timeout: "timeout",
	}
	gradeByName = map[string]Grade{
		"perfect": Perfect,
		"correct": Correct,
		"partial": Partial,
		"wrong":   Wrong,
		"timeout": Timeout,
	}
)

var (
	_ fmt.Stringer             = Grade(0)
	_ encoding.TextMarshaler   = Grade(0)
	_ encoding.TextUnmarshaler = (*Grade)(nil)
	_ json.Marshaler           = Grade(0)
	_ json.Unmarshaler         = (*Grade)(nil)
)

// IsValid reports whether g is one of the five defined grades.
func (g Grade) IsValid() bool {
	return g >= Perfect && g <= Timeout
}

// Success reports whether g counts as a qualifying success
// (Perfect, Correct or Partial).
func (g Grade) Success() bool {
	return g == Perfect || g == Correct || g == Partial
}

// Quality maps the grade to the SM-2 integer quality scale used by the
// legacy scheduler: Perfect=5, Correct=4, Partial=3, Wrong=1, Timeout=0.
func (g Grade) Quality() int {
	switch g {
	case Perfect:
		return 5
	case Correct:
		return 4
	case Partial:
		return 3
	case Wrong:
		return 1
	default:
		return 0
	}
}

// String returns the lowercase token for the grade ("perfect" ... "timeout").
// Invalid values render as "grade(n)".
func (g Grade) String() string {
	if g.IsValid() {
		return gradeNames[g]
	}
	return fmt.Sprintf("grade(%d)", int(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	return []byte(gradeNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grade) UnmarshalText(text []byte) error {
	v, ok := gradeByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidGrade, text)
	}
	*g = v
	return nil
}

// MarshalJSON implements json.Marshaler. Grades serialize as JSON strings.
func (g Grade) MarshalJSON() ([]byte, error) {
	text, err := g.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGrade, data)
	}
	return g.UnmarshalText([]byte(s))
}
