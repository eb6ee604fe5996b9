package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// CardState is the coarse lifecycle phase of a card's memorization progress.
type CardState int

const (
	StateNew        CardState = iota + 1 // Scheduled but never reviewed.
	StateLearning                        // In the initial learning phase.
	StateReview                          // Graduated into the long-term review cycle.
	StateRelearning                      // Lapsed out of Review, being relearned.
)

var (
	stateNames = [...]string{
		StateNew:        "new",
		StateLearning:   "learning",
		StateReview:     "review",
		StateRelearning: "relearning",
	}
	stateByName = map[string]CardState{
		"new":        StateNew,
		"learning":   StateLearning,
		"review":     StateReview,
		"relearning": StateRelearning,
	}
)

var (
	_ fmt.Stringer             = CardState(0)
	_ encoding.TextMarshaler   = CardState(0)
	_ encoding.TextUnmarshaler = (*CardState)(nil)
	_ json.Marshaler           = CardState(0)
	_ json.Unmarshaler         = (*CardState)(nil)
)

// IsValid reports whether s is one of the four defined lifecycle states.
func (s CardState) IsValid() bool {
	return s >= StateNew && s <= StateRelearning
}

// String returns the lowercase token for the state ("new" ... "relearning").
func (s CardState) String() string {
	if s.IsValid() {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s CardState) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidState, int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CardState) UnmarshalText(text []byte) error {
	v, ok := stateByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidState, text)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler. States serialize as JSON strings.
func (s CardState) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CardState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidState, data)
	}
	return s.UnmarshalText([]byte(str))
}

// nextState is the lifecycle transition function. It is total over
// state × grade-class: every (state, success) pair maps to a defined
// next state. reps is the repetition count after the current attempt
// has been applied.
func nextState(s CardState, success bool, reps, graduationReps int) CardState {
	switch s {
	case StateNew:
		// First attempt always enters the learning phase; graduation is
		// decided by the repetition threshold on later successes.
		if success && reps >= graduationReps {
			return StateReview
		}
		return StateLearning
	case StateLearning:
		if success && reps >= graduationReps {
			return StateReview
		}
		return StateLearning
	case StateReview:
		if success {
			return StateReview
		}
		return StateRelearning
	case StateRelearning:
		if success {
			return StateReview
		}
		return StateRelearning
	default:
		// Unreachable for valid states; treat like a fresh card.
		return StateLearning
	}
}
