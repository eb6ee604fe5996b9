// Package retrieval picks the presentation variant for the next review
// of a card: state-restricted, recency-weighted, session-aware randomized
// selection over the five retrieval modes.
package retrieval

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
)

// Mode is a presentation variant for one review of a card.
type Mode int

const (
	Standard Mode = iota + 1 // Front shown, recall the back.
	Reversed                 // Back shown, recall the front.
	Teach                    // Explain the card as if teaching it.
	Connect                  // Relate the card to another known card.
	Generate                 // Produce an example from the cue alone.
)

// canonicalOrder is the fixed draw order of the weighted selection.
// Boundary draws (rng → 0, rng → 1) are reproducible because this order
// never changes.
var canonicalOrder = [...]Mode{Standard, Reversed, Teach, Connect, Generate}

// ErrInvalidMode is returned when parsing an unrecognized mode token.
var ErrInvalidMode = errors.New("retrieval: invalid mode")

var (
	modeNames = [...]string{
		Standard: "standard",
		Reversed: "reversed",
		Teach:    "teach",
		Connect:  "connect",
		Generate: "generate",
	}
	modeByName = map[string]Mode{
		"standard": Standard,
		"reversed": Reversed,
		"teach":    Teach,
		"connect":  Connect,
		"generate": Generate,
	}
)

var (
	_ fmt.Stringer             = Mode(0)
	_ encoding.TextMarshaler   = Mode(0)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
	_ json.Marshaler           = Mode(0)
	_ json.Unmarshaler         = (*Mode)(nil)
)

// IsValid reports whether m is one of the five defined modes.
func (m Mode) IsValid() bool {
	return m >= Standard && m <= Generate
}

// FreeText reports whether the mode elicits a free-text response
// (judged by the arbiter) rather than an exact answer.
func (m Mode) FreeText() bool {
	return m == Teach || m == Connect || m == Generate
}

// String returns the lowercase token for the mode ("standard" ... "generate").
func (m Mode) String() string {
	if m.IsValid() {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, ok := modeByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMode, text)
	}
	*m = v
	return nil
}

// MarshalJSON implements json.Marshaler. Modes serialize as JSON strings.
func (m Mode) MarshalJSON() ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMode, data)
	}
	return m.UnmarshalText([]byte(s))
}
