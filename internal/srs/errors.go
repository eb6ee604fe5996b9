package srs

import "errors"

var (
	// ErrInvalidGrade is returned when parsing an unrecognized grade token.
	ErrInvalidGrade = errors.New("srs: invalid grade")

	// ErrInvalidState is returned when parsing an unrecognized lifecycle state.
	ErrInvalidState = errors.New("srs: invalid card state")

	// ErrInvalidRetention is returned by NewRetention for values outside (0, 1).
	ErrInvalidRetention = errors.New("srs: retention must be in (0, 1)")
)
