package srs

import "fmt"

// Retention is a validated target-retention probability: the recall
// probability the scheduler aims for at the computed due date.
type Retention float64

// DefaultRetention is the target used when the player has not tuned one.
const DefaultRetention Retention = 0.90

// NewRetention validates v and returns it as a Retention. Values outside
// the open interval (0, 1) are rejected. The supported operating range is
// 0.70–0.97; values outside it are accepted but produce intervals the
// model was not tuned for.
func NewRetention(v float64) (Retention, error) {
	if !(v > 0 && v < 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRetention, v)
	}
	return Retention(v), nil
}

// Params holds the tuning constants of the primary memory model. The
// defaults satisfy the scheduling invariants (monotonic stability growth
// on success, strict collapse on failure, retention/interval monotonicity)
// and are otherwise product-tuning values.
type Params struct {
	// InitialStability is the stability (days) assigned to a fresh card.
	InitialStability float64

	// InitialDifficulty is the difficulty assigned to a fresh card,
	// in [MinDifficulty, MaxDifficulty].
	InitialDifficulty float64

	// Decay is the exponent of the power-law forgetting curve
	// R(t,S) = (1 + factor·t/S)^Decay. Must be negative.
	Decay float64

	// Growth scales stability gains on success (exponential weight).
	Growth float64

	// StabilityPower dampens gains for already-stable cards: the gain
	// carries a S^(-StabilityPower) term.
	StabilityPower float64

	// RetrievabilityBoost rewards recall at low retrievability: the gain
	// carries a (e^((1-R)·RetrievabilityBoost) − 1) term.
	RetrievabilityBoost float64

	// PartialFactor and PerfectFactor scale the stability gain for
	// Partial and Perfect grades relative to Correct (1.0).
	PartialFactor float64
	PerfectFactor float64

	// ForgetFactor is the fraction of stability kept after a lapse.
	// Must be in (0, 1) so every lapse strictly shrinks stability.
	ForgetFactor float64

	// DifficultyStep is the base amount difficulty moves per review:
	// toward the floor on success (scaled by grade), toward the ceiling
	// on failure (scaled by FailDifficultyScale).
	DifficultyStep      float64
	FailDifficultyScale float64

	// GraduationReps is the consecutive-success count at which a
	// Learning card graduates to Review.
	GraduationReps int

	// MaxIntervalDays caps the computed interval.
	MaxIntervalDays int
}

// DefaultParams returns the stock tuning of the primary model.
func DefaultParams() Params {
	return Params{
		InitialStability:    0.4,
		InitialDifficulty:   5.0,
		Decay:               -0.5,
		Growth:              1.5,
		StabilityPower:      0.08,
		RetrievabilityBoost: 1.25,
		PartialFactor:       0.6,
		PerfectFactor:       1.5,
		ForgetFactor:        0.2,
		DifficultyStep:      0.2,
		FailDifficultyScale: 4.0,
		GraduationReps:      2,
		MaxIntervalDays:     365,
	}
}

// Difficulty and stability bounds of the primary model.
const (
	MinDifficulty = 1.0
	MaxDifficulty = 10.0
	MinStability  = 0.01
)

func clampDifficulty(d float64) float64 {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

func clampStability(s float64) float64 {
	if s < MinStability {
		return MinStability
	}
	return s
}
