package retrieval

import "github.com/halvden/grimoire/internal/srs"

// Selection tuning. Base weights sum to 100; the per-card recency
// penalty is multiplicative per recent occurrence, driving a heavily
// reused mode's probability toward (but never exactly to) zero.
const (
	// RecencyPenalty is the weight multiplier per occurrence of a mode
	// in the card's own recent history.
	RecencyPenalty = 0.7

	// sessionRepeatWindow is how many identical trailing session entries
	// trigger the variety exclusion.
	sessionRepeatWindow = 3
)

// baseWeights is the unpenalized share of each mode for a Review card.
var baseWeights = map[Mode]float64{
	Standard: 40,
	Reversed: 20,
	Teach:    10,
	Connect:  10,
	Generate: 20,
}

// eligibleModes returns the candidate set for a lifecycle state, in
// canonical order. New and relapsed cards only ever get the standard
// prompt; learning cards add the self-productive variants; review cards
// draw from all five.
func eligibleModes(state srs.CardState) []Mode {
	switch state {
	case srs.StateNew, srs.StateRelearning:
		return []Mode{Standard}
	case srs.StateLearning:
		return []Mode{Standard, Reversed, Generate}
	default:
		return canonicalOrder[:]
	}
}

// Select picks the retrieval mode for the next presentation of a card.
//
// cardHist is the card's own recent-mode window, sessionHist the
// session-wide one across all cards. rng must return uniform values in
// [0, 1); it is injected so identical inputs reproduce identical picks.
//
// The result is always a member of the state-restricted, variety-filtered
// candidate set; the filter is skipped when it would empty the set, so
// Select never fails.
func Select(state srs.CardState, cardHist, sessionHist History, rng func() float64) Mode {
	eligible := eligibleModes(state)

	// Session-variety exclusion: a mode that just ran three times in a
	// row across the session sits out, unless it is the only candidate.
	if repeated, ok := sessionHist.LastRepeated(sessionRepeatWindow); ok {
		filtered := make([]Mode, 0, len(eligible))
		for _, m := range eligible {
			if m != repeated {
				filtered = append(filtered, m)
			}
		}
		if len(filtered) > 0 {
			eligible = filtered
		}
	}

	if len(eligible) == 1 {
		return eligible[0]
	}

	// Recency-weighted cumulative draw over the canonical order.
	weights := make([]float64, len(eligible))
	total := 0.0
	for i, m := range eligible {
		w := baseWeights[m]
		for k := cardHist.Count(m); k > 0; k-- {
			w *= RecencyPenalty
		}
		weights[i] = w
		total += w
	}

	x := rng() * total
	cum := 0.0
	for i, m := range eligible {
		cum += weights[i]
		if x < cum {
			return m
		}
	}
	// rng returned a value at (or float-error above) the top boundary.
	return eligible[len(eligible)-1]
}
