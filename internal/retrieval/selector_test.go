package retrieval

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/halvden/grimoire/internal/srs"
)

func fixedRng(v float64) func() float64 {
	return func() float64 { return v }
}

func TestNewAndRelearningAlwaysStandard(t *testing.T) {
	rng := rand.New(rand.NewSource(1)).Float64
	for _, state := range []srs.CardState{srs.StateNew, srs.StateRelearning} {
		for i := 0; i < 100; i++ {
			if m := Select(state, History{}, History{}, rng); m != Standard {
				t.Fatalf("%v trial %d: got %v, want %v", state, i, m, Standard)
			}
		}
	}
}

func TestLearningModeSubset(t *testing.T) {
	rng := rand.New(rand.NewSource(2)).Float64
	allowed := map[Mode]bool{Standard: true, Reversed: true, Generate: true}
	for i := 0; i < 100; i++ {
		if m := Select(srs.StateLearning, History{}, History{}, rng); !allowed[m] {
			t.Fatalf("trial %d: %v not allowed for learning cards", i, m)
		}
	}
}

func TestReviewBoundaryDraws(t *testing.T) {
	if m := Select(srs.StateReview, History{}, History{}, fixedRng(0)); m != Standard {
		t.Errorf("rng=0: got %v, want first canonical mode %v", m, Standard)
	}
	if m := Select(srs.StateReview, History{}, History{}, fixedRng(0.9999)); m != Generate {
		t.Errorf("rng=0.9999: got %v, want last canonical mode %v", m, Generate)
	}
}

func TestRecencyPenaltySuppressesReuse(t *testing.T) {
	var cardHist History
	for i := 0; i < 5; i++ {
		cardHist.Push(Standard)
	}

	rng := rand.New(rand.NewSource(3)).Float64
	const trials = 10000
	hits := 0
	for i := 0; i < trials; i++ {
		if Select(srs.StateReview, cardHist, History{}, rng) == Standard {
			hits++
		}
	}

	// Unpenalized base share is 40%; five recent uses cut the effective
	// weight to 40·0.7⁵ ≈ 6.7 of ≈ 66.7, about a 10% share.
	if share := float64(hits) / trials; share >= 0.25 {
		t.Errorf("penalized Standard share = %.3f, want well under 0.25", share)
	}
}

func TestSessionVarietyExclusion(t *testing.T) {
	var sessionHist History
	for i := 0; i < 3; i++ {
		sessionHist.Push(Reversed)
	}

	rng := rand.New(rand.NewSource(4)).Float64
	for i := 0; i < 100; i++ {
		if m := Select(srs.StateReview, History{}, sessionHist, rng); m == Reversed {
			t.Fatalf("trial %d: repeated mode %v selected despite variety exclusion", i, m)
		}
	}
}

func TestSessionVarietyEscapeClause(t *testing.T) {
	// A relearning card is only eligible for Standard; the exclusion
	// must be skipped rather than emptying the candidate set.
	var sessionHist History
	for i := 0; i < 3; i++ {
		sessionHist.Push(Standard)
	}
	if m := Select(srs.StateRelearning, History{}, sessionHist, fixedRng(0.5)); m != Standard {
		t.Errorf("escape clause: got %v, want %v", m, Standard)
	}
}

func TestSelectionIsDeterministic(t *testing.T) {
	var cardHist, sessionHist History
	cardHist.Push(Teach)
	sessionHist.Push(Standard)

	a := Select(srs.StateReview, cardHist, sessionHist, fixedRng(0.42))
	b := Select(srs.StateReview, cardHist, sessionHist, fixedRng(0.42))
	if a != b {
		t.Errorf("identical inputs produced %v then %v", a, b)
	}
}

func TestHistoryWindowBounded(t *testing.T) {
	var h History
	for i := 0; i < 3*HistorySize; i++ {
		h.Push(Standard)
	}
	if h.Len() != HistorySize {
		t.Errorf("history length = %d, want %d", h.Len(), HistorySize)
	}

	h.Push(Teach)
	if h.Len() != HistorySize {
		t.Errorf("history grew past capacity: %d", h.Len())
	}
	if h.At(h.Len()-1) != Teach {
		t.Errorf("newest entry = %v, want %v", h.At(h.Len()-1), Teach)
	}
	if h.Count(Standard) != HistorySize-1 {
		t.Errorf("Count(Standard) = %d, want %d", h.Count(Standard), HistorySize-1)
	}
}

func TestHistoryLastRepeated(t *testing.T) {
	var h History
	if _, ok := h.LastRepeated(3); ok {
		t.Error("empty history reported a repeated run")
	}

	h.Push(Standard)
	h.Push(Teach)
	h.Push(Teach)
	h.Push(Teach)
	m, ok := h.LastRepeated(3)
	if !ok || m != Teach {
		t.Errorf("LastRepeated = %v/%v, want teach/true", m, ok)
	}

	h.Push(Standard)
	if _, ok := h.LastRepeated(3); ok {
		t.Error("broken run still reported as repeated")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	var h History
	for _, m := range []Mode{Standard, Reversed, Teach, Connect, Generate, Standard} {
		h.Push(m)
	}
	restored := HistoryFrom(h.Slice())
	if restored.Len() != h.Len() {
		t.Fatalf("restored length %d, want %d", restored.Len(), h.Len())
	}
	for i := 0; i < h.Len(); i++ {
		if restored.At(i) != h.At(i) {
			t.Errorf("entry %d = %v, want %v", i, restored.At(i), h.At(i))
		}
	}
}

func TestModeTokens(t *testing.T) {
	tokens := map[Mode]string{
		Standard: "standard",
		Reversed: "reversed",
		Teach:    "teach",
		Connect:  "connect",
		Generate: "generate",
	}
	for m, want := range tokens {
		data, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal %v: %v", m, err)
		}
		if string(data) != `"`+want+`"` {
			t.Errorf("marshal %v = %s, want %q", m, data, want)
		}
		var back Mode
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != m {
			t.Errorf("round-trip %v = %v", m, back)
		}
	}
}
