package srs

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGradeTokens(t *testing.T) {
	tokens := map[Grade]string{
		Perfect: "perfect",
		Correct: "correct",
		Partial: "partial",
		Wrong:   "wrong",
		Timeout: "timeout",
	}
	for g, want := range tokens {
		data, err := json.Marshal(g)
		if err != nil {
			t.Fatalf("marshal %v: %v", g, err)
		}
		if string(data) != `"`+want+`"` {
			t.Errorf("marshal %v = %s, want %q", g, data, want)
		}
		var back Grade
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != g {
			t.Errorf("round-trip %v = %v", g, back)
		}
	}
}

func TestGradeInvalid(t *testing.T) {
	var g Grade
	if err := g.UnmarshalText([]byte("flawless")); !errors.Is(err, ErrInvalidGrade) {
		t.Errorf("unmarshal unknown token: err = %v, want ErrInvalidGrade", err)
	}
	if _, err := Grade(99).MarshalText(); !errors.Is(err, ErrInvalidGrade) {
		t.Errorf("marshal invalid grade: err = %v, want ErrInvalidGrade", err)
	}
}

func TestGradeClassification(t *testing.T) {
	for _, g := range []Grade{Perfect, Correct, Partial} {
		if !g.Success() {
			t.Errorf("%v should classify as success", g)
		}
	}
	for _, g := range []Grade{Wrong, Timeout} {
		if g.Success() {
			t.Errorf("%v should classify as failure", g)
		}
	}
}

func TestGradeQuality(t *testing.T) {
	want := map[Grade]int{Perfect: 5, Correct: 4, Partial: 3, Wrong: 1, Timeout: 0}
	for g, q := range want {
		if got := g.Quality(); got != q {
			t.Errorf("%v.Quality() = %d, want %d", g, got, q)
		}
	}
}

func TestCardStateTokens(t *testing.T) {
	tokens := map[CardState]string{
		StateNew:        "new",
		StateLearning:   "learning",
		StateReview:     "review",
		StateRelearning: "relearning",
	}
	for s, want := range tokens {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %v: %v", s, err)
		}
		if string(data) != `"`+want+`"` {
			t.Errorf("marshal %v = %s, want %q", s, data, want)
		}
		var back CardState
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != s {
			t.Errorf("round-trip %v = %v", s, back)
		}
	}
}

func TestRetentionValidation(t *testing.T) {
	for _, v := range []float64{0.70, 0.90, 0.97, 0.5} {
		if _, err := NewRetention(v); err != nil {
			t.Errorf("NewRetention(%v) rejected: %v", v, err)
		}
	}
	for _, v := range []float64{0, 1, -0.2, 1.5} {
		if _, err := NewRetention(v); !errors.Is(err, ErrInvalidRetention) {
			t.Errorf("NewRetention(%v): err = %v, want ErrInvalidRetention", v, err)
		}
	}
}
