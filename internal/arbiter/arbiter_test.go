package arbiter

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/halvden/grimoire/internal/llm"
	"github.com/halvden/grimoire/internal/retrieval"
	"github.com/halvden/grimoire/internal/srs"
)

func TestJudgeReturnsVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"grade":"correct","confidence":0.85,"feedback":"Close, watch the second step."}`),
	})
	a := New(mock, DefaultConfig())

	v, err := a.Judge(context.Background(), JudgeRequest{
		Mode:   retrieval.Teach,
		Front:  "photosynthesis",
		Back:   "plants convert light, water and CO2 into glucose and oxygen",
		Answer: "plants turn sunlight into sugar using water and carbon dioxide",
	})
	if err != nil {
		t.Fatalf("judge: %v", err)
	}
	if v.Grade != srs.Correct {
		t.Errorf("grade = %v, want Correct", v.Grade)
	}
	if v.Confidence != 0.85 {
		t.Errorf("confidence = %v", v.Confidence)
	}
	if v.Feedback == "" {
		t.Error("expected feedback")
	}
}

func TestJudgePromptIncludesCardAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"grade":"perfect","confidence":1,"feedback":"Spot on."}`),
	})
	a := New(mock, DefaultConfig())

	_, err := a.Judge(context.Background(), JudgeRequest{
		Mode:   retrieval.Generate,
		Front:  "ablative absolute",
		Back:   "a Latin construction setting circumstance apart from the main clause",
		Answer: "urbe capta, hostes discesserunt",
	})
	if err != nil {
		t.Fatalf("judge: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != VerdictSchema {
		t.Error("expected verdict schema on request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"ablative absolute", "urbe capta", "their own example"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestJudgeRejectsStructuredModes(t *testing.T) {
	a := New(llm.NewMockProvider(), DefaultConfig())

	for _, mode := range []retrieval.Mode{retrieval.Standard, retrieval.Reversed} {
		if _, err := a.Judge(context.Background(), JudgeRequest{Mode: mode}); err == nil {
			t.Errorf("expected error for mode %s", mode)
		}
	}
}

func TestJudgeRejectsUnknownGradeToken(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"grade":"stupendous","confidence":0.5,"feedback":"?"}`),
	})
	a := New(mock, DefaultConfig())

	if _, err := a.Judge(context.Background(), JudgeRequest{Mode: retrieval.Teach}); err == nil {
		t.Error("expected error for unknown grade token")
	}
}

func TestJudgeNeverSuggestsTimeout(t *testing.T) {
	enum, ok := VerdictSchema.Definition["properties"].(map[string]any)["grade"].(map[string]any)["enum"].([]any)
	if !ok {
		t.Fatal("grade enum missing from schema")
	}
	for _, v := range enum {
		if v == "timeout" {
			t.Error("timeout must not be a judgeable grade")
		}
	}
}

func TestAvailability(t *testing.T) {
	if New(nil, DefaultConfig()).Available() {
		t.Error("nil provider should not be available")
	}
	var a *Arbiter
	if a.Available() {
		t.Error("nil arbiter should not be available")
	}

	unavailable := New(nil, DefaultConfig())
	if _, err := unavailable.Judge(context.Background(), JudgeRequest{Mode: retrieval.Teach}); err == nil {
		t.Error("expected error without provider")
	}
}
