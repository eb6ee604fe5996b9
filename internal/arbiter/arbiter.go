// Package arbiter turns a free-text answer into a grade suggestion by
// asking an LLM to judge it against the card. Structured retrieval modes
// never pass through here; the player self-grades when no provider is
// configured.
package arbiter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halvden/grimoire/internal/llm"
	"github.com/halvden/grimoire/internal/retrieval"
	"github.com/halvden/grimoire/internal/srs"
)

// Config holds arbiter tuning.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Judging wants low temperature
// so the same answer gets the same verdict.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// Arbiter judges free-text answers with an LLM provider.
type Arbiter struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Arbiter. A nil provider is allowed; Available reports it
// and Judge returns an error.
func New(provider llm.Provider, cfg Config) *Arbiter {
	return &Arbiter{provider: provider, cfg: cfg}
}

// Available reports whether a provider is configured.
func (a *Arbiter) Available() bool {
	return a != nil && a.provider != nil
}

// JudgeRequest is the input for answer judging.
type JudgeRequest struct {
	Mode   retrieval.Mode
	Front  string
	Back   string
	Answer string
}

// Verdict is the arbiter's grade suggestion. The player can always
// override it.
type Verdict struct {
	Grade      srs.Grade
	Confidence float64
	Feedback   string
}

// verdictOutput is the raw LLM response.
type verdictOutput struct {
	Grade      string  `json:"grade"`
	Confidence float64 `json:"confidence"`
	Feedback   string  `json:"feedback"`
}

// Judge sends a free-text answer to the LLM and returns a grade suggestion.
func (a *Arbiter) Judge(ctx context.Context, req JudgeRequest) (*Verdict, error) {
	if !a.Available() {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	if !req.Mode.FreeText() {
		return nil, fmt.Errorf("mode %s is not judged by the arbiter", req.Mode)
	}

	ctx = llm.WithPurpose(ctx, "answer-judging")

	userMsg, err := buildJudgeMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build judge prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      VerdictSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM judging failed: %w", err)
	}
	if resp.StopReason == "max_tokens" {
		return nil, &llm.ErrMaxTokensExceeded{Content: resp.Content}
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse verdict: %w", err)
	}

	var grade srs.Grade
	if err := grade.UnmarshalText([]byte(raw.Grade)); err != nil {
		return nil, fmt.Errorf("verdict grade %q: %w", raw.Grade, err)
	}

	return &Verdict{
		Grade:      grade,
		Confidence: raw.Confidence,
		Feedback:   raw.Feedback,
	}, nil
}
