package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full player state at a point in time.
// Timestamps are RFC3339 strings; the domain packages own the
// conversions to and from their richer types.
type SnapshotData struct {
	Version         int                           `json:"version"`
	Hero            *HeroData                     `json:"hero,omitempty"`
	Decks           []DeckData                    `json:"decks,omitempty"`
	Schedules       map[string]ScheduleData       `json:"schedules,omitempty"`
	LegacySchedules map[string]LegacyScheduleData `json:"legacy_schedules,omitempty"`
	Recall          map[string]RecallStatsData    `json:"recall,omitempty"`
	ModeHistory     map[string][]string           `json:"mode_history,omitempty"`
}

// HeroData is the persisted hero.
type HeroData struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	XP    int    `json:"xp"`
	Gold  int    `json:"gold"`
}

// DeckData is a persisted deck with its cards.
type DeckData struct {
	DeckID      string     `json:"deck_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Legacy      bool       `json:"legacy,omitempty"`
	Cards       []CardData `json:"cards"`
}

// CardData is a persisted card.
type CardData struct {
	CardID string   `json:"card_id"`
	Front  string   `json:"front"`
	Back   string   `json:"back"`
	Lore   string   `json:"lore,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// ScheduleData is the persisted primary-model schedule for one card.
type ScheduleData struct {
	CardID      string  `json:"card_id"`
	Difficulty  float64 `json:"difficulty"`
	Stability   float64 `json:"stability"`
	Repetitions int     `json:"repetitions"`
	Lapses      int     `json:"lapses"`
	State       string  `json:"state"`
	Due         string  `json:"due"`
	LastReview  string  `json:"last_review,omitempty"`
}

// LegacyScheduleData is the persisted SM-2 schedule for one card.
type LegacyScheduleData struct {
	CardID       string  `json:"card_id"`
	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays int     `json:"interval_days"`
	Repetitions  int     `json:"repetitions"`
	NextReview   string  `json:"next_review,omitempty"`
}

// RecallStatsData is the persisted attempt counters for one card.
type RecallStatsData struct {
	Attempts       int   `json:"attempts"`
	Correct        int   `json:"correct"`
	Streak         int   `json:"streak"`
	BestStreak     int   `json:"best_streak"`
	TotalElapsedMs int64 `json:"total_elapsed_ms"`
}

// Snapshot represents a point-in-time capture of player state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages player state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ReviewEventData captures one graded recall attempt.
type ReviewEventData struct {
	BattleID    string
	DeckID      string
	CardID      string
	Mode        string
	Grade       string
	Correct     bool
	TimeMs      int
	StateBefore string
	StateAfter  string
	Stability   float64
	DueAt       time.Time
}

// BattleEventData captures a battle lifecycle event.
type BattleEventData struct {
	BattleID       string
	DeckID         string
	Action         string // "start" or "end"
	Monster        string
	CardsReviewed  int
	CorrectAnswers int
	XPEarned       int
	GoldEarned     int
	Victory        bool
	DurationSecs   int
}

// BattleSummaryRecord is a queried battle-end event.
type BattleSummaryRecord struct {
	BattleID       string
	DeckID         string
	Monster        string
	CardsReviewed  int
	CorrectAnswers int
	XPEarned       int
	GoldEarned     int
	Victory        bool
	DurationSecs   int
	Sequence       int64
	Timestamp      time.Time
}

// ArbiterEventData captures a single LLM judging request.
type ArbiterEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendReviewEvent records one graded recall attempt.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// AppendBattleEvent records a battle start or end.
	AppendBattleEvent(ctx context.Context, data BattleEventData) error

	// AppendArbiterEvent records an LLM judging request.
	AppendArbiterEvent(ctx context.Context, data ArbiterEventData) error

	// CardAccuracy returns the lifetime success rate for a card, 0 when
	// the card has never been reviewed.
	CardAccuracy(ctx context.Context, cardID string) (float64, error)

	// QueryBattleSummaries returns battle-end records, newest first.
	QueryBattleSummaries(ctx context.Context, opts QueryOpts) ([]BattleSummaryRecord, error)
}
