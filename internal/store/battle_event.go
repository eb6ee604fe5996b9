package store

import (
	"context"
	"fmt"

	"github.com/halvden/grimoire/ent"
	"github.com/halvden/grimoire/ent/battleevent"
)

func (r *eventRepo) AppendBattleEvent(ctx context.Context, data BattleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BattleEvent.Create().
		SetSequence(seqNum).
		SetBattleID(data.BattleID).
		SetDeckID(data.DeckID).
		SetAction(data.Action).
		SetMonster(data.Monster).
		SetCardsReviewed(data.CardsReviewed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetXpEarned(data.XPEarned).
		SetGoldEarned(data.GoldEarned).
		SetVictory(data.Victory).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save battle event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBattleSummaries(ctx context.Context, opts QueryOpts) ([]BattleSummaryRecord, error) {
	query := r.client.BattleEvent.Query().
		Where(battleevent.Action("end")).
		Order(ent.Desc(battleevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(battleevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(battleevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(battleevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(battleevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query battle events: %w", err)
	}

	records := make([]BattleSummaryRecord, len(events))
	for i, e := range events {
		records[i] = BattleSummaryRecord{
			BattleID:       e.BattleID,
			DeckID:         e.DeckID,
			Monster:        e.Monster,
			CardsReviewed:  e.CardsReviewed,
			CorrectAnswers: e.CorrectAnswers,
			XPEarned:       e.XpEarned,
			GoldEarned:     e.GoldEarned,
			Victory:        e.Victory,
			DurationSecs:   e.DurationSecs,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
		}
	}
	return records, nil
}
