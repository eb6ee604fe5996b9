package store

import (
	"context"
	"fmt"

	"github.com/halvden/grimoire/ent/reviewevent"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetBattleID(data.BattleID).
		SetDeckID(data.DeckID).
		SetCardID(data.CardID).
		SetMode(data.Mode).
		SetGrade(data.Grade).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetStateBefore(data.StateBefore).
		SetStateAfter(data.StateAfter).
		SetStability(data.Stability).
		SetDueAt(data.DueAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) CardAccuracy(ctx context.Context, cardID string) (float64, error) {
	total, err := r.client.ReviewEvent.Query().
		Where(reviewevent.CardID(cardID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.ReviewEvent.Query().
		Where(reviewevent.CardID(cardID), reviewevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct reviews: %w", err)
	}

	return float64(correct) / float64(total), nil
}
