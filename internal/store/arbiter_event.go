package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendArbiterEvent(ctx context.Context, data ArbiterEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ArbiterEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save arbiter event: %w", err)
	}
	return nil
}
