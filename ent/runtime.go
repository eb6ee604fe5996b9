// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/halvden/grimoire/ent/arbiterevent"
	"github.com/halvden/grimoire/ent/battleevent"
	"github.com/halvden/grimoire/ent/reviewevent"
	"github.com/halvden/grimoire/ent/schema"
	"github.com/halvden/grimoire/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	arbitereventMixin := schema.ArbiterEvent{}.Mixin()
	arbitereventMixinFields0 := arbitereventMixin[0].Fields()
	_ = arbitereventMixinFields0
	arbitereventFields := schema.ArbiterEvent{}.Fields()
	_ = arbitereventFields
	// arbitereventDescTimestamp is the schema descriptor for timestamp field.
	arbitereventDescTimestamp := arbitereventMixinFields0[1].Descriptor()
	// arbiterevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	arbiterevent.DefaultTimestamp = arbitereventDescTimestamp.Default.(func() time.Time)
	// arbitereventDescProvider is the schema descriptor for provider field.
	arbitereventDescProvider := arbitereventFields[0].Descriptor()
	// arbiterevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	arbiterevent.ProviderValidator = arbitereventDescProvider.Validators[0].(func(string) error)
	// arbitereventDescModel is the schema descriptor for model field.
	arbitereventDescModel := arbitereventFields[1].Descriptor()
	// arbiterevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	arbiterevent.ModelValidator = arbitereventDescModel.Validators[0].(func(string) error)
	// arbitereventDescPurpose is the schema descriptor for purpose field.
	arbitereventDescPurpose := arbitereventFields[2].Descriptor()
	// arbiterevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	arbiterevent.PurposeValidator = arbitereventDescPurpose.Validators[0].(func(string) error)
	// arbitereventDescInputTokens is the schema descriptor for input_tokens field.
	arbitereventDescInputTokens := arbitereventFields[3].Descriptor()
	// arbiterevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	arbiterevent.DefaultInputTokens = arbitereventDescInputTokens.Default.(int)
	// arbitereventDescOutputTokens is the schema descriptor for output_tokens field.
	arbitereventDescOutputTokens := arbitereventFields[4].Descriptor()
	// arbiterevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	arbiterevent.DefaultOutputTokens = arbitereventDescOutputTokens.Default.(int)
	// arbitereventDescLatencyMs is the schema descriptor for latency_ms field.
	arbitereventDescLatencyMs := arbitereventFields[5].Descriptor()
	// arbiterevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	arbiterevent.DefaultLatencyMs = arbitereventDescLatencyMs.Default.(int64)
	battleeventMixin := schema.BattleEvent{}.Mixin()
	battleeventMixinFields0 := battleeventMixin[0].Fields()
	_ = battleeventMixinFields0
	battleeventFields := schema.BattleEvent{}.Fields()
	_ = battleeventFields
	// battleeventDescTimestamp is the schema descriptor for timestamp field.
	battleeventDescTimestamp := battleeventMixinFields0[1].Descriptor()
	// battleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	battleevent.DefaultTimestamp = battleeventDescTimestamp.Default.(func() time.Time)
	// battleeventDescBattleID is the schema descriptor for battle_id field.
	battleeventDescBattleID := battleeventFields[0].Descriptor()
	// battleevent.BattleIDValidator is a validator for the "battle_id" field. It is called by the builders before save.
	battleevent.BattleIDValidator = battleeventDescBattleID.Validators[0].(func(string) error)
	// battleeventDescDeckID is the schema descriptor for deck_id field.
	battleeventDescDeckID := battleeventFields[1].Descriptor()
	// battleevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	battleevent.DeckIDValidator = battleeventDescDeckID.Validators[0].(func(string) error)
	// battleeventDescAction is the schema descriptor for action field.
	battleeventDescAction := battleeventFields[2].Descriptor()
	// battleevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	battleevent.ActionValidator = battleeventDescAction.Validators[0].(func(string) error)
	// battleeventDescMonster is the schema descriptor for monster field.
	battleeventDescMonster := battleeventFields[3].Descriptor()
	// battleevent.MonsterValidator is a validator for the "monster" field. It is called by the builders before save.
	battleevent.MonsterValidator = battleeventDescMonster.Validators[0].(func(string) error)
	// battleeventDescCardsReviewed is the schema descriptor for cards_reviewed field.
	battleeventDescCardsReviewed := battleeventFields[4].Descriptor()
	// battleevent.DefaultCardsReviewed holds the default value on creation for the cards_reviewed field.
	battleevent.DefaultCardsReviewed = battleeventDescCardsReviewed.Default.(int)
	// battleeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	battleeventDescCorrectAnswers := battleeventFields[5].Descriptor()
	// battleevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	battleevent.DefaultCorrectAnswers = battleeventDescCorrectAnswers.Default.(int)
	// battleeventDescXpEarned is the schema descriptor for xp_earned field.
	battleeventDescXpEarned := battleeventFields[6].Descriptor()
	// battleevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	battleevent.DefaultXpEarned = battleeventDescXpEarned.Default.(int)
	// battleeventDescGoldEarned is the schema descriptor for gold_earned field.
	battleeventDescGoldEarned := battleeventFields[7].Descriptor()
	// battleevent.DefaultGoldEarned holds the default value on creation for the gold_earned field.
	battleevent.DefaultGoldEarned = battleeventDescGoldEarned.Default.(int)
	// battleeventDescVictory is the schema descriptor for victory field.
	battleeventDescVictory := battleeventFields[8].Descriptor()
	// battleevent.DefaultVictory holds the default value on creation for the victory field.
	battleevent.DefaultVictory = battleeventDescVictory.Default.(bool)
	// battleeventDescDurationSecs is the schema descriptor for duration_secs field.
	battleeventDescDurationSecs := battleeventFields[9].Descriptor()
	// battleevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	battleevent.DefaultDurationSecs = battleeventDescDurationSecs.Default.(int)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescBattleID is the schema descriptor for battle_id field.
	revieweventDescBattleID := revieweventFields[0].Descriptor()
	// reviewevent.BattleIDValidator is a validator for the "battle_id" field. It is called by the builders before save.
	reviewevent.BattleIDValidator = revieweventDescBattleID.Validators[0].(func(string) error)
	// revieweventDescDeckID is the schema descriptor for deck_id field.
	revieweventDescDeckID := revieweventFields[1].Descriptor()
	// reviewevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	reviewevent.DeckIDValidator = revieweventDescDeckID.Validators[0].(func(string) error)
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[2].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	// revieweventDescMode is the schema descriptor for mode field.
	revieweventDescMode := revieweventFields[3].Descriptor()
	// reviewevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	reviewevent.ModeValidator = revieweventDescMode.Validators[0].(func(string) error)
	// revieweventDescGrade is the schema descriptor for grade field.
	revieweventDescGrade := revieweventFields[4].Descriptor()
	// reviewevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	reviewevent.GradeValidator = revieweventDescGrade.Validators[0].(func(string) error)
	// revieweventDescStateBefore is the schema descriptor for state_before field.
	revieweventDescStateBefore := revieweventFields[7].Descriptor()
	// reviewevent.StateBeforeValidator is a validator for the "state_before" field. It is called by the builders before save.
	reviewevent.StateBeforeValidator = revieweventDescStateBefore.Validators[0].(func(string) error)
	// revieweventDescStateAfter is the schema descriptor for state_after field.
	revieweventDescStateAfter := revieweventFields[8].Descriptor()
	// reviewevent.StateAfterValidator is a validator for the "state_after" field. It is called by the builders before save.
	reviewevent.StateAfterValidator = revieweventDescStateAfter.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
