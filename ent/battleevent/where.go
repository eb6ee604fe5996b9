// Code generated by ent, DO NOT EDIT.

package battleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halvden/grimoire/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BattleID applies equality check predicate on the "battle_id" field. It's identical to BattleIDEQ.
func BattleID(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldBattleID, v))
}

// DeckID applies equality check predicate on the "deck_id" field. It's identical to DeckIDEQ.
func DeckID(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldDeckID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldAction, v))
}

// Monster applies equality check predicate on the "monster" field. It's identical to MonsterEQ.
func Monster(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldMonster, v))
}

// CardsReviewed applies equality check predicate on the "cards_reviewed" field. It's identical to CardsReviewedEQ.
func CardsReviewed(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldCardsReviewed, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldXpEarned, v))
}

// GoldEarned applies equality check predicate on the "gold_earned" field. It's identical to GoldEarnedEQ.
func GoldEarned(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldGoldEarned, v))
}

// Victory applies equality check predicate on the "victory" field. It's identical to VictoryEQ.
func Victory(v bool) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldVictory, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BattleIDEQ applies the EQ predicate on the "battle_id" field.
func BattleIDEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldBattleID, v))
}

// BattleIDNEQ applies the NEQ predicate on the "battle_id" field.
func BattleIDNEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldBattleID, v))
}

// BattleIDIn applies the In predicate on the "battle_id" field.
func BattleIDIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldBattleID, vs...))
}

// BattleIDNotIn applies the NotIn predicate on the "battle_id" field.
func BattleIDNotIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldBattleID, vs...))
}

// BattleIDGT applies the GT predicate on the "battle_id" field.
func BattleIDGT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldBattleID, v))
}

// BattleIDGTE applies the GTE predicate on the "battle_id" field.
func BattleIDGTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldBattleID, v))
}

// BattleIDLT applies the LT predicate on the "battle_id" field.
func BattleIDLT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldBattleID, v))
}

// BattleIDLTE applies the LTE predicate on the "battle_id" field.
func BattleIDLTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldBattleID, v))
}

// BattleIDContains applies the Contains predicate on the "battle_id" field.
func BattleIDContains(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContains(FieldBattleID, v))
}

// BattleIDHasPrefix applies the HasPrefix predicate on the "battle_id" field.
func BattleIDHasPrefix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasPrefix(FieldBattleID, v))
}

// BattleIDHasSuffix applies the HasSuffix predicate on the "battle_id" field.
func BattleIDHasSuffix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasSuffix(FieldBattleID, v))
}

// BattleIDEqualFold applies the EqualFold predicate on the "battle_id" field.
func BattleIDEqualFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEqualFold(FieldBattleID, v))
}

// BattleIDContainsFold applies the ContainsFold predicate on the "battle_id" field.
func BattleIDContainsFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContainsFold(FieldBattleID, v))
}

// DeckIDEQ applies the EQ predicate on the "deck_id" field.
func DeckIDEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldDeckID, v))
}

// DeckIDNEQ applies the NEQ predicate on the "deck_id" field.
func DeckIDNEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldDeckID, v))
}

// DeckIDIn applies the In predicate on the "deck_id" field.
func DeckIDIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldDeckID, vs...))
}

// DeckIDNotIn applies the NotIn predicate on the "deck_id" field.
func DeckIDNotIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldDeckID, vs...))
}

// DeckIDGT applies the GT predicate on the "deck_id" field.
func DeckIDGT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldDeckID, v))
}

// DeckIDGTE applies the GTE predicate on the "deck_id" field.
func DeckIDGTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldDeckID, v))
}

// DeckIDLT applies the LT predicate on the "deck_id" field.
func DeckIDLT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldDeckID, v))
}

// DeckIDLTE applies the LTE predicate on the "deck_id" field.
func DeckIDLTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldDeckID, v))
}

// DeckIDContains applies the Contains predicate on the "deck_id" field.
func DeckIDContains(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContains(FieldDeckID, v))
}

// DeckIDHasPrefix applies the HasPrefix predicate on the "deck_id" field.
func DeckIDHasPrefix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasPrefix(FieldDeckID, v))
}

// DeckIDHasSuffix applies the HasSuffix predicate on the "deck_id" field.
func DeckIDHasSuffix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasSuffix(FieldDeckID, v))
}

// DeckIDEqualFold applies the EqualFold predicate on the "deck_id" field.
func DeckIDEqualFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEqualFold(FieldDeckID, v))
}

// DeckIDContainsFold applies the ContainsFold predicate on the "deck_id" field.
func DeckIDContainsFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContainsFold(FieldDeckID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContainsFold(FieldAction, v))
}

// MonsterEQ applies the EQ predicate on the "monster" field.
func MonsterEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldMonster, v))
}

// MonsterNEQ applies the NEQ predicate on the "monster" field.
func MonsterNEQ(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldMonster, v))
}

// MonsterIn applies the In predicate on the "monster" field.
func MonsterIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldMonster, vs...))
}

// MonsterNotIn applies the NotIn predicate on the "monster" field.
func MonsterNotIn(vs ...string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldMonster, vs...))
}

// MonsterGT applies the GT predicate on the "monster" field.
func MonsterGT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldMonster, v))
}

// MonsterGTE applies the GTE predicate on the "monster" field.
func MonsterGTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldMonster, v))
}

// MonsterLT applies the LT predicate on the "monster" field.
func MonsterLT(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldMonster, v))
}

// MonsterLTE applies the LTE predicate on the "monster" field.
func MonsterLTE(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldMonster, v))
}

// MonsterContains applies the Contains predicate on the "monster" field.
func MonsterContains(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContains(FieldMonster, v))
}

// MonsterHasPrefix applies the HasPrefix predicate on the "monster" field.
func MonsterHasPrefix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasPrefix(FieldMonster, v))
}

// MonsterHasSuffix applies the HasSuffix predicate on the "monster" field.
func MonsterHasSuffix(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldHasSuffix(FieldMonster, v))
}

// MonsterEqualFold applies the EqualFold predicate on the "monster" field.
func MonsterEqualFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEqualFold(FieldMonster, v))
}

// MonsterContainsFold applies the ContainsFold predicate on the "monster" field.
func MonsterContainsFold(v string) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldContainsFold(FieldMonster, v))
}

// CardsReviewedEQ applies the EQ predicate on the "cards_reviewed" field.
func CardsReviewedEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldCardsReviewed, v))
}

// CardsReviewedNEQ applies the NEQ predicate on the "cards_reviewed" field.
func CardsReviewedNEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldCardsReviewed, v))
}

// CardsReviewedIn applies the In predicate on the "cards_reviewed" field.
func CardsReviewedIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldCardsReviewed, vs...))
}

// CardsReviewedNotIn applies the NotIn predicate on the "cards_reviewed" field.
func CardsReviewedNotIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldCardsReviewed, vs...))
}

// CardsReviewedGT applies the GT predicate on the "cards_reviewed" field.
func CardsReviewedGT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldCardsReviewed, v))
}

// CardsReviewedGTE applies the GTE predicate on the "cards_reviewed" field.
func CardsReviewedGTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldCardsReviewed, v))
}

// CardsReviewedLT applies the LT predicate on the "cards_reviewed" field.
func CardsReviewedLT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldCardsReviewed, v))
}

// CardsReviewedLTE applies the LTE predicate on the "cards_reviewed" field.
func CardsReviewedLTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldCardsReviewed, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldCorrectAnswers, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldXpEarned, v))
}

// GoldEarnedEQ applies the EQ predicate on the "gold_earned" field.
func GoldEarnedEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldGoldEarned, v))
}

// GoldEarnedNEQ applies the NEQ predicate on the "gold_earned" field.
func GoldEarnedNEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldGoldEarned, v))
}

// GoldEarnedIn applies the In predicate on the "gold_earned" field.
func GoldEarnedIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldGoldEarned, vs...))
}

// GoldEarnedNotIn applies the NotIn predicate on the "gold_earned" field.
func GoldEarnedNotIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldGoldEarned, vs...))
}

// GoldEarnedGT applies the GT predicate on the "gold_earned" field.
func GoldEarnedGT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldGoldEarned, v))
}

// GoldEarnedGTE applies the GTE predicate on the "gold_earned" field.
func GoldEarnedGTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldGoldEarned, v))
}

// GoldEarnedLT applies the LT predicate on the "gold_earned" field.
func GoldEarnedLT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldGoldEarned, v))
}

// GoldEarnedLTE applies the LTE predicate on the "gold_earned" field.
func GoldEarnedLTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldGoldEarned, v))
}

// VictoryEQ applies the EQ predicate on the "victory" field.
func VictoryEQ(v bool) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldVictory, v))
}

// VictoryNEQ applies the NEQ predicate on the "victory" field.
func VictoryNEQ(v bool) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldVictory, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.BattleEvent {
	return predicate.BattleEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BattleEvent) predicate.BattleEvent {
	return predicate.BattleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BattleEvent) predicate.BattleEvent {
	return predicate.BattleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BattleEvent) predicate.BattleEvent {
	return predicate.BattleEvent(sql.NotPredicates(p))
}
