// Code generated by ent, DO NOT EDIT.

package battleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the battleevent type in the database.
	Label = "battle_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBattleID holds the string denoting the battle_id field in the database.
	FieldBattleID = "battle_id"
	// FieldDeckID holds the string denoting the deck_id field in the database.
	FieldDeckID = "deck_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldMonster holds the string denoting the monster field in the database.
	FieldMonster = "monster"
	// FieldCardsReviewed holds the string denoting the cards_reviewed field in the database.
	FieldCardsReviewed = "cards_reviewed"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// FieldGoldEarned holds the string denoting the gold_earned field in the database.
	FieldGoldEarned = "gold_earned"
	// FieldVictory holds the string denoting the victory field in the database.
	FieldVictory = "victory"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the battleevent in the database.
	Table = "battle_events"
)

// Columns holds all SQL columns for battleevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBattleID,
	FieldDeckID,
	FieldAction,
	FieldMonster,
	FieldCardsReviewed,
	FieldCorrectAnswers,
	FieldXpEarned,
	FieldGoldEarned,
	FieldVictory,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// BattleIDValidator is a validator for the "battle_id" field. It is called by the builders before save.
	BattleIDValidator func(string) error
	// DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	DeckIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// MonsterValidator is a validator for the "monster" field. It is called by the builders before save.
	MonsterValidator func(string) error
	// DefaultCardsReviewed holds the default value on creation for the "cards_reviewed" field.
	DefaultCardsReviewed int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultXpEarned holds the default value on creation for the "xp_earned" field.
	DefaultXpEarned int
	// DefaultGoldEarned holds the default value on creation for the "gold_earned" field.
	DefaultGoldEarned int
	// DefaultVictory holds the default value on creation for the "victory" field.
	DefaultVictory bool
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the BattleEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByBattleID orders the results by the battle_id field.
func ByBattleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBattleID, opts...).ToFunc()
}

// ByDeckID orders the results by the deck_id field.
func ByDeckID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeckID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByMonster orders the results by the monster field.
func ByMonster(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonster, opts...).ToFunc()
}

// ByCardsReviewed orders the results by the cards_reviewed field.
func ByCardsReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardsReviewed, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}

// ByGoldEarned orders the results by the gold_earned field.
func ByGoldEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoldEarned, opts...).ToFunc()
}

// ByVictory orders the results by the victory field.
func ByVictory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVictory, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
