// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halvden/grimoire/ent/battleevent"
)

// BattleEvent is the model entity for the BattleEvent schema.
type BattleEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a battle
	BattleID string `json:"battle_id,omitempty"`
	// DeckID holds the value of the "deck_id" field.
	DeckID string `json:"deck_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Monster name for this battle
	Monster string `json:"monster,omitempty"`
	// Total attempts (on end only)
	CardsReviewed int `json:"cards_reviewed,omitempty"`
	// Total successes (on end only)
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// GoldEarned holds the value of the "gold_earned" field.
	GoldEarned int `json:"gold_earned,omitempty"`
	// Whether the monster fell (on end only)
	Victory bool `json:"victory,omitempty"`
	// Actual duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BattleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case battleevent.FieldVictory:
			values[i] = new(sql.NullBool)
		case battleevent.FieldID, battleevent.FieldSequence, battleevent.FieldCardsReviewed, battleevent.FieldCorrectAnswers, battleevent.FieldXpEarned, battleevent.FieldGoldEarned, battleevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case battleevent.FieldBattleID, battleevent.FieldDeckID, battleevent.FieldAction, battleevent.FieldMonster:
			values[i] = new(sql.NullString)
		case battleevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BattleEvent fields.
func (_m *BattleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case battleevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case battleevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case battleevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case battleevent.FieldBattleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field battle_id", values[i])
			} else if value.Valid {
				_m.BattleID = value.String
			}
		case battleevent.FieldDeckID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deck_id", values[i])
			} else if value.Valid {
				_m.DeckID = value.String
			}
		case battleevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case battleevent.FieldMonster:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field monster", values[i])
			} else if value.Valid {
				_m.Monster = value.String
			}
		case battleevent.FieldCardsReviewed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cards_reviewed", values[i])
			} else if value.Valid {
				_m.CardsReviewed = int(value.Int64)
			}
		case battleevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case battleevent.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		case battleevent.FieldGoldEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gold_earned", values[i])
			} else if value.Valid {
				_m.GoldEarned = int(value.Int64)
			}
		case battleevent.FieldVictory:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field victory", values[i])
			} else if value.Valid {
				_m.Victory = value.Bool
			}
		case battleevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BattleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BattleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BattleEvent.
// Note that you need to call BattleEvent.Unwrap() before calling this method if this BattleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BattleEvent) Update() *BattleEventUpdateOne {
	return NewBattleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BattleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BattleEvent) Unwrap() *BattleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BattleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BattleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BattleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("battle_id=")
	builder.WriteString(_m.BattleID)
	builder.WriteString(", ")
	builder.WriteString("deck_id=")
	builder.WriteString(_m.DeckID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("monster=")
	builder.WriteString(_m.Monster)
	builder.WriteString(", ")
	builder.WriteString("cards_reviewed=")
	builder.WriteString(fmt.Sprintf("%v", _m.CardsReviewed))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("gold_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoldEarned))
	builder.WriteString(", ")
	builder.WriteString("victory=")
	builder.WriteString(fmt.Sprintf("%v", _m.Victory))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// BattleEvents is a parsable slice of BattleEvent.
type BattleEvents []*BattleEvent
