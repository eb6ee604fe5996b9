// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArbiterEventsColumns holds the columns for the "arbiter_events" table.
	ArbiterEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// ArbiterEventsTable holds the schema information for the "arbiter_events" table.
	ArbiterEventsTable = &schema.Table{
		Name:       "arbiter_events",
		Columns:    ArbiterEventsColumns,
		PrimaryKey: []*schema.Column{ArbiterEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "arbiterevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ArbiterEventsColumns[1]},
			},
			{
				Name:    "arbiterevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ArbiterEventsColumns[2]},
			},
			{
				Name:    "arbiterevent_provider",
				Unique:  false,
				Columns: []*schema.Column{ArbiterEventsColumns[3]},
			},
		},
	}
	// BattleEventsColumns holds the columns for the "battle_events" table.
	BattleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "battle_id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "monster", Type: field.TypeString},
		{Name: "cards_reviewed", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "gold_earned", Type: field.TypeInt, Default: 0},
		{Name: "victory", Type: field.TypeBool, Default: false},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// BattleEventsTable holds the schema information for the "battle_events" table.
	BattleEventsTable = &schema.Table{
		Name:       "battle_events",
		Columns:    BattleEventsColumns,
		PrimaryKey: []*schema.Column{BattleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "battleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BattleEventsColumns[1]},
			},
			{
				Name:    "battleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BattleEventsColumns[2]},
			},
			{
				Name:    "battleevent_battle_id",
				Unique:  false,
				Columns: []*schema.Column{BattleEventsColumns[3]},
			},
			{
				Name:    "battleevent_action",
				Unique:  false,
				Columns: []*schema.Column{BattleEventsColumns[5]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "battle_id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "state_before", Type: field.TypeString},
		{Name: "state_after", Type: field.TypeString},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "due_at", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_battle_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_card_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArbiterEventsTable,
		BattleEventsTable,
		ReviewEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
