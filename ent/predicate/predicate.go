// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArbiterEvent is the predicate function for arbiterevent builders.
type ArbiterEvent func(*sql.Selector)

// BattleEvent is the predicate function for battleevent builders.
type BattleEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
