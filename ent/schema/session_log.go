package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionLog is one completed training session with per-drill outcomes.
// Feeds the history analyzer and progress aggregates.
type SessionLog struct {
	ent.Schema
}

func (SessionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("log_id").
			Unique().
			Immutable(),
		field.String("player_id"),
		field.String("program_id").
			Default("").
			Comment("Empty for ad-hoc sessions outside a program"),
		field.Time("date_completed"),
		field.Int("duration_min").
			NonNegative(),
		field.Int("rpe").
			Range(0, 10).
			Comment("Rate of perceived exertion, 0-10"),
		field.Text("notes").
			Default(""),
		field.JSON("performance", json.RawMessage{}).
			Comment("DrillPerformance array: drillId + success/fail outcome"),
	}
}

func (SessionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("player_id"),
		index.Fields("date_completed"),
	}
}
