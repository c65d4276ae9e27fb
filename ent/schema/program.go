package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Program is a stamped program draft the caller chose to keep. Sessions
// and config are stored as the draft's JSON; the store does not unpack
// them into rows.
type Program struct {
	ent.Schema
}

func (Program) Fields() []ent.Field {
	return []ent.Field{
		field.String("program_id").
			Unique().
			Immutable().
			Comment("Service-assigned draft identifier"),
		field.String("title"),
		field.Text("description"),
		field.String("assigned_by").
			Comment("Coach user ID or AI_ASSISTANT"),
		field.String("assigned_to").
			Comment("Player user ID"),
		field.JSON("sessions", json.RawMessage{}).
			Comment("SessionDraft array as drafted"),
		field.JSON("config", json.RawMessage{}).
			Optional().
			Comment("ProgramConfig pass-through, absent when the request carried none"),
		field.String("status").
			Default("PENDING").
			Comment("PENDING, ACCEPTED, REJECTED, DROPPED, ARCHIVED"),
		field.Bool("completed").
			Default(false),
		field.Time("created_at"),
	}
}

func (Program) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assigned_to"),
		index.Fields("status"),
	}
}
