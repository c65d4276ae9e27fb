package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Drill is a catalog entry. The drill_id is the caller-facing identifier
// used in prompts and drafts; the numeric primary key stays internal.
type Drill struct {
	ent.Schema
}

func (Drill) Fields() []ent.Field {
	return []ent.Field{
		field.String("drill_id").
			Unique().
			Immutable().
			Comment("Stable catalog identifier, e.g. d3"),
		field.String("name"),
		field.String("category").
			Comment("Warmup, Serve, Forehand, Backhand, Volley, Footwork, Strategy, Fitness"),
		field.String("difficulty").
			Comment("Beginner, Intermediate, Advanced"),
		field.Text("description"),
		field.Int("default_duration_min").
			Positive(),
	}
}

func (Drill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("difficulty"),
	}
}
