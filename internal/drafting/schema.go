package drafting

import "github.com/topspinhq/topspin/internal/llm"

// itemSchema builds the schema for one session item. Notes are always
// required (empty string is acceptable content); sets/reps/mode are
// optional. withReps is false for the squad-session shape, which never
// asks for rep counts.
func itemSchema(withReps bool, notesDescription string) map[string]any {
	props := map[string]any{
		"drillId": map[string]any{
			"type":        "string",
			"description": "ID of a drill from the Drill Library",
		},
		"targetDurationMin": map[string]any{"type": "integer"},
		"sets":              map[string]any{"type": "integer"},
		"notes": map[string]any{
			"type":        "string",
			"description": notesDescription,
		},
		"mode": map[string]any{
			"type":        "string",
			"enum":        []any{"Cooperative", "Competitive"},
			"description": "Default to Cooperative unless it's a game/point play.",
		},
	}
	if withReps {
		props["reps"] = map[string]any{"type": "integer"}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []any{"drillId", "targetDurationMin", "notes"},
	}
}

func sessionSchema(titleDescription string, item map[string]any) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": titleDescription,
			},
			"items": map[string]any{
				"type":  "array",
				"items": item,
			},
		},
		"required": []any{"title", "items"},
	}
}

// OnboardingSchema declares the object-of-plans shape: exactly 3 starter
// programs, each with 3 sessions of 4 items.
var OnboardingSchema = &llm.Schema{
	Name:        "onboarding-plans",
	Description: "Three starter training programs for a new player",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"plans": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"sessions": map[string]any{
							"type": "array",
							"items": sessionSchema(
								"e.g. Session 1: Baseline Power",
								itemSchema(true, "Coaching notes for this drill"),
							),
						},
					},
					"required": []any{"title", "description", "sessions"},
				},
			},
		},
		"required": []any{"plans"},
	},
}

// ProgramSchema declares the single-program shape for personalized and
// progression drafts.
var ProgramSchema = &llm.Schema{
	Name:        "program-draft",
	Description: "One personalized multi-session training program",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"sessions": map[string]any{
				"type": "array",
				"items": sessionSchema(
					"Session title",
					itemSchema(true, "Include instructions on rotations if applicable for squads."),
				),
			},
		},
		"required": []any{"title", "description", "sessions"},
	},
}

// SquadSessionSchema declares the items-array shape for in-place
// replacement of a single squad session's drill list.
var SquadSessionSchema = &llm.Schema{
	Name:        "squad-session-items",
	Description: "Drill items for one group squad session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":  "array",
				"items": itemSchema(false, "Specific instructions for running this with the group size."),
			},
		},
		"required": []any{"items"},
	},
}
