package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-3-flash-preview"},
		{"gemini-pro", "gemini-3-pro-preview"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"sessions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
			},
			"mode": map[string]any{
				"type": "string",
				"enum": []any{"Cooperative", "Competitive"},
			},
			"targetDurationMin": map[string]any{"type": "integer"},
		},
		"required": []any{"title", "sessions"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["targetDurationMin"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for targetDurationMin, got %s", schema.Properties["targetDurationMin"].Type)
	}
	if len(schema.Properties["mode"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["mode"].Enum))
	}
	if schema.Properties["sessions"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for sessions, got %s", schema.Properties["sessions"].Type)
	}
	items := schema.Properties["sessions"].Items
	if items == nil || items.Type != "OBJECT" {
		t.Fatalf("expected OBJECT items for sessions, got %+v", items)
	}
	if len(items.Required) != 1 || items.Required[0] != "title" {
		t.Fatalf("expected nested required [title], got %v", items.Required)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
