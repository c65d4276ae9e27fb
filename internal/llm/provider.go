package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a hosted text-generation model. Consumers describe
// what they want with a Request and get back structured JSON.
type Provider interface {
	// Generate issues a single completion call. When the request carries a
	// Schema the provider uses its native structured-output mechanism and
	// the returned Content is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one outbound model call.
type Request struct {
	// System sets the model's role and constraints. For program drafting
	// this carries the drill index and personalization context.
	System string

	// Messages is the conversation. Drafting is single-turn: one short
	// user instruction.
	Messages []Message

	// Schema, when set, declares the exact JSON shape the response must
	// take. Nil means free-form text wrapped as a JSON string.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero value means the
	// provider default.
	Temperature float64
}

// Message is a single conversation entry.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema declares the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "program-draft").
	// Used as the schema name for OpenAI structured output.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
