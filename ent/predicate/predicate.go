// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Drill is the predicate function for drill builders.
type Drill func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Program is the predicate function for program builders.
type Program func(*sql.Selector)

// SessionLog is the predicate function for sessionlog builders.
type SessionLog func(*sql.Selector)
