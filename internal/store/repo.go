package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/history"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a recorded model call, as returned by queries.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to model request events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded events in sequence order.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}

// DrillRepo manages the drill catalog.
type DrillRepo interface {
	// Seed inserts drills that aren't already present. Existing drill IDs
	// are left untouched.
	Seed(ctx context.Context, drills []catalog.Drill) (int, error)

	// All returns every drill ordered by drill ID.
	All(ctx context.Context) ([]catalog.Drill, error)
}

// ProgramRecord is a persisted program draft. Sessions and config are kept
// as raw JSON so the store stays decoupled from the drafting types.
type ProgramRecord struct {
	ProgramID   string
	Title       string
	Description string
	AssignedBy  string
	AssignedTo  string
	Sessions    json.RawMessage
	Config      json.RawMessage
	Status      string
	Completed   bool
	CreatedAt   time.Time
}

// ProgramRepo manages persisted program drafts.
type ProgramRepo interface {
	// Save stores a new program record.
	Save(ctx context.Context, rec *ProgramRecord) error

	// ByPlayer returns programs assigned to a player, newest first.
	ByPlayer(ctx context.Context, playerID string) ([]ProgramRecord, error)
}

// SessionLogRepo manages completed session logs.
type SessionLogRepo interface {
	// Append stores a new session log.
	Append(ctx context.Context, log *history.SessionLog) error

	// ByPlayer returns a player's logs ordered by completion date, oldest
	// first.
	ByPlayer(ctx context.Context, playerID string) ([]history.SessionLog, error)
}
