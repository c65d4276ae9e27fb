package history

import "time"

// Outcome tags how a drill attempt went within a logged session.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFail    Outcome = "fail"
)

// DrillPerformance records one drill attempt inside a session log.
type DrillPerformance struct {
	DrillID string  `json:"drillId"`
	Outcome Outcome `json:"outcome"`
}

// SessionLog is one completed training session. Consumed read-only.
type SessionLog struct {
	ID            string             `json:"id"`
	PlayerID      string             `json:"playerId"`
	ProgramID     string             `json:"programId,omitempty"`
	DateCompleted time.Time          `json:"dateCompleted"`
	DurationMin   int                `json:"durationMin"`
	RPE           int                `json:"rpe"`
	Notes         string             `json:"notes,omitempty"`
	Performances  []DrillPerformance `json:"drillPerformance"`
}

// DrillStat tallies outcomes for a single drill across a history.
// Constructed fresh per analysis call and discarded afterwards.
type DrillStat struct {
	Success int
	Fail    int
}
