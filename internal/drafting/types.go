package drafting

import (
	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/history"
)

// AssignedByAI marks programs drafted by the assistant rather than a coach.
const AssignedByAI = "AI_ASSISTANT"

// ItemMode describes how a drill is run: cooperative rep-building or a
// competitive scored contest.
type ItemMode string

const (
	ModeCooperative ItemMode = "Cooperative"
	ModeCompetitive ItemMode = "Competitive"
)

// Status is the lifecycle state of a program.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
	StatusDropped  Status = "DROPPED"
	StatusArchived Status = "ARCHIVED"
)

// ItemDraft is one drill slot inside a drafted session. DrillID refers to
// the catalog passed into the request; the service does not hard-enforce
// membership, callers should validate before persisting.
type ItemDraft struct {
	DrillID           string   `json:"drillId"`
	TargetDurationMin int      `json:"targetDurationMin"`
	Sets              int      `json:"sets,omitempty"`
	Reps              int      `json:"reps,omitempty"`
	Notes             string   `json:"notes"`
	Mode              ItemMode `json:"mode"`
}

// SessionDraft is one drafted training session. ID is freshly assigned by
// the service; any identifier the model echoes is discarded.
type SessionDraft struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Items     []ItemDraft `json:"items"`
	Completed bool        `json:"completed"`
}

// ProgramConfig carries the caller's structural request. Passed through
// verbatim onto the resulting draft, even when absent.
type ProgramConfig struct {
	Weeks            int    `json:"weeks"`
	FrequencyPerWeek int    `json:"frequencyPerWeek,omitempty"`
	TargetDate       string `json:"targetDate,omitempty"`
}

// ProgramDraft is a tentative program produced by the service. Identity
// and ownership fields are stamped here; persistence and acceptance flow
// are the caller's business.
type ProgramDraft struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	AssignedBy  string         `json:"assignedBy"`
	AssignedTo  string         `json:"assignedTo"`
	Sessions    []SessionDraft `json:"sessions"`
	CreatedAt   string         `json:"createdAt"`
	Completed   bool           `json:"completed"`
	Status      Status         `json:"status"`
	Config      *ProgramConfig `json:"config,omitempty"`
}

// OnboardingProfile is the new-user intake used for starter programs.
// No history exists at this point.
type OnboardingProfile struct {
	UserID      string
	Sex         string
	YearsPlayed int
	Level       string
	Goals       []string
}

// UserDetails identifies the target player of a personalized draft.
type UserDetails struct {
	ID    string
	Name  string
	Level string
	Goals []string
}

// SquadConstraints bound a group session by player and court count.
type SquadConstraints struct {
	Players int
	Courts  int
}

// ProgramRequest carries everything needed for a personalized or
// progression draft. History is optional; when present it feeds the
// strengths/weaknesses analysis.
type ProgramRequest struct {
	Instruction   string
	Drills        []catalog.Drill
	User          UserDetails
	History       []history.SessionLog
	Config        *ProgramConfig
	SingleSession bool
	Squad         *SquadConstraints
}

// SquadSessionRequest drafts a flat item list for one squad session,
// meant to replace an existing session's items in place.
type SquadSessionRequest struct {
	Focus  string
	Drills []catalog.Drill
	Squad  SquadConstraints
}
