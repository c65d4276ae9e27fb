package drafting

import (
	"fmt"
	"time"
)

// Expected onboarding shape: 3 plans of 3 sessions, 4 items per session.
const (
	onboardingPlanCount    = 3
	onboardingSessionCount = 3
	itemsPerSession        = 4
)

// Decode targets for the oracle's JSON. Deliberately without ID or
// status fields: any identifier the model echoes has nowhere to land,
// so stamping is structural, not defensive.
type itemOutput struct {
	DrillID           string `json:"drillId"`
	TargetDurationMin int    `json:"targetDurationMin"`
	Sets              int    `json:"sets"`
	Reps              int    `json:"reps"`
	Notes             string `json:"notes"`
	Mode              string `json:"mode"`
}

type sessionOutput struct {
	Title string       `json:"title"`
	Items []itemOutput `json:"items"`
}

type programOutput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Sessions    []sessionOutput `json:"sessions"`
}

type onboardingOutput struct {
	Plans []programOutput `json:"plans"`
}

type squadOutput struct {
	Items []itemOutput `json:"items"`
}

// checkProgramShape enforces the structural invariant for flows with a
// fixed layout: the requested session count, each session 1 warmup + 3
// main items. A malformed shape discards the whole attempt.
func checkProgramShape(p programOutput, wantSessions int) error {
	if len(p.Sessions) != wantSessions {
		return fmt.Errorf("expected %d sessions, got %d", wantSessions, len(p.Sessions))
	}
	for i, sess := range p.Sessions {
		if len(sess.Items) != itemsPerSession {
			return fmt.Errorf("session %d: expected %d items, got %d", i, itemsPerSession, len(sess.Items))
		}
	}
	return nil
}

// stampProgram turns a decoded program into a ProgramDraft with fresh
// identity and ownership fields: new UUIDs for the program and every
// session, completed=false throughout, provisional ACCEPTED status, and
// an ISO-8601 creation timestamp.
func (s *Service) stampProgram(p programOutput, assignedTo string, config *ProgramConfig) ProgramDraft {
	sessions := make([]SessionDraft, len(p.Sessions))
	for i, sess := range p.Sessions {
		items := make([]ItemDraft, len(sess.Items))
		for j, it := range sess.Items {
			items[j] = mapItem(it)
		}
		sessions[i] = SessionDraft{
			ID:        s.newID(),
			Title:     sess.Title,
			Items:     items,
			Completed: false,
		}
	}

	return ProgramDraft{
		ID:          s.newID(),
		Title:       p.Title,
		Description: p.Description,
		AssignedBy:  AssignedByAI,
		AssignedTo:  assignedTo,
		Sessions:    sessions,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
		Completed:   false,
		Status:      StatusAccepted,
		Config:      config,
	}
}

// mapItem normalizes a decoded item. Mode defaults to Cooperative; an
// unrecognized mode value is treated the same way.
func mapItem(it itemOutput) ItemDraft {
	mode := ModeCooperative
	if ItemMode(it.Mode) == ModeCompetitive {
		mode = ModeCompetitive
	}
	return ItemDraft{
		DrillID:           it.DrillID,
		TargetDurationMin: it.TargetDurationMin,
		Sets:              it.Sets,
		Reps:              it.Reps,
		Notes:             it.Notes,
		Mode:              mode,
	}
}
