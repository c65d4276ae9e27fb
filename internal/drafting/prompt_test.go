package drafting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/history"
)

const largeGroupMarker = "players per court is greater than 4"

func analysisOf(logs []history.SessionLog) history.Analysis {
	return history.Analyze(logs)
}

func TestProgramSystem_IncludesDrillIndex(t *testing.T) {
	req := ProgramRequest{
		Instruction: "serve week",
		Drills:      catalog.SeedDrills(),
		User:        UserDetails{ID: "p1", Level: "Advanced"},
	}

	sys := buildProgramSystem(req, analysisOf(nil))
	assert.Contains(t, sys, "Drill Library:")
	assert.Contains(t, sys, "d1: Wide Serve Targeting (Serve, Intermediate)")
	assert.Contains(t, sys, "Instruction for this new program: serve week")
}

func TestProgramSystem_LevelDefaultsToIntermediate(t *testing.T) {
	req := ProgramRequest{Drills: catalog.SeedDrills(), User: UserDetails{ID: "p1"}}
	sys := buildProgramSystem(req, analysisOf(nil))
	assert.Contains(t, sys, "Target Audience Level: Intermediate")
}

func TestProgramSystem_GoalsClauseConditional(t *testing.T) {
	withGoals := ProgramRequest{
		Drills: catalog.SeedDrills(),
		User:   UserDetails{ID: "p1", Goals: []string{"Power Serve", "Fitness"}},
	}
	sys := buildProgramSystem(withGoals, analysisOf(nil))
	assert.Contains(t, sys, "Player's stated goals: Power Serve, Fitness.")

	noGoals := ProgramRequest{Drills: catalog.SeedDrills(), User: UserDetails{ID: "p1"}}
	sys = buildProgramSystem(noGoals, analysisOf(nil))
	assert.NotContains(t, sys, "stated goals")
}

func TestProgramSystem_StrengthsOmittedWhenEmpty(t *testing.T) {
	req := ProgramRequest{Drills: catalog.SeedDrills(), User: UserDetails{ID: "p1"}}

	sys := buildProgramSystem(req, analysisOf(nil))
	assert.NotContains(t, sys, "Player Strengths")
	assert.NotContains(t, sys, "Player Weaknesses")

	logs := []history.SessionLog{{
		Performances: []history.DrillPerformance{
			{DrillID: "d1", Outcome: history.OutcomeSuccess},
			{DrillID: "d5", Outcome: history.OutcomeFail},
		},
	}}
	sys = buildProgramSystem(req, analysisOf(logs))
	assert.Contains(t, sys, "Player Strengths (drills they usually succeed at): d1.")
	assert.Contains(t, sys, "Player Weaknesses (drills they often fail): d5.")
}

func TestProgramSystem_WeekCountDefault(t *testing.T) {
	req := ProgramRequest{Drills: catalog.SeedDrills(), User: UserDetails{ID: "p1"}}
	sys := buildProgramSystem(req, analysisOf(nil))
	assert.Contains(t, sys, "Create a 4-session program")

	req.Config = &ProgramConfig{Weeks: 6}
	sys = buildProgramSystem(req, analysisOf(nil))
	assert.Contains(t, sys, "Create a 6-session program")
}

func TestProgramSystem_SingleSessionInstruction(t *testing.T) {
	req := ProgramRequest{
		Drills:        catalog.SeedDrills(),
		User:          UserDetails{ID: "p1"},
		SingleSession: true,
		Config:        &ProgramConfig{Weeks: 8},
	}
	sys := buildProgramSystem(req, analysisOf(nil))
	assert.Contains(t, sys, "Create a SINGLE session")
	assert.NotContains(t, sys, "8-session program")
}

func TestSquadGuidance_ThresholdStrictlyGreaterThanFour(t *testing.T) {
	base := ProgramRequest{Drills: catalog.SeedDrills(), User: UserDetails{ID: "p1"}}

	// 8 players / 2 courts = 4: no large-group directive.
	base.Squad = &SquadConstraints{Players: 8, Courts: 2}
	sys := buildProgramSystem(base, analysisOf(nil))
	assert.Contains(t, sys, "SQUAD program for 8 players on 2 courts")
	assert.NotContains(t, sys, largeGroupMarker)

	// 10 players / 2 courts = 5: directive required.
	base.Squad = &SquadConstraints{Players: 10, Courts: 2}
	sys = buildProgramSystem(base, analysisOf(nil))
	assert.Contains(t, sys, largeGroupMarker)
	assert.Contains(t, sys, "King/Queen of the Court")

	// 9 players / 2 courts = 4.5: ratio is fractional, still over.
	base.Squad = &SquadConstraints{Players: 9, Courts: 2}
	sys = buildProgramSystem(base, analysisOf(nil))
	assert.Contains(t, sys, largeGroupMarker)
}

func TestSquadGuidance_AbsentWithoutConstraints(t *testing.T) {
	req := ProgramRequest{Drills: catalog.SeedDrills(), User: UserDetails{ID: "p1"}}
	sys := buildProgramSystem(req, analysisOf(nil))
	assert.NotContains(t, sys, "SQUAD program")
}

func TestOnboardingSystem(t *testing.T) {
	profile := OnboardingProfile{
		UserID:      "p1",
		Sex:         "Male",
		YearsPlayed: 2,
		Level:       "Beginner",
		Goals:       []string{"Consistency"},
	}
	sys := buildOnboardingSystem(profile, catalog.SeedDrills())

	assert.Contains(t, sys, "Create 3 distinct multi-session training programs")
	assert.Contains(t, sys, "Sex: Male")
	assert.Contains(t, sys, "Years Played: 2")
	assert.Contains(t, sys, "Level: Beginner")
	assert.Contains(t, sys, "Goals: Consistency")
	assert.Contains(t, sys, "w1: Dynamic Court Sprints")
}

func TestSquadSystem(t *testing.T) {
	req := SquadSessionRequest{
		Focus:  "return of serve",
		Drills: catalog.SeedDrills(),
		Squad:  SquadConstraints{Players: 12, Courts: 3},
	}
	sys := buildSquadSystem(req)
	require.True(t, strings.HasPrefix(sys, "You are an expert tennis coach planning a group squad session."))
	assert.Contains(t, sys, "Constraints: 12 players, 3 courts.")
	assert.Contains(t, sys, "Drill Library:")

	assert.Equal(t, "Create a session focusing on: return of serve", squadUserMessage("return of serve"))
}
