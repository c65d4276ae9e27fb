package drafting

import (
	"fmt"
	"strings"

	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/history"
)

// User-turn instructions are short literals; all context travels in the
// system instruction.
const (
	onboardingUserMessage = "Generate 3 starter programs."
	programUserMessage    = "Create a tennis program based on my instructions."
	squadUserMessageFmt   = "Create a session focusing on: %s"

	// largeGroupPlayersPerCourt is the threshold above which the prompt
	// demands rotation-friendly drills. Strictly greater than: 8 players
	// on 2 courts is fine, 10 is not.
	largeGroupPlayersPerCourt = 4.0
)

func buildOnboardingSystem(profile OnboardingProfile, drills []catalog.Drill) string {
	var b strings.Builder

	b.WriteString("You are an expert elite tennis coach. Create 3 distinct multi-session training programs for a new user.\n")
	b.WriteString("Each program should have 3 sessions. Each session must include 1 Warmup drill and 3 main drills.\n\n")

	b.WriteString("User Profile:\n")
	b.WriteString(fmt.Sprintf("Sex: %s\n", profile.Sex))
	b.WriteString(fmt.Sprintf("Years Played: %d\n", profile.YearsPlayed))
	b.WriteString(fmt.Sprintf("Level: %s\n", levelOrDefault(profile.Level)))
	b.WriteString(fmt.Sprintf("Goals: %s\n", strings.Join(profile.Goals, ", ")))

	b.WriteString("\nDrill Library:\n")
	b.WriteString(catalog.KnowledgeBase(drills))

	return b.String()
}

func buildProgramSystem(req ProgramRequest, analysis history.Analysis) string {
	var b strings.Builder

	b.WriteString("You are an expert elite tennis coach creating a personalized training program.\n\n")
	b.WriteString("Your task is to create a program that applies progressive overload based on past performance.\n")
	b.WriteString("- For strengths, consider including more advanced drills from the same category or increasing the difficulty (e.g., more reps, less time).\n")
	b.WriteString("- For weaknesses, re-include the same drills for practice or suggest slightly easier, foundational drills from the same category. ")
	b.WriteString("Do not create a program consisting only of drills the user is bad at; balance it with their strengths to build confidence.\n\n")

	b.WriteString(fmt.Sprintf("Target Audience Level: %s\n", levelOrDefault(req.User.Level)))
	if len(req.User.Goals) > 0 {
		b.WriteString(fmt.Sprintf("Player's stated goals: %s.\n", strings.Join(req.User.Goals, ", ")))
	}

	// Strength/weakness sentences are omitted entirely when the set is
	// empty, never rendered as an empty list.
	b.WriteString("\nPlayer Performance History:\n")
	if strengths := analysis.StrengthIDs(); len(strengths) > 0 {
		b.WriteString(fmt.Sprintf("Player Strengths (drills they usually succeed at): %s.\n", strings.Join(strengths, ", ")))
	}
	if weaknesses := analysis.WeaknessIDs(); len(weaknesses) > 0 {
		b.WriteString(fmt.Sprintf("Player Weaknesses (drills they often fail): %s.\n", strings.Join(weaknesses, ", ")))
	}

	b.WriteString("\nDrill Library:\n")
	b.WriteString(catalog.KnowledgeBase(req.Drills))
	b.WriteString("\n\n")

	b.WriteString(structureInstruction(req))

	if req.Squad != nil {
		b.WriteString("\n")
		b.WriteString(squadConstraintContext(*req.Squad))
	}

	b.WriteString(fmt.Sprintf("\nInstruction for this new program: %s\n", req.Instruction))

	return b.String()
}

func buildSquadSystem(req SquadSessionRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert tennis coach planning a group squad session.\n")
	b.WriteString(fmt.Sprintf("Constraints: %d players, %d courts.\n", req.Squad.Players, req.Squad.Courts))
	b.WriteString("Drill Library:\n")
	b.WriteString(catalog.KnowledgeBase(req.Drills))
	b.WriteString("\n\n")
	b.WriteString("Select drills that work well for this specific group size and court count to minimize standing around and maximize engagement.\n")
	b.WriteString("For example, if high player count, choose rotation drills.\n")
	b.WriteString("Return a list of drills for the session.\n")

	return b.String()
}

func structureInstruction(req ProgramRequest) string {
	if req.SingleSession {
		return "Create a SINGLE session. The program should contain exactly 1 session. The session must have 1 warmup drill and 3 main drills.\n"
	}
	weeks := DefaultWeeks
	if req.Config != nil && req.Config.Weeks > 0 {
		weeks = req.Config.Weeks
	}
	return fmt.Sprintf("Create a %d-session program (one session per week logic for this output). Return a list of sessions. Each session must have 1 warmup and 3 main drills.\n", weeks)
}

// squadConstraintContext renders the group-size guidance. The large-group
// directive triggers only when players per court strictly exceeds 4; a
// ratio of exactly 4 is treated as a comfortable group.
func squadConstraintContext(sq SquadConstraints) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("CONSTRAINT: This is a SQUAD program for %d players on %d courts.\n", sq.Players, sq.Courts))
	b.WriteString("Choose drills and provide notes that ensure high engagement and efficient rotation for this specific number of players/courts.\n")
	b.WriteString("Avoid drills that leave many players standing around.\n")

	if sq.Courts > 0 && float64(sq.Players)/float64(sq.Courts) > largeGroupPlayersPerCourt {
		b.WriteString("The number of players per court is greater than 4, so you MUST select drills that are suitable for larger groups. ")
		b.WriteString("Prioritize drills that use rotations, feeding lines, or \"King/Queen of the Court\" style games to keep all players active and engaged. ")
		b.WriteString("Avoid drills where only 2-4 players can participate at once, leaving others waiting.\n")
	}

	return b.String()
}

func squadUserMessage(focus string) string {
	return fmt.Sprintf(squadUserMessageFmt, focus)
}

func levelOrDefault(level string) string {
	if level == "" {
		return "Intermediate"
	}
	return level
}
