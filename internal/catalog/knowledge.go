package catalog

import (
	"fmt"
	"strings"
)

// KnowledgeBase serializes the catalog into the compact line-per-drill
// index embedded in drafting prompts. This text is the only knowledge the
// model has of available drills; it must pick drill IDs from here.
//
// Format, one drill per line:
//
//	d3: Cross-Court Forehand Rally (Forehand, Intermediate) - Sustain a cross-court rally for 20 balls without error.
func KnowledgeBase(drills []Drill) string {
	lines := make([]string, len(drills))
	for i, d := range drills {
		lines[i] = fmt.Sprintf("%s: %s (%s, %s) - %s",
			d.ID, d.Name, d.Category, d.Difficulty, d.Description)
	}
	return strings.Join(lines, "\n")
}
