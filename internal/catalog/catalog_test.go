package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDrillsValid(t *testing.T) {
	require.NoError(t, Validate(SeedDrills()))
}

func TestKnowledgeBaseFormat(t *testing.T) {
	drills := []Drill{
		{
			ID:          "d3",
			Name:        "Cross-Court Forehand Rally",
			Category:    CategoryForehand,
			Difficulty:  DifficultyIntermediate,
			Description: "Sustain a cross-court rally for 20 balls without error.",
		},
		{
			ID:          "w1",
			Name:        "Dynamic Court Sprints",
			Category:    CategoryWarmup,
			Difficulty:  DifficultyBeginner,
			Description: "Jogging, high knees, butt kicks, and side shuffles across the baseline.",
		},
	}

	kb := KnowledgeBase(drills)
	lines := strings.Split(kb, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"d3: Cross-Court Forehand Rally (Forehand, Intermediate) - Sustain a cross-court rally for 20 balls without error.",
		lines[0])
	assert.Equal(t,
		"w1: Dynamic Court Sprints (Warmup, Beginner) - Jogging, high knees, butt kicks, and side shuffles across the baseline.",
		lines[1])
}

func TestKnowledgeBaseEmpty(t *testing.T) {
	assert.Equal(t, "", KnowledgeBase(nil))
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	drills := []Drill{
		{ID: "w1", Name: "A", Category: CategoryWarmup, Difficulty: DifficultyBeginner, DefaultDurationMin: 5},
		{ID: "w1", Name: "B", Category: CategoryServe, Difficulty: DifficultyBeginner, DefaultDurationMin: 5},
	}
	err := Validate(drills)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate drill ID")
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	drills := []Drill{
		{ID: "w1", Name: "A", Category: CategoryWarmup, Difficulty: DifficultyBeginner, DefaultDurationMin: 5},
		{ID: "x1", Name: "B", Category: Category("Pickleball"), Difficulty: DifficultyBeginner, DefaultDurationMin: 5},
	}
	require.Error(t, Validate(drills))
}

func TestValidateRequiresWarmup(t *testing.T) {
	drills := []Drill{
		{ID: "d1", Name: "A", Category: CategoryServe, Difficulty: DifficultyBeginner, DefaultDurationMin: 5},
	}
	err := Validate(drills)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no warmup drill")
}

func TestByID(t *testing.T) {
	drills := SeedDrills()
	idx := ByID(drills)
	require.Len(t, idx, len(drills))
	assert.Equal(t, "Spider Drill", idx["d9"].Name)
}
