package catalog

import (
	"fmt"
	"slices"
)

// Validate checks a catalog for internal consistency: unique IDs, known
// categories and difficulties, positive durations, and at least one warmup
// drill (every drafted session opens with one).
func Validate(drills []Drill) error {
	if len(drills) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(drills))
	hasWarmup := false

	for _, d := range drills {
		if d.ID == "" {
			return fmt.Errorf("drill %q has empty ID", d.Name)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate drill ID %q", d.ID)
		}
		seen[d.ID] = true

		if !slices.Contains(AllCategories(), d.Category) {
			return fmt.Errorf("drill %q: unknown category %q", d.ID, d.Category)
		}
		if !slices.Contains(AllDifficulties(), d.Difficulty) {
			return fmt.Errorf("drill %q: unknown difficulty %q", d.ID, d.Difficulty)
		}
		if d.DefaultDurationMin <= 0 {
			return fmt.Errorf("drill %q: non-positive default duration %d", d.ID, d.DefaultDurationMin)
		}

		if d.Category == CategoryWarmup {
			hasWarmup = true
		}
	}

	if !hasWarmup {
		return fmt.Errorf("catalog has no warmup drill")
	}

	return nil
}

// ByID indexes a catalog by drill ID.
func ByID(drills []Drill) map[string]Drill {
	m := make(map[string]Drill, len(drills))
	for _, d := range drills {
		m[d.ID] = d
	}
	return m
}
