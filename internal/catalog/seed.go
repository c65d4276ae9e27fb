package catalog

// SeedDrills returns the built-in starter catalog. Clubs extend it through
// the store; these entries make a fresh install immediately usable.
func SeedDrills() []Drill {
	return []Drill{
		{
			ID:                 "w1",
			Name:               "Dynamic Court Sprints",
			Category:           CategoryWarmup,
			Difficulty:         DifficultyBeginner,
			Description:        "Jogging, high knees, butt kicks, and side shuffles across the baseline.",
			DefaultDurationMin: 10,
		},
		{
			ID:                 "d1",
			Name:               "Wide Serve Targeting",
			Category:           CategoryServe,
			Difficulty:         DifficultyIntermediate,
			Description:        "Hit 10 serves to the deuce wide corner, then 10 to ad wide.",
			DefaultDurationMin: 15,
		},
		{
			ID:                 "d2",
			Name:               "T-Serve Precision",
			Category:           CategoryServe,
			Difficulty:         DifficultyAdvanced,
			Description:        "Focus on hitting the T-line. 20 reps each side.",
			DefaultDurationMin: 15,
		},
		{
			ID:                 "d3",
			Name:               "Cross-Court Forehand Rally",
			Category:           CategoryForehand,
			Difficulty:         DifficultyIntermediate,
			Description:        "Sustain a cross-court rally for 20 balls without error.",
			DefaultDurationMin: 10,
		},
		{
			ID:                 "d4",
			Name:               "Inside-Out Forehand Attack",
			Category:           CategoryForehand,
			Difficulty:         DifficultyAdvanced,
			Description:        "Run around the backhand to hit aggressive inside-out forehands.",
			DefaultDurationMin: 12,
		},
		{
			ID:                 "d5",
			Name:               "Backhand Slice Defense",
			Category:           CategoryBackhand,
			Difficulty:         DifficultyIntermediate,
			Description:        "Defend against high bouncing balls using a deep slice.",
			DefaultDurationMin: 10,
		},
		{
			ID:                 "d6",
			Name:               "Two-Handed Cross-Court Depth",
			Category:           CategoryBackhand,
			Difficulty:         DifficultyIntermediate,
			Description:        "Focus on hitting past the service line consistently.",
			DefaultDurationMin: 10,
		},
		{
			ID:                 "d7",
			Name:               "Volley-Volley Reaction",
			Category:           CategoryVolley,
			Difficulty:         DifficultyAdvanced,
			Description:        "Rapid fire volleys at the net with a partner or wall.",
			DefaultDurationMin: 8,
		},
		{
			ID:                 "d8",
			Name:               "Approach & Volley",
			Category:           CategoryVolley,
			Difficulty:         DifficultyBeginner,
			Description:        "Hit a short ball approach shot and finish with a volley.",
			DefaultDurationMin: 15,
		},
		{
			ID:                 "d9",
			Name:               "Spider Drill",
			Category:           CategoryFootwork,
			Difficulty:         DifficultyAdvanced,
			Description:        "Sprint from center mark to corners and back. Timed sets.",
			DefaultDurationMin: 10,
		},
		{
			ID:                 "d10",
			Name:               "Split Step Timing",
			Category:           CategoryFootwork,
			Difficulty:         DifficultyBeginner,
			Description:        "Practice the split step timing against a feeder.",
			DefaultDurationMin: 5,
		},
		{
			ID:                 "d11",
			Name:               "Baseline Grinder",
			Category:           CategoryFitness,
			Difficulty:         DifficultyAdvanced,
			Description:        "Side to side running hitting groundstrokes for 2 mins non-stop.",
			DefaultDurationMin: 15,
		},
		{
			ID:                 "d12",
			Name:               "Serve & Volley Pattern",
			Category:           CategoryStrategy,
			Difficulty:         DifficultyIntermediate,
			Description:        "Serve and immediately move forward to split step.",
			DefaultDurationMin: 20,
		},
	}
}
