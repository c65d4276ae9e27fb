package catalog

// Category classifies a drill by the stroke or quality it trains.
type Category string

const (
	CategoryWarmup   Category = "Warmup"
	CategoryServe    Category = "Serve"
	CategoryForehand Category = "Forehand"
	CategoryBackhand Category = "Backhand"
	CategoryVolley   Category = "Volley"
	CategoryFootwork Category = "Footwork"
	CategoryStrategy Category = "Strategy"
	CategoryFitness  Category = "Fitness"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryWarmup,
		CategoryServe,
		CategoryForehand,
		CategoryBackhand,
		CategoryVolley,
		CategoryFootwork,
		CategoryStrategy,
		CategoryFitness,
	}
}

// Difficulty grades a drill for player skill level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
	}
}

// Drill is a catalog entry. Immutable from the drafting service's
// perspective; the caller supplies the catalog on every request.
type Drill struct {
	ID                 string
	Name               string
	Category           Category
	Difficulty         Difficulty
	Description        string
	DefaultDurationMin int
}
