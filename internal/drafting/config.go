package drafting

// DefaultWeeks is the session count used when a program request carries
// no explicit config.
const DefaultWeeks = 4

// Config holds draft generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for program drafting. Drafts
// are long outputs; the token cap has to fit three full programs for the
// onboarding flow.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.6,
	}
}
