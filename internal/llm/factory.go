package llm

import (
	"context"
	"fmt"

	"github.com/topspinhq/topspin/internal/store"
)

// NewProvider creates a Provider from configuration. When eventRepo is
// non-nil the provider is wrapped with event logging. No retry middleware
// is applied: drafting is single-flight, a failed attempt is discarded
// whole and the caller decides whether to ask again.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo != nil {
		return WithLogging(base, eventRepo), nil
	}
	return base, nil
}

// NewProviderFromEnv builds a Provider from TOPSPIN_* environment
// variables, falling back to probing the standard vendor key variables.
// Returns an error when no credential is configured; callers treat that
// as "AI features unavailable", not a crash.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM API key configured")
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
