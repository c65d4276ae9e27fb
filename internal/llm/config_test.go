package llm

import (
	"testing"
)

func TestConfigValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing gemini API key")
	}

	cfg.Gemini.APIKey = "test-key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}
}

func TestConfigValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider should not require a key, got: %v", err)
	}
}

func TestConfigValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "bard"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("TOPSPIN_LLM_PROVIDER", "openai")
	t.Setenv("TOPSPIN_OPENAI_API_KEY", "sk-test")
	t.Setenv("TOPSPIN_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("expected provider openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("expected API key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %q", cfg.OpenAI.Model)
	}
}
