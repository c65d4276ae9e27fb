package drafting

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/history"
	"github.com/topspinhq/topspin/internal/llm"
)

// Service drafts training programs through the configured model provider.
// Stateless: every call builds its prompt and context from its arguments
// alone, issues exactly one outbound call, and holds nothing afterwards.
// Concurrent calls are independent.
//
// All three entry points share get-or-nil semantics: configuration,
// transport, and response-shape failures are logged and absorbed into a
// nil result. Nothing is retried and no partial draft is ever returned.
type Service struct {
	provider llm.Provider
	cfg      Config

	// Injected for tests; defaults are time.Now and uuid.NewString.
	now   func() time.Time
	newID func() string
}

// NewService creates a drafting service. A nil provider means no model
// credential is configured: every draft call then fails fast without a
// network attempt.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// OnboardingDrafts generates three starter programs for a new user:
// 3 programs, 3 sessions each, 4 items per session (1 warmup + 3 main).
// Returns nil on any failure.
func (s *Service) OnboardingDrafts(ctx context.Context, profile OnboardingProfile, drills []catalog.Drill) []ProgramDraft {
	ctx = llm.WithPurpose(ctx, "onboarding-draft")

	raw, err := s.generate(ctx, buildOnboardingSystem(profile, drills), onboardingUserMessage, OnboardingSchema)
	if err != nil {
		logOpError("onboarding draft", err)
		return nil
	}

	var out onboardingOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		logOpError("onboarding draft", fmt.Errorf("parse response: %w", err))
		return nil
	}
	if len(out.Plans) != onboardingPlanCount {
		logOpError("onboarding draft", fmt.Errorf("expected %d plans, got %d", onboardingPlanCount, len(out.Plans)))
		return nil
	}
	for i, p := range out.Plans {
		if err := checkProgramShape(p, onboardingSessionCount); err != nil {
			logOpError("onboarding draft", fmt.Errorf("plan %d: %w", i, err))
			return nil
		}
	}

	drafts := make([]ProgramDraft, len(out.Plans))
	for i, p := range out.Plans {
		drafts[i] = s.stampProgram(p, profile.UserID, nil)
	}
	return drafts
}

// PersonalizedDraft generates one program from a free-text instruction,
// the player's profile, and optionally their session history and squad
// constraints. Returns nil on any failure.
func (s *Service) PersonalizedDraft(ctx context.Context, req ProgramRequest) *ProgramDraft {
	ctx = llm.WithPurpose(ctx, "program-draft")

	analysis := history.Analyze(req.History)

	raw, err := s.generate(ctx, buildProgramSystem(req, analysis), programUserMessage, ProgramSchema)
	if err != nil {
		logOpError("program draft", err)
		return nil
	}

	var out programOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		logOpError("program draft", fmt.Errorf("parse response: %w", err))
		return nil
	}
	if req.SingleSession {
		if err := checkProgramShape(out, 1); err != nil {
			logOpError("program draft", err)
			return nil
		}
	}

	// Config is passed through verbatim onto the draft, nil included.
	draft := s.stampProgram(out, req.User.ID, req.Config)
	return &draft
}

// SquadSessionDraft generates a flat item list for one group session.
// No wrapper and no identity stamping: the caller splices the items into
// an existing session. Returns nil on any failure.
func (s *Service) SquadSessionDraft(ctx context.Context, req SquadSessionRequest) []ItemDraft {
	ctx = llm.WithPurpose(ctx, "squad-draft")

	raw, err := s.generate(ctx, buildSquadSystem(req), squadUserMessage(req.Focus), SquadSessionSchema)
	if err != nil {
		logOpError("squad session draft", err)
		return nil
	}

	var out squadOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		logOpError("squad session draft", fmt.Errorf("parse response: %w", err))
		return nil
	}

	items := make([]ItemDraft, len(out.Items))
	for i, it := range out.Items {
		items[i] = mapItem(it)
	}
	return items
}

// generate performs the single shared oracle round trip: credential
// check, one Generate call, schema validation of the returned JSON.
func (s *Service) generate(ctx context.Context, system, userMsg string, schema *llm.Schema) (json.RawMessage, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no LLM credential configured")
	}

	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("empty response payload")
	}

	// Providers validate structured output themselves, but the response
	// is untrusted input: re-check here so no unvalidated payload is
	// ever decoded, whatever the provider.
	if err := llm.Validate(schema, resp.Content); err != nil {
		return nil, err
	}

	return resp.Content, nil
}

func logOpError(op string, err error) {
	fmt.Fprintf(os.Stderr, "drafting: %s failed: %v\n", op, err)
}
