package drafting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/llm"
)

func testDrills() []catalog.Drill {
	return catalog.SeedDrills()
}

func itemMap(drillID string, extra map[string]any) map[string]any {
	m := map[string]any{
		"drillId":           drillID,
		"targetDurationMin": 10,
		"notes":             "Focus on contact point.",
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func sessionMap(title string) map[string]any {
	return map[string]any{
		"title": title,
		"items": []any{
			itemMap("w1", nil),
			itemMap("d1", map[string]any{"sets": 3, "reps": 10}),
			itemMap("d3", map[string]any{"mode": "Competitive"}),
			itemMap("d9", nil),
		},
	}
}

func programMap(title string, sessions int) map[string]any {
	sess := make([]any, sessions)
	for i := range sess {
		sess[i] = sessionMap("Session")
	}
	return map[string]any{
		"title":       title,
		"description": "A focused block of training.",
		"sessions":    sess,
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func validOnboardingJSON(t *testing.T) json.RawMessage {
	return mustJSON(t, map[string]any{
		"plans": []any{
			programMap("Foundations", 3),
			programMap("Serve Builder", 3),
			programMap("Net Rusher", 3),
		},
	})
}

func TestOnboardingDrafts_ShapeAndStamping(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOnboardingJSON(t)})
	svc := NewService(mock, DefaultConfig())

	profile := OnboardingProfile{
		UserID:      "player7",
		Sex:         "Female",
		YearsPlayed: 3,
		Level:       "Intermediate",
		Goals:       []string{"Consistency", "Power"},
	}

	drafts := svc.OnboardingDrafts(t.Context(), profile, testDrills())
	require.Len(t, drafts, 3)
	assert.Equal(t, 1, mock.CallCount())

	seenIDs := make(map[string]bool)
	for _, d := range drafts {
		require.Len(t, d.Sessions, 3)
		for _, sess := range d.Sessions {
			assert.Len(t, sess.Items, 4)
			assert.False(t, sess.Completed)
			assert.NotEmpty(t, sess.ID)
			assert.False(t, seenIDs[sess.ID], "session ID %s reused", sess.ID)
			seenIDs[sess.ID] = true
		}

		assert.False(t, seenIDs[d.ID], "program ID %s reused", d.ID)
		seenIDs[d.ID] = true

		assert.Equal(t, AssignedByAI, d.AssignedBy)
		assert.Equal(t, "player7", d.AssignedTo)
		assert.Equal(t, StatusAccepted, d.Status)
		assert.False(t, d.Completed)
		assert.Nil(t, d.Config)

		_, err := time.Parse(time.RFC3339, d.CreatedAt)
		assert.NoError(t, err, "CreatedAt not ISO-8601: %q", d.CreatedAt)
	}
}

func TestOnboardingDrafts_WrongPlanCount(t *testing.T) {
	resp := mustJSON(t, map[string]any{
		"plans": []any{programMap("Only One", 3)},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	drafts := svc.OnboardingDrafts(t.Context(), OnboardingProfile{UserID: "p1"}, testDrills())
	assert.Nil(t, drafts)
}

func TestPersonalizedDraft_Stamping(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, programMap("Spring Block", 4))})
	svc := NewService(mock, DefaultConfig())

	cfg := &ProgramConfig{Weeks: 4, FrequencyPerWeek: 2}
	draft := svc.PersonalizedDraft(t.Context(), ProgramRequest{
		Instruction: "Build a baseline consistency block",
		Drills:      testDrills(),
		User:        UserDetails{ID: "player1", Name: "Rafael N.", Level: "Advanced"},
		Config:      cfg,
	})

	require.NotNil(t, draft)
	assert.Equal(t, "Spring Block", draft.Title)
	assert.Equal(t, "player1", draft.AssignedTo)
	assert.Equal(t, AssignedByAI, draft.AssignedBy)
	assert.Equal(t, StatusAccepted, draft.Status)
	assert.Same(t, cfg, draft.Config)
	require.Len(t, draft.Sessions, 4)

	// Session IDs are freshly generated and unique within the batch.
	ids := make(map[string]bool)
	for _, sess := range draft.Sessions {
		assert.NotEmpty(t, sess.ID)
		assert.False(t, ids[sess.ID])
		ids[sess.ID] = true
	}
}

func TestPersonalizedDraft_ConfigAbsentPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, programMap("Block", 2))})
	svc := NewService(mock, DefaultConfig())

	draft := svc.PersonalizedDraft(t.Context(), ProgramRequest{
		Instruction: "anything",
		Drills:      testDrills(),
		User:        UserDetails{ID: "p1"},
	})
	require.NotNil(t, draft)
	assert.Nil(t, draft.Config)
}

func TestPersonalizedDraft_SingleSessionOverride(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, programMap("One-Off", 1))})
	svc := NewService(mock, DefaultConfig())

	draft := svc.PersonalizedDraft(t.Context(), ProgramRequest{
		Instruction:   "one hard session",
		Drills:        testDrills(),
		User:          UserDetails{ID: "p1"},
		SingleSession: true,
		Config:        &ProgramConfig{Weeks: 6}, // week count must not matter
	})

	require.NotNil(t, draft)
	require.Len(t, draft.Sessions, 1)
	assert.Len(t, draft.Sessions[0].Items, 4)
}

func TestPersonalizedDraft_SingleSessionShapeMismatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, programMap("Two", 2))})
	svc := NewService(mock, DefaultConfig())

	draft := svc.PersonalizedDraft(t.Context(), ProgramRequest{
		Instruction:   "one session",
		Drills:        testDrills(),
		User:          UserDetails{ID: "p1"},
		SingleSession: true,
	})
	assert.Nil(t, draft)
}

func TestSquadSessionDraft_ItemsOnly(t *testing.T) {
	resp := mustJSON(t, map[string]any{
		"items": []any{
			itemMap("d9", map[string]any{"mode": "Competitive", "sets": 2}),
			itemMap("d3", nil),
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := NewService(mock, DefaultConfig())

	items := svc.SquadSessionDraft(t.Context(), SquadSessionRequest{
		Focus:  "doubles net play",
		Drills: testDrills(),
		Squad:  SquadConstraints{Players: 10, Courts: 2},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "d9", items[0].DrillID)
	assert.Equal(t, ModeCompetitive, items[0].Mode)
	// Absent mode defaults to Cooperative.
	assert.Equal(t, ModeCooperative, items[1].Mode)
}

func TestFailClosed_NoCredential(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	assert.Nil(t, svc.OnboardingDrafts(t.Context(), OnboardingProfile{UserID: "p1"}, testDrills()))
	assert.Nil(t, svc.PersonalizedDraft(t.Context(), ProgramRequest{User: UserDetails{ID: "p1"}, Drills: testDrills()}))
	assert.Nil(t, svc.SquadSessionDraft(t.Context(), SquadSessionRequest{Drills: testDrills(), Squad: SquadConstraints{Players: 8, Courts: 2}}))
}

func TestFailClosed_ZeroNetworkCalls(t *testing.T) {
	// The credential check happens before the provider is touched: a
	// service wired to a transport but reconstructed without a credential
	// must never reach it.
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOnboardingJSON(t)})
	configured := NewService(mock, DefaultConfig())
	unconfigured := NewService(nil, DefaultConfig())

	assert.Nil(t, unconfigured.OnboardingDrafts(t.Context(), OnboardingProfile{UserID: "p1"}, testDrills()))
	assert.Equal(t, 0, mock.CallCount())

	// The configured service still works against the same transport.
	assert.NotNil(t, configured.OnboardingDrafts(t.Context(), OnboardingProfile{UserID: "p1"}, testDrills()))
	assert.Equal(t, 1, mock.CallCount())
}

func TestMalformedResponse_InvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"plans": [`)})
	svc := NewService(mock, DefaultConfig())

	drafts := svc.OnboardingDrafts(t.Context(), OnboardingProfile{UserID: "p1"}, testDrills())
	assert.Nil(t, drafts)
}

func TestMalformedResponse_MissingRequiredField(t *testing.T) {
	// Item without the required notes field: schema validation must
	// reject it before any decode, yielding the nil sentinel.
	bad := map[string]any{
		"title":       "Block",
		"description": "desc",
		"sessions": []any{
			map[string]any{
				"title": "S1",
				"items": []any{
					map[string]any{"drillId": "d1", "targetDurationMin": 10},
				},
			},
		},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, bad)})
	svc := NewService(mock, DefaultConfig())

	draft := svc.PersonalizedDraft(t.Context(), ProgramRequest{
		Instruction: "x",
		Drills:      testDrills(),
		User:        UserDetails{ID: "p1"},
	})
	assert.Nil(t, draft)
}

func TestMalformedResponse_EmptyPayload(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("")})
	svc := NewService(mock, DefaultConfig())

	assert.Nil(t, svc.SquadSessionDraft(t.Context(), SquadSessionRequest{
		Drills: testDrills(),
		Squad:  SquadConstraints{Players: 4, Courts: 1},
	}))
}

func TestProviderError_Absorbed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	draft := svc.PersonalizedDraft(t.Context(), ProgramRequest{
		Instruction: "x",
		Drills:      testDrills(),
		User:        UserDetails{ID: "p1"},
	})
	assert.Nil(t, draft)
	assert.Equal(t, 1, mock.CallCount())
}
