package store

import (
	"context"
	"testing"
	"time"

	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/history"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestDrillSeedAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.DrillRepo()
	ctx := context.Background()

	drills := catalog.SeedDrills()
	inserted, err := repo.Seed(ctx, drills)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if inserted != len(drills) {
		t.Errorf("inserted = %d, want %d", inserted, len(drills))
	}

	// Seeding again is a no-op.
	inserted, err = repo.Seed(ctx, drills)
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("re-seed inserted = %d, want 0", inserted)
	}

	got, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != len(drills) {
		t.Fatalf("len = %d, want %d", len(got), len(drills))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Errorf("drills not ordered by ID: %q before %q", got[i-1].ID, got[i].ID)
		}
	}
}

func TestSessionLogRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionLogRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	logs := []history.SessionLog{
		{
			ID:            "log-2",
			PlayerID:      "p1",
			ProgramID:     "prog-1",
			DateCompleted: base.Add(24 * time.Hour),
			DurationMin:   60,
			RPE:           7,
			Performances: []history.DrillPerformance{
				{DrillID: "d1", Outcome: history.OutcomeFail},
			},
		},
		{
			ID:            "log-1",
			PlayerID:      "p1",
			DateCompleted: base,
			DurationMin:   45,
			RPE:           5,
			Notes:         "solid groundstrokes",
			Performances: []history.DrillPerformance{
				{DrillID: "d1", Outcome: history.OutcomeSuccess},
				{DrillID: "d2", Outcome: history.OutcomeSuccess},
			},
		},
	}
	for i := range logs {
		if err := repo.Append(ctx, &logs[i]); err != nil {
			t.Fatalf("append %s: %v", logs[i].ID, err)
		}
	}

	got, err := repo.ByPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("by player: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	// Oldest first.
	if got[0].ID != "log-1" || got[1].ID != "log-2" {
		t.Errorf("order = [%s, %s], want [log-1, log-2]", got[0].ID, got[1].ID)
	}
	if got[0].Notes != "solid groundstrokes" {
		t.Errorf("notes = %q", got[0].Notes)
	}
	if len(got[0].Performances) != 2 {
		t.Fatalf("performances = %d, want 2", len(got[0].Performances))
	}
	if got[0].Performances[1].DrillID != "d2" || got[0].Performances[1].Outcome != history.OutcomeSuccess {
		t.Errorf("performance[1] = %+v", got[0].Performances[1])
	}

	// Unknown player gets an empty slice.
	got, err = repo.ByPlayer(ctx, "nobody")
	if err != nil {
		t.Fatalf("by unknown player: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestProgramSaveAndByPlayer(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgramRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	recs := []ProgramRecord{
		{
			ProgramID:   "prog-1",
			Title:       "Foundation Block",
			Description: "Four weeks of fundamentals.",
			AssignedBy:  "AI_ASSISTANT",
			AssignedTo:  "p1",
			Sessions:    []byte(`[{"id":"s1","title":"Session 1","items":[],"completed":false}]`),
			Status:      "ACCEPTED",
			CreatedAt:   base,
		},
		{
			ProgramID:   "prog-2",
			Title:       "Net Play Block",
			Description: "Volleys and overheads.",
			AssignedBy:  "AI_ASSISTANT",
			AssignedTo:  "p1",
			Sessions:    []byte(`[]`),
			Config:      []byte(`{"weeks":6,"frequencyPerWeek":3}`),
			Status:      "ACCEPTED",
			CreatedAt:   base.Add(time.Hour),
		},
	}
	for i := range recs {
		if err := repo.Save(ctx, &recs[i]); err != nil {
			t.Fatalf("save %s: %v", recs[i].ProgramID, err)
		}
	}

	got, err := repo.ByPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("by player: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	// Newest first.
	if got[0].ProgramID != "prog-2" {
		t.Errorf("first = %s, want prog-2", got[0].ProgramID)
	}
	if string(got[0].Config) != `{"weeks":6,"frequencyPerWeek":3}` {
		t.Errorf("config = %s", got[0].Config)
	}
	if got[1].Config != nil {
		t.Errorf("prog-1 config = %s, want nil", got[1].Config)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-3-flash-preview",
			Purpose:      "program-draft",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    int64(500 + i),
			Success:      true,
			RequestBody:  "[system]\ntest\n",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].Sequence >= events[i].Sequence {
			t.Errorf("events not in sequence order at %d", i)
		}
	}
	if events[0].Purpose != "program-draft" {
		t.Errorf("purpose = %q", events[0].Purpose)
	}

	// After filter skips the first event.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{After: events[0].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("len = %d, want 2", len(events))
	}

	// Limit caps results.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("len = %d, want 1", len(events))
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"drills", "programs", "session_logs", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
