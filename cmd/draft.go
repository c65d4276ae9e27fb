package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/topspinhq/topspin/internal/catalog"
	"github.com/topspinhq/topspin/internal/drafting"
	"github.com/topspinhq/topspin/internal/llm"
	"github.com/topspinhq/topspin/internal/store"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft training programs with the AI assistant",
}

var draftOnboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Draft three starter programs for a new player",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		sex, _ := cmd.Flags().GetString("sex")
		years, _ := cmd.Flags().GetInt("years")
		level, _ := cmd.Flags().GetString("level")
		goals, _ := cmd.Flags().GetStringSlice("goals")
		save, _ := cmd.Flags().GetBool("save")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		svc, err := newDraftService(ctx, s)
		if err != nil {
			return err
		}

		drills, err := loadCatalog(ctx, s)
		if err != nil {
			return err
		}

		profile := drafting.OnboardingProfile{
			UserID:      userID,
			Sex:         sex,
			YearsPlayed: years,
			Level:       level,
			Goals:       goals,
		}

		drafts := svc.OnboardingDrafts(ctx, profile, drills)
		if drafts == nil {
			return fmt.Errorf("onboarding draft failed")
		}

		if save {
			for i := range drafts {
				if err := saveDraft(ctx, s, &drafts[i]); err != nil {
					return err
				}
			}
			fmt.Fprintf(os.Stderr, "Saved %d programs.\n", len(drafts))
		}

		return printJSON(drafts)
	},
}

var draftProgramCmd = &cobra.Command{
	Use:   "program <instruction>",
	Short: "Draft a personalized program from a free-text instruction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		name, _ := cmd.Flags().GetString("name")
		level, _ := cmd.Flags().GetString("level")
		goals, _ := cmd.Flags().GetStringSlice("goals")
		weeks, _ := cmd.Flags().GetInt("weeks")
		frequency, _ := cmd.Flags().GetInt("frequency")
		singleSession, _ := cmd.Flags().GetBool("single-session")
		players, _ := cmd.Flags().GetInt("players")
		courts, _ := cmd.Flags().GetInt("courts")
		save, _ := cmd.Flags().GetBool("save")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		svc, err := newDraftService(ctx, s)
		if err != nil {
			return err
		}

		drills, err := loadCatalog(ctx, s)
		if err != nil {
			return err
		}

		logs, err := s.SessionLogRepo().ByPlayer(ctx, userID)
		if err != nil {
			return fmt.Errorf("load session history: %w", err)
		}

		req := drafting.ProgramRequest{
			Instruction:   args[0],
			Drills:        drills,
			User:          drafting.UserDetails{ID: userID, Name: name, Level: level, Goals: goals},
			History:       logs,
			SingleSession: singleSession,
		}
		if weeks > 0 || frequency > 0 {
			req.Config = &drafting.ProgramConfig{Weeks: weeks, FrequencyPerWeek: frequency}
		}
		if players > 0 && courts > 0 {
			req.Squad = &drafting.SquadConstraints{Players: players, Courts: courts}
		}

		draft := svc.PersonalizedDraft(ctx, req)
		if draft == nil {
			return fmt.Errorf("program draft failed")
		}

		if save {
			if err := saveDraft(ctx, s, draft); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Saved program.")
		}

		return printJSON(draft)
	},
}

var draftSquadCmd = &cobra.Command{
	Use:   "squad <focus>",
	Short: "Draft replacement items for one squad session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		players, _ := cmd.Flags().GetInt("players")
		courts, _ := cmd.Flags().GetInt("courts")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		svc, err := newDraftService(ctx, s)
		if err != nil {
			return err
		}

		drills, err := loadCatalog(ctx, s)
		if err != nil {
			return err
		}

		items := svc.SquadSessionDraft(ctx, drafting.SquadSessionRequest{
			Focus:  args[0],
			Drills: drills,
			Squad:  drafting.SquadConstraints{Players: players, Courts: courts},
		})
		if items == nil {
			return fmt.Errorf("squad session draft failed")
		}

		return printJSON(items)
	},
}

// newDraftService builds a drafting service wired to the environment's
// model credential. Requests are logged as events through the store.
func newDraftService(ctx context.Context, s *store.Store) (*drafting.Service, error) {
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("AI features unavailable: %w", err)
	}
	return drafting.NewService(provider, drafting.DefaultConfig()), nil
}

// loadCatalog returns the stored drill catalog, falling back to the
// built-in seed when the database hasn't been seeded yet.
func loadCatalog(ctx context.Context, s *store.Store) ([]catalog.Drill, error) {
	drills, err := s.DrillRepo().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load drills: %w", err)
	}
	if len(drills) == 0 {
		drills = catalog.SeedDrills()
	}
	return drills, nil
}

// saveDraft persists a drafted program. Sessions and config are stored as
// raw JSON alongside the stamped identity fields.
func saveDraft(ctx context.Context, s *store.Store, draft *drafting.ProgramDraft) error {
	sessions, err := json.Marshal(draft.Sessions)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	rec := store.ProgramRecord{
		ProgramID:   draft.ID,
		Title:       draft.Title,
		Description: draft.Description,
		AssignedBy:  draft.AssignedBy,
		AssignedTo:  draft.AssignedTo,
		Sessions:    sessions,
		Status:      string(draft.Status),
		Completed:   draft.Completed,
		CreatedAt:   parseCreatedAt(draft.CreatedAt),
	}
	if draft.Config != nil {
		cfg, err := json.Marshal(draft.Config)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		rec.Config = cfg
	}

	if err := s.ProgramRepo().Save(ctx, &rec); err != nil {
		return fmt.Errorf("save program: %w", err)
	}
	return nil
}

// parseCreatedAt parses the draft's RFC 3339 timestamp. Drafts always
// carry a service-stamped timestamp; an unparseable one falls back to now.
func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now().UTC()
	}
	return t
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	draftOnboardingCmd.Flags().String("user", "", "Player ID to assign the programs to")
	draftOnboardingCmd.Flags().String("sex", "", "Player sex")
	draftOnboardingCmd.Flags().Int("years", 0, "Years played")
	draftOnboardingCmd.Flags().String("level", "", "Skill level (e.g. Beginner, Intermediate)")
	draftOnboardingCmd.Flags().StringSlice("goals", nil, "Training goals (comma-separated)")
	draftOnboardingCmd.Flags().Bool("save", false, "Persist the drafted programs")
	draftOnboardingCmd.MarkFlagRequired("user")

	draftProgramCmd.Flags().String("user", "", "Player ID to assign the program to")
	draftProgramCmd.Flags().String("name", "", "Player name")
	draftProgramCmd.Flags().String("level", "", "Skill level")
	draftProgramCmd.Flags().StringSlice("goals", nil, "Training goals (comma-separated)")
	draftProgramCmd.Flags().Int("weeks", 0, "Number of weekly sessions to request")
	draftProgramCmd.Flags().Int("frequency", 0, "Sessions per week")
	draftProgramCmd.Flags().Bool("single-session", false, "Draft a one-off session instead of a multi-week program")
	draftProgramCmd.Flags().Int("players", 0, "Squad player count")
	draftProgramCmd.Flags().Int("courts", 0, "Available court count")
	draftProgramCmd.Flags().Bool("save", false, "Persist the drafted program")
	draftProgramCmd.MarkFlagRequired("user")

	draftSquadCmd.Flags().Int("players", 0, "Squad player count")
	draftSquadCmd.Flags().Int("courts", 0, "Available court count")
	draftSquadCmd.MarkFlagRequired("players")
	draftSquadCmd.MarkFlagRequired("courts")

	draftCmd.AddCommand(draftOnboardingCmd)
	draftCmd.AddCommand(draftProgramCmd)
	draftCmd.AddCommand(draftSquadCmd)
}
