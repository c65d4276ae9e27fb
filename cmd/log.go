package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/topspinhq/topspin/internal/history"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and review completed sessions",
}

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a completed session",
	Long: `Record a completed session with per-drill outcomes.

Outcomes are given as drillId=success or drillId=fail, repeatable:

  topspin log add --user p1 --duration 60 --rpe 7 \
      --outcome d1=success --outcome d4=fail`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		programID, _ := cmd.Flags().GetString("program")
		duration, _ := cmd.Flags().GetInt("duration")
		rpe, _ := cmd.Flags().GetInt("rpe")
		notes, _ := cmd.Flags().GetString("notes")
		outcomes, _ := cmd.Flags().GetStringArray("outcome")

		perfs, err := parseOutcomes(outcomes)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		log := history.SessionLog{
			ID:            uuid.NewString(),
			PlayerID:      userID,
			ProgramID:     programID,
			DateCompleted: time.Now().UTC(),
			DurationMin:   duration,
			RPE:           rpe,
			Notes:         notes,
			Performances:  perfs,
		}
		if err := s.SessionLogRepo().Append(context.Background(), &log); err != nil {
			return fmt.Errorf("record session: %w", err)
		}

		fmt.Printf("Recorded session %s (%d drills).\n", log.ID, len(perfs))
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a player's recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		logs, err := s.SessionLogRepo().ByPlayer(context.Background(), userID)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No sessions recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-5s  %-4s  %-18s  %s\n",
			"Completed", "Min", "RPE", "Outcomes", "Notes")
		fmt.Println(strings.Repeat("─", 72))

		for _, l := range logs {
			success, fail := 0, 0
			for _, p := range l.Performances {
				if p.Outcome == history.OutcomeSuccess {
					success++
				} else {
					fail++
				}
			}
			notes := l.Notes
			if len(notes) > 24 {
				notes = notes[:24]
			}
			fmt.Printf("%-19s  %-5d  %-4d  %-18s  %s\n",
				l.DateCompleted.Local().Format("2006-01-02 15:04:05"),
				l.DurationMin,
				l.RPE,
				fmt.Sprintf("%d success / %d fail", success, fail),
				notes,
			)
		}
		return nil
	},
}

// parseOutcomes converts drillId=success|fail pairs into performances.
func parseOutcomes(raw []string) ([]history.DrillPerformance, error) {
	perfs := make([]history.DrillPerformance, 0, len(raw))
	for _, o := range raw {
		drillID, outcome, found := strings.Cut(o, "=")
		if !found || drillID == "" {
			return nil, fmt.Errorf("invalid outcome %q: want drillId=success or drillId=fail", o)
		}
		switch history.Outcome(outcome) {
		case history.OutcomeSuccess, history.OutcomeFail:
		default:
			return nil, fmt.Errorf("invalid outcome %q for drill %s: want success or fail", outcome, drillID)
		}
		perfs = append(perfs, history.DrillPerformance{
			DrillID: drillID,
			Outcome: history.Outcome(outcome),
		})
	}
	return perfs, nil
}

func init() {
	logAddCmd.Flags().String("user", "", "Player ID")
	logAddCmd.Flags().String("program", "", "Program the session belongs to")
	logAddCmd.Flags().Int("duration", 0, "Session duration in minutes")
	logAddCmd.Flags().Int("rpe", 0, "Rate of perceived exertion, 0-10")
	logAddCmd.Flags().String("notes", "", "Free-text notes")
	logAddCmd.Flags().StringArray("outcome", nil, "Drill outcome as drillId=success|fail (repeatable)")
	logAddCmd.MarkFlagRequired("user")

	logListCmd.Flags().String("user", "", "Player ID")
	logListCmd.MarkFlagRequired("user")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
}
