package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/topspinhq/topspin/internal/history"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a player's training progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		logs, err := s.SessionLogRepo().ByPlayer(ctx, userID)
		if err != nil {
			return fmt.Errorf("load session history: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		summary := history.Summarize(logs)
		analysis := history.Analyze(logs)

		fmt.Printf("Sessions completed:  %d\n", summary.SessionsCompleted)
		fmt.Printf("Total minutes:       %d\n", summary.TotalMinutes)
		fmt.Printf("Average RPE:         %.1f\n", summary.AverageRPE)
		fmt.Printf("Drill success rate:  %.0f%% (%d attempts)\n",
			summary.SuccessRate*100, summary.DrillsAttempted)

		if strengths := analysis.StrengthIDs(); len(strengths) > 0 {
			fmt.Printf("Strengths:           %s\n", strings.Join(strengths, ", "))
		}
		if weaknesses := analysis.WeaknessIDs(); len(weaknesses) > 0 {
			fmt.Printf("Weaknesses:          %s\n", strings.Join(weaknesses, ", "))
		}

		drills, err := loadCatalog(ctx, s)
		if err != nil {
			return err
		}
		categoryByDrill := make(map[string]string, len(drills))
		for _, d := range drills {
			categoryByDrill[d.ID] = string(d.Category)
		}
		counts := history.CategoryCounts(logs, categoryByDrill)
		if len(counts) > 0 {
			categories := make([]string, 0, len(counts))
			for cat := range counts {
				categories = append(categories, cat)
			}
			sort.Strings(categories)
			fmt.Println("\nAttempts by category:")
			for _, cat := range categories {
				fmt.Printf("  %-14s %d\n", cat, counts[cat])
			}
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().String("user", "", "Player ID")
	progressCmd.MarkFlagRequired("user")
}
