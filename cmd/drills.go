package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/topspinhq/topspin/internal/catalog"
)

var drillsCmd = &cobra.Command{
	Use:   "drills",
	Short: "Manage the drill catalog",
}

var drillsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in drill catalog into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		drills := catalog.SeedDrills()
		if err := catalog.Validate(drills); err != nil {
			return fmt.Errorf("validate catalog: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		inserted, err := s.DrillRepo().Seed(context.Background(), drills)
		if err != nil {
			return fmt.Errorf("seed drills: %w", err)
		}

		fmt.Printf("Seeded %d drills (%d already present).\n", inserted, len(drills)-inserted)
		return nil
	},
}

var drillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		drills, err := s.DrillRepo().All(context.Background())
		if err != nil {
			return fmt.Errorf("list drills: %w", err)
		}
		if len(drills) == 0 {
			fmt.Println("No drills found. Run 'topspin drills seed' first.")
			return nil
		}

		fmt.Printf("%-5s  %-28s  %-12s  %-12s  %s\n",
			"ID", "Name", "Category", "Difficulty", "Min")
		fmt.Println(strings.Repeat("─", 72))

		for _, d := range drills {
			if category != "" && !strings.EqualFold(string(d.Category), category) {
				continue
			}
			name := d.Name
			if len(name) > 28 {
				name = name[:28]
			}
			fmt.Printf("%-5s  %-28s  %-12s  %-12s  %d\n",
				d.ID, name, d.Category, d.Difficulty, d.DefaultDurationMin)
		}
		return nil
	},
}

func init() {
	drillsListCmd.Flags().StringP("category", "c", "", "Filter by category (e.g. Warmup, Groundstrokes)")

	drillsCmd.AddCommand(drillsSeedCmd)
	drillsCmd.AddCommand(drillsListCmd)
}
