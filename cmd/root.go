package cmd

import (
	"github.com/spf13/cobra"
	"github.com/topspinhq/topspin/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "topspin",
	Short: "AI tennis program drafter",
	Long:  "Topspin drafts schema-validated tennis training programs with an AI assistant.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TOPSPIN_DB env var)")

	rootCmd.AddCommand(drillsCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TOPSPIN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
