package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/elliotskunk/stumble/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "stumble",
	Short: "Spontaneous micro-challenges from wherever you are",
	Long:  "Stumble — a lock-screen notification interrupts you, a photo of your surroundings becomes a timed micro-challenge, and the before/after pair lands in your portfolio.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Best-effort; most installs configure via real env vars.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUMBLE_DB env var)")
	rootCmd.Flags().String("photos", "", "Directory to treat as the camera roll (newest image wins)")

	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUMBLE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
