package cmd

import (
	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "Career self-assessment in the terminal",
	Long:  "Compass walks you through a multi-section career assessment and submits it for recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides store.db and COMPASS_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: compass.yaml in . or ~/.config/compass)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then store.db from the config, then COMPASS_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
