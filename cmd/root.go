package cmd

import (
	"github.com/igire/igire/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "igire",
	Short: "Business skills courses for women entrepreneurs",
	Long:  "Igire — terminal learning app with business courses, quizzes, and progress tracking for women entrepreneurs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides IGIRE_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then IGIRE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path, configures logging, and opens the
// store. console controls whether logs also go to stderr; the TUI keeps
// them file-only.
func openStore(cmd *cobra.Command, console bool) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	level, _ := cmd.Flags().GetString("log-level")
	setupLogging(level, dbPath, console)
	return store.Open(dbPath)
}
