package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/igire/igire/internal/app"
	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/logging"
	"github.com/igire/igire/internal/seed"
)

// runApp opens the store, seeds the course catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd, false)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// The catalog seed is idempotent, so a first run works without a
	// separate setup step.
	if err := seed.Run(st); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	if err := st.Sessions().DeleteExpired(); err != nil {
		log.Warn().Err(err).Msg("prune expired sessions")
	}

	opts := app.Options{
		Store: st,
		Auth:  auth.NewService(st),
	}
	return app.Run(opts)
}

// setupLogging writes logs to a rotating file next to the database.
func setupLogging(level, dbPath string, console bool) {
	logging.Setup(level, logging.FilePathForDB(dbPath), console)
}
