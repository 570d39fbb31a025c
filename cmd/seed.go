package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igire/igire/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the course catalog into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd, true)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := seed.Run(st); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		fmt.Println("Course catalog seeded.")
		return nil
	},
}
