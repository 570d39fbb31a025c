package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <email>",
	Short: "Show a user's per-module progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd, true)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		user, err := st.Users().ByEmail(args[0])
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}
		if user == nil {
			return fmt.Errorf("no user with email %q", args[0])
		}

		summary, err := st.Progress().Summary(user.ID)
		if err != nil {
			return fmt.Errorf("load summary: %w", err)
		}
		if len(summary) == 0 {
			fmt.Println("No progress recorded yet.")
			return nil
		}

		fmt.Printf("Progress for %s:\n", user.Email)
		for _, mp := range summary {
			fmt.Printf("  %-40s %d completed, avg score %.0f%%\n", mp.Module, mp.Completed, mp.AvgScore)
		}
		return nil
	},
}
