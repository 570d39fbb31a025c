package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <email>",
	Short: "Wipe a user's progress and sessions",
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

		if err := st.Progress().Reset(user.ID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		if err := st.Sessions().DeleteForUser(user.ID); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		fmt.Printf("Progress and sessions reset for %s.\n", user.Email)
		return nil
	},
}
