package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner's history and statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		user := appCfg.User
		if !yes {
			return fmt.Errorf("this deletes all history for %q; rerun with --yes to confirm", user)
		}

		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.sessions.Delete(cmd.Context(), user); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset learner %q.\n", user)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
