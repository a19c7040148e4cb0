package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// userLister is implemented by both session backends.
type userLister interface {
	Users(ctx context.Context) ([]string, error)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics for every learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		lister, ok := d.sessions.(userLister)
		if !ok {
			return fmt.Errorf("session backend %q cannot list learners", d.cfg.SessionBackend)
		}

		ctx := cmd.Context()
		users, err := lister.Users(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(users) == 0 {
			fmt.Fprintln(out, "No learners yet.")
			return nil
		}

		fmt.Fprintf(out, "%-24s  %8s  %8s  %8s  %9s  %s\n",
			"User", "Asked", "Tried", "Correct", "Accuracy", "Level")
		fmt.Fprintln(out, strings.Repeat("─", 78))

		for _, u := range users {
			p, err := d.agent.Progress(ctx, u)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-24s  %8d  %8d  %8d  %8.0f%%  %s\n",
				truncate(u, 24), p.Questions, p.Attempts, p.Correct, p.Accuracy*100, p.Level)
		}
		return nil
	},
}
