package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the learner's progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		if !asJSON {
			summary, err := d.agent.ProgressSummary(cmd.Context(), d.cfg.User)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, summary)
			return nil
		}

		p, err := d.agent.Progress(cmd.Context(), d.cfg.User)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(p)
	},
}

func init() {
	progressCmd.Flags().Bool("json", false, "Print per-concept progress as JSON")
}
