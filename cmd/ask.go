package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about a subject",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		raw, _ := cmd.Flags().GetBool("raw")
		question, err := textArg(args, "question")
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		res, err := d.agent.HandleQuestion(cmd.Context(), d.cfg.User, subject, question)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, render(res.Explanation, raw))
		fmt.Fprintf(out, "Concepts: %s\nLevel:    %s\n", strings.Join(res.Concepts, ", "), res.EstimatedLevel)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("subject", "s", "", "Subject id (required)")
	askCmd.Flags().Bool("raw", false, "Print the explanation without markdown rendering")
	_ = askCmd.MarkFlagRequired("subject")
}

// render formats markdown for the terminal, falling back to the raw text.
func render(text string, raw bool) string {
	if raw {
		return text
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
