package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorly/internal/heuristics"
	"github.com/abhisek/tutorly/internal/knowledge"
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Browse subject knowledge files",
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects in the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb := knowledge.New(appCfg.DataDir, logger)
		subjects, err := kb.Subjects()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(subjects) == 0 {
			fmt.Fprintf(out, "No subjects found in %s\n", kb.Dir())
			return nil
		}

		fmt.Fprintf(out, "%-30s  %8s  %9s\n", "Subject", "Concepts", "Exercises")
		fmt.Fprintln(out, strings.Repeat("─", 51))
		for _, s := range subjects {
			c, err := kb.Load(s)
			if err != nil {
				fmt.Fprintf(out, "%-30s  %s\n", s, err)
				continue
			}
			fmt.Fprintf(out, "%-30s  %8d  %9d\n", s, len(c.Concepts), len(c.Exercises))
		}
		fmt.Fprintf(out, "\n%d subjects\n", len(subjects))
		return nil
	},
}

var subjectShowCmd = &cobra.Command{
	Use:   "show <subject>",
	Short: "Show a subject's concepts and exercise counts per level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb := knowledge.New(appCfg.DataDir, logger)
		c, err := kb.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		levels := heuristics.Levels()

		fmt.Fprintf(out, "%-24s", "Concept")
		for _, l := range levels {
			fmt.Fprintf(out, "  %12s", l)
		}
		fmt.Fprintln(out, "  Description")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, concept := range c.Concepts {
			fmt.Fprintf(out, "%-24s", truncate(concept.Name, 24))
			for _, l := range levels {
				fmt.Fprintf(out, "  %12d", len(c.ExercisesFor(concept.Name, l.String())))
			}
			fmt.Fprintf(out, "  %s\n", truncate(concept.Description, 40))
		}
		if c.Image != "" {
			fmt.Fprintf(out, "\nImage: %s\n", c.Image)
		}
		return nil
	},
}

func init() {
	subjectCmd.AddCommand(subjectListCmd)
	subjectCmd.AddCommand(subjectShowCmd)
}
