package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Answer a run of exercises in the terminal without the full-screen app",
	Long: `Generate exercises for one concept and answer them line by line.
Every graded answer is recorded in the learner's history.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().StringP("subject", "s", "", "Subject id (required)")
	drillCmd.Flags().StringP("concept", "c", "", "Concept name (required)")
	drillCmd.Flags().StringP("level", "l", "beginner", "Level: beginner, intermediate or advanced")
	drillCmd.Flags().IntP("count", "n", 5, "Number of exercises")
	_ = drillCmd.MarkFlagRequired("subject")
	_ = drillCmd.MarkFlagRequired("concept")
}

func runDrill(cmd *cobra.Command, args []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	concept, _ := cmd.Flags().GetString("concept")
	count, _ := cmd.Flags().GetInt("count")
	level, err := levelFlag(cmd)
	if err != nil {
		return err
	}

	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "Subject: %s / %s (%s)\n\n", subject, concept, level)

	var correct, answered int
	for i := 1; i <= count; i++ {
		ex, err := d.agent.GenerateExercise(ctx, subject, concept, level)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "── Exercise %d/%d ──\n", i, count)
		fmt.Fprintln(out, ex.Prompt)

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprint(out, "(skipped)\n\n")
			continue
		}

		res, err := d.agent.GradeAnswer(ctx, *ex, answer, d.cfg.User)
		if err != nil {
			fmt.Fprintf(out, "grading failed: %v\n\n", err)
			continue
		}
		answered++
		if res.Correct {
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", ex.Answer)
		}
		fmt.Fprintf(out, "%s\n%s\n\n", res.Feedback, res.NextStep)
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
