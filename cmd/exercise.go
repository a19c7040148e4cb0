package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorly/internal/tutor"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Generate an exercise as JSON",
	Long: `Generate an exercise for a concept and level and print it as JSON.
Pipe the output to "tutorly grade" to grade an answer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		concept, _ := cmd.Flags().GetString("concept")
		level, err := levelFlag(cmd)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		ex, err := d.agent.GenerateExercise(cmd.Context(), subject, concept, level)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(ex)
	},
}

var gradeCmd = &cobra.Command{
	Use:   "grade <answer>",
	Short: "Grade an answer to an exercise produced by \"tutorly exercise\"",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("exercise")
		answer, err := textArg(args, "answer")
		if err != nil {
			return err
		}

		ex, err := readExercise(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}

		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close()

		res, err := d.agent.GradeAnswer(cmd.Context(), *ex, answer, d.cfg.User)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		mark := "✗"
		if res.Correct {
			mark = "✓"
		}
		fmt.Fprintf(out, "%s %d/%d\n\n%s\n\n%s\n", mark, res.Score, res.MaxScore, res.Feedback, res.NextStep)
		return nil
	},
}

func init() {
	exerciseCmd.Flags().StringP("subject", "s", "", "Subject id (required)")
	exerciseCmd.Flags().StringP("concept", "c", "", "Concept name (required)")
	exerciseCmd.Flags().StringP("level", "l", "beginner", "Level: beginner, intermediate or advanced")
	_ = exerciseCmd.MarkFlagRequired("subject")
	_ = exerciseCmd.MarkFlagRequired("concept")

	gradeCmd.Flags().StringP("exercise", "e", "-", `Exercise JSON file, or "-" for stdin`)
}

func readExercise(stdin io.Reader, path string) (*tutor.Exercise, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read exercise: %w", err)
	}

	var ex tutor.Exercise
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("parse exercise: %w", err)
	}
	if ex.Subject == "" || ex.Concept == "" {
		return nil, fmt.Errorf("exercise is missing subject or concept")
	}
	return &ex, nil
}
