package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorly/internal/heuristics"
)

// textArg joins positional args into one learner text and rejects blank input
// before anything reaches the tutor.
func textArg(args []string, what string) (string, error) {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s must not be blank", what)
	}
	return text, nil
}

// levelFlag reads --level and normalizes it to a known level name.
func levelFlag(cmd *cobra.Command) (string, error) {
	raw, _ := cmd.Flags().GetString("level")
	level, err := heuristics.ParseLevel(raw)
	if err != nil {
		return "", err
	}
	return level.String(), nil
}
