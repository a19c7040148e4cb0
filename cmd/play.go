package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tutorly/internal/app"
)

var playCmd = &cobra.Command{
	Use:         "play",
	Short:       "Start the interactive terminal app",
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		noSplash, _ := cmd.Flags().GetBool("no-splash")
		return runApp(cmd, subject, !noSplash)
	},
}

func init() {
	playCmd.Flags().StringP("subject", "s", "", "Subject to start with")
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, subject string, splash bool) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Agent:     d.agent,
		Knowledge: d.kb,
		UserID:    d.cfg.User,
		Subject:   subject,
		Splash:    splash,
	})
}
