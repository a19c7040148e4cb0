package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/tutorly/internal/config"
)

// tuiAnnotation marks commands that own the terminal. They log to the
// configured file, or nowhere.
const tuiAnnotation = "tui"

var (
	cfgFile string
	verbose bool

	appCfg *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "tutorly",
	Short: "AI tutor for subject knowledge files",
	Long: `Tutorly answers questions, hands out exercises and grades answers
for subjects described in JSON knowledge files, keeping a per-learner
history to estimate their level.

Run without arguments to start the interactive terminal app.`,
	Annotations:       map[string]string{tuiAnnotation: "true"},
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", true)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(pf *pflag.FlagSet) {
	pf.StringVar(&cfgFile, "config", "tutorly.yaml", "Path to YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.String("data", "", "Directory of subject JSON files (overrides TUTORLY_DATA)")
	pf.String("sessions", "", "Directory for file-backed learner records (overrides TUTORLY_SESSIONS)")
	pf.String("db", "", "Path to SQLite database file (overrides TUTORLY_DB)")
	pf.String("backend", "", "Session backend: file or sqlite")
	pf.StringP("user", "u", "", "Learner id (overrides TUTORLY_USER)")
	pf.Uint64("seed", 0, "Seed for exercise selection (0 = random)")
}

// setup loads .env and the config file, applies flag overrides and builds
// the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	appCfg = cfg

	logger, err = newLogger(cfg, cmd.Annotations[tuiAnnotation] == "true")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"data":     &cfg.DataDir,
		"sessions": &cfg.SessionsDir,
		"db":       &cfg.DBPath,
		"backend":  &cfg.SessionBackend,
		"user":     &cfg.User,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	return cfg.Validate()
}

func newLogger(cfg *config.Config, tui bool) (*zap.Logger, error) {
	if tui && cfg.Logging.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.Logging.File != "" {
		zc.OutputPaths = []string{cfg.Logging.File}
		zc.ErrorOutputPaths = []string{cfg.Logging.File}
	}
	return zc.Build()
}
