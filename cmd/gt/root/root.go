package root

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goaltrack/internal/config"
	"goaltrack/internal/logging"
	"goaltrack/internal/ui"
)

const Version = "0.2.0"

var (
	flagFile    string
	flagConfig  string
	flagVerbose bool

	cfg    config.Config
	logger = zap.NewNop()
	// now is captured once per invocation; every command derives "today" from it.
	now time.Time
)

var rootCmd = &cobra.Command{
	Use:           "gt",
	Short:         "Goal tracker with heatmaps and RPG progression",
	Long:          "gt tracks daily progress on personal goals, draws a year-long heatmap per goal and turns your consistency into XP, levels, stats and badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		now = time.Now()

		var err error
		cfg, err = config.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		if flagFile != "" {
			cfg.Store.Path = flagFile
		}

		logger, err = logging.New(cfg.Logging.Level, flagVerbose, cfg.Logging.File)
		if err != nil {
			return err
		}
		logger.Debug("config loaded",
			zap.String("store", cfg.Store.Path),
			zap.Bool("journal", cfg.Journal.Enabled),
			zap.String("journal_path", cfg.Journal.Path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Goal document path (overrides config; .yaml/.yml selects YAML)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $GOALTRACK_HOME/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newAddCmd(),
		newLogCmd(),
		newShowCmd(),
		newListCmd(),
		newStatsCmd(),
		newProfileCmd(),
		newBadgesCmd(),
		newArchiveCmd(),
		newRestoreCmd(),
		newRmCmd(),
		newEditCmd(),
		newSeedCmd(),
		newHistoryCmd(),
		newBoardCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// requireName validates the single positional goal name.
func requireName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return errors.New("goal name is required")
	}
	return nil
}
