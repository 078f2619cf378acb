// artillery-gui plays the artillery duel in a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/artillery-duel/internal/config"
	"github.com/vovakirdan/artillery-duel/internal/match"
	"github.com/vovakirdan/artillery-duel/internal/platform/gui"
	"github.com/vovakirdan/artillery-duel/internal/storage"
)

var (
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "artillery-gui",
	Short: "Artillery Duel in a desktop window",
	Long: `Play the artillery duel in a window.

Controls:
  W/Up, S/Down  - Raise or lower the barrel
  Space         - Hold to charge, release to fire
  P             - Pause
  R/Enter       - Rematch after a match ends
  Esc           - Back to the title screen
  Q             - Quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a rules file (YAML)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.artillery/matches.db", "Path to match database")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the first battlefield (0 = random)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "artillery-gui",
	})

	cfg, err := config.LoadArtillery(flagConfig)
	if err != nil {
		return err
	}

	opts := []gui.Option{gui.WithLogger(logger), gui.WithSeed(flagSeed)}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, gui.WithStore(store))
	}

	return gui.Run(gui.New(match.FromConfig(cfg), opts...))
}
