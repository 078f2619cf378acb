// artillery is a two-tank artillery duel against a CPU opponent, played in
// the terminal or over SSH.
//
// Usage:
//
//	artillery play           - Start a duel straight away
//	artillery menu           - Title menu with match history
//	artillery serve          - Host duels over SSH
//	artillery history        - Print the match log
//	artillery config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for a reproducible battlefield
//	--db <path>         - Set database path (default: ~/.artillery/matches.db)
//	--config <path>     - Load rules from a YAML file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/artillery-duel/internal/config"
	"github.com/vovakirdan/artillery-duel/internal/match"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "artillery",
	Short: "Artillery Duel - out-shoot the CPU across a rolling battlefield",
	Long: `Artillery Duel is a turn-based tank duel for the terminal.

Aim your barrel, charge a shot and land a direct hit on the enemy tank
before it lands one on you. Every shot that hits the ground digs a crater.

Available commands:
  play     - Start a duel straight away
  menu     - Title menu with match history
  serve    - Host duels over SSH
  history  - Print the match log
  config   - Print the default configuration

Examples:
  artillery play
  artillery play --seed 42
  artillery menu --config ./artillery.yaml
  artillery serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the configured rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.artillery/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a rules file (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRules reads the configured rules and applies flag overrides.
func loadRules() (match.Config, error) {
	cfg, err := config.LoadArtillery(flagConfig)
	if err != nil {
		return match.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Field.TickRate = flagFPS
	}
	return match.FromConfig(cfg), nil
}

// openLogger writes to ~/.artillery/artillery.log; the terminal belongs to
// the game while it runs. The returned func closes the file.
func openLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".artillery")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "artillery.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "artillery",
	})
	return logger, func() { f.Close() }, nil
}
