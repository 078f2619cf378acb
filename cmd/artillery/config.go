package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artillery-duel/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in rules as YAML. Save the output to
~/.artillery/configs/artillery.yaml or pass it with --config to tweak
gravity, terrain shape, turn length and the CPU's aim.

With --check, load the active configuration (honouring --config) and
report whether it is valid instead.

Examples:
  artillery config > ~/.artillery/configs/artillery.yaml
  artillery config --check --config ./artillery.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the active configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagCheck {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadArtillery(flagConfig)
	if err != nil {
		return err
	}
	fmt.Printf("Configuration OK: %dx%d field, %d ticks per turn, gravity %.0f\n",
		cfg.Field.Width, cfg.Field.Height, cfg.Turn.Ticks, cfg.Physics.Gravity)
	return nil
}
