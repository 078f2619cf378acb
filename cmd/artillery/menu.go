package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artillery-duel/internal/artillery"
	"github.com/vovakirdan/artillery-duel/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick "Start Duel" to play or "Match History" to browse finished duels.
Leaving a duel returns to the menu; your win/loss tally for the session
is kept across duels.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Match history
  Q            - Quit

Examples:
  artillery menu
  artillery menu --fps 30
  artillery menu --db ./matches.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(rules)
	game := artillery.New(rules, artillery.WithLogger(logger))
	first := true

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoicePlay:
			// Only the first duel honours --seed
			if !first || cfg.Seed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			first = false

			model, err := tui.Run(game, store, cfg)
			if err != nil {
				return fmt.Errorf("running duel: %w", err)
			}
			if model.IsQuitting() {
				return nil
			}
			cfg.ScreenW, cfg.ScreenH = model.Config().ScreenW, model.Config().ScreenH

		case tui.MenuChoiceHistory:
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
