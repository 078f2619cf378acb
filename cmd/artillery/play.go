package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/artillery-duel/internal/artillery"
	"github.com/vovakirdan/artillery-duel/internal/core"
	"github.com/vovakirdan/artillery-duel/internal/match"
	"github.com/vovakirdan/artillery-duel/internal/platform/tui"
	"github.com/vovakirdan/artillery-duel/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a duel straight away",
	Long: `Start a duel against the CPU without the title menu.

Controls:
  W/Up, S/Down  - Raise or lower the barrel
  Space         - Start charging, press again to fire
  P             - Pause
  R             - Rematch after a match ends
  B/Esc         - Leave a paused or finished match
  Ctrl+S        - Save a screenshot to ~/.artillery/screenshots
  Q             - Quit

Examples:
  artillery play
  artillery play --seed 42
  artillery play --fps 30`,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	game := artillery.New(rules, artillery.WithLogger(logger))
	if _, err := tui.Run(game, store, runtimeConfig(rules)); err != nil {
		return fmt.Errorf("running duel: %w", err)
	}
	return nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig(rules match.Config) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rules.TickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the match log. Duels still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		logger.Warn("could not open match database", "error", err)
		return nil
	}
	return store
}
