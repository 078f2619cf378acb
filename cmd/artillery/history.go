package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artillery-duel/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the match log",
	Long: `Print the most recent duels and the lifetime record.

Examples:
  artillery history
  artillery history --limit 50
  artillery history --clear`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole match log")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening match database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match log cleared.")
		return nil
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'artillery play' to fight your first duel!")
		return nil
	}

	fmt.Printf("  %-5s  %-6s  %-5s  %-7s  %-14s  %s\n", "ID", "Winner", "Turns", "Shots", "Source", "Date")
	fmt.Printf("  %-5s  %-6s  %-5s  %-7s  %-14s  %s\n", "--", "------", "-----", "-----", "------", "----")

	for _, m := range matches {
		winner := "YOU"
		if m.Winner != "player" {
			winner = "CPU"
		}
		fmt.Printf("  %-5d  %-6s  %-5d  %-7s  %-14s  %s\n",
			m.ID, winner, m.Turns,
			fmt.Sprintf("%d/%d", m.PlayerShots, m.AdversaryShots),
			m.Source,
			m.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Record: %d played, %d won, %d lost, %.1f turns on average\n",
		stats.Played, stats.Wins, stats.Losses, stats.AvgTurns)
	return nil
}
