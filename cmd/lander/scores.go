package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
	flagShowFlights bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and flight history",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "delete all scores for the game")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagShowFlights, "flights", false, "show the flight log instead of scores")
	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	store := openStore()
	if store == nil {
		return fmt.Errorf("score database unavailable")
	}
	defer store.Close()

	gameID := "lander"
	if len(args) > 0 {
		gameID = args[0]
	}

	if flagScoresTUI {
		return tui.ShowScoreboard(store, registry.List())
	}

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Printf("cleared %d scores for %s\n", n, gameID)
		return nil
	}

	if flagShowFlights {
		flights, err := store.RecentFlights(gameID, flagScoresLimit)
		if err != nil {
			return err
		}
		if len(flights) == 0 {
			fmt.Printf("no flights recorded for %s\n", gameID)
			return nil
		}
		fmt.Printf("Recent flights for %s:\n", gameID)
		for i, f := range flights {
			fmt.Printf("%3d. %-8s score %4d  fuel %6.0f  %6.1fs  [%s]\n",
				i+1, f.Outcome, f.Score, f.FuelUsed, f.Duration, f.Difficulty)
		}
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Printf("no scores recorded for %s\n", gameID)
		return nil
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Top scores for %s (%d plays, avg %.0f):\n", gameID, stats.Plays, stats.AvgScore)
	for i, s := range scores {
		fmt.Printf("%3d. %-16s %5d  %s\n", i+1, s.Player, s.Score, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
