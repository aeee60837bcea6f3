package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt"
	"github.com/vovakirdan/wordhunt/internal/storage"
)

var (
	flagScoresEndless bool
	flagScoresLimit   int
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores and lifetime totals.

Examples:
  wordhunt scores
  wordhunt scores --endless
  wordhunt scores --limit 25
  wordhunt scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresEndless, "endless", false, "Show endless mode scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the selected mode")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameID, title := wordhunt.IDCampaign, "Campaign"
	if flagScoresEndless {
		gameID, title = wordhunt.IDEndless, "Endless"
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - Word Hunt %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wordhunt play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "Rank", "Score", "Level", "Size", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "----", "-----", "-----", "----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %-7s  %s\n", i+1, e.Score, e.Level, e.Palette, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if totals, err := store.GetTotals(); err == nil {
		fmt.Printf("Runs: %d  Levels: %d  Words found: %d  Best: %d\n",
			totals.Games, totals.Levels, totals.WordsFound, totals.BestScore)
	}
	return nil
}
