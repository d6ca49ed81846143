package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hblok/starfighter/internal/platform/tui"
	"github.com/hblok/starfighter/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display recorded runs from the local scores database.

By default prints the top 10 runs. Use --interactive for a scrollable
scoreboard view.

Examples:
  starfighter scores
  starfighter scores --interactive
  starfighter scores --db /path/to/scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scrollable scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet. Play to set a high score!")
		return
	}

	fmt.Println("Top scores:")
	fmt.Println()
	for i, s := range scores {
		fmt.Printf("  #%-3d %8d  %-8s %s\n",
			i+1, s.Score, s.Difficulty, s.CreatedAt.Format("Jan 02 2006 15:04"))
	}

	if stats, err := store.GetStats(); err == nil && stats.RunCount > 0 {
		fmt.Println()
		fmt.Printf("  %d runs, best %d, average %.0f\n",
			stats.RunCount, stats.HighScore, stats.AvgScore)
	}
}
