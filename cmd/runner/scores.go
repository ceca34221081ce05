package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thor-runner/internal/games/runner"
	"github.com/vovakirdan/thor-runner/internal/registry"
	"github.com/vovakirdan/thor-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs of a variant",
	Long: `Display the top runs for the specified variant (default: thor),
with the outcome, final speed and the overall win count.

Examples:
  thor-runner scores
  thor-runner scores thor_classic --limit 25
  thor-runner scores thor --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := runner.IDThor
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'thor-runner list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Run history of %s cleared.\n", gameID)
		return
	}

	if err := printScores(store, gameID, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string, limit int) error {
	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	runs, err := store.TopRuns(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'thor-runner play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Speed", "Frames", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "------", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-6.1f  %-8d  %s\n",
			i+1, r.Score, r.Outcome, r.Speed, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.0f\n",
		stats.RunsCount, stats.Wins, stats.HighScore, stats.AvgScore)
	return nil
}
