package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var (
	flagRecent bool
	flagAll    bool
	flagReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 results for the specified variant (default: lines).

Examples:
  lines scores
  lines scores lines_mini
  lines scores --recent
  lines scores --all
  lines scores lines_mini --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest games instead of the best")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show a summary of every variant")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded games of the variant")
	scoresCmd.MarkFlagsMutuallyExclusive("recent", "all", "reset")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lines list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagAll:
		err = showSummary(os.Stdout, store)
	case flagReset:
		err = resetScores(os.Stdout, store, gameID)
	default:
		err = showScores(os.Stdout, store, gameID, flagRecent)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showScores prints the best (or latest) games of one variant.
func showScores(w io.Writer, store *storage.Store, gameID string, recent bool) error {
	info, _ := registry.Info(gameID)

	heading := "High Scores"
	query := store.TopResults
	if recent {
		heading = "Recent Games"
		query = store.RecentResults
	}

	results, err := query(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s - %s\n\n", heading, info.Title)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'lines play %s' to set the first high score!\n", gameID)
		return nil
	}

	printResults(w, results)

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Games: %d  Best: %d  Average: %.1f  Balls cleared: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalCleared)
	}
	return nil
}

// showSummary prints one line per registered variant.
func showSummary(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  %-12s  %-5s  %-5s  %-7s  %-9s  %s\n", "Game", "Games", "Best", "Average", "Avg turns", "Last played")
	fmt.Fprintf(w, "  %-12s  %-5s  %-5s  %-7s  %-9s  %s\n", "----", "-----", "----", "-------", "---------", "-----------")

	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			fmt.Fprintf(w, "  %-12s  %-5d  %-5s  %-7s  %-9s  %s\n", g.ID, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(w, "  %-12s  %-5d  %-5d  %-7.1f  %-9.1f  %s\n",
			g.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.AvgTurns,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// resetScores deletes the recorded games of one variant.
func resetScores(w io.Writer, store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all recorded games of %s.\n", gameID)
	return nil
}

func printResults(w io.Writer, results []storage.GameResult) {
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Turns", "Board", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		board := fmt.Sprintf("%dx%d", r.Width, r.Height)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-6s  %-12s  %s\n", i+1, r.Score, r.Turns, board, player, dateStr)
	}
}
