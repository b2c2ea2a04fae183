package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and a summary of past runs.
With --tui, open the interactive scoreboard with the full run history.

Examples:
  pacman scores
  pacman scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, pacman.ID, "Pac-Man", cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(pacman.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Pac-Man")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'pacman play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(pacman.ID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Wins: %d  Best: %d  Average: %.0f  Played: %s\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
	return nil
}
