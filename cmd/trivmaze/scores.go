package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trivia-maze/internal/platform/tui"
	"github.com/vovakirdan/trivia-maze/internal/registry"
	"github.com/vovakirdan/trivia-maze/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode, or for every mode when none is given.

Examples:
  trivmaze scores
  trivmaze scores classic
  trivmaze scores --tui
  trivmaze scores quick --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded scores of the mode, or of every mode")
}

func runScores(cmd *cobra.Command, args []string) {
	modes := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			log.Error("unknown mode", "mode", args[0])
			fmt.Fprintln(os.Stderr, "Run 'trivmaze modes' to see available modes.")
			os.Exit(1)
		}
		modes = []registry.GameInfo{{ID: args[0]}}
		for _, m := range registry.List() {
			if m.ID == args[0] {
				modes[0].Title = m.Title
			}
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Error("cannot open database", "path", flagDBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := clearScores(os.Stdout, store, modes); err != nil {
			log.Error("cannot clear scores", "error", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			log.Error("scoreboard failed", "error", err)
			os.Exit(1)
		}
		return
	}

	for i, m := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, m); err != nil {
			log.Error("cannot read scores", "mode", m.ID, "error", err)
			os.Exit(1)
		}
	}
}

func clearScores(w io.Writer, store *storage.Store, modes []registry.GameInfo) error {
	for _, m := range modes {
		if err := store.ClearScores(m.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared scores for %s\n", m.Title)
	}
	return nil
}

func printScores(store *storage.Store, mode registry.GameInfo) error {
	scores, err := store.TopScores(mode.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", mode.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Printf("Play 'trivmaze play %s' to set the first high score!\n", mode.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		result := "trapped"
		if entry.Won {
			result = "escaped"
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Escapes: %d  Best: %d  Average: %.0f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	return nil
}
