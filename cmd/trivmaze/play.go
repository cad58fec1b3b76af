package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trivia-maze/internal/core"
	"github.com/vovakirdan/trivia-maze/internal/games/triviamaze"
	"github.com/vovakirdan/trivia-maze/internal/platform/tui"
	"github.com/vovakirdan/trivia-maze/internal/registry"
	"github.com/vovakirdan/trivia-maze/internal/storage"
)

var (
	flagDifficulty string
	flagLoad       string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode, a menu lets you pick one.

Controls:
  Arrows/WASD/HJKL  - Move through a door
  1-4               - Answer the door's question
  Esc/B             - Step back from a question; back to menu after game over
  Ctrl+S            - Save the game
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Wrong answers cost no points
  normal - Settings from the config file
  hard   - Wrong answers cost as much as a right answer earns, and every
           crossing asks again, even through doors already opened

Examples:
  trivmaze play
  trivmaze play classic --difficulty hard
  trivmaze play quick --seed 42
  trivmaze play --load 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  trivmaze play classic --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "ID of a saved game to resume (see 'trivmaze saves')")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	triviamaze.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open database, scores and saves are disabled", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	logger, closer := fileLogger()
	defer closer.Close()

	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}

	if flagLoad != "" {
		mode, err = loadSave(store, flagLoad, mode)
		if err != nil {
			log.Error("cannot resume", "id", flagLoad, "error", err)
			os.Exit(1)
		}
	}

	if mode == "" {
		if err := tui.RunSession(store, cfg, logger); err != nil {
			log.Error("menu failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if !registry.Exists(mode) {
		log.Error("unknown mode", "mode", mode)
		fmt.Fprintln(os.Stderr, "Run 'trivmaze modes' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		log.Error("cannot create game", "mode", mode, "error", err)
		os.Exit(1)
	}

	if err := tui.Run(game, store, cfg, logger, flagLoad); err != nil {
		log.Error("game failed", "error", err)
		os.Exit(1)
	}
}

// loadSave arms the game package with a stored save and returns the mode to
// play. A mode given on the command line must match the save.
func loadSave(store *storage.Store, id, mode string) (string, error) {
	if store == nil {
		return "", errors.New("saves need the database")
	}
	saved, err := store.LoadGame(id)
	if err != nil {
		return "", err
	}
	if mode != "" && mode != saved.Mode {
		return "", fmt.Errorf("save %s is a %s game, not %s", id, saved.Mode, mode)
	}

	data := tui.FromSavedGame(*saved)
	triviamaze.SetResume(&data)
	return saved.Mode, nil
}
