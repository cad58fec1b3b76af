package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trivia-maze/internal/maze"
	"github.com/vovakirdan/trivia-maze/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long: `List saved games, most recent first. Resume one with 'trivmaze play --load <id>'.

Examples:
  trivmaze saves
  trivmaze saves show <id>
  trivmaze saves rm <id>`,
	Args: cobra.NoArgs,
	Run:  runSavesList,
}

var savesShowCmd = &cobra.Command{
	Use:   "show <id> [direction]",
	Short: "Print the maze of a saved game",
	Long: `Print the maze of a saved game. With a direction (north, east, south, west
or n/e/s/w), describe that exit of the player's room instead.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runSavesShow,
}

var savesRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a saved game",
	Args:    cobra.ExactArgs(1),
	Run:     runSavesRm,
}

func init() {
	savesCmd.AddCommand(savesShowCmd)
	savesCmd.AddCommand(savesRmCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Error("cannot open database", "path", flagDBPath, "error", err)
		os.Exit(1)
	}
	return store
}

func runSavesList(_ *cobra.Command, _ []string) {
	store := openStoreOrExit()
	defer store.Close()

	saves, err := store.ListSaves(50)
	if err != nil {
		log.Error("cannot list saves", "error", err)
		os.Exit(1)
	}

	if len(saves) == 0 {
		fmt.Println("No saved games. Press Ctrl+S during a game to save it.")
		return
	}

	fmt.Printf("  %-36s  %-8s  %-5s  %-8s  %-6s  %s\n", "ID", "Mode", "Size", "Room", "Score", "Saved")
	fmt.Printf("  %-36s  %-8s  %-5s  %-8s  %-6s  %s\n", "--", "----", "----", "----", "-----", "-----")
	for _, s := range saves {
		fmt.Printf("  %-36s  %-8s  %-5s  %-8s  %-6d  %s\n",
			s.ID, s.Mode,
			fmt.Sprintf("%dx%d", s.Maze.Size, s.Maze.Size),
			s.Maze.Player.String(),
			s.Score,
			s.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
}

func runSavesShow(_ *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	saved, err := store.LoadGame(args[0])
	if err != nil {
		log.Error("cannot load save", "id", args[0], "error", err)
		os.Exit(1)
	}

	if len(args) == 2 {
		err = describeExit(os.Stdout, saved, args[1])
	} else {
		err = describeSave(os.Stdout, saved)
	}
	if err != nil {
		log.Error("cannot show save", "id", args[0], "error", err)
		os.Exit(1)
	}
}

// describeSave prints the whole maze of a save.
func describeSave(w io.Writer, saved *storage.SavedGame) error {
	m, err := maze.Restore(saved.Maze)
	if err != nil {
		return fmt.Errorf("save is corrupt: %w", err)
	}

	snap := m.Snapshot()
	fmt.Fprintf(w, "%s game, score %d (%d right, %d wrong)\n", saved.Mode, saved.Score, saved.Correct, saved.Wrong)
	fmt.Fprintf(w, "%d doors, %d sealed\n\n", m.DoorCount(), len(saved.Maze.Dead))
	fmt.Fprint(w, snap.String())
	fmt.Fprintln(w)

	room, _ := snap.Room(snap.Player)
	fmt.Fprintf(w, "Current room %s:\n", snap.Player)
	fmt.Fprintln(w, maze.RoomView(room))

	if len(saved.Maze.Dead) > 0 {
		fmt.Fprintln(w, "Sealed doors:")
		for _, e := range saved.Maze.Dead {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	if m.IsGoalReachable() {
		fmt.Fprintln(w, "The exit is still reachable.")
	} else {
		fmt.Fprintln(w, "The exit can no longer be reached.")
	}
	return nil
}

// describeExit prints one exit of the player's room in a save.
func describeExit(w io.Writer, saved *storage.SavedGame, dir string) error {
	d, err := maze.ParseDirection(dir)
	if err != nil {
		return err
	}
	m, err := maze.Restore(saved.Maze)
	if err != nil {
		return fmt.Errorf("save is corrupt: %w", err)
	}

	st, err := m.DoorState(m.Player(), d)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Room %s, %s\n", m.Player(), maze.ExitLabel(d, st))
	if !st.Passable() {
		fmt.Fprintln(w, "The player cannot leave this way.")
		return nil
	}

	next := m.Player().Step(d)
	ok, err := m.Reachable(next, m.Goal())
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(w, "Leads to %s, from where the exit is reachable.\n", next)
	} else {
		fmt.Fprintf(w, "Leads to %s, from where the exit cannot be reached.\n", next)
	}
	return nil
}

func runSavesRm(_ *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	if err := store.DeleteSave(args[0]); err != nil {
		log.Error("cannot delete save", "id", args[0], "error", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted save %s\n", args[0])
}
