package tui

import (
	"github.com/vovakirdan/trivia-maze/internal/games/triviamaze"
	"github.com/vovakirdan/trivia-maze/internal/storage"
)

// Saver is implemented by games that can be persisted mid-play.
type Saver interface {
	CanSave() bool
	SaveData() triviamaze.SaveData
}

// ToSavedGame converts a game save into its storage form. An empty id makes
// the store assign a new one.
func ToSavedGame(id string, d triviamaze.SaveData) storage.SavedGame {
	return storage.SavedGame{
		ID:      id,
		Mode:    d.Mode,
		Maze:    d.Maze,
		Opened:  d.Opened,
		Score:   d.Score,
		Correct: d.Correct,
		Wrong:   d.Wrong,
	}
}

// FromSavedGame converts a stored save back into game form.
func FromSavedGame(g storage.SavedGame) triviamaze.SaveData {
	return triviamaze.SaveData{
		Mode:    g.Mode,
		Maze:    g.Maze,
		Opened:  g.Opened,
		Score:   g.Score,
		Correct: g.Correct,
		Wrong:   g.Wrong,
	}
}
