package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trivia-maze/internal/core"
	"github.com/vovakirdan/trivia-maze/internal/games/triviamaze"
	"github.com/vovakirdan/trivia-maze/internal/maze"
	"github.com/vovakirdan/trivia-maze/internal/storage"
)

func newTestModel(t *testing.T) (GameModel, *triviamaze.Game, *storage.Store) {
	t.Helper()
	triviamaze.SetConfigPath("")
	triviamaze.SetDifficultyPreset("")
	triviamaze.SetResume(nil)

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := triviamaze.NewQuick()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 30, Seed: 3}
	m := NewGameModel(game, store, cfg, log.New(io.Discard))
	m.Init()
	return m, game, store
}

// send feeds a key and one tick through the model.
func send(t *testing.T, m GameModel, msg tea.KeyMsg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	next, _ = next.(GameModel).Update(TickMsg(time.Now()))
	return next.(GameModel)
}

func answerKey(g *triviamaze.Game, correct bool) tea.KeyMsg {
	q := g.Snapshot().Question
	choice := q.Answer
	if !correct {
		choice = (choice + 1) % len(q.Choices)
	}
	return runeKey(string(rune('1' + choice)))
}

func TestGameModelSave(t *testing.T) {
	m, game, store := newTestModel(t)

	m = send(t, m, runeKey("d"))
	m = send(t, m, answerKey(game, true))
	if game.Maze().Player() != (maze.Coord{X: 1, Y: 0}) {
		t.Fatalf("player = %s, expected (1, 0)", game.Maze().Player())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.saveID == "" {
		t.Fatalf("save did not record an ID, status %q", m.status)
	}

	saved, err := store.LoadGame(m.saveID)
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if saved.Mode != "quick" || saved.Maze.Player != game.Maze().Player() {
		t.Errorf("unexpected save: %+v", saved)
	}

	// A second save overwrites the first.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	saves, _ := store.ListSaves(10)
	if len(saves) != 1 {
		t.Errorf("expected 1 save after saving twice, got %d", len(saves))
	}

	if !strings.Contains(m.statusLine(), "Saved as") {
		t.Errorf("status line = %q, expected save notice", m.statusLine())
	}
}

func TestGameModelRecordsScoreOnce(t *testing.T) {
	m, game, store := newTestModel(t)

	m = send(t, m, runeKey("d"))
	m = send(t, m, answerKey(game, false))
	m = send(t, m, runeKey("s"))
	m = send(t, m, answerKey(game, false))
	if !m.gameState.GameOver || m.gameState.Won {
		t.Fatalf("expected a lost game, got %+v", m.gameState)
	}

	// More ticks must not record the score again.
	m = send(t, m, runeKey("d"))
	m = send(t, m, runeKey("d"))

	stats, err := store.GetGameStats("quick")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 1 || stats.Wins != 0 {
		t.Errorf("expected one lost game recorded, got %+v", stats)
	}

	// Saving a finished game is refused.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if saves, _ := store.ListSaves(10); len(saves) != 0 {
		t.Errorf("finished game should not be saved, got %d saves", len(saves))
	}

	// Restart only applies after game over and starts fresh.
	m = send(t, m, runeKey("r"))
	if m.gameState.GameOver || game.Maze().Player() != (maze.Coord{}) {
		t.Error("restart should begin a new game")
	}
}

func TestGameModelBackToMenuAfterGameOver(t *testing.T) {
	m, game, _ := newTestModel(t)

	// Esc during a question only cancels the question.
	m = send(t, m, runeKey("d"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc during play must not leave the game")
	}

	m = send(t, m, runeKey("d"))
	m = send(t, m, answerKey(game, false))
	m = send(t, m, runeKey("s"))
	m = send(t, m, answerKey(game, false))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc after game over should return to the menu")
	}
}

func TestGameModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Trivia Maze") {
		t.Error("view should contain the title")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view has %d lines, expected 25", lines)
	}
}

func TestSavedGameConversion(t *testing.T) {
	d := triviamaze.SaveData{
		Mode:    "classic",
		Maze:    maze.State{Size: 8, Player: maze.Coord{X: 2, Y: 3}},
		Score:   300,
		Correct: 3,
	}
	back := FromSavedGame(ToSavedGame("abc", d))
	if back.Mode != d.Mode || back.Maze.Player != d.Maze.Player || back.Score != 300 || back.Correct != 3 {
		t.Errorf("conversion lost data: %+v", back)
	}
}
