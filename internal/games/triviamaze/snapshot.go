package triviamaze

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/trivia-maze/internal/maze"
	"github.com/vovakirdan/trivia-maze/internal/trivia"
)

// Snapshot captures the controller state for tests and the platform.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Phase    Phase
	Score    int
	Correct  int
	Wrong    int
	Player   maze.Coord
	Question *trivia.Question // Pending question, nil when exploring
	DeckLeft int              // Questions left before the bank reshuffles
	Message  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Phase:    g.phase,
		Score:    g.score,
		Correct:  g.correct,
		Wrong:    g.wrong,
		Player:   g.maze.Player(),
		DeckLeft: g.bank.Remaining(),
		Message:  g.message,
	}
	if g.pending != nil {
		q := g.pending.question
		s.Question = &q
	}
	return s
}

// SaveData is everything needed to resume a game. Pending questions are
// not saved; a resumed game starts in the exploring phase.
type SaveData struct {
	Mode    string
	Maze    maze.State
	Opened  []maze.Edge
	Score   int
	Correct int
	Wrong   int
}

// CanSave reports whether the game is in a state worth saving.
func (g *Game) CanSave() bool {
	return g.phase == PhaseExploring || g.phase == PhaseQuestion
}

// SaveData exports the current game.
func (g *Game) SaveData() SaveData {
	opened := make([]maze.Edge, 0, len(g.opened))
	for e := range g.opened {
		opened = append(opened, e)
	}
	sort.Slice(opened, func(i, j int) bool {
		return opened[i].String() < opened[j].String()
	})

	return SaveData{
		Mode:    string(g.mode),
		Maze:    g.maze.State(),
		Opened:  opened,
		Score:   g.score,
		Correct: g.correct,
		Wrong:   g.wrong,
	}
}

// restore replaces the current maze and counters with a save.
func (g *Game) restore(s SaveData) error {
	if s.Mode != string(g.mode) {
		return fmt.Errorf("save is for mode %q, not %q", s.Mode, g.mode)
	}
	m, err := maze.Restore(s.Maze)
	if err != nil {
		return err
	}

	g.maze = m
	g.score = s.Score
	g.correct = s.Correct
	g.wrong = s.Wrong
	g.opened = make(map[maze.Edge]bool, len(s.Opened))
	for _, e := range s.Opened {
		g.opened[maze.EdgeBetween(e.A, e.B)] = true
	}

	switch {
	case m.AtGoal():
		g.phase = PhaseWon
	case !m.IsGoalReachable():
		g.phase = PhaseLost
	default:
		g.phase = PhaseExploring
	}
	return nil
}
