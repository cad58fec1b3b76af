// Package triviamaze is the game controller around the maze core. Crossing a
// door asks a trivia question; a wrong answer kills the door for good, and the
// game is lost as soon as the goal can no longer be reached.
package triviamaze

import (
	"fmt"

	"github.com/vovakirdan/trivia-maze/internal/config"
	"github.com/vovakirdan/trivia-maze/internal/core"
	"github.com/vovakirdan/trivia-maze/internal/maze"
	"github.com/vovakirdan/trivia-maze/internal/registry"
	"github.com/vovakirdan/trivia-maze/internal/trivia"
)

// Mode selects the maze size.
type Mode string

const (
	ModeClassic Mode = "classic" // size from config, 8x8 by default
	ModeQuick   Mode = "quick"   // fixed 4x4
)

const quickSize = 4

// Phase is the controller state.
type Phase string

const (
	PhaseExploring Phase = "exploring"
	PhaseQuestion  Phase = "question"
	PhaseWon       Phase = "won"
	PhaseLost      Phase = "lost"
)

// crossing is a door the player is trying to pass.
type crossing struct {
	dir      maze.Direction
	edge     maze.Edge
	question trivia.Question
}

// Game implements registry.Game for the trivia maze.
type Game struct {
	mode Mode
	cfg  config.MazeConfig

	maze *maze.Maze
	bank *trivia.Bank

	phase   Phase
	pending *crossing
	// asked pins a question to a door so backing out and retrying does not
	// draw a different one.
	asked  map[maze.Edge]trivia.Question
	opened map[maze.Edge]bool

	score   int
	correct int
	wrong   int
	tick    uint64
	message string

	screenW int
	screenH int
}

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	resume           *SaveData
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetResume makes the next Reset of a matching mode continue a saved game
// instead of starting fresh. The save is consumed by that Reset.
func SetResume(s *SaveData) {
	resume = s
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewQuick creates a quick 4x4 game.
func NewQuick() *Game {
	return &Game{mode: ModeQuick}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeQuick), func() registry.Game {
		return NewQuick()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeQuick {
		return "Trivia Maze (Quick 4x4)"
	}
	return "Trivia Maze"
}

// Reset starts a new game, or resumes a pending save for this mode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.correct = 0
	g.wrong = 0
	g.phase = PhaseExploring
	g.pending = nil
	g.asked = make(map[maze.Edge]trivia.Question)
	g.opened = make(map[maze.Edge]bool)
	g.message = "Reach the exit in the far corner. Every door asks a question."

	g.cfg = g.loadConfig()

	questions, err := config.LoadQuestions(g.cfg.Questions)
	if err != nil {
		g.message = fmt.Sprintf("Question file unusable (%v), using built-in bank.", err)
		questions = mustDefaultQuestions()
	}
	g.bank, _ = trivia.NewBank(questions, cfg.Seed) // Parse already validated every question

	size := g.cfg.Maze.Size
	if g.mode == ModeQuick {
		size = quickSize
	}
	g.maze, _ = maze.New(size) // size is validated by the config loader
	if g.maze.AtGoal() {
		// A 1x1 maze starts on the exit.
		g.phase = PhaseWon
		g.score += g.cfg.Scoring.GoalBonus
		g.message = "The exit is right here. You escaped!"
	}

	if resume != nil && resume.Mode == g.ID() {
		s := resume
		resume = nil
		if err := g.restore(*s); err != nil {
			g.message = fmt.Sprintf("Could not resume save: %v", err)
		} else {
			g.message = "Save loaded. Welcome back."
		}
	}
}

func (g *Game) loadConfig() config.MazeConfig {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		cfg = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&cfg, config.ParsePreset(difficultyPreset))
	}
	return cfg
}

func mustDefaultQuestions() []trivia.Question {
	qs, err := trivia.Parse(config.DefaultQuestionsYAML())
	if err != nil {
		panic(fmt.Sprintf("triviamaze: embedded question bank is invalid: %v", err))
	}
	return qs
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var event string
	switch g.phase {
	case PhaseExploring:
		if d, ok := directionFor(in); ok {
			event = g.tryMove(d)
		}
	case PhaseQuestion:
		event = g.handleAnswer(in)
	}

	if event != "" {
		g.message = event
	}
	return core.StepResult{State: g.State(), Event: event}
}

// directionFor maps movement actions to maze directions.
func directionFor(in core.InputFrame) (maze.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return maze.North, true
	case in.Has(core.ActionDown):
		return maze.South, true
	case in.Has(core.ActionRight):
		return maze.East, true
	case in.Has(core.ActionLeft):
		return maze.West, true
	}
	return 0, false
}

// tryMove attempts to leave the current room in direction d.
func (g *Game) tryMove(d maze.Direction) string {
	from := g.maze.Player()
	st, err := g.maze.DoorState(from, d)
	if err != nil {
		return err.Error()
	}

	switch st {
	case maze.DoorAbsent:
		return fmt.Sprintf("A solid wall blocks the way %s.", d)
	case maze.DoorDead:
		return fmt.Sprintf("The %s door is sealed for good.", d)
	}

	edge := maze.EdgeBetween(from, from.Step(d))
	if g.opened[edge] && !g.cfg.Rules.ReaskOpenedDoors {
		g.maze.Move(d)
		return g.afterMove(d)
	}

	q, ok := g.asked[edge]
	if !ok {
		q = g.bank.Next()
		g.asked[edge] = q
	}
	g.pending = &crossing{dir: d, edge: edge, question: q}
	g.phase = PhaseQuestion
	return fmt.Sprintf("The %s door demands an answer.", d)
}

// handleAnswer resolves the pending question.
func (g *Game) handleAnswer(in core.InputFrame) string {
	if in.Has(core.ActionBack) {
		g.pending = nil
		g.phase = PhaseExploring
		return "You step back from the door."
	}

	choice, ok := answerFor(in)
	if !ok || choice >= len(g.pending.question.Choices) {
		return ""
	}

	p := g.pending
	g.pending = nil
	g.phase = PhaseExploring

	if p.question.Check(choice) {
		g.correct++
		g.score += g.cfg.Scoring.CorrectAnswer
		g.opened[p.edge] = true
		delete(g.asked, p.edge)
		g.maze.Move(p.dir)
		return "Correct! " + g.afterMove(p.dir)
	}

	g.wrong++
	g.score = max(0, g.score-g.cfg.Scoring.WrongAnswer)
	// The door exists and the player has not moved, so this cannot fail.
	_ = g.maze.KillDoor(g.maze.Player(), p.dir)

	if !g.maze.IsGoalReachable() {
		g.phase = PhaseLost
		return fmt.Sprintf("Wrong (it was %q). The exit is now out of reach.", p.question.CorrectChoice())
	}
	return fmt.Sprintf("Wrong (it was %q). The %s door seals shut.", p.question.CorrectChoice(), p.dir)
}

func answerFor(in core.InputFrame) (int, bool) {
	for _, a := range []core.Action{core.ActionAnswer1, core.ActionAnswer2, core.ActionAnswer3, core.ActionAnswer4} {
		if in.Has(a) {
			return a.AnswerIndex()
		}
	}
	return 0, false
}

// afterMove checks for the goal once the player has entered a new room.
func (g *Game) afterMove(d maze.Direction) string {
	if g.maze.AtGoal() {
		g.phase = PhaseWon
		g.score += g.cfg.Scoring.GoalBonus
		return "You found the exit!"
	}
	return fmt.Sprintf("You move %s to %s.", d, g.maze.Player())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseWon || g.phase == PhaseLost,
		Won:      g.phase == PhaseWon,
	}
}

// Maze exposes the underlying maze for read-only queries.
func (g *Game) Maze() *maze.Maze {
	return g.maze
}
