package triviamaze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/trivia-maze/internal/core"
	"github.com/vovakirdan/trivia-maze/internal/maze"
)

func newQuickGame(t *testing.T) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	SetResume(nil)

	g := NewQuick()
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})
	return g
}

func press(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func answerAction(i int) core.Action {
	return core.ActionAnswer1 + core.Action(i)
}

// answer resolves the pending question, correctly or not.
func answer(t *testing.T, g *Game, correct bool) core.StepResult {
	t.Helper()
	snap := g.Snapshot()
	if snap.Question == nil {
		t.Fatalf("expected a pending question in phase %s", snap.Phase)
	}
	choice := snap.Question.Answer
	if !correct {
		choice = (choice + 1) % len(snap.Question.Choices)
	}
	return press(g, answerAction(choice))
}

var actionFor = map[maze.Direction]core.Action{
	maze.North: core.ActionUp,
	maze.South: core.ActionDown,
	maze.East:  core.ActionRight,
	maze.West:  core.ActionLeft,
}

// cross tries to move d and answers the door's question.
func cross(t *testing.T, g *Game, d maze.Direction, correct bool) core.StepResult {
	t.Helper()
	press(g, actionFor[d])
	if g.phase != PhaseQuestion {
		t.Fatalf("moving %s: phase = %s, expected question", d, g.phase)
	}
	return answer(t, g, correct)
}

func TestRegisteredModes(t *testing.T) {
	if g := New(); g.ID() != "classic" {
		t.Errorf("New().ID() = %q, expected classic", g.ID())
	}
	if g := NewQuick(); g.ID() != "quick" {
		t.Errorf("NewQuick().ID() = %q, expected quick", g.ID())
	}
}

func TestSingleRoomMazeIsWonAtStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("maze:\n  size: 1\nscoring:\n  goal_bonus: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	SetResume(nil)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	if !g.Maze().AtGoal() {
		t.Fatal("player should start on the goal in a 1x1 maze")
	}

	for range 5 {
		g.Step(core.NewInputFrame())
	}
	st := g.State()
	if g.phase != PhaseWon || !st.GameOver || !st.Won {
		t.Errorf("phase = %s, state = %+v, expected a won game", g.phase, st)
	}
	if st.Score != 500 {
		t.Errorf("Score = %d, expected the goal bonus 500", st.Score)
	}
}

func TestResetSizes(t *testing.T) {
	g := newQuickGame(t)
	if g.Maze().Size() != quickSize {
		t.Errorf("quick size = %d, expected %d", g.Maze().Size(), quickSize)
	}

	c := New()
	c.Reset(core.RuntimeConfig{Seed: 1})
	if c.Maze().Size() != maze.DefaultSize {
		t.Errorf("classic size = %d, expected %d", c.Maze().Size(), maze.DefaultSize)
	}
	if c.Maze().Player() != c.Maze().Start() {
		t.Error("player should begin at the start room")
	}
}

func TestMoveAsksQuestion(t *testing.T) {
	g := newQuickGame(t)

	press(g, core.ActionRight)
	if g.phase != PhaseQuestion {
		t.Fatalf("phase = %s, expected question", g.phase)
	}
	if g.Maze().Player() != (maze.Coord{}) {
		t.Error("player must not move before answering")
	}

	// Movement keys are ignored while a question is pending.
	press(g, core.ActionDown)
	if g.pending == nil || g.pending.dir != maze.East {
		t.Error("pending crossing should still be East")
	}
}

func TestQuestionsDrawFromDeck(t *testing.T) {
	g := newQuickGame(t)
	full := g.Snapshot().DeckLeft
	if full != g.bank.Len() {
		t.Fatalf("DeckLeft = %d on a fresh game, expected %d", full, g.bank.Len())
	}

	press(g, core.ActionRight)
	if got := g.Snapshot().DeckLeft; got != full-1 {
		t.Errorf("DeckLeft = %d after one question, expected %d", got, full-1)
	}

	// Backing out and retrying reuses the pinned question.
	press(g, core.ActionBack)
	press(g, core.ActionRight)
	if got := g.Snapshot().DeckLeft; got != full-1 {
		t.Errorf("DeckLeft = %d after retrying the same door, expected %d", got, full-1)
	}
}

func TestWallBlocksWithoutQuestion(t *testing.T) {
	g := newQuickGame(t)

	res := press(g, core.ActionUp)
	if g.phase != PhaseExploring {
		t.Errorf("phase = %s, expected exploring after hitting a wall", g.phase)
	}
	if !strings.Contains(res.Event, "wall") {
		t.Errorf("event = %q, expected a wall message", res.Event)
	}
}

func TestCorrectAnswerMovesAndScores(t *testing.T) {
	g := newQuickGame(t)

	cross(t, g, maze.East, true)

	if g.Maze().Player() != (maze.Coord{X: 1, Y: 0}) {
		t.Errorf("player = %s, expected (1, 0)", g.Maze().Player())
	}
	if g.score != g.cfg.Scoring.CorrectAnswer || g.correct != 1 {
		t.Errorf("score=%d correct=%d after one correct answer", g.score, g.correct)
	}
	if g.phase != PhaseExploring {
		t.Errorf("phase = %s, expected exploring", g.phase)
	}
}

func TestWrongAnswerKillsDoor(t *testing.T) {
	g := newQuickGame(t)

	cross(t, g, maze.East, false)

	if g.Maze().Player() != (maze.Coord{}) {
		t.Error("player must stay put after a wrong answer")
	}
	st, _ := g.Maze().DoorState(maze.Coord{}, maze.East)
	if st != maze.DoorDead {
		t.Errorf("east door = %s, expected dead", st)
	}
	if g.wrong != 1 || g.score != 0 {
		t.Errorf("wrong=%d score=%d, score must not drop below zero", g.wrong, g.score)
	}

	// A dead door refuses without asking.
	press(g, core.ActionRight)
	if g.phase != PhaseExploring {
		t.Errorf("phase = %s after retrying a dead door", g.phase)
	}
}

func TestWrongAnswerPenaltyFloor(t *testing.T) {
	g := newQuickGame(t)
	cross(t, g, maze.East, true)
	cross(t, g, maze.East, false)

	expected := max(0, g.cfg.Scoring.CorrectAnswer-g.cfg.Scoring.WrongAnswer)
	if g.score != expected {
		t.Errorf("score = %d, expected %d", g.score, expected)
	}
}

func TestLoseWhenStartSealed(t *testing.T) {
	g := newQuickGame(t)

	cross(t, g, maze.East, false)
	if g.State().GameOver {
		t.Fatal("game should continue while the south door is open")
	}

	res := cross(t, g, maze.South, false)
	if g.phase != PhaseLost {
		t.Fatalf("phase = %s, expected lost", g.phase)
	}
	if !res.State.GameOver || res.State.Won {
		t.Errorf("state = %+v, expected lost game over", res.State)
	}

	// Input is ignored once the game is over.
	press(g, core.ActionRight)
	if g.phase != PhaseLost {
		t.Error("lost game should stay lost")
	}
}

func TestWinAlongTheEdge(t *testing.T) {
	g := newQuickGame(t)

	for i := 0; i < quickSize-1; i++ {
		cross(t, g, maze.East, true)
	}
	for i := 0; i < quickSize-1; i++ {
		cross(t, g, maze.South, true)
	}

	if g.phase != PhaseWon {
		t.Fatalf("phase = %s, expected won", g.phase)
	}
	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("state = %+v, expected won game over", st)
	}
	moves := 2 * (quickSize - 1)
	expected := moves*g.cfg.Scoring.CorrectAnswer + g.cfg.Scoring.GoalBonus
	if st.Score != expected {
		t.Errorf("score = %d, expected %d", st.Score, expected)
	}
}

func TestBackOutKeepsQuestionPinned(t *testing.T) {
	g := newQuickGame(t)

	press(g, core.ActionRight)
	first := g.Snapshot().Question.ID

	press(g, core.ActionBack)
	if g.phase != PhaseExploring || g.pending != nil {
		t.Fatal("back should cancel the pending question")
	}

	// Asking another door draws a new question.
	press(g, core.ActionDown)
	press(g, core.ActionBack)

	press(g, core.ActionRight)
	if got := g.Snapshot().Question.ID; got != first {
		t.Errorf("east door asked %q, expected pinned %q", got, first)
	}
}

func TestOpenedDoorIsFreeToCrossBack(t *testing.T) {
	g := newQuickGame(t)

	cross(t, g, maze.East, true)
	score := g.score

	// The door between (0,0) and (1,0) is now open for free.
	press(g, core.ActionLeft)
	if g.phase != PhaseExploring {
		t.Fatalf("phase = %s, expected free crossing", g.phase)
	}
	if g.Maze().Player() != (maze.Coord{}) {
		t.Errorf("player = %s, expected back at start", g.Maze().Player())
	}
	if g.score != score {
		t.Error("a free crossing must not change the score")
	}
}

func TestHardModeReasksOpenedDoors(t *testing.T) {
	g := newQuickGame(t)
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")
	g.Reset(core.RuntimeConfig{Seed: 7})

	cross(t, g, maze.East, true)
	press(g, core.ActionLeft)
	if g.phase != PhaseQuestion {
		t.Errorf("phase = %s, hard mode should ask again", g.phase)
	}
}

func TestSaveAndResume(t *testing.T) {
	g := newQuickGame(t)
	cross(t, g, maze.East, true)
	cross(t, g, maze.South, false)

	if !g.CanSave() {
		t.Fatal("an exploring game should be saveable")
	}
	save := g.SaveData()

	SetResume(&save)
	defer SetResume(nil)
	r := NewQuick()
	r.Reset(core.RuntimeConfig{Seed: 99})

	if r.Maze().Player() != g.Maze().Player() {
		t.Errorf("player = %s, expected %s", r.Maze().Player(), g.Maze().Player())
	}
	if r.score != g.score || r.correct != 1 || r.wrong != 1 {
		t.Errorf("counters not restored: score=%d correct=%d wrong=%d", r.score, r.correct, r.wrong)
	}
	st, _ := r.Maze().DoorState(maze.Coord{X: 1, Y: 0}, maze.South)
	if st != maze.DoorDead {
		t.Errorf("south door of (1, 0) = %s, expected dead", st)
	}

	// The opened door is still free.
	press(r, core.ActionLeft)
	if r.phase != PhaseExploring || r.Maze().Player() != (maze.Coord{}) {
		t.Error("opened door should survive a save")
	}

	// The save is consumed.
	r.Reset(core.RuntimeConfig{Seed: 99})
	if r.score != 0 {
		t.Error("second Reset should start fresh")
	}
}

func TestResumeIgnoresOtherMode(t *testing.T) {
	g := newQuickGame(t)
	save := g.SaveData()

	SetResume(&save)
	defer SetResume(nil)
	c := New()
	c.Reset(core.RuntimeConfig{Seed: 1})
	if c.Maze().Size() != maze.DefaultSize {
		t.Error("a quick save must not resume a classic game")
	}
	if resume == nil {
		t.Error("a save for another mode should not be consumed")
	}
}

func TestRestoreLostSave(t *testing.T) {
	g := newQuickGame(t)
	cross(t, g, maze.East, false)
	cross(t, g, maze.South, false)

	r := NewQuick()
	r.Reset(core.RuntimeConfig{Seed: 1})
	if err := r.restore(g.SaveData()); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if r.phase != PhaseLost {
		t.Errorf("phase = %s, expected lost", r.phase)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newQuickGame(t)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "@") {
		t.Error("map should show the player")
	}

	press(g, core.ActionRight)
	scr.Clear()
	g.Render(scr)
	q := g.Snapshot().Question
	if !strings.Contains(scr.String(), q.Choices[0]) {
		t.Error("question panel should list the choices")
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected a too-small notice")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("the quick brown fox jumps", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q longer than 10", l)
		}
	}
	if strings.Join(lines, " ") != "the quick brown fox jumps" {
		t.Errorf("wrap lost words: %v", lines)
	}
}
