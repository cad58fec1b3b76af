package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trivia-maze/internal/core"
	"github.com/vovakirdan/trivia-maze/internal/registry"
	"github.com/vovakirdan/trivia-maze/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	saveID      string // ID of the last save, reused so repeated saves overwrite
	status      string
	statusUntil time.Time

	quitting   bool
	backToMenu bool
	exitOnBack bool // Set when there is no menu to return to
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewGameModel creates a model for the given game. The game is Reset in
// Init, so any resume data must be set before the program starts.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithSaveID makes the first save overwrite an existing save.
func (m GameModel) WithSaveID(id string) GameModel {
	m.saveID = id
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The maze does not depend on the terminal size, so a resize only
		// reallocates the buffer.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)

	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionSave:
		m.save()
		return m, nil
	case action == core.ActionBack && m.gameState.GameOver:
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.saveID = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Event != "" {
		m.logger.Debug("game event", "mode", m.game.ID(), "event", result.Event)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *GameModel) recordScore() {
	m.logger.Info("game over", "mode", m.game.ID(), "score", m.gameState.Score, "won", m.gameState.Won)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Won); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	// A finished game has nothing left to resume.
	if m.saveID != "" {
		if err := m.store.DeleteSave(m.saveID); err != nil {
			m.logger.Warn("could not delete finished save", "id", m.saveID, "error", err)
		}
		m.saveID = ""
	}
}

// save persists the current game if the game supports it.
func (m *GameModel) save() {
	saver, ok := m.game.(Saver)
	switch {
	case !ok:
		m.setStatus("This mode cannot be saved.")
		return
	case !saver.CanSave():
		m.setStatus("Nothing to save: the game is over.")
		return
	case m.store == nil:
		m.setStatus("Saving is unavailable without a database.")
		return
	}

	id, err := m.store.SaveGame(ToSavedGame(m.saveID, saver.SaveData()))
	if err != nil {
		m.logger.Error("save failed", "mode", m.game.ID(), "error", err)
		m.setStatus("Save failed: " + err.Error())
		return
	}
	m.saveID = id
	m.logger.Info("game saved", "mode", m.game.ID(), "id", id)
	m.setStatus(fmt.Sprintf("Saved as %s", id))
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusTTL)
}

// statusLine returns the text for the bar under the game.
func (m GameModel) statusLine() string {
	if m.status != "" && time.Now().Before(m.statusUntil) {
		return m.status
	}
	if m.saveID != "" {
		return fmt.Sprintf("%s  save %s", m.game.Title(), m.saveID)
	}
	return m.game.Title()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderStatusBar(m.statusLine(), m.config.ScreenW)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, saveID string) error {
	model := NewGameModel(game, store, cfg, logger).WithSaveID(saveID)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
