package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trivia-maze/internal/registry"
	"github.com/vovakirdan/trivia-maze/internal/storage"
)

const (
	boardScores    = 100
	boardChrome    = 10 // title, tabs, stats box, help
	boardMinHeight = 3
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	escapedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	trappedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Escapes key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Escapes, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Escapes, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Escapes: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "escapes only")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs per mode with a summary of all
// recorded games.
type ScoreboardModel struct {
	modes []registry.GameInfo
	mode  int
	store *storage.Store

	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	escapesOnly bool

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
	standalone    bool // back quits the program
}

// NewScoreboardModel builds the scoreboard and loads the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	m.reload()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Result", Width: 8},
			{Title: "Played", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-boardChrome, boardMinHeight)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// selected returns the mode on screen, or false when nothing is registered.
func (m ScoreboardModel) selected() (registry.GameInfo, bool) {
	if len(m.modes) == 0 {
		return registry.GameInfo{}, false
	}
	return m.modes[m.mode], true
}

// reload reads the selected mode from the store. Read errors leave the
// board empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	mode, ok := m.selected()
	if ok && m.store != nil {
		if scores, err := m.store.TopScores(mode.ID, boardScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(mode.ID); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for _, s := range m.scores {
		if m.escapesOnly && !s.Won {
			continue
		}
		result := "trapped"
		if s.Won {
			result = "escaped"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", len(rows)+1),
			fmt.Sprintf("%d", s.Score),
			result,
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Escapes):
			m.escapesOnly = !m.escapesOnly
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-boardChrome, boardMinHeight))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.escapesOnly {
		title += " (escapes only)"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		boardPanelStyle.Render(m.tableView()),
		"  ",
		boardPanelStyle.Render(m.statsView()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render(title),
		"",
		m.tabsView(),
		"",
		body,
		boardHelpStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) tabsView() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveTab.Render(mode.Title)
		} else {
			tabs[i] = boardTabStyle.Render(mode.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) tableView() string {
	if len(m.table.Rows()) == 0 {
		if m.escapesOnly {
			return boardEmptyStyle.Render("Nobody has escaped yet.")
		}
		return boardEmptyStyle.Render("No games recorded yet.\nFinish a maze to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardEmptyStyle.Render("No stats")
	}
	rate := float64(m.stats.Wins) / float64(m.stats.GamesCount) * 100

	var b strings.Builder
	fmt.Fprintf(&b, "Games    %d\n", m.stats.GamesCount)
	fmt.Fprintf(&b, "Escaped  %s\n", escapedStyle.Render(fmt.Sprintf("%d", m.stats.Wins)))
	fmt.Fprintf(&b, "Trapped  %s\n", trappedStyle.Render(fmt.Sprintf("%d", m.stats.GamesCount-m.stats.Wins)))
	fmt.Fprintf(&b, "Rate     %.0f%%\n", rate)
	fmt.Fprintf(&b, "Best     %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Average  %.0f\n", m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last     %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return b.String()
}

// IsGoingBack reports whether the user left with back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program. It reports whether
// the user left with back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	model := NewScoreboardModel(store, width, height)
	model.standalone = true

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
