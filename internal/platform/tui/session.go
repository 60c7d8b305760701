package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenStats
)

// SessionModel manages the full session flow: menu -> game -> menu, with a stats screen.
// This is the top-level model for both local and SSH play.
type SessionModel struct {
	store        *storage.Store
	config       core.RuntimeConfig
	player       string
	logger       *log.Logger
	screen       sessionScreen
	menu         MenuModel
	game         *GameModel
	stats        ScoreboardModel
	gamesStarted int
	err          string
	quitting     bool
}

// NewSessionModel creates a session that opens on the difficulty menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		config: cfg,
		player: player,
		logger: logger,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsStats() {
		m.stats = NewScoreboardModel(m.store, m.menu.cursor, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenStats
		return m, m.stats.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		cfg := m.config
		cfg.Difficulty = int(selected.Difficulty)
		if cfg.Seed != 0 {
			// Successive boards of a seeded session differ but stay reproducible.
			cfg.Seed += int64(m.gamesStarted)
		}

		game, err := NewGameModel(m.store, cfg, m.player, m.logger)
		if err != nil {
			m.logger.Error("could not start game", "error", err)
			m.err = err.Error()
			m.menu = NewMenuModel(m.config)
			return m, nil
		}
		m.gamesStarted++
		m.err = ""
		m.config.Difficulty = cfg.Difficulty
		m.game = &game
		m.screen = screenGame
		m.logger.Debug("game started", "difficulty", selected.Difficulty, "seed", cfg.Seed)
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newStats, cmd := m.stats.Update(msg)
	if statsModel, ok := newStats.(ScoreboardModel); ok {
		m.stats = statsModel
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stats.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenStats:
		return m.stats.View()
	}

	if m.err != "" {
		return m.menu.View() + "\n" + centerText("error: "+m.err, m.config.ScreenW)
	}
	return m.menu.View()
}

// InGame reports whether a board is on screen.
func (m SessionModel) InGame() bool {
	return m.screen == screenGame
}

// InStats reports whether the stats screen is on screen.
func (m SessionModel) InStats() bool {
	return m.screen == screenStats
}

// Game returns the active board model, or nil outside a game.
func (m SessionModel) Game() *GameModel {
	return m.game
}

// GamesStarted returns how many boards this session has opened.
func (m SessionModel) GamesStarted() int {
	return m.gamesStarted
}

// Run starts a local session in the alternate screen and blocks until it quits.
func Run(store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewSessionModel(store, cfg, player, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
