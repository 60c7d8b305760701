package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// statusLines is the room below the board for the status and message lines.
const statusLines = 3

// GameModel is the Bubble Tea model for one board.
type GameModel struct {
	game      *minesweeper.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	keyMapper *KeyMapper
	help      help.Model

	cursorRow int
	cursorCol int
	message   string

	started  time.Time
	finished time.Time
	now      func() time.Time
	tickID   int
	recorded bool

	quitting   bool
	backToMenu bool
}

// NewGameModel starts a game at cfg.Difficulty. A zero cfg.Seed uses the current time.
func NewGameModel(store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := minesweeper.New(rand.New(rand.NewSource(cfg.Seed)))
	if err := game.Initialize(cfg.Difficulty); err != nil {
		return GameModel{}, fmt.Errorf("tui: start game: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		store:     store,
		logger:    logger,
		config:    cfg,
		player:    player,
		keyMapper: NewKeyMapper(),
		help:      h,
		cursorRow: game.Rows() / 2,
		cursorCol: game.Columns() / 2,
		now:       time.Now,
	}
	m.started = m.now()
	return m, nil
}

// Init starts the timer.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// Stale ticks from a previous board end their chain here.
		if msg.ID != m.tickID || m.game.State().Over() {
			return m, nil
		}
		return m, tickCmd(m.tickID)
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dr, dc := action.Delta()
		m.cursorRow = core.Clamp(m.cursorRow+dr, 0, m.game.Rows()-1)
		m.cursorCol = core.Clamp(m.cursorCol+dc, 0, m.game.Columns()-1)

	case core.ActionReveal:
		m.reveal()

	case core.ActionRestart:
		return m.restart()

	case core.ActionBack:
		m.backToMenu = true
	}

	return m, nil
}

func (m *GameModel) reveal() {
	if m.game.State().Over() {
		return
	}

	result := m.game.SelectCell(m.cursorRow, m.cursorCol)
	m.logger.Debug("select", "row", m.cursorRow, "column", m.cursorCol, "result", result)

	switch result {
	case minesweeper.SelectInvalid:
		m.message = "Already revealed."
	case minesweeper.SelectUpdated:
		m.message = ""
	case minesweeper.SelectExploded:
		m.message = "Boooom!!! You lose."
		m.finish()
	case minesweeper.SelectWon:
		m.message = "Congratulations. You win."
		m.finish()
	}
}

func (m GameModel) restart() (tea.Model, tea.Cmd) {
	if err := m.game.Reset(); err != nil {
		m.message = err.Error()
		return m, nil
	}
	m.logger.Debug("board reset", "difficulty", m.game.Difficulty())

	m.message = ""
	m.recorded = false
	m.started = m.now()
	m.finished = time.Time{}
	m.tickID++
	return m, tickCmd(m.tickID)
}

// finish stops the clock and records the result once.
func (m *GameModel) finish() {
	m.finished = m.now()
	if m.recorded {
		return
	}
	m.recorded = true

	snap := m.game.Snapshot()
	elapsed := m.Elapsed()
	m.logger.Info("game over", "player", m.player, "state", snap.State,
		"difficulty", minesweeper.Difficulty(snap.Difficulty), "moves", snap.Moves, "elapsed", elapsed.Round(time.Millisecond))

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Player:     m.player,
		Difficulty: snap.Difficulty,
		Won:        snap.State == minesweeper.StateWon,
		Moves:      snap.Moves,
		Revealed:   snap.Revealed,
		Duration:   elapsed,
	})
	if err != nil {
		m.logger.Warn("could not record result", "error", err)
	}
}

// Elapsed returns the time spent on the current board, frozen once it ends.
func (m GameModel) Elapsed() time.Duration {
	end := m.finished
	if end.IsZero() {
		end = m.now()
	}
	return end.Sub(m.started)
}

// View renders the board, status and help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	bw, bh := BoardSize(snap.Rows, snap.Columns)
	status := m.statusLine(snap)
	w := max(bw, len(status), len(m.message))

	m.screen.Clear()
	area := core.NewRect(0, 0, m.screen.Width(), m.screen.Height()).Centered(w, bh+statusLines)

	DrawBoard(m.screen, area.X+(w-bw)/2, area.Y, BoardView{
		Snap:       snap,
		CursorRow:  m.cursorRow,
		CursorCol:  m.cursorCol,
		ShowCursor: !snap.State.Over(),
		Palette:    m.config.Palette,
	})
	m.screen.DrawTextColor(area.X+(w-len(status))/2, area.Y+bh+1, status, core.ColorGray)
	if m.message != "" {
		c := core.ColorBrightWhite
		switch snap.State {
		case minesweeper.StateLost:
			c = m.config.Palette.Mine
		case minesweeper.StateWon:
			c = core.ColorBrightGreen
		}
		m.screen.DrawTextColor(area.X+(w-len(m.message))/2, area.Y+bh+2, m.message, c)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpLine := helpStyle.Render(centerText(m.help.View(m.keyMapper.Keys()), m.config.ScreenW))
	return RenderScreen(m.screen) + "\n" + helpLine
}

func (m GameModel) statusLine(snap minesweeper.Snapshot) string {
	parts := []string{
		minesweeper.Difficulty(snap.Difficulty).String(),
		fmt.Sprintf("mines %d", snap.MineCount),
		fmt.Sprintf("left %d", snap.Remaining),
		fmt.Sprintf("moves %d", snap.Moves),
	}
	if m.config.ShowTimer {
		parts = append(parts, fmt.Sprintf("time %ds", int(m.Elapsed().Seconds())))
	}
	return strings.Join(parts, "  ")
}

// Snapshot returns the current game snapshot.
func (m GameModel) Snapshot() minesweeper.Snapshot {
	return m.game.Snapshot()
}

// Cursor returns the cursor position as (row, column).
func (m GameModel) Cursor() (int, int) {
	return m.cursorRow, m.cursorCol
}

// Message returns the line shown under the board.
func (m GameModel) Message() string {
	return m.message
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
