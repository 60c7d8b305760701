package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
)

// MenuItem represents a selectable difficulty.
type MenuItem struct {
	Difficulty minesweeper.Difficulty
	Mines      int
}

// Title returns the label shown in the menu.
func (i MenuItem) Title() string {
	return fmt.Sprintf("%d  %-6s  %2d mines", int(i.Difficulty), strings.ToUpper(i.Difficulty.String()), i.Mines)
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects a difficulty
	openStats bool      // True if user pressed Tab for stats
}

// NewMenuModel creates a new menu model with the cursor on cfg.Difficulty.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	levels := minesweeper.Difficulties()
	items := make([]MenuItem, 0, len(levels))
	for _, d := range levels {
		items = append(items, MenuItem{
			Difficulty: d,
			Mines:      minesweeper.MineCountFor(minesweeper.Rows, int(d)),
		})
	}

	return MenuModel{
		items:     items,
		cursor:    core.Clamp(cfg.Difficulty, 0, len(items)-1),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits pick a difficulty directly, like the text prompt.
	if d, err := minesweeper.ParseDifficulty(msg.String()); err == nil && len(msg.String()) == 1 {
		m.cursor = int(d)
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected

	case MenuActionStats:
		m.openStats = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("***********"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Minesweeper"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("***********"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(fmt.Sprintf("Choose a difficulty (%d×%d board)", minesweeper.Rows, minesweeper.Columns), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title()
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Stats  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the stats screen.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// centerText centers text within given width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
