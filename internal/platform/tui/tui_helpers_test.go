package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// layoutSource places mines at the given (row, column) points, cycling on reset.
type layoutSource struct {
	values []int
	next   int
}

func (s *layoutSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func newLayout(points ...[2]int) *layoutSource {
	values := make([]int, 0, len(points)*2)
	for _, p := range points {
		values = append(values, p[0], p[1])
	}
	return &layoutSource{values: values}
}

// Mine at (0,0) walled into a corner with a 3-cell pocket; (8,8) opens everything else.
var scenarioMines = [][2]int{
	{0, 0}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {0, 8}, {8, 0}, {4, 4},
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newScenarioModel returns a game model over the scenario layout with a clock
// that advances one second per reading.
func newScenarioModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	m, err := NewGameModel(store, testConfig(), "tester", nil)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}

	g := minesweeper.New(newLayout(scenarioMines...))
	if err := g.Initialize(0); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	m.game = g

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var tick int
	m.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	m.started = base
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// press feeds keys to a game model and returns the result and the last command.
func press(t *testing.T, m GameModel, keys ...tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T, expected GameModel", next)
		}
		m = gm
	}
	return m, cmd
}

// moveTo walks the cursor to (row, col) with arrow keys.
func moveTo(t *testing.T, m GameModel, row, col int) GameModel {
	t.Helper()
	r, c := m.Cursor()
	for r < row {
		m, _ = press(t, m, typeKey(tea.KeyDown))
		r++
	}
	for r > row {
		m, _ = press(t, m, typeKey(tea.KeyUp))
		r--
	}
	for c < col {
		m, _ = press(t, m, typeKey(tea.KeyRight))
		c++
	}
	for c > col {
		m, _ = press(t, m, typeKey(tea.KeyLeft))
		c--
	}
	if gr, gc := m.Cursor(); gr != row || gc != col {
		t.Fatalf("cursor at (%d,%d), expected (%d,%d)", gr, gc, row, col)
	}
	return m
}

func revealAt(t *testing.T, m GameModel, row, col int) GameModel {
	t.Helper()
	m = moveTo(t, m, row, col)
	m, _ = press(t, m, runeKey(' '))
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
