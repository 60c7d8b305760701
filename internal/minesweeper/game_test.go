package minesweeper

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioGame(t *testing.T) *Game {
	t.Helper()
	g := New(layoutSource(scenarioMines...))
	require.NoError(t, g.Initialize(0))
	require.Equal(t, StatePlaying, g.State())
	return g
}

func TestScenarioCascadeThenExplode(t *testing.T) {
	g := newScenarioGame(t)

	require.Equal(t, SelectUpdated, g.SelectCell(8, 8))
	assert.Equal(t, 0, g.LastOutcome().Adjacent)

	snap := g.Snapshot()
	assert.Equal(t, SymbolEmpty, snap.Symbol(8, 8))
	assert.Equal(t, 3, snap.Remaining)
	assert.Equal(t, 69, snap.Revealed)
	assert.Equal(t, SymbolHidden, snap.Symbol(0, 0), "mines stay hidden while playing")

	assert.Equal(t, SelectExploded, g.SelectCell(0, 0))
	assert.Equal(t, StateLost, g.State())
	assert.False(t, g.HasWon())
}

func TestSelectOutOfBounds(t *testing.T) {
	g := newScenarioGame(t)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}} {
		assert.Equal(t, SelectInvalid, g.SelectCell(p[0], p[1]), "%v", p)
	}
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.Moves())
}

func TestSelectRevealedCellIsInvalid(t *testing.T) {
	g := newScenarioGame(t)

	require.Equal(t, SelectUpdated, g.SelectCell(3, 3))
	before := g.Snapshot()

	assert.Equal(t, SelectInvalid, g.SelectCell(3, 3))
	assert.Equal(t, SelectInvalid, g.SelectCell(3, 3))
	assert.Equal(t, before, g.Snapshot())
}

func TestLossIsTerminal(t *testing.T) {
	g := newScenarioGame(t)

	require.Equal(t, SelectExploded, g.SelectCell(0, 0))
	before := g.Snapshot()

	for _, p := range [][2]int{{8, 8}, {0, 1}, {3, 3}, {0, 0}} {
		assert.Equal(t, SelectInvalid, g.SelectCell(p[0], p[1]))
	}
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, StateLost, g.State())
}

func TestLossExposesAllMines(t *testing.T) {
	g := newScenarioGame(t)
	g.SelectCell(0, 0)

	snap := g.Snapshot()
	for _, p := range scenarioMines {
		assert.Equal(t, SymbolMine, snap.Symbol(p[0], p[1]), "mine %v", p)
	}
	assert.Equal(t, SymbolHidden, snap.Symbol(5, 5))
}

func TestWinTransition(t *testing.T) {
	g := newScenarioGame(t)

	require.Equal(t, SelectUpdated, g.SelectCell(8, 8))
	require.Equal(t, SelectUpdated, g.SelectCell(0, 1))
	require.Equal(t, SelectUpdated, g.SelectCell(1, 0))
	assert.False(t, g.HasWon())

	assert.Equal(t, SelectWon, g.SelectCell(1, 1))
	assert.True(t, g.HasWon())
	assert.Equal(t, StateWon, g.State())
	assert.Equal(t, 4, g.Moves())

	// No further changes after the win.
	assert.Equal(t, SelectInvalid, g.SelectCell(0, 0))
	assert.Equal(t, StateWon, g.State())
}

func TestInitializeInvalidDifficultyCreatesNothing(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))

	err := g.Initialize(3)
	require.ErrorIs(t, err, ErrInvalidDifficulty)
	assert.Equal(t, StateIdle, g.State())
	assert.Nil(t, g.Snapshot().Board)
	assert.Equal(t, SelectInvalid, g.SelectCell(0, 0))
	assert.ErrorIs(t, g.Reset(), ErrNotInitialized)
}

func TestInitializeInvalidDifficultyKeepsRunningGame(t *testing.T) {
	g := newScenarioGame(t)
	g.SelectCell(3, 3)
	before := g.Snapshot()

	require.ErrorIs(t, g.Initialize(-1), ErrInvalidDifficulty)
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, StatePlaying, g.State())
}

func TestResetKeepsDifficulty(t *testing.T) {
	g := New(rand.New(rand.NewSource(99)))
	require.NoError(t, g.Initialize(2))

	// Lose or win quickly is not guaranteed with a random layout; just play one cell.
	g.SelectCell(4, 4)
	require.NoError(t, g.Reset())

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 2, snap.Difficulty)
	assert.Equal(t, 15, snap.MineCount)
	assert.Equal(t, 0, snap.Moves)
	assert.Equal(t, 81-15, snap.Remaining)
}

func TestResetAfterLoss(t *testing.T) {
	g := newScenarioGame(t)
	g.SelectCell(0, 0)
	require.Equal(t, StateLost, g.State())

	// The scripted source cycles, so the same layout comes back.
	require.NoError(t, g.Reset())
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, SelectUpdated, g.SelectCell(8, 8))
	assert.Equal(t, 3, g.Snapshot().Remaining)
}

func TestDeterministicLayouts(t *testing.T) {
	g1 := New(rand.New(rand.NewSource(12345)))
	g2 := New(rand.New(rand.NewSource(12345)))
	require.NoError(t, g1.Initialize(1))
	require.NoError(t, g2.Initialize(1))

	moves := [][2]int{{4, 4}, {0, 0}, {8, 8}, {2, 6}, {6, 2}}
	for _, m := range moves {
		r1 := g1.SelectCell(m[0], m[1])
		r2 := g2.SelectCell(m[0], m[1])
		assert.Equal(t, r1, r2, "move %v", m)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestNewWithSize(t *testing.T) {
	g, err := NewWithSize(5, 7, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.NoError(t, g.Initialize(1))

	snap := g.Snapshot()
	assert.Equal(t, 5, snap.Rows)
	assert.Equal(t, 7, snap.Columns)
	assert.Equal(t, 8, snap.MineCount)
	require.Len(t, snap.Board, 5)
	assert.Len(t, snap.Board[0], 7)

	_, err = NewWithSize(0, 7, rand.New(rand.NewSource(3)))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewWithSize(5, 7, nil)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newScenarioGame(t)
	snap := g.Snapshot()
	snap.Board[8][8] = "X"

	assert.Equal(t, SymbolHidden, g.Snapshot().Symbol(8, 8))
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"0", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"2", DifficultyHard, false},
		{"3", 0, true},
		{"insane", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDifficulty(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Valid())
		})
	}

	assert.Equal(t, "hard", DifficultyHard.String())
	assert.False(t, Difficulty(3).Valid())
}
