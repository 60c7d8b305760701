package minesweeper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed sequence of values, cycling when exhausted.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// layoutSource places mines at exactly the given (row, column) points.
func layoutSource(points ...[2]int) *scriptedSource {
	values := make([]int, 0, len(points)*2)
	for _, p := range points {
		values = append(values, p[0], p[1])
	}
	return &scriptedSource{values: values}
}

// scenarioMines is a 9-mine layout: a mine at (0,0) walled into the top-left corner
// with a 3-cell safe pocket, and no mine next to (8,8).
var scenarioMines = [][2]int{
	{0, 0}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {0, 8}, {8, 0}, {4, 4},
}

var scenarioPocket = [][2]int{{0, 1}, {1, 0}, {1, 1}}

func newScenarioBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(Rows, Columns, layoutSource(scenarioMines...))
	require.NoError(t, err)
	require.NoError(t, b.Initialize(0))
	return b
}

func countMines(b *Board) int {
	n := 0
	for x := range b.Rows() {
		for y := range b.Columns() {
			if c, _ := b.Cell(x, y); c.Mine {
				n++
			}
		}
	}
	return n
}

func TestMineCountMatchesDifficulty(t *testing.T) {
	for d := 0; d <= MaxDifficulty; d++ {
		for seed := int64(1); seed <= 25; seed++ {
			b, err := NewBoard(Rows, Columns, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			require.NoError(t, b.Initialize(d))

			want := Rows + 3*d
			assert.Equal(t, want, countMines(b), "difficulty %d seed %d", d, seed)
			assert.Equal(t, want, b.MineCount())
			assert.Equal(t, Rows*Columns-want, b.UnrevealedSafe())
		}
	}
}

func TestMineCountOnNonSquareBoard(t *testing.T) {
	// Placement samples row then column; a 4x12 board catches swapped axes.
	b, err := NewBoard(4, 12, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.NoError(t, b.Initialize(2))
	assert.Equal(t, 10, countMines(b))
}

func TestInitializeSkipsDuplicateSamples(t *testing.T) {
	points := append([][2]int{{0, 0}, {0, 0}}, scenarioMines[1:]...)
	b, err := NewBoard(Rows, Columns, layoutSource(points...))
	require.NoError(t, err)
	require.NoError(t, b.Initialize(0))

	assert.Equal(t, 9, countMines(b))
	for _, p := range scenarioMines {
		c, ok := b.Cell(p[0], p[1])
		require.True(t, ok)
		assert.True(t, c.Mine, "expected mine at %v", p)
	}
}

func TestInitializeRejectsDifficulty(t *testing.T) {
	b := newScenarioBoard(t)

	for _, d := range []int{-1, 3, 100} {
		err := b.Initialize(d)
		require.ErrorIs(t, err, ErrInvalidDifficulty, "difficulty %d", d)
	}

	// Previous layout survives the failed calls.
	assert.Equal(t, 9, countMines(b))
	c, _ := b.Cell(0, 0)
	assert.True(t, c.Mine)
}

func TestInitializeRejectsOvercrowdedBoard(t *testing.T) {
	b, err := NewBoard(2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.NoError(t, b.Initialize(0)) // 2 mines on 4 cells
	assert.ErrorIs(t, b.Initialize(1), ErrInvalidDifficulty)
}

func TestNewBoardRejectsBadArguments(t *testing.T) {
	_, err := NewBoard(0, 9, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewBoard(9, -1, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewBoard(9, 9, nil)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestWithinBoard(t *testing.T) {
	b, err := NewBoard(Rows, Columns, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 8, 8, true},
		{"row past end", 9, 0, false},
		{"column past end", 0, 9, false},
		{"negative row", -1, 0, false},
		{"negative column", 0, -1, false},
		{"max int row", math.MaxInt, 0, false},
		{"min int column", 0, math.MinInt, false},
		{"both overflow", math.MaxInt, math.MinInt, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.WithinBoard(tc.x, tc.y))
		})
	}
}

func TestRevealMine(t *testing.T) {
	b := newScenarioBoard(t)

	out := b.Reveal(0, 0)
	assert.Equal(t, OutcomeExploded, out.Kind)

	c, _ := b.Cell(0, 0)
	assert.True(t, c.Revealed)
	assert.Equal(t, 72, b.UnrevealedSafe(), "a mine must not count toward a win")
	assert.False(t, b.HasWon())
}

func TestRevealNumberDoesNotCascade(t *testing.T) {
	b := newScenarioBoard(t)

	out := b.Reveal(3, 3)
	assert.Equal(t, OutcomeRevealed, out.Kind)
	assert.Equal(t, 2, out.Adjacent)
	assert.Equal(t, 1, out.Opened)
	assert.Equal(t, 71, b.UnrevealedSafe())

	c, _ := b.Cell(3, 4)
	assert.False(t, c.Revealed)
}

func TestRevealIsIdempotent(t *testing.T) {
	b := newScenarioBoard(t)

	b.Reveal(3, 3)
	remaining := b.UnrevealedSafe()

	out := b.Reveal(3, 3)
	assert.Equal(t, OutcomeNoOp, out.Kind)
	assert.Equal(t, remaining, b.UnrevealedSafe())

	out = b.Reveal(-1, 4)
	assert.Equal(t, OutcomeNoOp, out.Kind)
	out = b.Reveal(4, 9)
	assert.Equal(t, OutcomeNoOp, out.Kind)
	assert.Equal(t, remaining, b.UnrevealedSafe())
}

func TestRevealCascade(t *testing.T) {
	b := newScenarioBoard(t)

	out := b.Reveal(8, 8)
	require.Equal(t, OutcomeRevealed, out.Kind)
	assert.Equal(t, 0, out.Adjacent)
	assert.Equal(t, 69, out.Opened)
	assert.Equal(t, 3, b.UnrevealedSafe())
	assert.False(t, b.HasWon())

	for _, p := range scenarioPocket {
		c, _ := b.Cell(p[0], p[1])
		assert.False(t, c.Revealed, "pocket cell %v is behind a numbered boundary", p)
	}

	for x := range b.Rows() {
		for y := range b.Columns() {
			c, _ := b.Cell(x, y)
			if c.Mine {
				assert.False(t, c.Revealed, "cascade revealed mine at (%d,%d)", x, y)
				continue
			}
			if !c.Revealed || c.Adjacent != 0 {
				continue
			}
			// A revealed zero cell has every neighbour open.
			for _, d := range neighborOffsets {
				n, ok := b.Cell(x+d.x, y+d.y)
				if ok {
					assert.True(t, n.Revealed, "neighbour of zero cell (%d,%d) hidden", x, y)
				}
			}
		}
	}

	// Boundary counts.
	for _, tc := range []struct {
		x, y, want int
	}{
		{0, 3, 2}, {3, 3, 2}, {1, 7, 1}, {7, 0, 1}, {8, 1, 1}, {5, 4, 1}, {6, 6, 0},
	} {
		c, _ := b.Cell(tc.x, tc.y)
		assert.True(t, c.Revealed, "(%d,%d)", tc.x, tc.y)
		assert.Equal(t, tc.want, c.Adjacent, "(%d,%d)", tc.x, tc.y)
	}
}

func TestRevealCascadeOnLargeBoard(t *testing.T) {
	const size = 300

	// Difficulty 0 places `size` mines; fill the first row with them.
	points := make([][2]int, size)
	for y := range size {
		points[y] = [2]int{0, y}
	}

	b, err := NewBoard(size, size, layoutSource(points...))
	require.NoError(t, err)
	require.NoError(t, b.Initialize(0))

	out := b.Reveal(size-1, size-1)
	assert.Equal(t, OutcomeRevealed, out.Kind)
	assert.Equal(t, size*size-size, out.Opened)
	assert.True(t, b.HasWon())
}

func TestWinByRevealingPocket(t *testing.T) {
	b := newScenarioBoard(t)
	b.Reveal(8, 8)

	wants := []int{3, 3, 6}
	for i, p := range scenarioPocket {
		out := b.Reveal(p[0], p[1])
		require.Equal(t, OutcomeRevealed, out.Kind)
		assert.Equal(t, wants[i], out.Adjacent, "pocket %v", p)
	}
	assert.True(t, b.HasWon())
	assert.Equal(t, 0, b.UnrevealedSafe())
}

func TestSymbols(t *testing.T) {
	b := newScenarioBoard(t)
	b.Reveal(8, 8)

	sym := b.Symbols(false)
	require.Len(t, sym, Rows)
	assert.Equal(t, SymbolEmpty, sym[8][8])
	assert.Equal(t, "2", sym[3][3])
	assert.Equal(t, SymbolHidden, sym[0][0])
	assert.Equal(t, SymbolHidden, sym[1][1])

	shown := b.Symbols(true)
	assert.Equal(t, SymbolMine, shown[0][0])
	assert.Equal(t, SymbolMine, shown[4][4])
	assert.Equal(t, SymbolHidden, shown[1][1])
}
