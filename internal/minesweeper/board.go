// Package minesweeper implements the Minesweeper board state machine: mine placement,
// adjacency counting, the flood-fill reveal and win/loss detection.
// It has no terminal or I/O dependencies; presentation layers consume it through the
// Controller interface.
package minesweeper

import (
	"errors"
	"fmt"
	"strconv"
)

// Default board geometry and difficulty scaling.
const (
	Rows    = 9
	Columns = 9

	MaxDifficulty       = 2
	difficultyIncrement = 3
)

// Errors returned by board and controller operations.
var (
	ErrInvalidDifficulty = errors.New("minesweeper: invalid difficulty")
	ErrInvalidDimensions = errors.New("minesweeper: board dimensions must be positive")
	ErrNilSource         = errors.New("minesweeper: random source is nil")
	ErrNotInitialized    = errors.New("minesweeper: game not initialized")
)

// Source is the random number source used for mine placement.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed value in [0, n).
	Intn(n int) int
}

// Display symbols used by Symbols and Snapshot.
const (
	SymbolHidden = "."
	SymbolMine   = "@"
	SymbolEmpty  = " "
)

// Cell is one grid position.
type Cell struct {
	Mine     bool
	Revealed bool
	Adjacent int // Valid once revealed; unused for mines
}

// OutcomeKind classifies the result of a single Reveal call.
type OutcomeKind int

const (
	OutcomeNoOp OutcomeKind = iota
	OutcomeExploded
	OutcomeRevealed
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoOp:
		return "NoOp"
	case OutcomeExploded:
		return "Exploded"
	case OutcomeRevealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// RevealOutcome is returned by Board.Reveal.
type RevealOutcome struct {
	Kind     OutcomeKind
	Adjacent int // Adjacent mine count of the selected cell when Kind is OutcomeRevealed
	Opened   int // Safe cells revealed by this call, cascade included
}

// point is a (row, column) pair on the worklist.
type point struct {
	x, y int
}

// neighborOffsets lists the 8 neighbour directions in the fixed visiting order.
var neighborOffsets = [8]point{
	{1, 0}, {-1, 0}, {0, -1}, {0, 1},
	{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
}

// Board is a rows×columns grid of cells.
// x is always the row index and y the column index.
type Board struct {
	rows    int
	columns int
	cells   [][]Cell
	rng     Source

	mineCount      int
	unrevealedSafe int
}

// NewBoard creates an empty board. Mines are placed by Initialize.
func NewBoard(rows, columns int, rng Source) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	b := &Board{
		rows:    rows,
		columns: columns,
		rng:     rng,
	}
	b.allocate()
	return b, nil
}

// allocate creates zeroed cell storage.
func (b *Board) allocate() {
	b.cells = make([][]Cell, b.rows)
	for x := range b.cells {
		b.cells[x] = make([]Cell, b.columns)
	}
}

// MineCountFor returns the number of mines used for a board with the given number of
// rows at the given difficulty.
func MineCountFor(rows, difficulty int) int {
	return rows + difficultyIncrement*difficulty
}

// ValidateDifficulty reports whether difficulty is usable on this board.
func (b *Board) ValidateDifficulty(difficulty int) error {
	if difficulty < 0 || difficulty > MaxDifficulty {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidDifficulty, difficulty, MaxDifficulty)
	}
	if MineCountFor(b.rows, difficulty) >= b.rows*b.columns {
		return fmt.Errorf("%w: %d leaves no safe cell on a %dx%d board",
			ErrInvalidDifficulty, difficulty, b.rows, b.columns)
	}
	return nil
}

// Initialize clears the board and places mines for the given difficulty.
// On error the board is left untouched.
func (b *Board) Initialize(difficulty int) error {
	if err := b.ValidateDifficulty(difficulty); err != nil {
		return err
	}

	b.allocate()
	b.mineCount = MineCountFor(b.rows, difficulty)
	b.unrevealedSafe = b.rows*b.columns - b.mineCount

	for placed := 0; placed < b.mineCount; {
		x := b.rng.Intn(b.rows)
		y := b.rng.Intn(b.columns)
		if b.cells[x][y].Mine {
			continue
		}
		b.cells[x][y].Mine = true
		placed++
	}

	return nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.columns
}

// MineCount returns the number of mines placed by the last Initialize.
func (b *Board) MineCount() int {
	return b.mineCount
}

// UnrevealedSafe returns the number of safe cells still hidden.
func (b *Board) UnrevealedSafe() int {
	return b.unrevealedSafe
}

// WithinBoard reports whether (x, y) lies on the board.
func (b *Board) WithinBoard(x, y int) bool {
	return x >= 0 && x < b.rows && y >= 0 && y < b.columns
}

// CanReveal reports whether (x, y) is on the board and still hidden.
func (b *Board) CanReveal(x, y int) bool {
	return b.WithinBoard(x, y) && !b.cells[x][y].Revealed
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.WithinBoard(x, y) {
		return Cell{}, false
	}
	return b.cells[x][y], true
}

// HasWon reports whether every safe cell has been revealed.
func (b *Board) HasWon() bool {
	return b.unrevealedSafe == 0
}

// countAdjacentMines counts mines among the in-bounds neighbours of (x, y).
func (b *Board) countAdjacentMines(x, y int) int {
	count := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d.x, y+d.y
		if b.WithinBoard(nx, ny) && b.cells[nx][ny].Mine {
			count++
		}
	}
	return count
}

// Reveal opens the cell at (x, y).
// Zero-count cells open their hidden safe neighbours transitively using an explicit
// worklist, so the call depth does not grow with the board.
func (b *Board) Reveal(x, y int) RevealOutcome {
	if !b.CanReveal(x, y) {
		return RevealOutcome{Kind: OutcomeNoOp}
	}

	if b.cells[x][y].Mine {
		b.cells[x][y].Revealed = true
		return RevealOutcome{Kind: OutcomeExploded}
	}

	opened := 0
	stack := []point{{x, y}}
	b.open(x, y)
	opened++

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.cells[p.x][p.y].Adjacent > 0 {
			continue
		}

		for _, d := range neighborOffsets {
			nx, ny := p.x+d.x, p.y+d.y
			if !b.CanReveal(nx, ny) || b.cells[nx][ny].Mine {
				continue
			}
			b.open(nx, ny)
			opened++
			stack = append(stack, point{nx, ny})
		}
	}

	return RevealOutcome{
		Kind:     OutcomeRevealed,
		Adjacent: b.cells[x][y].Adjacent,
		Opened:   opened,
	}
}

// open marks a safe cell revealed and records its adjacent count.
// Cells are marked when pushed so none is queued twice.
func (b *Board) open(x, y int) {
	c := &b.cells[x][y]
	c.Revealed = true
	c.Adjacent = b.countAdjacentMines(x, y)
	b.unrevealedSafe--
}

// Symbols renders the board as display symbols, row by row.
// With showMines set every mine is shown, not only revealed ones.
func (b *Board) Symbols(showMines bool) [][]string {
	out := make([][]string, b.rows)
	for x := range b.rows {
		out[x] = make([]string, b.columns)
		for y := range b.columns {
			out[x][y] = b.symbol(b.cells[x][y], showMines)
		}
	}
	return out
}

func (b *Board) symbol(c Cell, showMines bool) string {
	switch {
	case c.Mine && (c.Revealed || showMines):
		return SymbolMine
	case !c.Revealed:
		return SymbolHidden
	case c.Adjacent == 0:
		return SymbolEmpty
	default:
		return strconv.Itoa(c.Adjacent)
	}
}
