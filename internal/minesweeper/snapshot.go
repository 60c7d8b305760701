package minesweeper

// Snapshot is a read-only copy of the game handed to presentation layers.
type Snapshot struct {
	Rows       int
	Columns    int
	Difficulty int
	MineCount  int
	Remaining  int // Safe cells still hidden
	Revealed   int // Safe cells revealed
	Moves      int
	State      State
	Board      [][]string // Display symbols indexed [row][column]
}

// Snapshot returns the current game snapshot.
// Mines are exposed only after a loss. Before the first Initialize the board is
// empty.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:       g.rows,
		Columns:    g.columns,
		Difficulty: g.difficulty,
		Moves:      g.moves,
		State:      g.state,
	}
	if g.board == nil {
		return snap
	}

	snap.MineCount = g.board.MineCount()
	snap.Remaining = g.board.UnrevealedSafe()
	snap.Revealed = g.rows*g.columns - snap.MineCount - snap.Remaining
	snap.Board = g.board.Symbols(g.state == StateLost)
	return snap
}

// Symbol returns the display symbol at (x, y), or SymbolHidden when out of range.
func (s Snapshot) Symbol(x, y int) string {
	if x < 0 || x >= len(s.Board) || y < 0 || y >= len(s.Board[x]) {
		return SymbolHidden
	}
	return s.Board[x][y]
}
