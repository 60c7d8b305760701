package minesweeper

// State is the controller's game state.
type State int

const (
	StateIdle State = iota // No board yet
	StatePlaying
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the game has ended.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}

// SelectResult is the outcome of a player's cell selection.
type SelectResult int

const (
	SelectInvalid SelectResult = iota
	SelectExploded
	SelectUpdated
	SelectWon
)

// String returns a human-readable name for the result.
func (r SelectResult) String() string {
	switch r {
	case SelectInvalid:
		return "Invalid"
	case SelectExploded:
		return "Exploded"
	case SelectUpdated:
		return "Updated"
	case SelectWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Controller is the capability the presentation layer drives.
type Controller interface {
	Initialize(difficulty int) error
	SelectCell(x, y int) SelectResult
	Reset() error
	HasWon() bool
	Snapshot() Snapshot
}

// Game owns one Board and is the only authority for state transitions.
type Game struct {
	rows    int
	columns int
	rng     Source

	board      *Board
	difficulty int
	state      State
	moves      int
	last       RevealOutcome
}

var _ Controller = (*Game)(nil)

// New creates a controller for the standard 9×9 board.
func New(rng Source) *Game {
	return &Game{
		rows:    Rows,
		columns: Columns,
		rng:     rng,
	}
}

// NewWithSize creates a controller for a board of the given size.
func NewWithSize(rows, columns int, rng Source) (*Game, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		return nil, ErrNilSource
	}
	return &Game{
		rows:    rows,
		columns: columns,
		rng:     rng,
	}, nil
}

// Initialize starts a new game at the given difficulty.
// An invalid difficulty leaves the controller exactly as it was.
func (g *Game) Initialize(difficulty int) error {
	board := g.board
	if board == nil {
		b, err := NewBoard(g.rows, g.columns, g.rng)
		if err != nil {
			return err
		}
		board = b
	}

	if err := board.Initialize(difficulty); err != nil {
		return err
	}

	g.board = board
	g.difficulty = difficulty
	g.state = StatePlaying
	g.moves = 0
	g.last = RevealOutcome{}
	return nil
}

// Reset starts a new game at the last chosen difficulty.
func (g *Game) Reset() error {
	if g.board == nil {
		return ErrNotInitialized
	}
	return g.Initialize(g.difficulty)
}

// SelectCell reveals (x, y) and reports what happened.
// Once the game is won or lost every call returns SelectInvalid without touching the
// board until Reset or Initialize.
func (g *Game) SelectCell(x, y int) SelectResult {
	if g.state != StatePlaying {
		return SelectInvalid
	}
	if !g.board.CanReveal(x, y) {
		return SelectInvalid
	}

	outcome := g.board.Reveal(x, y)
	g.last = outcome
	g.moves++

	if outcome.Kind == OutcomeExploded {
		g.state = StateLost
		return SelectExploded
	}

	if g.board.HasWon() {
		g.state = StateWon
		return SelectWon
	}

	return SelectUpdated
}

// WithinBoard reports whether (x, y) lies on the board.
func (g *Game) WithinBoard(x, y int) bool {
	return x >= 0 && x < g.rows && y >= 0 && y < g.columns
}

// HasWon reports whether every safe cell has been revealed.
func (g *Game) HasWon() bool {
	return g.board != nil && g.board.HasWon()
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Difficulty returns the difficulty of the current game.
func (g *Game) Difficulty() int {
	return g.difficulty
}

// Moves returns the number of selections that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// LastOutcome returns the board outcome of the most recent accepted selection.
func (g *Game) LastOutcome() RevealOutcome {
	return g.last
}

// Rows returns the number of board rows.
func (g *Game) Rows() int {
	return g.rows
}

// Columns returns the number of board columns.
func (g *Game) Columns() int {
	return g.columns
}
