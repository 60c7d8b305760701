// Package text is the line-oriented front end: it prompts on an io.Reader and prints
// the board to an io.Writer.
package text

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// ErrInputClosed is returned when the input ends before the session is over.
var ErrInputClosed = errors.New("text: input closed")

// PromptDifficulty asks the player for the difficulty instead of using a preset.
const PromptDifficulty = -1

// Options configures a UI.
type Options struct {
	Difficulty int    // Preset difficulty, or PromptDifficulty
	Player     string // Name recorded in the ledger
	PlayAgain  bool   // Offer another game after each one ends
}

// UI drives one Controller from text input.
type UI struct {
	game   minesweeper.Controller
	store  *storage.Store
	logger *log.Logger
	opts   Options
	now    func() time.Time

	in  *tokenReader
	out io.Writer
}

// New creates a text UI. store and logger may be nil.
func New(game minesweeper.Controller, store *storage.Store, logger *log.Logger, opts Options) *UI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	return &UI{
		game:   game,
		store:  store,
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}
}

// Run plays games until the player declines another one or the input ends.
func (u *UI) Run(in io.Reader, out io.Writer) error {
	u.in = newTokenReader(in)
	u.out = out

	u.displayHeader()

	difficulty := u.opts.Difficulty
	if difficulty == PromptDifficulty {
		d, err := u.enterDifficulty()
		if err != nil {
			return err
		}
		difficulty = d
	}
	if err := u.game.Initialize(difficulty); err != nil {
		return fmt.Errorf("text: start game: %w", err)
	}
	u.logger.Debug("game started", "difficulty", difficulty)

	for {
		if err := u.playRound(); err != nil {
			return err
		}
		if !u.opts.PlayAgain || !u.askPlayAgain() {
			break
		}
		if err := u.game.Reset(); err != nil {
			return fmt.Errorf("text: reset game: %w", err)
		}
		u.logger.Debug("game reset")
	}

	u.printSummary()
	return nil
}

func (u *UI) playRound() error {
	start := u.now()
	printBoard := true

	for !u.game.Snapshot().State.Over() {
		if printBoard {
			u.printBoard(u.game.Snapshot())
		}
		var err error
		printBoard, err = u.selectCell()
		if err != nil {
			return err
		}
	}

	u.printMessage()
	u.record(u.now().Sub(start))
	return nil
}

// selectCell reads one "X Y" pair (column, then row) and applies it.
// It reports whether the board should be printed again.
func (u *UI) selectCell() (bool, error) {
	u.printf("Enter X and Y Coordinate: ")

	column, err := u.in.nextInt()
	if err == nil {
		var row int
		row, err = u.in.nextInt()
		if err == nil {
			return u.apply(row, column), nil
		}
	}
	if errors.Is(err, errNotInteger) {
		u.println("Position must be integers!")
		return false, nil
	}
	return false, ErrInputClosed
}

func (u *UI) apply(row, column int) bool {
	result := u.game.SelectCell(row, column)
	u.logger.Debug("select", "row", row, "column", column, "result", result)

	switch result {
	case minesweeper.SelectInvalid:
		u.println("Invalid Position! Pick again!")
		return false
	case minesweeper.SelectUpdated:
		return true
	default:
		return false
	}
}

func (u *UI) displayHeader() {
	u.println("***********")
	u.println("Minesweeper")
	u.println("***********")
}

func (u *UI) enterDifficulty() (int, error) {
	for {
		u.println("Enter difficulty level")
		u.printf("(0 = EASY, 1 = MEDIUM, 2 = HARD): ")

		d, err := u.in.nextInt()
		switch {
		case errors.Is(err, errNotInteger):
			u.println("Difficulty must be an integer!")
		case err != nil:
			return 0, ErrInputClosed
		case d < 0 || d > minesweeper.MaxDifficulty:
			u.println("Invalid Difficulty!!!")
		default:
			return d, nil
		}
	}
}

func (u *UI) printBoard(snap minesweeper.Snapshot) {
	u.println("")
	u.println(FormatBoard(snap))
	u.println("")
}

func (u *UI) printMessage() {
	switch u.game.Snapshot().State {
	case minesweeper.StateWon:
		u.println("Congratulations. You win.")
	case minesweeper.StateLost:
		u.println("Boooom!!! You lose.")
	}
}

func (u *UI) askPlayAgain() bool {
	u.printf("Play again? (y/n): ")
	tok, err := u.in.next()
	if err != nil {
		return false
	}
	u.in.dropLine()
	switch strings.ToLower(tok) {
	case "y", "yes":
		return true
	}
	return false
}

func (u *UI) record(elapsed time.Duration) {
	snap := u.game.Snapshot()
	u.logger.Info("game over", "player", u.opts.Player, "state", snap.State,
		"difficulty", snap.Difficulty, "moves", snap.Moves, "elapsed", elapsed.Round(time.Millisecond))

	if u.store == nil {
		return
	}
	_, err := u.store.SaveResult(storage.Result{
		Player:     u.opts.Player,
		Difficulty: snap.Difficulty,
		Won:        snap.State == minesweeper.StateWon,
		Moves:      snap.Moves,
		Revealed:   snap.Revealed,
		Duration:   elapsed,
	})
	if err != nil {
		u.logger.Warn("could not record result", "error", err)
	}
}

// printSummary prints per-difficulty totals when more than one game was played.
func (u *UI) printSummary() {
	if u.store == nil {
		return
	}
	stats, err := u.store.Stats(u.opts.Player)
	if err != nil {
		u.logger.Warn("could not load stats", "error", err)
		return
	}

	played := 0
	for _, st := range stats {
		played += st.Played
	}
	if played < 2 {
		return
	}

	u.println("")
	u.println("Session summary")
	for _, st := range stats {
		line := fmt.Sprintf("  %-6s  played %d, won %d", minesweeper.Difficulty(st.Difficulty), st.Played, st.Won)
		if st.BestTime > 0 {
			line += fmt.Sprintf(", best %s", st.BestTime.Round(time.Second))
		}
		u.println(line)
	}
}

func (u *UI) println(s string) {
	fmt.Fprintln(u.out, s)
}

func (u *UI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}
