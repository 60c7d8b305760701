package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/text"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagTextDifficulty string
	flagTextOnce       bool
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Play with typed coordinates",
	Long: `Play on stdin/stdout. The board is printed after every move and you type the
column (X) and row (Y) of the cell to open, separated by a space.

Without --difficulty the game asks for one, like the classic version.

Board symbols:
  .      unopened cell
  1-8    number of mines around the cell
  @      mine (shown after you lose)

Examples:
  minesweeper text
  minesweeper text --difficulty hard
  echo "8 8" | minesweeper --seed 7 text --difficulty 0 --once`,
	Args: cobra.NoArgs,
	RunE: runText,
}

func init() {
	textCmd.Flags().StringVar(&flagTextDifficulty, "difficulty", "", "Difficulty: easy, medium, hard or 0-2 (prompt if empty)")
	textCmd.Flags().BoolVar(&flagTextOnce, "once", false, "Play a single game without offering another")
}

func runText(_ *cobra.Command, _ []string) error {
	difficulty := text.PromptDifficulty
	if flagTextDifficulty != "" {
		d, err := resolveDifficulty(flagTextDifficulty)
		if err != nil {
			return err
		}
		difficulty = int(d)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := minesweeper.New(rand.New(rand.NewSource(seed)))

	store, err := storage.Open()
	if err != nil {
		logger.Warn("session stats disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ui := text.New(game, store, logger, text.Options{
		Difficulty: difficulty,
		Player:     playerName(),
		PlayAgain:  !flagTextOnce,
	})

	err = ui.Run(os.Stdin, os.Stdout)
	if errors.Is(err, text.ErrInputClosed) {
		logger.Debug("input closed")
		return nil
	}
	return err
}
