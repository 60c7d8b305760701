package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var flagPlayDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the full-screen game",
	Long: `Start the full-screen game. Pick a difficulty from the menu, then move the
cursor and open cells.

Controls:
  Arrows/hjkl  - Move cursor
  Space/Enter  - Open cell
  R            - New board at the same difficulty
  Esc/B        - Back to menu
  Tab          - Stats (from the menu)
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  minesweeper play
  minesweeper play --difficulty medium
  minesweeper --config ./minesweeper.yaml play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "", "Difficulty highlighted in the menu (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := runtimeConfig(flagPlayDifficulty, width, height)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("session stats disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(store, cfg, playerName(), logger)
}
