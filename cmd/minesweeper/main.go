// minesweeper is a 9×9 Minesweeper for the terminal.
//
// Usage:
//
//	minesweeper text         - Prompt-driven game on stdin/stdout
//	minesweeper play         - Full-screen game with a cursor
//	minesweeper serve        - Start SSH server for remote play
//	minesweeper config       - Show the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible mine layouts
//	--config <path>      - Use a specific minesweeper.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs.
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper - clear a 9x9 minefield in your terminal",
	Long: `Minesweeper is a terminal version of the classic game on a 9x9 board.

Available commands:
  text     - Original prompt-driven game: type a column and a row
  play     - Full-screen game with a cursor
  serve    - Start SSH server for remote play
  config   - Show where configuration is read from and its values

Examples:
  minesweeper text
  minesweeper play --difficulty hard
  minesweeper serve --ssh :2222
  minesweeper --seed 42 text --difficulty 1`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
		Level:           level,
	})
	logger.Debug("configuration loaded", "source", config.Source(flagConfig))

	appConfig = cfg
	return nil
}

// runtimeConfig builds the front-end config from the loaded file and global flags.
// An empty difficulty flag keeps the configured one.
func runtimeConfig(difficulty string, width, height int) (core.RuntimeConfig, error) {
	d, err := resolveDifficulty(difficulty)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, err := appConfig.Palette()
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.Seed = flagSeed
	cfg.Difficulty = int(d)
	cfg.ShowTimer = appConfig.Display.ShowTimer
	cfg.Palette = palette
	return cfg, nil
}

func resolveDifficulty(flag string) (minesweeper.Difficulty, error) {
	if flag == "" {
		return appConfig.Difficulty()
	}
	d, err := minesweeper.ParseDifficulty(flag)
	if err != nil {
		return 0, fmt.Errorf("--difficulty: %w", err)
	}
	return d, nil
}

// playerName is the name local games are recorded under.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
