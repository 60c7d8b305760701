package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Difficulty: "easy",
		},
		Display: DisplayConfig{
			ShowTimer: true,
		},
		Server: ServerConfig{
			Address:     ":2222",
			IdleTimeout: 10 * time.Minute,
			HostKey:     ".ssh/minesweeper_ed25519",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
