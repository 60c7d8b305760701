// Package config provides YAML-based configuration loading for the minesweeper
// front ends.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
)

// Config is the contents of minesweeper.yaml.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds game defaults. The board is always 9×9.
type GameConfig struct {
	Difficulty string `yaml:"difficulty"` // easy, medium, hard or 0..2
}

// DisplayConfig controls the terminal UI.
type DisplayConfig struct {
	ShowTimer bool         `yaml:"show_timer"`
	Colors    ColorsConfig `yaml:"colors"`
}

// ColorsConfig names the colors used for board symbols.
// Numbers is keyed by adjacent mine count (1..8).
type ColorsConfig struct {
	Numbers map[int]string `yaml:"numbers"`
	Hidden  string         `yaml:"hidden"`
	Mine    string         `yaml:"mine"`
	Cursor  string         `yaml:"cursor"`
	Frame   string         `yaml:"frame"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	HostKey     string        `yaml:"host_key"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Difficulty resolves the configured difficulty.
func (c Config) Difficulty() (minesweeper.Difficulty, error) {
	d, err := minesweeper.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("config: game.difficulty: %w", err)
	}
	return d, nil
}

// LogLevel resolves the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(c.Log.Level)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

// Palette converts the configured color names, starting from the default palette.
// Unknown names are reported; the rest of the palette is still applied.
func (c Config) Palette() (core.Palette, error) {
	p := core.DefaultPalette()
	var bad []string

	set := func(dst *core.Color, name, key string) {
		if name == "" {
			return
		}
		col, ok := core.ParseColor(name)
		if !ok {
			bad = append(bad, key+"="+name)
			return
		}
		*dst = col
	}

	for n, name := range c.Display.Colors.Numbers {
		key := "numbers." + strconv.Itoa(n)
		if n < 1 || n >= len(p.Numbers) {
			bad = append(bad, key)
			continue
		}
		set(&p.Numbers[n], name, key)
	}
	set(&p.Hidden, c.Display.Colors.Hidden, "hidden")
	set(&p.Mine, c.Display.Colors.Mine, "mine")
	set(&p.Cursor, c.Display.Colors.Cursor, "cursor")
	set(&p.Frame, c.Display.Colors.Frame, "frame")

	if len(bad) > 0 {
		return p, fmt.Errorf("config: display.colors: unknown entries %s", strings.Join(bad, ", "))
	}
	return p, nil
}

// Validate checks every field that has a restricted set of values.
func (c Config) Validate() error {
	if _, err := c.Difficulty(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative")
	}
	return nil
}
