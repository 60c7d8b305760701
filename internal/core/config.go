package core

// RuntimeConfig contains configuration passed to a front end when it starts a game.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	Seed       int64 // RNG seed for deterministic mine layouts
	Difficulty int   // Initial difficulty, 0..2
	ShowTimer  bool  // Show elapsed seconds in the status line
	Palette    Palette
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		Seed:      0, // 0 means use current time in platform layer
		ShowTimer: true,
		Palette:   DefaultPalette(),
	}
}
