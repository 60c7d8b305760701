package minesweeper

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty selects mine density. Each level adds three mines.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists the supported levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the lower-case name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "difficulty(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid reports whether d is a supported level.
func (d Difficulty) Valid() bool {
	return d >= 0 && int(d) <= MaxDifficulty
}

// ParseDifficulty accepts a level name ("easy", "medium", "hard", with "normal" as an
// alias for medium) or its number ("0", "1", "2").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "0":
		return DifficultyEasy, nil
	case "medium", "normal", "1":
		return DifficultyMedium, nil
	case "hard", "2":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}
