package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// ParseColor looks up a color by its config name ("red", "bright_blue", ...).
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Palette assigns colors to board symbols.
// Numbers[n] colors a revealed cell with n adjacent mines.
type Palette struct {
	Numbers [9]Color
	Hidden  Color
	Mine    Color
	Cursor  Color
	Frame   Color
}

// DefaultPalette returns the classic minesweeper number colors.
func DefaultPalette() Palette {
	return Palette{
		Numbers: [9]Color{
			ColorDefault,
			ColorBrightBlue,
			ColorGreen,
			ColorBrightRed,
			ColorBlue,
			ColorRed,
			ColorCyan,
			ColorMagenta,
			ColorGray,
		},
		Hidden: ColorGray,
		Mine:   ColorBrightRed,
		Cursor: ColorBrightYellow,
		Frame:  ColorWhite,
	}
}

// Number returns the color for a revealed cell with n adjacent mines.
func (p Palette) Number(n int) Color {
	if n < 0 || n >= len(p.Numbers) {
		return ColorDefault
	}
	return p.Numbers[n]
}
