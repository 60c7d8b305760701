package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board layout, in screen cells.
const (
	cellWidth   = 3 // " X " or "[X]"
	labelWidth  = 2 // row index and a gap
	headerLines = 2 // title and a blank line
)

// BoardSize returns the width and height DrawBoard needs for a rows×columns board,
// excluding the status lines.
func BoardSize(rows, columns int) (w, h int) {
	w = labelWidth + columns*cellWidth + 2
	h = headerLines + 1 + rows + 2
	return w, h
}

// BoardView is everything DrawBoard needs from the model.
type BoardView struct {
	Snap       minesweeper.Snapshot
	CursorRow  int
	CursorCol  int
	ShowCursor bool
	Palette    core.Palette
}

// DrawBoard draws the title, column header, frame and cells with the top-left corner
// at (ox, oy).
func DrawBoard(s *core.Screen, ox, oy int, v BoardView) {
	p := v.Palette
	w, _ := BoardSize(v.Snap.Rows, v.Snap.Columns)

	title := "M I N E S W E E P E R"
	s.DrawTextColor(ox+max(0, (w-len(title))/2), oy, title, core.ColorBrightWhite)

	top := oy + headerLines
	frameX := ox + labelWidth
	for c := range v.Snap.Columns {
		s.DrawTextColor(frameX+1+c*cellWidth+1, top, strconv.Itoa(c%10), p.Frame)
	}

	frame := core.NewRect(frameX, top+1, v.Snap.Columns*cellWidth+2, v.Snap.Rows+2)
	s.DrawBox(frame, p.Frame)

	for r := range v.Snap.Rows {
		y := frame.Y + 1 + r
		s.DrawTextColor(ox, y, strconv.Itoa(r%10), p.Frame)

		for c := range v.Snap.Columns {
			x := frame.X + 1 + c*cellWidth
			sym := v.Snap.Symbol(r, c)
			s.SetColor(x+1, y, symbolRune(sym), symbolColor(sym, p))

			if v.ShowCursor && r == v.CursorRow && c == v.CursorCol {
				s.SetColor(x, y, '[', p.Cursor)
				s.SetColor(x+2, y, ']', p.Cursor)
			}
		}
	}
}

func symbolRune(sym string) rune {
	for _, r := range sym {
		return r
	}
	return ' '
}

func symbolColor(sym string, p core.Palette) core.Color {
	switch sym {
	case minesweeper.SymbolHidden:
		return p.Hidden
	case minesweeper.SymbolMine:
		return p.Mine
	case minesweeper.SymbolEmpty:
		return core.ColorDefault
	}
	if n, err := strconv.Atoi(sym); err == nil {
		return p.Number(n)
	}
	return core.ColorDefault
}
