package text

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
)

// FormatBoard renders the snapshot grid: a column header, one line per row with
// "|"-separated cells and the row index at the end, and dashed lines between rows.
// It carries no trailing newline.
func FormatBoard(snap minesweeper.Snapshot) string {
	var sb strings.Builder

	for c := range snap.Columns {
		sb.WriteString("  ")
		sb.WriteString(strconv.Itoa(c))
		sb.WriteString(" ")
	}

	separator := strings.Repeat("-", max(0, snap.Columns*4-1))
	for r := range snap.Rows {
		sb.WriteString("\n")
		for c := range snap.Columns {
			sb.WriteString("  ")
			sb.WriteString(snap.Symbol(r, c))
			if c != snap.Columns-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("  ")
		sb.WriteString(strconv.Itoa(r))
		if r != snap.Rows-1 {
			sb.WriteString("\n")
			sb.WriteString(separator)
		}
	}
	return sb.String()
}
