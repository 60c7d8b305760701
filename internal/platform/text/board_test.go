package text

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/minesweeper"
)

func TestFormatBoardSmall(t *testing.T) {
	snap := minesweeper.Snapshot{
		Rows:    2,
		Columns: 3,
		Board: [][]string{
			{".", "1", " "},
			{"@", ".", "2"},
		},
	}

	want := "  0   1   2 \n" +
		"  .|  1|     0\n" +
		"-----------\n" +
		"  @|  .|  2  1"

	if got := FormatBoard(snap); got != want {
		t.Errorf("FormatBoard() =\n%s\nexpected\n%s", got, want)
	}
}

func TestFormatBoardHidden(t *testing.T) {
	snap := minesweeper.Snapshot{Rows: 9, Columns: 9}
	lines := strings.Split(FormatBoard(snap), "\n")

	if len(lines) != 1+9+8 {
		t.Fatalf("got %d lines, expected 18", len(lines))
	}
	if lines[0] != "  0   1   2   3   4   5   6   7   8 " {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "  .|  .|  .|  .|  .|  .|  .|  .|  .  0" {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[2] != strings.Repeat("-", 35) {
		t.Errorf("separator = %q", lines[2])
	}
	if lines[17] != "  .|  .|  .|  .|  .|  .|  .|  .|  .  8" {
		t.Errorf("row 8 = %q", lines[17])
	}
}
