package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", ColorRed, true},
		{"Bright_Blue", ColorBrightBlue, true},
		{" gray ", ColorGray, true},
		{"default", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPaletteNumber(t *testing.T) {
	p := DefaultPalette()

	if p.Number(1) != ColorBrightBlue {
		t.Errorf("Number(1) = %v, expected bright blue", p.Number(1))
	}
	if p.Number(8) != ColorGray {
		t.Errorf("Number(8) = %v, expected gray", p.Number(8))
	}
	if p.Number(-1) != ColorDefault || p.Number(9) != ColorDefault {
		t.Error("out of range counts should use the default color")
	}
}

func TestActionDelta(t *testing.T) {
	tests := []struct {
		a      Action
		dr, dc int
	}{
		{ActionUp, -1, 0},
		{ActionDown, 1, 0},
		{ActionLeft, 0, -1},
		{ActionRight, 0, 1},
		{ActionReveal, 0, 0},
		{ActionNone, 0, 0},
	}

	for _, tc := range tests {
		dr, dc := tc.a.Delta()
		if dr != tc.dr || dc != tc.dc {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.a, dr, dc, tc.dr, tc.dc)
		}
	}
}
