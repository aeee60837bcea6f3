package core

import (
	"strings"
	"testing"
)

// blankAll reports the first non-space cell of s, if any.
func blankAll(s *Screen) (x, y int, ok bool) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				return x, y, false
			}
		}
	}
	return 0, 0, true
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if x, y, ok := blankAll(s); !ok {
		t.Errorf("new screen has %q at (%d, %d)", s.Get(x, y), x, y)
	}

	empty := NewScreen(-3, -1)
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", empty.Width(), empty.Height())
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 4)

	// A word spilling past the edge of the board must not panic
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'Q')
		s.SetColor(p[0], p[1], 'Q', ColorRed)
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) out of bounds = %q, expected space", p[0], p[1], s.Get(p[0], p[1]))
		}
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) out of bounds = %+v, expected blank", p[0], p[1], c)
		}
	}
	if _, _, ok := blankAll(s); !ok {
		t.Error("out of bounds writes leaked onto the screen")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(6, 3)
	s.Fill('E')
	for y := 0; y < 3; y++ {
		if row := s.Row(y); row != "EEEEEE" {
			t.Errorf("after Fill, row %d = %q", y, row)
		}
	}

	s.DrawTextColor(0, 1, "CAT", ColorBrightYellow)
	s.Clear()
	if x, y, ok := blankAll(s); !ok {
		t.Errorf("after Clear, %q at (%d, %d)", s.Get(x, y), x, y)
	}
	if s.GetCell(0, 1).Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		text string
		row  string
	}{
		{"inside", 2, 1, "TREE", "  TREE    "},
		{"clipped right", 7, 1, "TREE", "       TRE"},
		{"clipped left", -2, 1, "TREE", "EE        "},
		{"off screen row", 0, 9, "TREE", "          "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 3)
			s.DrawText(tc.x, tc.y, tc.text)
			if got := s.Row(1); got != tc.row {
				t.Errorf("row 1 = %q, expected %q", got, tc.row)
			}
		})
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(1, 1, "WORD", ColorBrightGreen)

	for i, ch := range "WORD" {
		cell := s.GetCell(1+i, 1)
		if cell.Rune != ch || cell.Color != ColorBrightGreen {
			t.Errorf("GetCell(%d, 1) = %+v, expected %q in %d", 1+i, cell, ch, ColorBrightGreen)
		}
	}
	if s.GetCell(0, 1).Color != ColorDefault || s.GetCell(5, 1).Color != ColorDefault {
		t.Error("DrawTextColor should only color the drawn cells")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Paused")
	s.DrawTextCenteredColor(3, "Game Over", ColorBrightRed)

	if got := strings.TrimSpace(s.Row(2)); got != "Paused" {
		t.Errorf("row 2 = %q", s.Row(2))
	}
	if x := (20 - 6) / 2; s.Get(x, 2) != 'P' {
		t.Errorf("Paused should start at column %d, row 2 = %q", x, s.Row(2))
	}
	if x := (20 - 9) / 2; s.GetCell(x, 3).Color != ColorBrightRed || s.Get(x, 3) != 'G' {
		t.Errorf("Game Over should start at column %d in red, row 3 = %q", x, s.Row(3))
	}
}

func TestScreenSummaryBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.Fill('x')
	box := NewRect(1, 1, 5, 4)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	expected := []string{
		"xxxxxxxxxx",
		"x┌───┐xxxx",
		"x│   │xxxx",
		"x│   │xxxx",
		"x└───┘xxxx",
		"xxxxxxxxxx",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '─')

	if got := s.Row(1); got != "  ─────   " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "CATSX")
	s.DrawText(0, 1, "QDOGZ")
	s.DrawText(0, 2, "SUNRT")

	if got := s.String(); got != "CATSX\nQDOGZ\nSUNRT" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "HUNT")
	s.DrawText(0, 5, "WORD")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "HUNT") {
		t.Errorf("top-left content should survive shrinking, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "HUNT") {
		t.Errorf("content should survive growing, row 0 = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("rows cut by the shrink should come back blank, row 5 = %q", s.Row(5))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, expected spaces", got)
	}
}
