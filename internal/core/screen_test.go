package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '#', ColorGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected '#' in green", cell)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if got := s.GetCell(100, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(0, 0, 4, 4, 'X', ColorRed)
	s.Clear()

	if strings.Contains(s.String(), "X") {
		t.Error("Clear() should remove every rune")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear() should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 0, "FIRE")
	if got := s.Row(0); got != "  FIRE              " {
		t.Errorf("Row(0) = %q", got)
	}

	s.DrawTextCentered(1, "TURN")
	if got := s.Row(1); got != "        TURN        " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(18, 2, "LONG")
	if got := s.Row(2); !strings.HasSuffix(got, "LO") {
		t.Errorf("Row(2) = %q, expected clipped text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(0, 0, 5, 3)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBox result:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(0, 4, 5, '=', ColorGreen)
	s.DrawVLine(2, 0, 4, '|', ColorGray)

	if s.Row(4) != "=====" {
		t.Errorf("Row(4) = %q", s.Row(4))
	}
	for y := 0; y < 4; y++ {
		if s.GetCell(2, y).Rune != '|' || s.GetCell(2, y).Color != ColorGray {
			t.Errorf("vertical line missing at row %d", y)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(2, 2, 'A', ColorYellow)
	s.SetColored(8, 8, 'B', ColorYellow)

	s.Resize(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Fatalf("Resize() dims = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.GetCell(2, 2) != (Cell{Rune: 'A', Color: ColorYellow}) {
		t.Error("Resize should preserve content within new bounds")
	}

	s.Resize(10, 10)
	if s.Get(8, 8) != ' ' {
		t.Error("Content beyond a shrink should not reappear after growing")
	}
}
