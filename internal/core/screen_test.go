package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height = %d, want 5", s.Height())
	}

	// All cells should start as spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Cell (%d, %d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestSetCell(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '*', ColorCyan)
	cell := s.GetCell(3, 2)
	if cell.Rune != '*' {
		t.Errorf("Rune = %q, want '*'", cell.Rune)
	}
	if cell.Color != ColorCyan {
		t.Errorf("Color = %v, want ColorCyan", cell.Color)
	}

	// Out-of-bounds writes are silently ignored
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	s.SetCell(0, 5, 'x', ColorRed)

	// Out-of-bounds reads return blank default cells
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %v, want blank", got)
	}
}

func TestClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '@', ColorMagenta)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %v, want blank default", cell)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place text, row = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("DrawText clipping wrong, row = %q", s.Row(0))
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "ok", ColorBrightGreen)

	for i := 0; i < 2; i++ {
		if s.GetCell(i, 0).Color != ColorBrightGreen {
			t.Errorf("cell %d color = %v, want ColorBrightGreen", i, s.GetCell(i, 0).Color)
		}
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "ab")

	// (10-2)/2 = 4
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' {
		t.Errorf("centered text misplaced, row = %q", s.Row(1))
	}
}

func TestResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '#')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dims = %dx%d, want 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != '#' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking clips
	s.Resize(3, 3)
	if s.Get(2, 2) != '#' {
		t.Error("content within new bounds should survive shrink")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected 1 newline, got %d", strings.Count(got, "\n"))
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3))

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' {
		t.Error("top corners wrong")
	}
	if s.Get(0, 2) != '└' || s.Get(4, 2) != '┘' {
		t.Error("bottom corners wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("edges wrong")
	}
}
