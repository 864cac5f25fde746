package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, want '#'", got)
	}

	// Out of bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, want space", got)
	}
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get(100, 100) = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '^', ColorBrightYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '^' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v", cell)
	}

	if cell := s.GetCell(-5, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'a')
	s.Set(3, 3, 'z')

	s.Clear()
	if s.Get(0, 0) != ' ' || s.Get(3, 3) != ' ' {
		t.Error("Clear did not reset cells")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes")
	}

	// Clipped text must not wrap or panic.
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText clipping lost visible runes")
	}
	if s.Get(0, 1) == 'n' {
		t.Error("DrawText wrapped past the right edge")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(1, 0, "a·b")
	if s.Get(1, 0) != 'a' || s.Get(2, 0) != '·' || s.Get(3, 0) != 'b' {
		t.Errorf("multibyte runes not packed one per cell: %q", s.String())
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, '@')

	s.Resize(10, 8)
	if s.Width() != 10 || s.Height() != 8 {
		t.Errorf("size = %dx%d, want 10x8", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != '@' {
		t.Errorf("Get(1, 1) after grow = %q, want '@'", got)
	}

	s.Resize(2, 2)
	if got := s.Get(1, 1); got != '@' {
		t.Errorf("Get(1, 1) after shrink = %q, want '@'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}
