package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	want := Cell{Rune: '●', Color: ColorRed}
	s.SetCell(3, 4, want)
	if got := s.GetCell(3, 4); got != want {
		t.Errorf("GetCell(3, 4) = %+v, expected %+v", got, want)
	}
	if s.Get(3, 4) != '●' {
		t.Errorf("Get(3, 4) = %q, expected '●'", s.Get(3, 4))
	}

	// Out of bounds writes are dropped, reads are blank
	s.SetCell(-1, 0, want)
	s.SetCell(0, 10, want)
	if s.GetCell(-1, 0) != blank || s.GetCell(10, 0) != blank {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenSetResetsAttributes(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(1, 1, Cell{Rune: 'x', Color: ColorBlue, Reverse: true})
	s.Set(1, 1, 'y')

	if got := s.GetCell(1, 1); got != (Cell{Rune: 'y'}) {
		t.Errorf("Set should write an uncoloured cell, got %+v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColor(0, 1, "colour", ColorGreen)
	s.Highlight(NewRect(0, 0, 6, 3))

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("after Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Lines", ColorCyan)

	for i, ch := range "Lines" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("DrawTextColor: expected %q cyan at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "●○●")

	if s.Row(0)[:len("●○●")] != "●○●" {
		t.Errorf("Row(0) = %q, expected it to start with ●○●", s.Row(0))
	}
	if s.Get(3, 0) != ' ' {
		t.Errorf("multibyte runes should take one cell each, got %q at x=3", s.Get(3, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered: text not at expected position, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != want || c.Color != ColorGray {
			t.Errorf("corner at %v = %+v, expected %q gray", pos, c, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should leave the inside untouched")
	}
}

func TestScreenHighlight(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawTextColor(0, 1, "abcdef", ColorRed)
	s.Highlight(NewRect(1, 1, 3, 1))

	for x := 0; x < 6; x++ {
		c := s.GetCell(x, 1)
		want := x >= 1 && x <= 3
		if c.Reverse != want {
			t.Errorf("Reverse at x=%d = %v, expected %v", x, c.Reverse, want)
		}
		if c.Color != ColorRed {
			t.Errorf("Highlight should keep the colour at x=%d", x)
		}
	}

	// Partially off-screen rectangles do not panic
	s.Highlight(NewRect(4, 3, 5, 5))
	if !s.GetCell(5, 3).Reverse {
		t.Error("on-screen part of the rectangle should be highlighted")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColor(0, 1, "BBBBB", ColorBlue)
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("attributes should be preserved on resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Get(14, 7) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") || len(row) != 10 {
		t.Errorf("Row(2) = %q, expected 10 chars starting with Test", row)
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", outOfBounds)
	}
}
