package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/sim"
)

func TestScreenNewAndClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, expected 10x5", s.Width(), s.Height())
	}

	// All cells start as spaces with no color
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != sim.ColorNone {
				t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', sim.ColorCyan)
	c := s.GetCell(3, 2)
	if c.Rune != 'X' || c.Color != sim.ColorCyan {
		t.Errorf("GetCell(3,2) = %+v", c)
	}
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3,2) = %q", s.Get(3, 2))
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes are silently ignored
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	// Out-of-bounds reads return blank
	if s.Get(-1, 0) != ' ' || s.Get(100, 100) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}

	// Nothing in bounds changed
	if !strings.HasPrefix(s.String(), strings.Repeat(" ", 10)) {
		t.Error("out-of-bounds writes leaked into the buffer")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(2, 1, "HI", sim.ColorYellow)
	if s.Get(2, 1) != 'H' || s.Get(3, 1) != 'I' {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != sim.ColorYellow {
		t.Error("DrawTextColored should carry the color")
	}

	// Clipping: text past the right edge is dropped
	s.DrawText(8, 0, "LONG")
	if s.Row(0) != "        LO" {
		t.Errorf("clipped row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "ABC", sim.ColorNone)
	if s.Get(4, 1) != 'A' || s.Get(5, 1) != 'B' || s.Get(6, 1) != 'C' {
		t.Errorf("centered row = %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'X', sim.ColorRed)

	// Grow: content preserved
	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("dimensions after grow = %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'X' || c.Color != sim.ColorRed {
		t.Errorf("content lost on grow: %+v", c)
	}

	// Shrink: clipped content dropped, the rest preserved
	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != 'X' {
		t.Errorf("content lost on shrink: %+v", c)
	}
	if s.Get(2, 0) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	want := "A  \n  B"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q", got)
	}
}
