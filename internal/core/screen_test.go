package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 6)

	if s.Width() != 20 || s.Height() != 6 {
		t.Errorf("size = %dx%d, expected 20x6", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}

	neg := NewScreen(-3, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size = %dx%d, expected 0x0", neg.Width(), neg.Height())
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetColored(3, 2, 'x', ColorGreen)

	got := s.GetCell(3, 2)
	if got.Rune != 'x' || got.Color != ColorGreen {
		t.Errorf("GetCell(3, 2) = %+v, expected x/green", got)
	}

	s.Set(3, 2, 'y')
	if got := s.GetCell(3, 2); got.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", got.Color)
	}

	// Out of bounds writes are ignored and reads are blank.
	s.SetColored(-1, 0, 'a', ColorRed)
	s.SetColored(10, 0, 'a', ColorRed)
	s.SetColored(0, 4, 'a', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(99, 99) != blank {
		t.Error("out of bounds reads should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		text  string
		wantX int
		want  string
	}{
		{"ascii", 2, "force", 2, "force"},
		{"clipped", 8, "hello", 8, "he"},
		{"multibyte", 0, "│ab", 0, "│ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawTextColored(tt.x, 0, tt.text, ColorCyan)

			row := []rune(s.Row(0))
			got := string(row[tt.wantX : tt.wantX+len([]rune(tt.want))])
			if got != tt.want {
				t.Errorf("Row(0)[%d:] = %q, expected %q", tt.wantX, got, tt.want)
			}
			if c := s.GetCell(tt.wantX, 0).Color; c != ColorCyan {
				t.Errorf("color = %v, expected cyan", c)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'H' || s.Get(x+1, 1) != 'i' {
		t.Errorf("Row(1) = %q, expected Hi centered at %d", s.Row(1), x)
	}
	if s.GetCell(x, 1).Color != ColorYellow {
		t.Errorf("centered text color = %v, expected yellow", s.GetCell(x, 1).Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("Get(%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
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
	if s.GetCell(1, 1).Color != ColorGray {
		t.Errorf("box color = %v, expected gray", s.GetCell(1, 1).Color)
	}

	tiny := NewScreen(3, 3)
	tiny.DrawBox(NewRect(0, 0, 1, 1), ColorGray)
	if tiny.Get(0, 0) != ' ' {
		t.Error("DrawBox smaller than 2x2 should draw nothing")
	}
}

func TestScreenStringAndClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	s.Clear()
	if got := s.String(); strings.Trim(got, " \n") != "" {
		t.Errorf("String() after Clear = %q, expected spaces", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.Row(0) != "Hell" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "Hell")
	}

	s.Resize(12, 5)
	if !strings.HasPrefix(s.Row(0), "Hell ") {
		t.Errorf("Row(0) = %q after enlarging", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("Resize should keep cell colors")
	}
	if s.Row(-1) != strings.Repeat(" ", 12) {
		t.Errorf("Row(-1) = %q, expected spaces", s.Row(-1))
	}
}

func TestRectContainsAndClamp(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if Clamp(-2, 0, 3) != 0 || Clamp(5, 0, 3) != 3 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp() did not restrict to [0, 3]")
	}
}
