package viewer

import (
	"testing"

	"viewer/buffer"
)

func TestClampCases(t *testing.T) {
	// gutter 1, lines: "ab", "", "xyz"
	buf := buffer.FromString("ab\n\nxyz")
	tests := []struct {
		name string
		in   Cursor
		want Cursor
	}{
		{"already valid", Cursor{0, 2}, Cursor{0, 2}},
		{"negative row", Cursor{-5, 2}, Cursor{0, 2}},
		{"row past end", Cursor{9, 2}, Cursor{2, 2}},
		{"negative col", Cursor{0, -3}, Cursor{0, 2}},
		{"col inside gutter", Cursor{2, 1}, Cursor{2, 2}},
		{"col past line end", Cursor{2, 40}, Cursor{2, 3}},
		{"col at threshold", Cursor{2, 4}, Cursor{2, 3}},
		{"col below threshold kept", Cursor{2, 3}, Cursor{2, 3}},
		{"empty line", Cursor{1, 7}, Cursor{1, 2}},
		{"two char line", Cursor{0, 9}, Cursor{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, buf, 1); got != tt.want {
				t.Fatalf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampIsIdempotent(t *testing.T) {
	bufs := []*buffer.Buffer{
		buffer.FromString(""),
		buffer.FromString("ab\n\nxyz"),
		buffer.FromString("a\nbb\nccc\n\n" + "0123456789\n1\n2\n3\n4\n5\n6"),
	}
	for _, buf := range bufs {
		gutter := DigitCount(buf.LineCount())
		for row := -3; row <= buf.LineCount()+3; row++ {
			for col := -3; col <= 20; col++ {
				once := Clamp(Cursor{row, col}, buf, gutter)
				twice := Clamp(once, buf, gutter)
				if once != twice {
					t.Fatalf("Clamp not idempotent for (%d, %d): %+v then %+v", row, col, once, twice)
				}
			}
		}
	}
}

func TestClampBoundsHoldForMovementSequences(t *testing.T) {
	buf := buffer.FromString("short\n\na much longer line here\nx\n\n\nend")
	gutter := DigitCount(buf.LineCount())
	actions := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

	// Walk deterministic pseudo-random sequences over every action.
	seed := uint32(7)
	c := Cursor{0, gutter + 1}
	for i := 0; i < 5000; i++ {
		seed = seed*1664525 + 1013904223
		a := actions[seed>>30]
		dRow, dCol := a.Delta()
		c = Clamp(c.Move(dRow, dCol), buf, gutter)

		if c.Row < 0 || c.Row >= buf.LineCount() {
			t.Fatalf("step %d: row %d out of [0, %d)", i, c.Row, buf.LineCount())
		}
		if c.Col <= gutter {
			t.Fatalf("step %d: col %d inside gutter %d", i, c.Col, gutter)
		}
		if limit := max(gutter+1, buf.LineLen(c.Row)+gutter-1); c.Col > limit {
			t.Fatalf("step %d: col %d beyond %d", i, c.Col, limit)
		}
	}
}

func TestDigitCount(t *testing.T) {
	tests := map[int]int{0: 0, 1: 1, 9: 1, 10: 2, 99: 2, 100: 3, 123456: 6}
	for n, want := range tests {
		if got := DigitCount(n); got != want {
			t.Fatalf("DigitCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCursorMove(t *testing.T) {
	c := Cursor{Row: 1, Col: 4}
	if got := c.Move(-2, 3); got != (Cursor{Row: -1, Col: 7}) {
		t.Fatalf("Move = %+v", got)
	}
}
