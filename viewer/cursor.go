package viewer

import "viewer/buffer"

// Cursor is a position on the rendered grid. Col counts from the left edge
// of the terminal, so the line-number gutter occupies [0, gutter].
type Cursor struct {
	Row, Col int
}

// Move applies a raw delta. The result may lie outside the buffer until it
// is clamped.
func (c Cursor) Move(dRow, dCol int) Cursor {
	return Cursor{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Clamp forces c back inside buf and to the right of a gutter of the given
// width. The row is fixed first since the column bound depends on the
// length of the line the cursor ends up on.
//
// The column may not go past lineLen+gutter-1, one short of the line's last
// character. That limit is kept as is.
func Clamp(c Cursor, buf *buffer.Buffer, gutter int) Cursor {
	n := buf.LineCount()
	if c.Row < 0 {
		c.Row = 0
	} else if c.Row >= n {
		c.Row = n - 1
	}

	lineLen := buf.LineLen(c.Row)
	if c.Col < 0 {
		c.Col = 0
	} else if c.Col >= lineLen+gutter {
		c.Col = max(gutter+1, lineLen+gutter-1)
	}

	if c.Col <= gutter {
		c.Col = gutter + 1
	}
	return c
}

// DigitCount returns the number of decimal digits in n. Zero has none.
func DigitCount(n int) int {
	digits := 0
	for ; n > 0; n /= 10 {
		digits++
	}
	return digits
}
