package viewer

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// FormatLineNumber returns the 1-based line number right-aligned in width
// columns, followed by the separator space.
func FormatLineNumber(lineIdx, width int) string {
	return fmt.Sprintf("%*d ", width, lineIdx+1)
}

// Render draws the visible lines and places the cursor. The terminal size
// is read from d on every call; the viewport always starts at line 0.
func (v *Viewer) Render(d Display) {
	w, h := d.Size()
	v.cursor = Clamp(v.cursor, v.buf, v.gutterW)
	v.frame = Frame{Rows: h, Cols: w, Gutter: v.gutterW}

	gutterStyle := tcell.StyleDefault.Background(v.theme.Background).Foreground(v.theme.LineNumber)
	activeGutterStyle := tcell.StyleDefault.Background(v.theme.Background).Foreground(v.theme.LineNumberActive)
	lineStyle := tcell.StyleDefault.Background(v.theme.Background).Foreground(v.theme.Foreground)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.SetContent(x, y, ' ', nil, lineStyle)
		}
	}

	for row, line := range v.buf.Lines(0, h) {
		style := gutterStyle
		if row == v.cursor.Row {
			style = activeGutterStyle
		}
		x := 0
		for _, ch := range FormatLineNumber(row, v.gutterW) {
			if x >= w {
				break
			}
			d.SetContent(x, row, ch, nil, style)
			x++
		}
		drawContent(d, v.gutterW+1, row, w, line, lineStyle)
	}

	d.ShowCursor(v.cursor.Col, v.cursor.Row)
	d.Show()
}

// drawContent draws line from column x0, stopping at the right edge. It
// returns the number of characters drawn.
func drawContent(d Display, x0, y, w int, line string, style tcell.Style) int {
	x := x0
	drawn := 0
	for _, r := range line {
		cw := 1
		if r == '\t' || unicode.IsControl(r) {
			r = ' '
		} else {
			cw = runewidth.RuneWidth(r)
			if cw == 0 {
				continue
			}
		}
		if x+cw > w {
			break
		}
		d.SetContent(x, y, r, nil, style)
		x += cw
		drawn++
	}
	return drawn
}
