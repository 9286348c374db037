package viewer

import (
	"viewer/buffer"
	"viewer/config"
	"viewer/terminal"

	"github.com/gdamore/tcell/v2"
)

// Display is the surface a frame is drawn on. tcell.Screen satisfies it.
type Display interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	ShowCursor(x, y int)
	Show()
}

// KeyReader delivers one key per call, blocking until it arrives. It
// reports false when no more input will come.
type KeyReader interface {
	ReadKey() (terminal.Key, bool)
}

// Frame is the geometry used for the most recent render.
type Frame struct {
	Rows, Cols int
	Gutter     int
}

type Viewer struct {
	buf     *buffer.Buffer
	theme   *config.ColorScheme
	cursor  Cursor
	gutterW int
	frame   Frame
}

// New returns a viewer over buf with the cursor on the first character of
// the first line. A nil theme uses the terminal's default colors.
func New(buf *buffer.Buffer, theme *config.ColorScheme) *Viewer {
	if theme == nil {
		theme = config.Themes["default"]
	}
	// The buffer is immutable, so the gutter never has to be recomputed.
	gutterW := DigitCount(buf.LineCount())
	v := &Viewer{
		buf:     buf,
		theme:   theme,
		gutterW: gutterW,
		cursor:  Cursor{Row: 0, Col: gutterW + 1},
	}
	v.cursor = Clamp(v.cursor, v.buf, v.gutterW)
	return v
}

func (v *Viewer) Cursor() Cursor { return v.cursor }

func (v *Viewer) GutterWidth() int { return v.gutterW }

// Frame returns the geometry of the last render.
func (v *Viewer) Frame() Frame { return v.frame }

// Apply performs a's movement and clamps the result. Non-movement actions
// leave the cursor where it is.
func (v *Viewer) Apply(a Action) {
	dRow, dCol := a.Delta()
	v.cursor = Clamp(v.cursor.Move(dRow, dCol), v.buf, v.gutterW)
}

// Step applies a and redraws d.
func (v *Viewer) Step(d Display, a Action) {
	v.Apply(a)
	v.Render(d)
}

// Run draws the first frame and then handles one key per iteration until q
// is pressed or keys runs dry. Every key, bound or not, is followed by a
// full redraw so a resize is picked up on the next event.
func (v *Viewer) Run(keys KeyReader, d Display) {
	v.Render(d)
	for {
		k, ok := keys.ReadKey()
		if !ok {
			return
		}
		a := ActionFor(k)
		if a == ActionQuit {
			return
		}
		v.Step(d, a)
	}
}
