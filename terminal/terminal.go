// Package terminal owns the tcell screen: raw-mode setup and teardown,
// blocking key reads and terminal size queries.
package terminal

import (
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdout is not a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Key is one logical input event.
type Key struct {
	Code   tcell.Key
	Rune   rune // set when Code is tcell.KeyRune
	Mod    tcell.ModMask
	Resize bool // the terminal changed size; Code and Rune are unset
}

type Session struct {
	screen tcell.Screen
	closed bool
}

// Open initializes the controlling terminal.
func Open() (*Session, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewSession(screen)
}

// NewSession initializes screen and takes ownership of it.
func NewSession(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &Session{screen: screen}, nil
}

// ReadKey blocks until the next key press or resize. It reports false once
// the screen has been finalized.
func (s *Session) ReadKey() (Key, bool) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return Key{}, false
		case *tcell.EventKey:
			k := Key{Code: ev.Key(), Mod: ev.Modifiers()}
			if ev.Key() == tcell.KeyRune {
				k.Rune = ev.Rune()
			}
			return k, true
		case *tcell.EventResize:
			s.screen.Sync()
			return Key{Resize: true}, true
		}
	}
}

// Size returns the terminal size in cells.
func (s *Session) Size() (rows, cols int) {
	cols, rows = s.screen.Size()
	return rows, cols
}

func (s *Session) Display() tcell.Screen {
	return s.screen
}

// Close restores the terminal. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Clear()
	s.screen.Fini()
}
