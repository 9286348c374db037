package viewer

import (
	"viewer/terminal"

	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:  "none",
	ActionLeft:  "left",
	ActionRight: "right",
	ActionUp:    "up",
	ActionDown:  "down",
	ActionQuit:  "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Delta returns the cursor movement for a, or zero for non-movement actions.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	}
	return 0, 0
}

// ActionFor maps a key to its binding. Only unmodified h, j, k, l and q are
// bound; resizes and every other key map to ActionNone.
func ActionFor(k terminal.Key) Action {
	if k.Resize || k.Code != tcell.KeyRune || k.Mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return ActionNone
	}
	switch k.Rune {
	case 'h':
		return ActionLeft
	case 'l':
		return ActionRight
	case 'k':
		return ActionUp
	case 'j':
		return ActionDown
	case 'q':
		return ActionQuit
	}
	return ActionNone
}
