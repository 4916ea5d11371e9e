package term

import (
	"unicode"

	"snake-game/game/types"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the game to do
type Action int

const (
	ActionNone Action = iota
	ActionTurn
	ActionPause
	ActionQuit
)

var arrowKeys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var letterKeys = map[rune]types.Direction{
	'w': types.Up,
	's': types.Down,
	'a': types.Left,
	'd': types.Right,
}

// Translate maps a key event to an action. The direction is only set for
// ActionTurn.
func Translate(ev *tcell.EventKey) (Action, types.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ActionPause, 0
	case tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'p', 'P':
			return ActionPause, 0
		case 'q', 'Q':
			return ActionQuit, 0
		default:
			if dir, ok := letterKeys[unicode.ToLower(r)]; ok {
				return ActionTurn, dir
			}
		}
	default:
		if dir, ok := arrowKeys[ev.Key()]; ok {
			return ActionTurn, dir
		}
	}
	return ActionNone, 0
}
