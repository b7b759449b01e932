package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncer/input"
)

// tcellKeys maps named tcell keys to input keys
var tcellKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape: input.KeyEscape,
	tcell.KeyEnter:  input.KeyEnter,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyCtrlC:  input.KeyCtrlC,
}

// translateKey converts a tcell key event; KeyNone for keys with no mapping
func translateKey(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		return input.RuneKey(ev.Rune())
	}
	return tcellKeys[ev.Key()]
}
