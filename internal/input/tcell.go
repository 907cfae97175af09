package input

import "github.com/gdamore/tcell/v2"

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyUpLeft,
	tcell.KeyPgUp:   KeyUpRight,
	tcell.KeyEnd:    KeyDownLeft,
	tcell.KeyPgDn:   KeyDownRight,
	tcell.KeyEscape: KeyEscape,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyCtrlC:  KeyQuit,
}

// FromTcell переводит событие терминала в событие ввода.
// Неизвестные клавиши превращаются в пустое событие.
func FromTcell(ev *tcell.EventKey) Event {
	if ev == nil {
		return None
	}
	if ev.Key() == tcell.KeyRune {
		return Rune(ev.Rune())
	}
	if k, ok := tcellKeys[ev.Key()]; ok {
		return Event{Key: k}
	}
	return None
}
