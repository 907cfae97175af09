package input

// Key - тип клавиши, независимый от терминальной библиотеки
type Key uint8

const (
	KeyNone Key = iota // В этом тике ввода нет
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyUpLeft
	KeyUpRight
	KeyDownLeft
	KeyDownRight
	KeyEscape
	KeyEnter
	KeyQuit
)

// Event - одно событие ввода за тик
type Event struct {
	Key  Key
	Rune rune
}

// None - пустое событие
var None = Event{}

// Rune создает событие для печатного символа
func Rune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

func (e Event) IsNone() bool {
	return e.Key == KeyNone
}

// Command - что игрок хочет сделать
type Command uint8

const (
	CmdNone Command = iota
	CmdMove
	CmdPickup
	CmdInventory
	CmdDrop
)

var commandToString = map[Command]string{
	CmdNone:      "NONE",
	CmdMove:      "MOVE",
	CmdPickup:    "PICKUP",
	CmdInventory: "INVENTORY",
	CmdDrop:      "DROP",
}

func (c Command) String() string {
	if val, ok := commandToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

type delta struct{ dx, dy int }

var keyDirections = map[Key]delta{
	KeyUp:        {0, -1},
	KeyDown:      {0, 1},
	KeyLeft:      {-1, 0},
	KeyRight:     {1, 0},
	KeyUpLeft:    {-1, -1},
	KeyUpRight:   {1, -1},
	KeyDownLeft:  {-1, 1},
	KeyDownRight: {1, 1},
}

// vi-клавиши и цифровой блок
var runeDirections = map[rune]delta{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
	'4': {-1, 0}, '6': {1, 0}, '8': {0, -1}, '2': {0, 1},
	'7': {-1, -1}, '9': {1, -1}, '1': {-1, 1}, '3': {1, 1},
}

var runeCommands = map[rune]Command{
	'g': CmdPickup,
	'i': CmdInventory,
	'd': CmdDrop,
}

// Decode переводит событие в команду. Для CmdMove возвращает смещение.
func (e Event) Decode() (cmd Command, dx, dy int) {
	switch e.Key {
	case KeyRune:
		if d, ok := runeDirections[e.Rune]; ok {
			return CmdMove, d.dx, d.dy
		}
		if c, ok := runeCommands[e.Rune]; ok {
			return c, 0, 0
		}
	default:
		if d, ok := keyDirections[e.Key]; ok {
			return CmdMove, d.dx, d.dy
		}
	}
	return CmdNone, 0, 0
}
