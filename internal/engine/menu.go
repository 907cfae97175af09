package engine

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/input"
	"github.com/yohamta/donburi"
)

// MenuOutcome - чем закончился кадр меню
type MenuOutcome uint8

const (
	MenuNoResponse MenuOutcome = iota
	MenuCancel
	MenuSelected
)

var menuOutcomeToString = map[MenuOutcome]string{
	MenuNoResponse: "NO_RESPONSE",
	MenuCancel:     "CANCEL",
	MenuSelected:   "SELECTED",
}

func (o MenuOutcome) String() string {
	if val, ok := menuOutcomeToString[o]; ok {
		return val
	}
	return "UNKNOWN"
}

// MenuItem - строка меню, связанная с предметом
type MenuItem struct {
	Entity donburi.Entity
	Label  string
}

// MenuResult - ответ меню. Item заполнен только для MenuSelected.
type MenuResult struct {
	Outcome MenuOutcome
	Item    donburi.Entity
}

// Menu - внешний коллаборатор: показывает список и возвращает выбор игрока
type Menu interface {
	Select(title string, items []MenuItem, ev input.Event) MenuResult
}

// KeyMenu выбирает пункт по букве: 'a' - первый, 'b' - второй и т.д. Esc закрывает меню.
type KeyMenu struct{}

func (KeyMenu) Select(_ string, items []MenuItem, ev input.Event) MenuResult {
	switch ev.Key {
	case input.KeyEscape:
		return MenuResult{Outcome: MenuCancel}
	case input.KeyRune:
		idx := int(ev.Rune - 'a')
		if ev.Rune >= 'a' && ev.Rune <= 'z' && idx < len(items) {
			return MenuResult{Outcome: MenuSelected, Item: items[idx].Entity}
		}
	}
	return MenuResult{Outcome: MenuNoResponse}
}

// MenuLetter - буква для пункта с данным индексом
func MenuLetter(i int) rune {
	return rune('a' + i)
}
