package domain

// RunState - состояние контроллера хода
type RunState uint8

const (
	StatePreRun RunState = iota
	StateAwaitingInput
	StatePlayerTurn
	StateMonsterTurn
	StateShowInventory
	StateShowDropItem
)

// Маппинг для логов RunState -> String
var runStateToString = map[RunState]string{
	StatePreRun:        "PRE_RUN",
	StateAwaitingInput: "AWAITING_INPUT",
	StatePlayerTurn:    "PLAYER_TURN",
	StateMonsterTurn:   "MONSTER_TURN",
	StateShowInventory: "SHOW_INVENTORY",
	StateShowDropItem:  "SHOW_DROP_ITEM",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (s RunState) String() string {
	if val, ok := runStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseRunState - обратное преобразование имени состояния
func ParseRunState(name string) (RunState, bool) {
	for s, val := range runStateToString {
		if val == name {
			return s, true
		}
	}
	return StatePreRun, false
}

// RunsPipeline: в этих состояниях тик прогоняет все системы
func (s RunState) RunsPipeline() bool {
	return s == StatePreRun || s == StatePlayerTurn || s == StateMonsterTurn
}

// WaitsForInput: контроллер ждет событие от хоста
func (s RunState) WaitsForInput() bool {
	return s == StateAwaitingInput || s == StateShowInventory || s == StateShowDropItem
}
