package engine

import (
	"context"
	"fmt"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/input"
	"github.com/ocamlmycaml/saloon-rogue/internal/systems"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/looplab/fsm"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const (
	inventoryTitle = "Инвентарь"
	dropTitle      = "Что бросить?"
)

// События автомата ходов
const (
	evStart         = "start"
	evPlayerDone    = "player_done"
	evMonstersDone  = "monsters_done"
	evMove          = "move"
	evPickup        = "pickup"
	evOpenInventory = "open_inventory"
	evOpenDrop      = "open_drop"
	evMenuCancel    = "menu_cancel"
	evMenuSelect    = "menu_select"
)

var (
	preRun        = domain.StatePreRun.String()
	awaitingInput = domain.StateAwaitingInput.String()
	playerTurn    = domain.StatePlayerTurn.String()
	monsterTurn   = domain.StateMonsterTurn.String()
	showInventory = domain.StateShowInventory.String()
	showDropItem  = domain.StateShowDropItem.String()
)

// turnEvents - таблица переходов контроллера хода
var turnEvents = fsm.Events{
	{Name: evStart, Src: []string{preRun}, Dst: awaitingInput},
	{Name: evPlayerDone, Src: []string{playerTurn}, Dst: monsterTurn},
	{Name: evMonstersDone, Src: []string{monsterTurn}, Dst: awaitingInput},
	{Name: evMove, Src: []string{awaitingInput}, Dst: playerTurn},
	{Name: evPickup, Src: []string{awaitingInput}, Dst: playerTurn},
	{Name: evOpenInventory, Src: []string{awaitingInput}, Dst: showInventory},
	{Name: evOpenDrop, Src: []string{awaitingInput}, Dst: showDropItem},
	{Name: evMenuCancel, Src: []string{showInventory, showDropItem}, Dst: awaitingInput},
	{Name: evMenuSelect, Src: []string{showInventory, showDropItem}, Dst: playerTurn},
}

// После прогона систем автомат уходит по этому событию
var pipelineEvents = map[domain.RunState]string{
	domain.StatePreRun:      evStart,
	domain.StatePlayerTurn:  evPlayerDone,
	domain.StateMonsterTurn: evMonstersDone,
}

// Game - контроллер хода. Один вызов Tick - не больше одного перехода состояния.
type Game struct {
	world *world.World
	menu  Menu
	fsm   *fsm.FSM
	ticks int
}

// New создает контроллер поверх уже построенного мира.
// Если menu == nil, используется KeyMenu.
func New(w *world.World, menu Menu) *Game {
	if menu == nil {
		menu = KeyMenu{}
	}
	g := &Game{world: w, menu: menu}
	g.fsm = fsm.NewFSM(w.RunState().String(), turnEvents, fsm.Callbacks{
		// World хранит типизированную копию состояния для систем
		"enter_state": func(_ context.Context, e *fsm.Event) {
			if s, ok := domain.ParseRunState(e.Dst); ok {
				w.SetRunState(s)
			}
		},
	})
	return g
}

func (g *Game) World() *world.World { return g.world }

func (g *Game) State() domain.RunState { return g.world.RunState() }

// Ticks - сколько тиков успешно завершено
func (g *Game) Ticks() int { return g.ticks }

// NeedsInput: контроллер ждет событие от хоста
func (g *Game) NeedsInput() bool {
	return g.world.RunState().WaitsForInput()
}

// Pipeline возвращает имена систем в порядке выполнения
func (g *Game) Pipeline() []string {
	pipeline := systems.Pipeline()
	names := make([]string, len(pipeline))
	for i, s := range pipeline {
		names[i] = s.Name
	}
	return names
}

// PlayerDead: игрок погиб, но остается в мире
func (g *Game) PlayerDead() bool {
	stats, err := world.Component(g.world, g.world.Player(), domain.CombatStatsComponent)
	return err == nil && stats.IsDead()
}

// OpenMenu возвращает содержимое открытого меню для отрисовки
func (g *Game) OpenMenu() (title string, items []MenuItem, open bool) {
	switch g.world.RunState() {
	case domain.StateShowInventory:
		return inventoryTitle, g.menuItems(true), true
	case domain.StateShowDropItem:
		return dropTitle, g.menuItems(false), true
	}
	return "", nil, false
}

// Tick продвигает мир на один шаг.
// Ошибка инварианта прерывает тик: состояние не меняется, зачистка мертвых не выполняется.
func (g *Game) Tick(ev input.Event) error {
	w := g.world
	from := w.RunState()
	g.sync(from)

	event, err := g.step(from, ev)
	if err == nil && event != "" {
		err = g.fire(event)
	}
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "turn_controller",
			"tick":      g.ticks,
			"state":     from.String(),
		}).WithError(err).Error("Tick aborted.")
		w.Log.Add("Ход прерван: внутренняя ошибка.", domain.LogTypeError)
		return fmt.Errorf("tick %d in %s: %w", g.ticks, from, err)
	}
	next := w.RunState()

	// Зачистка после каждого перехода, даже на кадрах меню
	systems.DeleteTheDead(w)
	w.Flush()

	g.ticks++
	logger.Log.WithFields(logrus.Fields{
		"component": "turn_controller",
		"tick":      g.ticks,
		"from":      from.String(),
		"to":        next.String(),
		"event":     event,
	}).Debug("Tick complete.")
	return nil
}

// sync подтягивает автомат к состоянию мира, если его выставили снаружи
func (g *Game) sync(s domain.RunState) {
	if g.fsm.Current() == s.String() {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "turn_controller",
		"fsm":       g.fsm.Current(),
		"world":     s.String(),
	}).Debug("Run state set outside the controller.")
	g.fsm.SetState(s.String())
}

// fire выполняет переход. Событие, которого нет в таблице для текущего состояния, - нарушение инварианта.
func (g *Game) fire(event string) error {
	if err := g.fsm.Event(context.Background(), event); err != nil {
		return domain.Invariantf("transition %q from %s: %v", event, g.fsm.Current(), err)
	}
	return nil
}

// step выполняет работу тика и возвращает событие автомата ("" - остаться на месте)
func (g *Game) step(state domain.RunState, ev input.Event) (string, error) {
	if state.RunsPipeline() {
		if err := g.runSystems(); err != nil {
			return "", err
		}
		return pipelineEvents[state], nil
	}

	switch state {
	case domain.StateAwaitingInput:
		return g.playerInput(ev)
	case domain.StateShowInventory:
		return g.menuInput(ev, true)
	case domain.StateShowDropItem:
		return g.menuInput(ev, false)
	}
	return "", domain.Invariantf("unknown run state %d", state)
}

func (g *Game) runSystems() error {
	if err := systems.RunPipeline(g.world); err != nil {
		return err
	}
	g.world.Flush()
	return nil
}

// playerInput разбирает одно событие в ожидании ввода
func (g *Game) playerInput(ev input.Event) (string, error) {
	w := g.world
	cmd, dx, dy := ev.Decode()

	switch cmd {
	case input.CmdMove:
		if err := systems.TryMovePlayer(w, dx, dy); err != nil {
			return "", err
		}
		return evMove, nil

	case input.CmdPickup:
		queued, err := systems.GetItem(w)
		if err != nil || !queued {
			return "", err
		}
		return evPickup, nil

	case input.CmdInventory:
		if len(systems.Backpack(w, w.Player(), true)) == 0 {
			w.Log.Add("Вам нечего выпить.", domain.LogTypeInfo)
			return "", nil
		}
		return evOpenInventory, nil

	case input.CmdDrop:
		if len(systems.Backpack(w, w.Player(), false)) == 0 {
			w.Log.Add("Вам нечего бросить.", domain.LogTypeInfo)
			return "", nil
		}
		return evOpenDrop, nil
	}

	return "", nil
}

// menuInput обрабатывает кадр меню: зелья (drink) или выброс (drop)
func (g *Game) menuInput(ev input.Event, drink bool) (string, error) {
	w := g.world
	title := dropTitle
	if drink {
		title = inventoryTitle
	}

	items := g.menuItems(drink)
	res := g.menu.Select(title, items, ev)

	switch res.Outcome {
	case MenuCancel:
		return evMenuCancel, nil
	case MenuNoResponse:
		return "", nil
	}

	if !containsItem(items, res.Item) {
		return "", domain.Invariantf("menu selected %v which is not offered", res.Item)
	}

	player := w.Player()
	if drink {
		w.Intents.Drink.Set(player, domain.WantsToDrinkPotion{Potion: res.Item})
	} else {
		w.Intents.Drop.Set(player, domain.WantsToDropItem{Item: res.Item})
	}
	return evMenuSelect, nil
}

func (g *Game) menuItems(potionsOnly bool) []MenuItem {
	w := g.world
	carried := systems.Backpack(w, w.Player(), potionsOnly)
	items := make([]MenuItem, len(carried))
	for i, e := range carried {
		items[i] = MenuItem{Entity: e, Label: w.Describe(e)}
	}
	return items
}

func containsItem(items []MenuItem, e donburi.Entity) bool {
	for _, it := range items {
		if it.Entity == e {
			return true
		}
	}
	return false
}
