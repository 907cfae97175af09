package world

import (
	"fmt"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// World - единственный владелец всех сущностей и общих ресурсов тика.
// Системы получают его явно вместо глобальных синглтонов.
type World struct {
	ECS donburi.World

	Map     *domain.GameMap
	Log     *domain.GameLog
	Intents *Intents

	player    donburi.Entity
	playerPos domain.Position
	runState  domain.RunState

	despawn []donburi.Entity
}

// New создает пустой мир в состоянии PreRun
func New(m *domain.GameMap) *World {
	return &World{
		ECS:      donburi.NewWorld(),
		Map:      m,
		Log:      domain.NewGameLog(),
		Intents:  NewIntents(),
		player:   donburi.Null,
		runState: domain.StatePreRun,
	}
}

func (w *World) Player() donburi.Entity { return w.player }

// SetPlayer регистрирует игрока и запоминает его позицию
func (w *World) SetPlayer(e donburi.Entity) {
	w.player = e
	entry := w.ECS.Entry(e)
	if entry.HasComponent(domain.PositionComponent) {
		w.playerPos = *domain.PositionComponent.Get(entry)
	}
}

// PlayerPos - позиция игрока, которой пользуется ИИ
func (w *World) PlayerPos() domain.Position { return w.playerPos }

func (w *World) SetPlayerPos(p domain.Position) { w.playerPos = p }

func (w *World) RunState() domain.RunState { return w.runState }

func (w *World) SetRunState(s domain.RunState) {
	if s != w.runState {
		logger.Log.WithFields(logrus.Fields{
			"component": "world",
			"from":      w.runState.String(),
			"to":        s.String(),
		}).Debug("Run state changed.")
	}
	w.runState = s
}

// IsPlayer проверяет, является ли сущность игроком
func (w *World) IsPlayer(e donburi.Entity) bool {
	return e != donburi.Null && e == w.player
}

// Valid: сущность жива и не ждет удаления
func (w *World) Valid(e donburi.Entity) bool {
	if e == donburi.Null || !w.ECS.Valid(e) {
		return false
	}
	for _, d := range w.despawn {
		if d == e {
			return false
		}
	}
	return true
}

// Entry возвращает запись сущности или ошибку инварианта для мертвого хендла
func (w *World) Entry(e donburi.Entity) (*donburi.Entry, error) {
	if !w.Valid(e) {
		return nil, domain.Invariantf("entity %v does not exist", e)
	}
	return w.ECS.Entry(e), nil
}

// Component достает компонент или возвращает ошибку инварианта, если его нет
func Component[T any](w *World, e donburi.Entity, ct *donburi.ComponentType[T]) (*T, error) {
	entry, err := w.Entry(e)
	if err != nil {
		return nil, err
	}
	if !entry.HasComponent(ct) {
		return nil, domain.Invariantf("entity %v (%s) has no %s", e, domain.NameOf(entry), ct.Name())
	}
	return ct.Get(entry), nil
}

// DeferDespawn откладывает удаление сущности до Flush.
// Сущность сразу пропадает из индекса клеток.
func (w *World) DeferDespawn(e donburi.Entity) {
	if !w.Valid(e) {
		return
	}
	entry := w.ECS.Entry(e)
	if entry.HasComponent(domain.PositionComponent) {
		p := domain.PositionComponent.Get(entry)
		if w.Map.InBounds(*p) {
			w.Map.RemoveFromContent(w.Map.Index(p.X, p.Y), e)
		}
	}
	w.despawn = append(w.despawn, e)
}

// Flush применяет отложенные удаления. Вызывается между тиками, вне запросов.
func (w *World) Flush() int {
	n := len(w.despawn)
	for _, e := range w.despawn {
		if w.ECS.Valid(e) {
			w.ECS.Remove(e)
		}
	}
	w.despawn = w.despawn[:0]

	if n > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "world",
			"removed":   n,
		}).Debug("Despawn buffer flushed.")
	}
	return n
}

// Pending - сколько сущностей ждут удаления
func (w *World) Pending() int { return len(w.despawn) }

// Describe - короткое описание сущности для логов
func (w *World) Describe(e donburi.Entity) string {
	if !w.Valid(e) {
		return fmt.Sprintf("<dead %v>", e)
	}
	return domain.NameOf(w.ECS.Entry(e))
}
