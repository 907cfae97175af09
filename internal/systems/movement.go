package systems

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
)

// TryMovePlayer разрешает неоднозначность "идти или бить".
// Если в клетке назначения есть кто-то с CombatStats, ставится атака и игрок стоит на месте.
// Иначе игрок входит в клетку, если она не заблокирована.
func TryMovePlayer(w *world.World, dx, dy int) error {
	player := w.Player()
	pos, err := world.Component(w, player, domain.PositionComponent)
	if err != nil {
		return err
	}

	m := w.Map
	dest := m.Clamp(pos.Shift(dx, dy))
	idx := m.Index(dest.X, dest.Y)

	moveLogger := logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"from":      *pos,
		"to":        dest,
	})

	for _, other := range m.Content[idx] {
		if other == player || !w.Valid(other) {
			continue
		}
		if w.ECS.Entry(other).HasComponent(domain.CombatStatsComponent) {
			w.Intents.Melee.Set(player, domain.WantsToMelee{Target: other})
			moveLogger.WithField("target", w.Describe(other)).Debug("Bumped into a combatant. Action: ATTACK")
			return nil
		}
	}

	if m.Blocked[idx] {
		moveLogger.Debug("Destination blocked.")
		return nil
	}

	*pos = dest
	if vs, err := world.Component(w, player, domain.ViewshedComponent); err == nil {
		vs.Dirty = true
	}
	w.SetPlayerPos(dest)
	moveLogger.Debug("Player moved.")
	return nil
}

// GetItem ставит подбор первого предмета в клетке игрока.
// Возвращает false, если подбирать нечего: это не ошибка, а запись в журнале.
func GetItem(w *world.World) (bool, error) {
	player := w.Player()
	pos, err := world.Component(w, player, domain.PositionComponent)
	if err != nil {
		return false, err
	}

	for _, e := range w.Map.EntitiesAt(*pos) {
		if !w.Valid(e) {
			continue
		}
		entry := w.ECS.Entry(e)
		if entry.HasComponent(domain.ItemTag) && entry.HasComponent(domain.PositionComponent) {
			w.Intents.Pickup.Set(player, domain.WantsToPickupItem{CollectedBy: player, Item: e})
			return true, nil
		}
	}

	w.Log.Add("Здесь нечего подобрать.", domain.LogTypeInfo)
	return false, nil
}
