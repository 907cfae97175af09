package systems

import (
	"fmt"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// --- PICKUP ---

// ItemCollectionSystem переносит предметы с земли в рюкзак
func ItemCollectionSystem(w *world.World) error {
	for _, intent := range w.Intents.Pickup.Drain() {
		pickup := intent.Value
		if _, err := w.Entry(pickup.CollectedBy); err != nil {
			return fmt.Errorf("pickup collector: %w", err)
		}
		item, err := w.Entry(pickup.Item)
		if err != nil {
			return fmt.Errorf("pickup item: %w", err)
		}
		if !item.HasComponent(domain.ItemTag) {
			return domain.Invariantf("pickup target %v (%s) is not an item", pickup.Item, domain.NameOf(item))
		}
		if item.HasComponent(domain.InBackpackComponent) {
			return domain.Invariantf("item %v (%s) is already carried", pickup.Item, domain.NameOf(item))
		}

		if item.HasComponent(domain.PositionComponent) {
			pos := domain.PositionComponent.Get(item)
			w.Map.RemoveFromContent(w.Map.Index(pos.X, pos.Y), pickup.Item)
			item.RemoveComponent(domain.PositionComponent)
		}
		donburi.Add(item, domain.InBackpackComponent, &domain.InBackpack{Owner: pickup.CollectedBy})

		logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"collector": w.Describe(pickup.CollectedBy),
			"item":      domain.NameOf(item),
		}).Info("Item picked up.")

		if w.IsPlayer(pickup.CollectedBy) {
			w.Log.Add(fmt.Sprintf("Вы подбираете %s.", domain.NameOf(item)), domain.LogTypeInfo)
		}
	}
	return nil
}

// --- POTION ---

// PotionUseSystem лечит выпившего (не выше MaxHP) и уничтожает зелье
func PotionUseSystem(w *world.World) error {
	for _, intent := range w.Intents.Drink.Drain() {
		stats, err := world.Component(w, intent.Entity, domain.CombatStatsComponent)
		if err != nil {
			return fmt.Errorf("potion drinker: %w", err)
		}
		potion, err := world.Component(w, intent.Value.Potion, domain.PotionComponent)
		if err != nil {
			return fmt.Errorf("potion item: %w", err)
		}

		name := w.Describe(intent.Value.Potion)
		hpBefore := stats.HP
		stats.Heal(potion.HealAmount)
		w.DeferDespawn(intent.Value.Potion)

		logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"drinker":   w.Describe(intent.Entity),
			"potion":    name,
			"hp_before": hpBefore,
			"hp_after":  stats.HP,
		}).Info("Potion consumed.")

		if w.IsPlayer(intent.Entity) {
			w.Log.Add(fmt.Sprintf("Вы выпиваете %s и восстанавливаете %d ед. здоровья.", name, potion.HealAmount), domain.LogTypeInfo)
		}
	}
	return nil
}

// --- DROP ---

// ItemDropSystem кладет предмет на клетку того, кто его выбросил
func ItemDropSystem(w *world.World) error {
	for _, intent := range w.Intents.Drop.Drain() {
		holderPos, err := world.Component(w, intent.Entity, domain.PositionComponent)
		if err != nil {
			return fmt.Errorf("drop holder: %w", err)
		}
		backpack, err := world.Component(w, intent.Value.Item, domain.InBackpackComponent)
		if err != nil {
			return fmt.Errorf("drop item: %w", err)
		}
		if backpack.Owner != intent.Entity {
			return domain.Invariantf("item %v is carried by %v, not by %v", intent.Value.Item, backpack.Owner, intent.Entity)
		}

		dropAt := *holderPos
		item := w.ECS.Entry(intent.Value.Item)
		item.RemoveComponent(domain.InBackpackComponent)
		donburi.Add(item, domain.PositionComponent, &dropAt)

		idx := w.Map.Index(dropAt.X, dropAt.Y)
		w.Map.Content[idx] = append(w.Map.Content[idx], intent.Value.Item)

		logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"holder":    w.Describe(intent.Entity),
			"item":      domain.NameOf(item),
			"at":        dropAt,
		}).Info("Item dropped.")

		if w.IsPlayer(intent.Entity) {
			w.Log.Add(fmt.Sprintf("Вы бросаете %s.", domain.NameOf(item)), domain.LogTypeInfo)
		}
	}
	return nil
}

// Backpack возвращает предметы владельца в порядке появления.
// potionsOnly оставляет только то, что можно выпить.
func Backpack(w *world.World, owner donburi.Entity, potionsOnly bool) []donburi.Entity {
	var items []donburi.Entity
	for _, e := range collect(carriedQuery, w.ECS) {
		if !w.Valid(e) {
			continue
		}
		entry := w.ECS.Entry(e)
		if domain.InBackpackComponent.Get(entry).Owner != owner {
			continue
		}
		if potionsOnly && !entry.HasComponent(domain.PotionComponent) {
			continue
		}
		items = append(items, e)
	}
	return items
}
