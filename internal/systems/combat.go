package systems

import (
	"fmt"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MeleeCombatSystem превращает намерения атаки в урон.
// Очередь атак пуста после выхода, даже если вернулась ошибка.
func MeleeCombatSystem(w *world.World) error {
	for _, intent := range w.Intents.Melee.Drain() {
		attacker, err := world.Component(w, intent.Entity, domain.CombatStatsComponent)
		if err != nil {
			return fmt.Errorf("melee attacker: %w", err)
		}
		target, err := world.Component(w, intent.Value.Target, domain.CombatStatsComponent)
		if err != nil {
			return fmt.Errorf("melee target: %w", err)
		}

		combatLogger := logger.Log.WithFields(logrus.Fields{
			"component":   "combat_system",
			"attacker":    w.Describe(intent.Entity),
			"target":      w.Describe(intent.Value.Target),
			"attacker_hp": attacker.HP,
			"target_hp":   target.HP,
		})

		// Мертвые не бьют, трупы не бьют
		if attacker.IsDead() {
			combatLogger.Debug("Attack skipped: attacker is dead.")
			continue
		}
		if target.IsDead() {
			combatLogger.Debug("Attack skipped: target is already dead.")
			continue
		}

		damage := attacker.MeleeDamageAgainst(target)
		w.Intents.Damage.Add(intent.Value.Target, damage)

		combatLogger.WithFields(logrus.Fields{
			"power":   attacker.Power,
			"defense": target.Defense,
			"damage":  damage,
			"queued":  w.Intents.Damage.Total(intent.Value.Target),
		}).Info("Attack resolved.")

		w.Log.Add(fmt.Sprintf("%s бьёт %s на %d ед.",
			w.Describe(intent.Entity), w.Describe(intent.Value.Target), damage), domain.LogTypeCombat)
	}
	return nil
}

// DamageSystem вычитает весь накопленный урон и очищает очередь
func DamageSystem(w *world.World) error {
	for _, hit := range w.Intents.Damage.Drain() {
		stats, err := world.Component(w, hit.Entity, domain.CombatStatsComponent)
		if err != nil {
			return fmt.Errorf("damage target: %w", err)
		}
		stats.TakeDamage(hit.Value.Amount)

		logger.Log.WithFields(logrus.Fields{
			"component": "damage_system",
			"target":    w.Describe(hit.Entity),
			"amount":    hit.Value.Amount,
			"hp_after":  stats.HP,
		}).Debug("Damage applied.")
	}
	return nil
}

// DeleteTheDead убирает погибших не-игроков. Смерть игрока только логируется,
// сама сущность остается в мире. Возвращает число убранных сущностей.
func DeleteTheDead(w *world.World) int {
	removed := 0
	for _, e := range collect(mortalQuery, w.ECS) {
		if !w.Valid(e) {
			continue
		}
		entry := w.ECS.Entry(e)
		if !domain.CombatStatsComponent.Get(entry).IsDead() {
			continue
		}

		name := domain.NameOf(entry)
		if w.IsPlayer(e) {
			w.Log.Add("Вы погибли!", domain.LogTypeCombat)
			continue
		}

		w.Log.Add(fmt.Sprintf("%s погибает.", name), domain.LogTypeCombat)
		w.DeferDespawn(e)
		removed++

		logger.Log.WithFields(logrus.Fields{
			"component": "death_sweep",
			"entity":    name,
		}).Info("Entity died.")
	}
	return removed
}
