package systems

import (
	"fmt"

	"github.com/ocamlmycaml/saloon-rogue/internal/world"
)

// System - шаг конвейера тика
type System struct {
	Name string
	Run  func(*world.World) error
}

// Pipeline - строгий порядок систем. Индексация обязана идти до ИИ и боя,
// урон после боя, инвентарь последним.
func Pipeline() []System {
	return []System{
		{Name: "visibility", Run: VisibilitySystem},
		{Name: "map_indexing", Run: MapIndexingSystem},
		{Name: "monster_ai", Run: MonsterAISystem},
		{Name: "melee_combat", Run: MeleeCombatSystem},
		{Name: "damage", Run: DamageSystem},
		{Name: "item_collection", Run: ItemCollectionSystem},
		{Name: "potion_use", Run: PotionUseSystem},
		{Name: "item_drop", Run: ItemDropSystem},
	}
}

// RunPipeline прогоняет все системы по порядку. Первая ошибка прерывает тик.
func RunPipeline(w *world.World) error {
	for _, s := range Pipeline() {
		if err := s.Run(w); err != nil {
			return fmt.Errorf("system %s: %w", s.Name, err)
		}
	}
	return nil
}
