package dungeon

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/yohamta/donburi"
)

// Kind - какой набор компонентов получает сущность
type Kind uint8

const (
	KindPlayer Kind = iota
	KindMonster
	KindItem
)

// EntityTemplate определяет шаблон для создания сущности
type EntityTemplate struct {
	Name   string
	Kind   Kind
	Glyph  rune
	Color  string
	Stats  domain.CombatStats
	Vision int

	// Только для предметов
	HealAmount int
}

// Spawn создает сущность из шаблона на заданной позиции
func (t EntityTemplate) Spawn(ecs donburi.World, pos domain.Position) donburi.Entity {
	var e donburi.Entity
	switch t.Kind {
	case KindPlayer:
		// Игрок не блокирует клетку: иначе поиск пути монстров не сможет закончиться на ней
		e = ecs.Create(domain.PlayerTag, domain.NameComponent, domain.PositionComponent,
			domain.ViewshedComponent, domain.CombatStatsComponent, domain.RenderableComponent)
	case KindMonster:
		e = ecs.Create(domain.MonsterTag, domain.BlocksTileTag, domain.NameComponent, domain.PositionComponent,
			domain.ViewshedComponent, domain.CombatStatsComponent, domain.RenderableComponent)
	default:
		e = ecs.Create(domain.ItemTag, domain.NameComponent, domain.PositionComponent,
			domain.PotionComponent, domain.RenderableComponent)
	}

	entry := ecs.Entry(e)
	domain.NameComponent.SetValue(entry, domain.Name{Name: t.Name})
	domain.PositionComponent.SetValue(entry, pos)
	domain.RenderableComponent.SetValue(entry, domain.Renderable{Glyph: t.Glyph, Color: t.Color})

	if t.Kind == KindItem {
		domain.PotionComponent.SetValue(entry, domain.Potion{HealAmount: t.HealAmount})
		return e
	}

	stats := t.Stats
	if stats.HP == 0 {
		stats.HP = stats.MaxHP
	}
	domain.CombatStatsComponent.SetValue(entry, stats)

	vision := t.Vision
	if vision <= 0 {
		vision = domain.DefaultVisionRange
	}
	domain.ViewshedComponent.SetValue(entry, domain.Viewshed{Range: vision, Dirty: true})
	return e
}
