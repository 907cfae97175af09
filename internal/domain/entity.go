package domain

import "github.com/yohamta/donburi"

// Реестр компонентов. Набор закрыт: новые виды данных добавляются только здесь.
var (
	PositionComponent    = donburi.NewComponentType[Position]()
	ViewshedComponent    = donburi.NewComponentType[Viewshed]()
	NameComponent        = donburi.NewComponentType[Name]()
	CombatStatsComponent = donburi.NewComponentType[CombatStats]()
	PotionComponent      = donburi.NewComponentType[Potion]()
	InBackpackComponent  = donburi.NewComponentType[InBackpack]()
	RenderableComponent  = donburi.NewComponentType[Renderable]()
)

// Теги-маркеры без данных
var (
	PlayerTag     = donburi.NewTag("Player")
	MonsterTag    = donburi.NewTag("Monster")
	BlocksTileTag = donburi.NewTag("BlocksTile")
	ItemTag       = donburi.NewTag("Item")
)

// NameOf возвращает имя сущности или "кто-то", если имени нет
func NameOf(entry *donburi.Entry) string {
	if entry == nil || !entry.HasComponent(NameComponent) {
		return "кто-то"
	}
	return NameComponent.Get(entry).Name
}
