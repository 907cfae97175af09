package domain

import (
	"github.com/yohamta/donburi"
	"github.com/zyedidia/generic/mapset"
)

// Viewshed - что сущность видит в этом тике
type Viewshed struct {
	Visible mapset.Set[Position]
	Range   int

	// Dirty выставляется при перемещении. Пересчет FOV идет каждый тик независимо от флага.
	Dirty bool
}

// Name - имя для лога и интерфейса
type Name struct {
	Name string
}

// CombatStats - боевые характеристики
type CombatStats struct {
	MaxHP   int `yaml:"max_hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
	HP      int `yaml:"hp"`
}

// Potion - эффект зелья лечения
type Potion struct {
	HealAmount int
}

// InBackpack: предмет лежит в рюкзаке владельца (и тогда у него нет Position)
type InBackpack struct {
	Owner donburi.Entity
}

// Renderable - внешний вид для терминала
type Renderable struct {
	Glyph rune
	Color string
}
