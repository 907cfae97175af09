package systems

import (
	"testing"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// newWorld строит мир из ASCII-карты: '#' стена, все остальное пол
func newWorld(t *testing.T, rows ...string) *world.World {
	t.Helper()
	m := domain.NewGameMap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch != '#' {
				m.SetTile(x, y, domain.TileFloor)
			}
		}
	}
	return world.New(m)
}

func spawnPlayer(w *world.World, x, y int, stats domain.CombatStats) donburi.Entity {
	e := w.ECS.Create(domain.PlayerTag, domain.NameComponent, domain.PositionComponent,
		domain.ViewshedComponent, domain.CombatStatsComponent)
	entry := w.ECS.Entry(e)
	domain.NameComponent.SetValue(entry, domain.Name{Name: "Игрок"})
	domain.PositionComponent.SetValue(entry, domain.Position{X: x, Y: y})
	domain.ViewshedComponent.SetValue(entry, domain.Viewshed{Range: 8, Dirty: true})
	domain.CombatStatsComponent.SetValue(entry, stats)
	w.SetPlayer(e)
	return e
}

func spawnMonster(w *world.World, name string, x, y int, stats domain.CombatStats) donburi.Entity {
	e := w.ECS.Create(domain.MonsterTag, domain.BlocksTileTag, domain.NameComponent,
		domain.PositionComponent, domain.ViewshedComponent, domain.CombatStatsComponent)
	entry := w.ECS.Entry(e)
	domain.NameComponent.SetValue(entry, domain.Name{Name: name})
	domain.PositionComponent.SetValue(entry, domain.Position{X: x, Y: y})
	domain.ViewshedComponent.SetValue(entry, domain.Viewshed{Range: 8, Dirty: true})
	domain.CombatStatsComponent.SetValue(entry, stats)
	return e
}

func spawnPotion(w *world.World, x, y, heal int) donburi.Entity {
	e := w.ECS.Create(domain.ItemTag, domain.NameComponent, domain.PositionComponent, domain.PotionComponent)
	entry := w.ECS.Entry(e)
	domain.NameComponent.SetValue(entry, domain.Name{Name: "Зелье лечения"})
	domain.PositionComponent.SetValue(entry, domain.Position{X: x, Y: y})
	domain.PotionComponent.SetValue(entry, domain.Potion{HealAmount: heal})
	return e
}

func positionOf(t *testing.T, w *world.World, e donburi.Entity) domain.Position {
	t.Helper()
	pos, err := world.Component(w, e, domain.PositionComponent)
	if err != nil {
		t.Fatalf("position of %v: %v", e, err)
	}
	return *pos
}

func statsOf(t *testing.T, w *world.World, e donburi.Entity) *domain.CombatStats {
	t.Helper()
	s, err := world.Component(w, e, domain.CombatStatsComponent)
	if err != nil {
		t.Fatalf("stats of %v: %v", e, err)
	}
	return s
}

// assertBlockedInvariant: Blocked == стена ИЛИ сущность с BlocksTile в клетке
func assertBlockedInvariant(t *testing.T, w *world.World) {
	t.Helper()
	m := w.Map
	occupied := make([]bool, len(m.Tiles))
	blockers := donburi.NewQuery(filter.Contains(domain.BlocksTileTag, domain.PositionComponent))
	blockers.Each(w.ECS, func(entry *donburi.Entry) {
		p := domain.PositionComponent.Get(entry)
		occupied[m.Index(p.X, p.Y)] = true
	})
	for i := range m.Tiles {
		want := m.Tiles[i] == domain.TileWall || occupied[i]
		if m.Blocked[i] != want {
			t.Errorf("cell %v: blocked = %v, want %v", m.PointOf(i), m.Blocked[i], want)
		}
	}
}
