package systems

import (
	"cmp"
	"slices"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Запросы, общие для систем. Во время обхода структура мира не меняется:
// сначала собираем хендлы, потом мутируем.
var (
	viewerQuery     = donburi.NewQuery(filter.Contains(domain.PositionComponent, domain.ViewshedComponent))
	positionedQuery = donburi.NewQuery(filter.Contains(domain.PositionComponent))
	monsterQuery    = donburi.NewQuery(filter.Contains(domain.MonsterTag, domain.PositionComponent, domain.ViewshedComponent))
	mortalQuery     = donburi.NewQuery(filter.Contains(domain.CombatStatsComponent, domain.NameComponent))
	carriedQuery    = donburi.NewQuery(filter.Contains(domain.ItemTag, domain.InBackpackComponent))
)

// collect возвращает хендлы, отсортированные по id сущности
func collect(q *donburi.Query, w donburi.World) []donburi.Entity {
	var out []donburi.Entity
	q.Each(w, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	slices.SortFunc(out, func(a, b donburi.Entity) int {
		return cmp.Compare(a.Id(), b.Id())
	})
	return out
}
