package systems

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MapIndexingSystem перестраивает Blocked и Content с нуля.
// После него Blocked[i] == стена ИЛИ в клетке стоит сущность с BlocksTile.
func MapIndexingSystem(w *world.World) error {
	m := w.Map
	m.PopulateBlocked()
	m.ClearContentIndex()

	indexed := 0
	for _, e := range collect(positionedQuery, w.ECS) {
		if !w.Valid(e) {
			continue
		}
		entry := w.ECS.Entry(e)
		pos := domain.PositionComponent.Get(entry)
		if !m.InBounds(*pos) {
			return domain.Invariantf("entity %v (%s) is outside the map at %v", e, domain.NameOf(entry), *pos)
		}

		idx := m.Index(pos.X, pos.Y)
		if entry.HasComponent(domain.BlocksTileTag) {
			m.Blocked[idx] = true
		}
		m.Content[idx] = append(m.Content[idx], e)
		indexed++
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "map_indexing_system",
		"entities":  indexed,
	}).Debug("Spatial index rebuilt.")
	return nil
}
