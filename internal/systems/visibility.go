package systems

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/fov"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// VisibilitySystem пересчитывает поле зрения всех наблюдателей.
// Клетки на краю карты никогда не считаются видимыми.
func VisibilitySystem(w *world.World) error {
	m := w.Map
	viewerQuery.Each(w.ECS, func(entry *donburi.Entry) {
		if !w.Valid(entry.Entity()) {
			return
		}
		pos := domain.PositionComponent.Get(entry)
		vs := domain.ViewshedComponent.Get(entry)

		vs.Reset()
		isPlayer := w.IsPlayer(entry.Entity())
		// Карта хранит видимость с точки зрения игрока
		if isPlayer {
			clear(m.Visible)
		}
		for _, p := range fov.Compute(*pos, vs.Range, m) {
			if p.X <= 0 || p.X >= m.Width-1 || p.Y <= 0 || p.Y >= m.Height-1 {
				continue
			}
			vs.Add(p)
			if isPlayer {
				idx := m.Index(p.X, p.Y)
				m.Visible[idx] = true
				m.Revealed[idx] = true
			}
		}
		vs.Dirty = false

		logger.Log.WithFields(logrus.Fields{
			"component": "visibility_system",
			"viewer":    domain.NameOf(entry),
			"visible":   vs.Len(),
		}).Debug("Viewshed recomputed.")
	})
	return nil
}
