package systems

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/pathfind"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// MonsterAISystem решает за монстров: бить, идти к игроку или стоять.
// Работает только в ход монстров.
func MonsterAISystem(w *world.World) error {
	if w.RunState() != domain.StateMonsterTurn {
		return nil
	}
	player := w.Player()
	if !w.Valid(player) {
		return nil
	}

	m := w.Map
	playerPos := w.PlayerPos()
	playerIdx := m.Index(playerPos.X, playerPos.Y)

	for _, e := range collect(monsterQuery, w.ECS) {
		if !w.Valid(e) {
			continue
		}
		entry := w.ECS.Entry(e)
		pos := domain.PositionComponent.Get(entry)
		vs := domain.ViewshedComponent.Get(entry)

		aiLogger := logger.Log.WithFields(logrus.Fields{
			"component":  "ai_system",
			"monster":    domain.NameOf(entry),
			"monster_at": *pos,
			"player_at":  playerPos,
		})

		// 1. Соседняя клетка (включая диагонали) -> атака без движения
		dist := pos.DistanceTo(playerPos)
		if dist < domain.MeleeRange {
			w.Intents.Melee.Set(e, domain.WantsToMelee{Target: player})
			aiLogger.WithField("distance", dist).Debug("Target adjacent. Action: ATTACK")
			continue
		}

		// 2. Не видим игрока -> ждем
		if !vs.Contains(playerPos) {
			aiLogger.Debug("Target not visible. Action: WAIT")
			continue
		}

		// 3. Идем на первую клетку кратчайшего пути
		from := m.Index(pos.X, pos.Y)
		path := pathfind.AStar(from, playerIdx, m)
		if !path.Success || len(path.Steps) < 2 {
			aiLogger.Debug("No path to target. Action: WAIT")
			continue
		}
		stepMonster(m, e, pos, vs, path.Steps[1])
		aiLogger.WithField("moved_to", *pos).Debug("Path found. Action: MOVE")
	}
	return nil
}

// stepMonster переносит монстра и флаг блокировки вместе с ним,
// чтобы следующий монстр в этом же проходе не зашел в ту же клетку
func stepMonster(m *domain.GameMap, e donburi.Entity, pos *domain.Position, vs *domain.Viewshed, to int) {
	from := m.Index(pos.X, pos.Y)
	m.Blocked[from] = false
	m.RemoveFromContent(from, e)

	*pos = m.PointOf(to)
	m.Blocked[to] = true
	m.Content[to] = append(m.Content[to], e)
	vs.Dirty = true
}
