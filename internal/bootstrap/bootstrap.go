package bootstrap

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ocamlmycaml/saloon-rogue/internal/config"
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/ocamlmycaml/saloon-rogue/pkg/dungeon"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/ocamlmycaml/saloon-rogue/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Templates - шаблоны сущностей, собранные из конфигурации
type Templates struct {
	Player   dungeon.EntityTemplate
	Monsters map[rune]dungeon.EntityTemplate
	Items    map[rune]dungeon.EntityTemplate
}

// NewTemplates переводит конфигурацию в шаблоны dungeon
func NewTemplates(cfg config.Config) Templates {
	t := Templates{
		Player:   actorTemplate(cfg.Player, dungeon.KindPlayer),
		Monsters: make(map[rune]dungeon.EntityTemplate, len(cfg.Monsters)),
		Items:    make(map[rune]dungeon.EntityTemplate, len(cfg.Items)),
	}
	for _, m := range cfg.Monsters {
		t.Monsters[config.Glyph(m.Glyph)] = actorTemplate(m, dungeon.KindMonster)
	}
	for _, it := range cfg.Items {
		t.Items[config.Glyph(it.Glyph)] = dungeon.EntityTemplate{
			Name:       it.Name,
			Kind:       dungeon.KindItem,
			Glyph:      config.Glyph(it.Glyph),
			Color:      it.Color,
			HealAmount: it.Heal,
		}
	}
	return t
}

func actorTemplate(a config.ActorConfig, kind dungeon.Kind) dungeon.EntityTemplate {
	return dungeon.EntityTemplate{
		Name:   a.Name,
		Kind:   kind,
		Glyph:  config.Glyph(a.Glyph),
		Color:  a.Color,
		Stats:  domain.CombatStats{MaxHP: a.HP, HP: a.HP, Defense: a.Defense, Power: a.Power},
		Vision: a.Vision,
	}
}

// Build создает мир по конфигурации: из ASCII-раскладки или генератором.
// Мир возвращается в состоянии PreRun с зарегистрированным игроком.
func Build(cfg config.Config) (*world.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	templates := NewTemplates(cfg)

	var (
		w   *world.World
		err error
	)
	if rows := cfg.LayoutRows(); rows != nil {
		w, err = fromLayout(rows, cfg.Map.Rooms, templates)
	} else {
		w, err = generated(cfg.Map.Generate, templates)
	}
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "bootstrap",
		"width":     w.Map.Width,
		"height":    w.Map.Height,
		"rooms":     len(w.Map.Rooms),
		"entities":  w.ECS.Len(),
	}).Info("World built.")
	return w, nil
}

func fromLayout(rows []string, rooms []config.RoomConfig, t Templates) (*world.World, error) {
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}
	m := domain.NewGameMap(len(grid[0]), len(grid))

	for i, r := range rooms {
		rect := domain.NewRect(r.X, r.Y, r.W, r.H)
		if !m.InBounds(domain.Position{X: rect.X1, Y: rect.Y1}) || !m.InBounds(domain.Position{X: rect.X2, Y: rect.Y2}) {
			return nil, fmt.Errorf("map.rooms[%d]: %+v lies outside the %dx%d layout", i, r, m.Width, m.Height)
		}
		m.Rooms = append(m.Rooms, rect)
	}

	w := world.New(m)
	start, hasStart := domain.Position{}, false

	for y, row := range grid {
		for x, ch := range row {
			pos := domain.Position{X: x, Y: y}
			if ch == '#' {
				continue
			}
			m.SetTile(x, y, domain.TileFloor)

			switch {
			case ch == '.':
			case ch == t.Player.Glyph:
				if hasStart {
					return nil, fmt.Errorf("map.layout: second player start at (%d, %d)", x, y)
				}
				start, hasStart = pos, true
			default:
				if tmpl, ok := t.Monsters[ch]; ok {
					tmpl.Spawn(w.ECS, pos)
				} else if tmpl, ok := t.Items[ch]; ok {
					tmpl.Spawn(w.ECS, pos)
				} else {
					return nil, fmt.Errorf("map.layout: unknown glyph %q at (%d, %d)", ch, x, y)
				}
			}
		}
	}

	if !hasStart {
		if len(m.Rooms) == 0 {
			return nil, fmt.Errorf("map.layout: no player start and no rooms to fall back on")
		}
		start = m.Rooms[0].Center()
		if m.Tiles[m.Index(start.X, start.Y)] == domain.TileWall {
			return nil, fmt.Errorf("map.layout: fallback start %v is a wall", start)
		}
	}

	w.SetPlayer(t.Player.Spawn(w.ECS, start))
	return w, nil
}

func generated(g config.GenerateConfig, t Templates) (*world.World, error) {
	rng, seed := utils.NewRand(g.Seed)
	logger.Log.WithFields(logrus.Fields{
		"component": "bootstrap",
		"seed":      seed,
	}).Info("Generating dungeon.")

	builder := dungeon.NewLevel(g.Width, g.Height, rng).
		WithRoomSize(g.MinSize, g.MaxSize).
		WithRooms(g.MaxRooms)
	start, ok := builder.GetStartPos()
	if !ok {
		return nil, fmt.Errorf("map.generate: no room fits (seed %d)", seed)
	}
	m := builder.Build()
	w := world.New(m)
	w.SetPlayer(t.Player.Spawn(w.ECS, start))

	monsters := sortedByGlyph(t.Monsters)
	items := sortedByGlyph(t.Items)
	exclude := map[domain.Position]bool{start: true}

	for _, room := range m.Rooms[1:] {
		spawnInRoom(rng, m, room, monsters, g.MonstersPerRoom, exclude, w)
		spawnInRoom(rng, m, room, items, g.PotionsPerRoom, exclude, w)
	}
	return w, nil
}

// spawnInRoom ставит 0..perRoom случайных сущностей из шаблонов на свободный пол
func spawnInRoom(rng *rand.Rand, m *domain.GameMap, room domain.Rect, templates []dungeon.EntityTemplate, perRoom int, exclude map[domain.Position]bool, w *world.World) {
	if len(templates) == 0 || perRoom == 0 {
		return
	}
	n := utils.RandRange(rng, 0, perRoom)
	for _, p := range dungeon.RandomFloorPoints(rng, m, room, n, exclude) {
		templates[rng.Intn(len(templates))].Spawn(w.ECS, p)
		exclude[p] = true
	}
}

// Порядок шаблонов фиксирован, чтобы один сид давал один и тот же мир
func sortedByGlyph(m map[rune]dungeon.EntityTemplate) []dungeon.EntityTemplate {
	out := make([]dungeon.EntityTemplate, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Glyph < out[j].Glyph })
	return out
}
