package dungeon

import (
	"math/rand"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/pkg/utils"
)

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	width   int
	height  int
	minSize int
	maxSize int
	gameMap *domain.GameMap
	rng     *rand.Rand
}

// NewLevel создает новый builder для уровня, карта изначально залита стенами
func NewLevel(width, height int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		width:   width,
		height:  height,
		minSize: MinSize,
		maxSize: MaxSize,
		gameMap: domain.NewGameMap(width, height),
		rng:     rng,
	}
}

// WithRoomSize задает диапазон размеров комнат
func (b *LevelBuilder) WithRoomSize(minSize, maxSize int) *LevelBuilder {
	b.minSize = minSize
	b.maxSize = maxSize
	return b
}

// WithRooms генерирует комнаты и коридоры.
// Комнаты не пересекаются, каждая новая соединяется с предыдущей Г-образным коридором.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	m := b.gameMap
	for i := 0; i < maxRooms; i++ {
		w := utils.RandRange(b.rng, b.minSize, b.maxSize)
		h := utils.RandRange(b.rng, b.minSize, b.maxSize)
		// Пол комнаты занимает (X1, X2], крайний ряд карты остается стеной
		if b.width-w-2 < 0 || b.height-h-2 < 0 {
			continue
		}
		x := utils.RandRange(b.rng, 0, b.width-w-2)
		y := utils.RandRange(b.rng, 0, b.height-h-2)

		newRoom := domain.NewRect(x, y, w, h)

		// Проверяем пересечения
		failed := false
		for _, other := range m.Rooms {
			if newRoom.Intersect(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(m, newRoom)

		// Соединяем с предыдущей комнатой
		if len(m.Rooms) > 0 {
			prev := m.Rooms[len(m.Rooms)-1].Center()
			curr := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				createHCorridor(m, prev.X, curr.X, prev.Y)
				createVCorridor(m, prev.Y, curr.Y, curr.X)
			} else {
				createVCorridor(m, prev.Y, curr.Y, prev.X)
				createHCorridor(m, prev.X, curr.X, curr.Y)
			}
		}
		m.Rooms = append(m.Rooms, newRoom)
	}
	return b
}

// GetStartPos возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) GetStartPos() (domain.Position, bool) {
	if len(b.gameMap.Rooms) == 0 {
		return domain.Position{}, false
	}
	return b.gameMap.Rooms[0].Center(), true
}

// Build возвращает готовую карту
func (b *LevelBuilder) Build() *domain.GameMap {
	return b.gameMap
}

// RandomFloorPoints выбирает до n различных клеток пола внутри комнаты.
// Клетки из exclude не выбираются (например, старт игрока).
func RandomFloorPoints(rng *rand.Rand, m *domain.GameMap, room domain.Rect, n int, exclude map[domain.Position]bool) []domain.Position {
	var points []domain.Position
	taken := make(map[domain.Position]bool)
	for i := 0; i < n; i++ {
		// Пробуем найти свободную клетку (макс 20 попыток)
		for attempt := 0; attempt < 20; attempt++ {
			p := domain.Position{
				X: utils.RandRange(rng, room.X1+1, room.X2),
				Y: utils.RandRange(rng, room.Y1+1, room.Y2),
			}
			if !m.InBounds(p) || m.Tiles[m.Index(p.X, p.Y)] == domain.TileWall {
				continue
			}
			if taken[p] || exclude[p] {
				continue
			}
			taken[p] = true
			points = append(points, p)
			break
		}
	}
	return points
}
