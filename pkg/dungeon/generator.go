package dungeon

import (
	"math/rand"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
)

// Константы генерации по умолчанию
const (
	MapWidth  = 80
	MapHeight = 43
	MaxRooms  = 30
	MinSize   = 6
	MaxSize   = 10
)

// Generate создает уровень "комнаты и коридоры" с параметрами по умолчанию
func Generate(rng *rand.Rand) *domain.GameMap {
	return NewLevel(MapWidth, MapHeight, rng).WithRooms(MaxRooms).Build()
}

func createRoom(m *domain.GameMap, room domain.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
}

func createHCorridor(m *domain.GameMap, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(x, y, domain.TileFloor)
	}
}

func createVCorridor(m *domain.GameMap, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(x, y, domain.TileFloor)
	}
}
