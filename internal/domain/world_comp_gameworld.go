package domain

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/pathfind"
	"github.com/yohamta/donburi"
)

// Стоимость перехода для поиска пути
const (
	CostCardinal = 1.0
	CostDiagonal = 1.45
)

// NewGameMap создает карту, целиком залитую стенами
func NewGameMap(width, height int) *GameMap {
	n := width * height
	m := &GameMap{
		Tiles:    make([]TileType, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Blocked:  make([]bool, n),
		Content:  make([][]donburi.Entity, n),
		Width:    width,
		Height:   height,
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
		m.Blocked[i] = true
	}
	return m
}

func (m *GameMap) Index(x, y int) int {
	return y*m.Width + x
}

// PointOf - обратное преобразование индекса в координаты
func (m *GameMap) PointOf(idx int) Position {
	return Position{X: idx % m.Width, Y: idx / m.Width}
}

func (m *GameMap) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Clamp прижимает точку к границам карты
func (m *GameMap) Clamp(p Position) Position {
	return Position{X: clamp(p.X, 0, m.Width-1), Y: clamp(p.Y, 0, m.Height-1)}
}

// SetTile меняет местность и сразу обновляет Blocked для этой клетки
func (m *GameMap) SetTile(x, y int, t TileType) {
	idx := m.Index(x, y)
	m.Tiles[idx] = t
	m.Blocked[idx] = t == TileWall
}

// PopulateBlocked сбрасывает Blocked к состоянию "только стены"
func (m *GameMap) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContentIndex очищает списки сущностей, сохраняя выделенную память
func (m *GameMap) ClearContentIndex() {
	for i := range m.Content {
		m.Content[i] = m.Content[i][:0]
	}
}

// EntitiesAt возвращает сущности в клетке (nil за пределами карты)
func (m *GameMap) EntitiesAt(p Position) []donburi.Entity {
	if !m.InBounds(p) {
		return nil
	}
	return m.Content[m.Index(p.X, p.Y)]
}

// RemoveFromContent удаляет сущность из индекса клетки (например, при смерти)
func (m *GameMap) RemoveFromContent(idx int, e donburi.Entity) {
	entities := m.Content[idx]
	for i, other := range entities {
		if other == e {
			m.Content[idx] = append(entities[:i], entities[i+1:]...)
			return
		}
	}
}

// --- Оракул для FOV и поиска пути ---

var _ pathfind.Graph = (*GameMap)(nil)

// Dimensions - размеры карты для сервиса поля зрения
func (m *GameMap) Dimensions() (int, int) {
	return m.Width, m.Height
}

// IsOpaque: непрозрачны только стены, сущности взгляд не закрывают
func (m *GameMap) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// isExitValid: крайний ряд клеток никогда не является выходом
func (m *GameMap) isExitValid(x, y int) bool {
	if x < 1 || x > m.Width-1 || y < 1 || y > m.Height-1 {
		return false
	}
	return !m.Blocked[m.Index(x, y)]
}

// AvailableExits перечисляет проходимых соседей клетки (8 направлений).
func (m *GameMap) AvailableExits(idx int) []pathfind.Exit {
	p := m.PointOf(idx)
	exits := make([]pathfind.Exit, 0, 8)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !m.isExitValid(p.X+dx, p.Y+dy) {
				continue
			}
			cost := CostDiagonal
			if dx == 0 || dy == 0 {
				cost = CostCardinal
			}
			exits = append(exits, pathfind.Exit{Idx: m.Index(p.X+dx, p.Y+dy), Cost: cost})
		}
	}
	return exits
}

// Distance - эвристика A*: евклидово расстояние между клетками
func (m *GameMap) Distance(a, b int) float64 {
	return m.PointOf(a).DistanceTo(m.PointOf(b))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
