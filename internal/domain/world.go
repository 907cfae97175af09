package domain

import "github.com/yohamta/donburi"

// Position - координаты на сетке карты.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// TileType - тип клетки местности
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

// Rect - прямоугольная комната (углы включительно)
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// GameMap хранит местность и пространственный индекс уровня.
// Все срезы плоские, индекс клетки: Y * Width + X.
type GameMap struct {
	Tiles    []TileType
	Revealed []bool
	Visible  []bool

	// Blocked == стена ИЛИ на клетке стоит сущность с BlocksTile.
	// Пересчитывается системой индексации каждый тик.
	Blocked []bool

	// Content: индекс клетки -> список сущностей на ней
	Content [][]donburi.Entity

	Rooms  []Rect
	Width  int
	Height int
}
