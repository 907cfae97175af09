package domain

import "github.com/zyedidia/generic/mapset"

// Contains проверяет, видна ли точка
func (v *Viewshed) Contains(p Position) bool {
	return v.Visible.Has(p)
}

// Reset начинает новый набор видимых клеток
func (v *Viewshed) Reset() {
	v.Visible = mapset.New[Position]()
}

// Add отмечает клетку видимой
func (v *Viewshed) Add(p Position) {
	v.Visible.Put(p)
}

// Len - число видимых клеток
func (v *Viewshed) Len() int {
	return v.Visible.Size()
}
