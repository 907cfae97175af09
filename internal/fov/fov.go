package fov

import (
	"sort"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Oracle отвечает на вопрос "закрывает ли клетка обзор"
type Oracle interface {
	Dimensions() (width, height int)
	IsOpaque(idx int) bool
}

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Compute возвращает видимые клетки (рекурсивный shadowcasting).
// Центр всегда виден, результат отсортирован по индексу клетки.
func Compute(origin domain.Position, radius int, oracle Oracle) []domain.Position {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov",
		"observer_pos": origin,
		"radius":       radius,
	})

	width, height := oracle.Dimensions()
	if origin.X < 0 || origin.Y < 0 || origin.X >= width || origin.Y >= height {
		fovLogger.Warn("FOV origin outside of map.")
		return nil
	}

	visible := map[int]bool{origin.Y*width + origin.X: true}
	if radius > 0 {
		c := caster{oracle: oracle, width: width, height: height, radius: radius, visible: visible}
		for i := 0; i < 8; i++ {
			c.castLight(origin.X, origin.Y, 1, 1.0, 0.0,
				multipliers[0][i], multipliers[1][i],
				multipliers[2][i], multipliers[3][i])
		}
	}

	indices := make([]int, 0, len(visible))
	for idx := range visible {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	result := make([]domain.Position, len(indices))
	for i, idx := range indices {
		result[i] = domain.Position{X: idx % width, Y: idx / width}
	}

	fovLogger.WithField("visible_tiles", len(result)).Debug("FOV calculation complete.")
	return result
}

type caster struct {
	oracle        Oracle
	width, height int
	radius        int
	visible       map[int]bool
}

func (c *caster) castLight(cx, cy, row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := float64(c.radius * c.radius)

	for j := row; j <= c.radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if c.inBounds(X, Y) && float64(dx*dx+dy*dy) <= radiusSq {
				c.visible[Y*c.width+X] = true
			}

			// Логика теней
			if blocked {
				if c.isBlocking(X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if c.isBlocking(X, Y) && j < c.radius {
				blocked = true
				c.castLight(cx, cy, j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

func (c *caster) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// isBlocking: выход за границы считается стеной
func (c *caster) isBlocking(x, y int) bool {
	if !c.inBounds(x, y) {
		return true
	}
	return c.oracle.IsOpaque(y*c.width + x)
}
