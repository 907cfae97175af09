package pathfind

import (
	"container/heap"

	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MaxSteps ограничивает число раскрытых узлов на один поиск
const MaxSteps = 65536

// Exit - проходимый сосед клетки и стоимость перехода в него
type Exit struct {
	Idx  int
	Cost float64
}

// Graph - то, что карта должна уметь отвечать для поиска пути
type Graph interface {
	AvailableExits(idx int) []Exit
	Distance(a, b int) float64
}

// Path - результат поиска. Steps начинается со стартовой клетки и заканчивается целью.
type Path struct {
	Success bool
	Steps   []int
}

// AStar ищет кратчайший путь от start до end.
// Цель может быть заблокированной клеткой: ее проходимость не проверяется,
// достаточно, чтобы она была среди выходов соседа.
func AStar(start, end int, g Graph) Path {
	pathLogger := logger.Log.WithFields(logrus.Fields{
		"component": "pathfind",
		"start":     start,
		"end":       end,
	})

	if start == end {
		return Path{Success: true, Steps: []int{start}}
	}

	open := &nodeQueue{}
	heap.Init(open)

	var seq int
	push := func(idx int, g, f float64) {
		heap.Push(open, &node{idx: idx, g: g, f: f, seq: seq})
		seq++
	}

	cameFrom := make(map[int]int)
	bestCost := map[int]float64{start: 0}
	closed := make(map[int]bool)

	push(start, 0, g.Distance(start, end))

	for steps := 0; open.Len() > 0; steps++ {
		if steps >= MaxSteps {
			pathLogger.WithField("steps", steps).Warn("Path search aborted: step limit reached.")
			return Path{}
		}

		current := heap.Pop(open).(*node)
		if current.idx == end {
			path := reconstruct(cameFrom, start, end)
			pathLogger.WithField("length", len(path)).Debug("Path found.")
			return Path{Success: true, Steps: path}
		}
		if closed[current.idx] {
			continue
		}
		closed[current.idx] = true

		for _, exit := range g.AvailableExits(current.idx) {
			if closed[exit.Idx] {
				continue
			}
			cost := current.g + exit.Cost
			if known, ok := bestCost[exit.Idx]; ok && known <= cost {
				continue
			}
			bestCost[exit.Idx] = cost
			cameFrom[exit.Idx] = current.idx
			push(exit.Idx, cost, cost+g.Distance(exit.Idx, end))
		}
	}

	pathLogger.Debug("No path.")
	return Path{}
}

func reconstruct(cameFrom map[int]int, start, end int) []int {
	path := []int{end}
	for cur := end; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
