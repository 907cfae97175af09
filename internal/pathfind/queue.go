package pathfind

// node - элемент открытого списка
type node struct {
	idx   int
	g     float64 // Стоимость от старта
	f     float64 // g + эвристика. Чем меньше, тем раньше раскрываем.
	seq   int     // Порядок вставки: при равном f раньше идет тот, кто добавлен раньше
	index int     // Индекс в куче
}

// nodeQueue реализует heap.Interface
type nodeQueue []*node

func (pq nodeQueue) Len() int { return len(pq) }

func (pq nodeQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodeQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodeQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*node)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *nodeQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	item.index = -1
	*pq = old[0 : n-1]
	return item
}
