package world

import (
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/yohamta/donburi"
)

// Intent - одно намерение сущности в очереди
type Intent[T any] struct {
	Entity donburi.Entity
	Value  T
}

// Queue хранит не больше одного намерения на сущность.
// Повторная постановка заменяет значение, сохраняя исходный порядок.
type Queue[T any] struct {
	order []donburi.Entity
	items map[donburi.Entity]T
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: make(map[donburi.Entity]T)}
}

func (q *Queue[T]) Set(e donburi.Entity, v T) {
	if _, ok := q.items[e]; !ok {
		q.order = append(q.order, e)
	}
	q.items[e] = v
}

func (q *Queue[T]) Get(e donburi.Entity) (T, bool) {
	v, ok := q.items[e]
	return v, ok
}

func (q *Queue[T]) Len() int { return len(q.order) }

// Drain забирает все намерения в порядке постановки и очищает очередь
func (q *Queue[T]) Drain() []Intent[T] {
	out := make([]Intent[T], 0, len(q.order))
	for _, e := range q.order {
		out = append(out, Intent[T]{Entity: e, Value: q.items[e]})
	}
	q.order = q.order[:0]
	clear(q.items)
	return out
}

// DamageQueue - урон накапливается: на одну цель может прийти несколько записей
type DamageQueue struct {
	items []Intent[domain.SufferDamage]
}

func (q *DamageQueue) Add(target donburi.Entity, amount int) {
	q.items = append(q.items, Intent[domain.SufferDamage]{Entity: target, Value: domain.SufferDamage{Amount: amount}})
}

// Total - суммарный урон, ожидающий цель
func (q *DamageQueue) Total(target donburi.Entity) int {
	sum := 0
	for _, it := range q.items {
		if it.Entity == target {
			sum += it.Value.Amount
		}
	}
	return sum
}

func (q *DamageQueue) Len() int { return len(q.items) }

func (q *DamageQueue) Drain() []Intent[domain.SufferDamage] {
	out := q.items
	q.items = nil
	return out
}

// Intents - очереди одноразовых намерений текущего тика.
// Каждую очередь опустошает ровно одна система.
type Intents struct {
	Melee  *Queue[domain.WantsToMelee]
	Damage *DamageQueue
	Pickup *Queue[domain.WantsToPickupItem]
	Drop   *Queue[domain.WantsToDropItem]
	Drink  *Queue[domain.WantsToDrinkPotion]
}

func NewIntents() *Intents {
	return &Intents{
		Melee:  NewQueue[domain.WantsToMelee](),
		Damage: &DamageQueue{},
		Pickup: NewQueue[domain.WantsToPickupItem](),
		Drop:   NewQueue[domain.WantsToDropItem](),
		Drink:  NewQueue[domain.WantsToDrinkPotion](),
	}
}

// Pending - общее число необработанных намерений
func (in *Intents) Pending() int {
	return in.Melee.Len() + in.Damage.Len() + in.Pickup.Len() + in.Drop.Len() + in.Drink.Len()
}
