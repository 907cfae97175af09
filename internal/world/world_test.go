package world

import (
	"errors"
	"testing"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/yohamta/donburi"
)

func newTestWorld() *World {
	return New(domain.NewGameMap(10, 10))
}

func TestWorld_StartsInPreRun(t *testing.T) {
	w := newTestWorld()
	if w.RunState() != domain.StatePreRun {
		t.Errorf("initial state = %v, want PRE_RUN", w.RunState())
	}
	if w.Player() != donburi.Null {
		t.Error("no player should be registered yet")
	}
}

func TestWorld_SetPlayerRecordsPosition(t *testing.T) {
	w := newTestWorld()
	e := w.ECS.Create(domain.PlayerTag, domain.PositionComponent)
	domain.PositionComponent.SetValue(w.ECS.Entry(e), domain.Position{X: 4, Y: 6})

	w.SetPlayer(e)

	if !w.IsPlayer(e) {
		t.Error("IsPlayer should report the registered entity")
	}
	if w.PlayerPos() != (domain.Position{X: 4, Y: 6}) {
		t.Errorf("PlayerPos = %v", w.PlayerPos())
	}
}

func TestComponent_MissingIsInvariantError(t *testing.T) {
	w := newTestWorld()
	e := w.ECS.Create(domain.NameComponent)

	if _, err := Component(w, e, domain.NameComponent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := Component(w, e, domain.CombatStatsComponent)
	if !errors.Is(err, domain.ErrInvariant) {
		t.Errorf("expected ErrInvariant, got %v", err)
	}

	_, err = w.Entry(donburi.Null)
	if !errors.Is(err, domain.ErrInvariant) {
		t.Errorf("expected ErrInvariant for null handle, got %v", err)
	}
}

func TestDeferDespawn(t *testing.T) {
	w := newTestWorld()
	e := w.ECS.Create(domain.PositionComponent)
	domain.PositionComponent.SetValue(w.ECS.Entry(e), domain.Position{X: 2, Y: 3})
	idx := w.Map.Index(2, 3)
	w.Map.Content[idx] = append(w.Map.Content[idx], e)

	w.DeferDespawn(e)

	if w.Valid(e) {
		t.Error("entity pending despawn should not be valid")
	}
	if !w.ECS.Valid(e) {
		t.Error("entity should still exist in storage until Flush")
	}
	if len(w.Map.Content[idx]) != 0 {
		t.Error("entity should leave the content index immediately")
	}

	// Повторная постановка не дублирует удаление
	w.DeferDespawn(e)
	if w.Pending() != 1 {
		t.Errorf("pending = %d, want 1", w.Pending())
	}

	if n := w.Flush(); n != 1 {
		t.Errorf("flushed %d, want 1", n)
	}
	if w.ECS.Valid(e) {
		t.Error("entity should be gone after Flush")
	}
	if w.Pending() != 0 {
		t.Error("buffer should be empty after Flush")
	}
}

func TestQueue_ReplaceKeepsOrder(t *testing.T) {
	q := NewQueue[domain.WantsToMelee]()
	a, b := donburi.Entity(11), donburi.Entity(12)

	q.Set(a, domain.WantsToMelee{Target: 1})
	q.Set(b, domain.WantsToMelee{Target: 2})
	q.Set(a, domain.WantsToMelee{Target: 3})

	if q.Len() != 2 {
		t.Fatalf("len = %d, want 2", q.Len())
	}
	got := q.Drain()
	if got[0].Entity != a || got[0].Value.Target != 3 {
		t.Errorf("first intent = %+v, want attacker a with replaced target", got[0])
	}
	if got[1].Entity != b {
		t.Errorf("second intent = %+v", got[1])
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}
	if _, ok := q.Get(a); ok {
		t.Error("drained intent still readable")
	}
}

func TestDamageQueue_Accumulates(t *testing.T) {
	var q DamageQueue
	target := donburi.Entity(7)
	q.Add(target, 5)
	q.Add(target, 5)
	q.Add(donburi.Entity(8), 2)

	if got := q.Total(target); got != 10 {
		t.Errorf("total = %d, want 10", got)
	}
	if len(q.Drain()) != 3 || q.Len() != 0 {
		t.Error("drain should return every entry and leave the queue empty")
	}
}
