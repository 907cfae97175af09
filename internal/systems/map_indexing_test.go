package systems

import (
	"errors"
	"testing"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/yohamta/donburi"
)

func TestMapIndexingSystem_BlockedMatchesTerrainAndBlockers(t *testing.T) {
	w := newWorld(t,
		"#######",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	player := spawnPlayer(w, 1, 1, domain.CombatStats{MaxHP: 30, HP: 30})
	orc := spawnMonster(w, "Орк", 4, 3, domain.CombatStats{MaxHP: 10, HP: 10})
	potion := spawnPotion(w, 5, 1, 8)

	// Мусор от прошлого тика должен исчезнуть
	w.Map.Blocked[w.Map.Index(2, 1)] = true

	if err := MapIndexingSystem(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertBlockedInvariant(t, w)

	t.Run("Player does not block its cell", func(t *testing.T) {
		if w.Map.Blocked[w.Map.Index(1, 1)] {
			t.Error("player cell should stay passable")
		}
	})

	t.Run("Content lists every positioned entity", func(t *testing.T) {
		cases := map[domain.Position]donburi.Entity{
			{X: 1, Y: 1}: player,
			{X: 4, Y: 3}: orc,
			{X: 5, Y: 1}: potion,
		}
		for p, e := range cases {
			got := w.Map.EntitiesAt(p)
			if len(got) != 1 || got[0] != e {
				t.Errorf("content at %v = %v, want [%v]", p, got, e)
			}
		}
	})

	t.Run("Carried items leave the index", func(t *testing.T) {
		w.Intents.Pickup.Set(player, domain.WantsToPickupItem{CollectedBy: player, Item: potion})
		if err := ItemCollectionSystem(w); err != nil {
			t.Fatalf("pickup: %v", err)
		}
		if err := MapIndexingSystem(w); err != nil {
			t.Fatalf("reindex: %v", err)
		}
		if len(w.Map.EntitiesAt(domain.Position{X: 5, Y: 1})) != 0 {
			t.Error("picked up item still indexed")
		}
	})
}

func TestMapIndexingSystem_OutOfBoundsIsInvariantError(t *testing.T) {
	w := newWorld(t,
		"####",
		"#..#",
		"####",
	)
	spawnMonster(w, "Призрак", 9, 9, domain.CombatStats{MaxHP: 1, HP: 1})

	err := MapIndexingSystem(w)
	if !errors.Is(err, domain.ErrInvariant) {
		t.Errorf("expected ErrInvariant, got %v", err)
	}
}
