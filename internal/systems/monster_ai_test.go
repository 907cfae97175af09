package systems

import (
	"testing"

	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
)

// prepare прогоняет системы, которые в конвейере идут до ИИ
func prepare(t *testing.T, w *world.World) {
	t.Helper()
	if err := VisibilitySystem(w); err != nil {
		t.Fatal(err)
	}
	if err := MapIndexingSystem(w); err != nil {
		t.Fatal(err)
	}
}

func TestMonsterAISystem_AdjacentMonsterAttacks(t *testing.T) {
	w := newWorld(t,
		"#######",
		"#.....#",
		"#.....#",
		"#######",
	)
	player := spawnPlayer(w, 2, 1, domain.CombatStats{MaxHP: 30, HP: 30})
	orc := spawnMonster(w, "Орк", 3, 1, domain.CombatStats{MaxHP: 10, HP: 10, Power: 4})
	prepare(t, w)
	w.SetRunState(domain.StateMonsterTurn)

	if err := MonsterAISystem(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intent, ok := w.Intents.Melee.Get(orc)
	if !ok || intent.Target != player {
		t.Errorf("expected melee intent on player, got %+v (ok=%v)", intent, ok)
	}
	if got := positionOf(t, w, orc); got != (domain.Position{X: 3, Y: 1}) {
		t.Errorf("attacking monster moved to %v", got)
	}
}

func TestMonsterAISystem_DiagonalCountsAsAdjacent(t *testing.T) {
	w := newWorld(t,
		"#####",
		"#...#",
		"#...#",
		"#####",
	)
	player := spawnPlayer(w, 1, 1, domain.CombatStats{MaxHP: 30, HP: 30})
	orc := spawnMonster(w, "Орк", 2, 2, domain.CombatStats{MaxHP: 10, HP: 10})
	prepare(t, w)
	w.SetRunState(domain.StateMonsterTurn)

	_ = MonsterAISystem(w)

	if intent, ok := w.Intents.Melee.Get(orc); !ok || intent.Target != player {
		t.Error("diagonal neighbour should attack")
	}
}

func TestMonsterAISystem_StepsTowardVisiblePlayer(t *testing.T) {
	w := newWorld(t,
		"#########",
		"#.......#",
		"#.......#",
		"#.......#",
		"#########",
	)
	spawnPlayer(w, 1, 2, domain.CombatStats{MaxHP: 30, HP: 30})
	orc := spawnMonster(w, "Орк", 6, 2, domain.CombatStats{MaxHP: 10, HP: 10})
	prepare(t, w)
	w.SetRunState(domain.StateMonsterTurn)

	if err := MonsterAISystem(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := positionOf(t, w, orc); got != (domain.Position{X: 5, Y: 2}) {
		t.Fatalf("monster at %v, want first path step {5 2}", got)
	}
	if w.Map.Blocked[w.Map.Index(6, 2)] {
		t.Error("old cell still blocked")
	}
	if !w.Map.Blocked[w.Map.Index(5, 2)] {
		t.Error("new cell not blocked")
	}
	if w.Intents.Melee.Len() != 0 {
		t.Error("moving monster should not queue an attack")
	}
	vs, _ := world.Component(w, orc, domain.ViewshedComponent)
	if !vs.Dirty {
		t.Error("moved monster should mark its viewshed dirty")
	}
}

func TestMonsterAISystem_TwoMonstersDoNotShareACell(t *testing.T) {
	w := newWorld(t,
		"#########",
		"#.......#",
		"#########",
	)
	spawnPlayer(w, 1, 1, domain.CombatStats{MaxHP: 30, HP: 30})
	first := spawnMonster(w, "Орк", 4, 1, domain.CombatStats{MaxHP: 10, HP: 10})
	second := spawnMonster(w, "Гоблин", 5, 1, domain.CombatStats{MaxHP: 10, HP: 10})
	prepare(t, w)
	w.SetRunState(domain.StateMonsterTurn)

	_ = MonsterAISystem(w)

	a, b := positionOf(t, w, first), positionOf(t, w, second)
	if a == b {
		t.Fatalf("both monsters ended on %v", a)
	}
	if a != (domain.Position{X: 3, Y: 1}) {
		t.Errorf("first monster at %v, want {3 1}", a)
	}
	assertBlockedInvariant(t, w)
}

func TestMonsterAISystem_Idle(t *testing.T) {
	tests := []struct {
		name  string
		state domain.RunState
		rows  []string
	}{
		{
			name:  "Not the monsters' turn",
			state: domain.StatePlayerTurn,
			rows:  []string{"#########", "#.......#", "#########"},
		},
		{
			name:  "Player hidden behind a wall",
			state: domain.StateMonsterTurn,
			rows:  []string{"#########", "#...#...#", "#...#...#", "#########"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t, tt.rows...)
			spawnPlayer(w, 1, 1, domain.CombatStats{MaxHP: 30, HP: 30})
			orc := spawnMonster(w, "Орк", 6, 1, domain.CombatStats{MaxHP: 10, HP: 10})
			prepare(t, w)
			w.SetRunState(tt.state)

			_ = MonsterAISystem(w)

			if got := positionOf(t, w, orc); got != (domain.Position{X: 6, Y: 1}) {
				t.Errorf("monster moved to %v", got)
			}
			if w.Intents.Melee.Len() != 0 {
				t.Error("no attack expected")
			}
		})
	}
}
