package bootstrap

import (
	"os"
	"strings"
	"testing"

	"github.com/ocamlmycaml/saloon-rogue/internal/config"
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func layoutConfig(layout string) config.Config {
	cfg := config.Default()
	cfg.Map.Layout = layout
	return cfg
}

func count(w donburi.World, components ...donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(components...)).Count(w)
}

func TestBuild_FromLayout(t *testing.T) {
	w, err := Build(layoutConfig("########\n#@..g.!#\n#...o..#\n########"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if w.Map.Width != 8 || w.Map.Height != 4 {
		t.Fatalf("map %dx%d, want 8x4", w.Map.Width, w.Map.Height)
	}
	if w.RunState() != domain.StatePreRun {
		t.Errorf("run state = %v, want PreRun", w.RunState())
	}
	if w.PlayerPos() != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("player pos = %v", w.PlayerPos())
	}

	entry := w.ECS.Entry(w.Player())
	if entry.HasComponent(domain.BlocksTileTag) {
		t.Error("player must not block its tile")
	}
	if stats := domain.CombatStatsComponent.Get(entry); stats.HP != 30 || stats.MaxHP != 30 {
		t.Errorf("player stats = %+v", *stats)
	}

	if n := count(w.ECS, domain.MonsterTag, domain.BlocksTileTag); n != 2 {
		t.Errorf("monsters = %d, want 2", n)
	}
	if n := count(w.ECS, domain.ItemTag, domain.PotionComponent); n != 1 {
		t.Errorf("potions = %d, want 1", n)
	}

	// Глифы сущностей стоят на полу, а не на стене
	for _, x := range []int{1, 4, 6} {
		if w.Map.Tiles[w.Map.Index(x, 1)] != domain.TileFloor {
			t.Errorf("(%d, 1) should be floor", x)
		}
	}
	if !w.Map.Blocked[w.Map.Index(0, 0)] {
		t.Error("walls must start blocked")
	}
}

func TestBuild_LayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name:    "Unknown glyph",
			cfg:     layoutConfig("#####\n#@.X#\n#####"),
			wantErr: "unknown glyph",
		},
		{
			name:    "Two players",
			cfg:     layoutConfig("#####\n#@.@#\n#####"),
			wantErr: "second player start",
		},
		{
			name:    "No start and no rooms",
			cfg:     layoutConfig("#####\n#...#\n#####"),
			wantErr: "no player start",
		},
		{
			name: "Room outside layout",
			cfg: func() config.Config {
				c := layoutConfig("#####\n#@..#\n#####")
				c.Map.Rooms = []config.RoomConfig{{X: 2, Y: 0, W: 6, H: 1}}
				return c
			}(),
			wantErr: "lies outside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuild_FallbackStartIsFirstRoomCenter(t *testing.T) {
	cfg := layoutConfig("#######\n#.....#\n#.....#\n#.....#\n#######")
	cfg.Map.Rooms = []config.RoomConfig{{X: 0, Y: 0, W: 5, H: 3}}

	w, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if want := (domain.Position{X: 2, Y: 1}); w.PlayerPos() != want {
		t.Errorf("player pos = %v, want %v", w.PlayerPos(), want)
	}
	if len(w.Map.Rooms) != 1 {
		t.Errorf("rooms = %d, want 1", len(w.Map.Rooms))
	}
}

func TestBuild_Generated(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Generate.Seed = 2024
	cfg.Map.Generate.MonstersPerRoom = 3

	w, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	start := w.Map.Rooms[0].Center()
	if w.PlayerPos() != start {
		t.Errorf("player at %v, want first room center %v", w.PlayerPos(), start)
	}

	// Монстры не появляются ни на стенах, ни в стартовой комнате
	first := w.Map.Rooms[0]
	donburi.NewQuery(filter.Contains(domain.MonsterTag)).Each(w.ECS, func(entry *donburi.Entry) {
		p := *domain.PositionComponent.Get(entry)
		if w.Map.Tiles[w.Map.Index(p.X, p.Y)] != domain.TileFloor {
			t.Errorf("monster on wall at %v", p)
		}
		if p.X > first.X1 && p.X <= first.X2 && p.Y > first.Y1 && p.Y <= first.Y2 {
			t.Errorf("monster %v spawned in the starting room", p)
		}
	})

	// Тот же сид дает тот же мир
	again, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if again.ECS.Len() != w.ECS.Len() || len(again.Map.Rooms) != len(w.Map.Rooms) {
		t.Errorf("seeded builds differ: %d/%d entities, %d/%d rooms",
			again.ECS.Len(), w.ECS.Len(), len(again.Map.Rooms), len(w.Map.Rooms))
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.HP = 0
	if _, err := Build(cfg); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error = %v, want invalid config", err)
	}
}
