package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Map      MapConfig       `yaml:"map"`
	Player   ActorConfig     `yaml:"player"`
	Monsters []MonsterConfig `yaml:"monsters"`
	Items    []ItemConfig    `yaml:"items"`
	Log      LogConfig       `yaml:"log"`
}

// MapConfig: либо готовая ASCII-раскладка, либо параметры генератора
type MapConfig struct {
	Layout   string         `yaml:"layout"`
	Rooms    []RoomConfig   `yaml:"rooms"`
	Generate GenerateConfig `yaml:"generate"`
}

type RoomConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type GenerateConfig struct {
	Seed            int64 `yaml:"seed"`
	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	MaxRooms        int   `yaml:"max_rooms"`
	MinSize         int   `yaml:"min_size"`
	MaxSize         int   `yaml:"max_size"`
	MonstersPerRoom int   `yaml:"monsters_per_room"`
	PotionsPerRoom  int   `yaml:"potions_per_room"`
}

type ActorConfig struct {
	Name    string `yaml:"name"`
	Glyph   string `yaml:"glyph"`
	Color   string `yaml:"color"`
	HP      int    `yaml:"hp"`
	Defense int    `yaml:"defense"`
	Power   int    `yaml:"power"`
	Vision  int    `yaml:"vision"`
}

type MonsterConfig = ActorConfig

type ItemConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Heal  int    `yaml:"heal"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default - конфигурация "из коробки": генерируемое подземелье, гоблины, орки и зелья
func Default() Config {
	return Config{
		Map: MapConfig{
			Generate: GenerateConfig{
				Width:           80,
				Height:          43,
				MaxRooms:        30,
				MinSize:         6,
				MaxSize:         10,
				MonstersPerRoom: 1,
				PotionsPerRoom:  1,
			},
		},
		Player: ActorConfig{Name: "Игрок", Glyph: "@", Color: "yellow", HP: 30, Defense: 2, Power: 5, Vision: 8},
		Monsters: []MonsterConfig{
			{Name: "Гоблин", Glyph: "g", Color: "green", HP: 16, Defense: 1, Power: 4, Vision: 8},
			{Name: "Орк", Glyph: "o", Color: "red", HP: 16, Defense: 1, Power: 4, Vision: 8},
		},
		Items: []ItemConfig{
			{Name: "Зелье лечения", Glyph: "!", Color: "fuchsia", Heal: 8},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load читает YAML поверх значений по умолчанию и валидирует результат
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LayoutRows возвращает строки раскладки без пустых строк в начале и конце
func (c Config) LayoutRows() []string {
	text := strings.Trim(c.Map.Layout, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Glyph - единственная руна строки-глифа (Validate гарантирует ровно одну)
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func (c Config) Validate() error {
	var errs []error

	if err := validateActor("player", c.Player); err != nil {
		errs = append(errs, err)
	}

	glyphs := map[rune]string{'#': "wall", '.': "floor", Glyph(c.Player.Glyph): "player"}
	claim := func(field, glyph string) {
		r := Glyph(glyph)
		if owner, taken := glyphs[r]; taken {
			errs = append(errs, fmt.Errorf("%s: glyph %q already used by %s", field, glyph, owner))
			return
		}
		glyphs[r] = field
	}

	for i, m := range c.Monsters {
		field := fmt.Sprintf("monsters[%d]", i)
		if err := validateActor(field, m); err != nil {
			errs = append(errs, err)
			continue
		}
		claim(field, m.Glyph)
	}
	for i, it := range c.Items {
		field := fmt.Sprintf("items[%d]", i)
		switch {
		case utf8.RuneCountInString(it.Glyph) != 1:
			errs = append(errs, fmt.Errorf("%s: glyph must be a single character, got %q", field, it.Glyph))
			continue
		case it.Name == "":
			errs = append(errs, fmt.Errorf("%s: name is required", field))
		case it.Heal <= 0:
			errs = append(errs, fmt.Errorf("%s: heal must be positive", field))
		}
		claim(field, it.Glyph)
	}

	for i, r := range c.Map.Rooms {
		if r.W < 1 || r.H < 1 {
			errs = append(errs, fmt.Errorf("map.rooms[%d]: size must be positive", i))
		}
	}

	if rows := c.LayoutRows(); rows != nil {
		errs = append(errs, validateLayout(rows, glyphs)...)
	} else {
		errs = append(errs, validateGenerate(c.Map.Generate)...)
	}

	return errors.Join(errs...)
}

func validateActor(field string, a ActorConfig) error {
	switch {
	case utf8.RuneCountInString(a.Glyph) != 1:
		return fmt.Errorf("%s: glyph must be a single character, got %q", field, a.Glyph)
	case a.Name == "":
		return fmt.Errorf("%s: name is required", field)
	case a.HP <= 0:
		return fmt.Errorf("%s: hp must be positive", field)
	case a.Defense < 0 || a.Power < 0 || a.Vision < 0:
		return fmt.Errorf("%s: defense, power and vision must not be negative", field)
	}
	return nil
}

func validateLayout(rows []string, glyphs map[rune]string) []error {
	var errs []error
	width := utf8.RuneCountInString(rows[0])
	if width < 3 || len(rows) < 3 {
		errs = append(errs, fmt.Errorf("map.layout: must be at least 3x3"))
	}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			errs = append(errs, fmt.Errorf("map.layout: row %d has width %d, want %d", y, n, width))
		}
		x := 0
		for _, r := range row {
			if _, ok := glyphs[r]; !ok {
				errs = append(errs, fmt.Errorf("map.layout: unknown glyph %q at (%d, %d)", r, x, y))
			}
			x++
		}
	}
	return errs
}

func validateGenerate(g GenerateConfig) []error {
	var errs []error
	if g.MinSize < 2 || g.MaxSize < g.MinSize {
		errs = append(errs, fmt.Errorf("map.generate: need 2 <= min_size <= max_size, got %d..%d", g.MinSize, g.MaxSize))
	}
	if g.Width < g.MaxSize+2 || g.Height < g.MaxSize+2 {
		errs = append(errs, fmt.Errorf("map.generate: %dx%d is too small for rooms up to %d", g.Width, g.Height, g.MaxSize))
	}
	if g.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("map.generate: max_rooms must be positive"))
	}
	if g.MonstersPerRoom < 0 || g.PotionsPerRoom < 0 {
		errs = append(errs, fmt.Errorf("map.generate: per-room counts must not be negative"))
	}
	return errs
}
