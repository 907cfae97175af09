package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/ocamlmycaml/saloon-rogue/internal/domain"
	"github.com/ocamlmycaml/saloon-rogue/internal/engine"
	"github.com/ocamlmycaml/saloon-rogue/internal/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const logLines = 5

var (
	styleDefault  = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleRemember = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCombat   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)

	renderableQuery = donburi.NewQuery(filter.Contains(domain.PositionComponent, domain.RenderableComponent))
)

func draw(screen tcell.Screen, game *engine.Game) {
	w := game.World()
	screen.Clear()

	drawMap(screen, w)
	drawEntities(screen, w)

	y := w.Map.Height
	drawStatus(screen, w, y)
	drawLog(screen, w, y+1)

	if title, items, open := game.OpenMenu(); open {
		drawMenu(screen, title, items)
	}
	if game.PlayerDead() {
		drawText(screen, 2, w.Map.Height/2, styleBanner, " Вы погибли! Q - выход ")
	}
	screen.Show()
}

func drawMap(screen tcell.Screen, w *world.World) {
	m := w.Map
	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		p := m.PointOf(idx)
		ch, style := '.', styleFloor
		if tile == domain.TileWall {
			ch, style = '#', styleWall
		}
		if !m.Visible[idx] {
			style = styleRemember
		}
		screen.SetContent(p.X, p.Y, ch, nil, style)
	}
}

// Сущности видны только в видимых клетках; игрок рисуется последним
func drawEntities(screen tcell.Screen, w *world.World) {
	var player *donburi.Entry
	renderableQuery.Each(w.ECS, func(entry *donburi.Entry) {
		if w.IsPlayer(entry.Entity()) {
			player = entry
			return
		}
		p := domain.PositionComponent.Get(entry)
		if !w.Map.InBounds(*p) || !w.Map.Visible[w.Map.Index(p.X, p.Y)] {
			return
		}
		drawRenderable(screen, entry)
	})
	if player != nil {
		drawRenderable(screen, player)
	}
}

func drawRenderable(screen tcell.Screen, entry *donburi.Entry) {
	p := domain.PositionComponent.Get(entry)
	r := domain.RenderableComponent.Get(entry)
	style := styleDefault.Foreground(tcell.GetColor(r.Color))
	screen.SetContent(p.X, p.Y, r.Glyph, nil, style)
}

func drawStatus(screen tcell.Screen, w *world.World, y int) {
	stats, err := world.Component(w, w.Player(), domain.CombatStatsComponent)
	if err != nil {
		return
	}
	drawText(screen, 0, y, styleDefault, fmt.Sprintf("HP: %d / %d", stats.HP, stats.MaxHP))
}

func drawLog(screen tcell.Screen, w *world.World, y int) {
	for i, entry := range w.Log.Latest(logLines) {
		style := styleDefault
		switch entry.Type {
		case domain.LogTypeCombat:
			style = styleCombat
		case domain.LogTypeError:
			style = styleBanner
		}
		drawText(screen, 0, y+i, style, entry.Text)
	}
}

func drawMenu(screen tcell.Screen, title string, items []engine.MenuItem) {
	x, y := 4, 2
	drawText(screen, x, y, styleBanner, " "+title+" ")
	for i, item := range items {
		drawText(screen, x, y+1+i, styleDefault, fmt.Sprintf("(%c) %s", engine.MenuLetter(i), item.Label))
	}
	drawText(screen, x, y+1+len(items), styleRemember, "Esc - закрыть")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
