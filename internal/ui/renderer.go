package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/geom"
	"github.com/samdwyer/dungeontower/internal/world"
)

// Renderer draws the dungeon to the screen. It implements world.Painter:
// a tile at world position p lands on screen cell p - camera.
type Renderer struct {
	screen *Screen
	camera geom.Point
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Camera returns the world position drawn at the screen's top-left cell.
func (r *Renderer) Camera() geom.Point {
	return r.camera
}

// SetCamera moves the camera.
func (r *Renderer) SetCamera(p geom.Point) {
	r.camera = p
}

// CenterOn moves the camera so p is drawn in the middle of the screen.
func (r *Renderer) CenterOn(p geom.Point) {
	w, h := r.screen.Size()
	r.camera = p.Sub(geom.Pt(w/2, h/2))
}

// DrawTile draws one tile. Tiles off screen are skipped.
func (r *Renderer) DrawTile(t *world.Tile) error {
	if r.screen == nil {
		return errors.New("renderer has no screen")
	}
	p := t.Pos.Sub(r.camera)
	if !r.onScreen(p) {
		return nil
	}
	r.screen.SetContent(p.X, p.Y, t.Glyph, tileStyle(t))
	return nil
}

func (r *Renderer) onScreen(p geom.Point) bool {
	w, h := r.screen.Size()
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Render draws every room, the doorways between them, the party and a
// status line along the bottom row.
func (r *Renderer) Render(dungeon *world.Dungeon, party *entity.Party, status string) error {
	r.screen.Clear()

	for _, room := range dungeon.Rooms() {
		if err := room.Render(r); err != nil {
			return err
		}
	}
	for _, door := range dungeon.Doorways() {
		if err := r.DrawTile(door); err != nil {
			return err
		}
	}

	if party != nil {
		p := party.Position().Sub(r.camera)
		if r.onScreen(p) {
			partyStyle := tcell.StyleDefault.
				Foreground(tcell.ColorYellow).
				Background(tcell.ColorNavy).
				Bold(true)
			r.screen.SetContent(p.X, p.Y, party.Symbol, partyStyle)
		}
	}

	if status != "" {
		_, h := r.screen.Size()
		r.RenderMessage(status, h-1)
	}

	r.screen.Show()
	return nil
}

// tileStyle returns the terminal style for a tile's colors.
func tileStyle(t *world.Tile) tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
