package ui

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/geom"
	"github.com/samdwyer/dungeontower/internal/world"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(screen.Close)
	return screen, sim
}

func newDungeon(t *testing.T, center, size geom.Point) *world.Dungeon {
	t.Helper()
	tiles, err := world.DefaultTiles()
	if err != nil {
		t.Fatalf("DefaultTiles: %v", err)
	}
	root, err := world.NewRoom(center, size, tiles)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	d, err := world.NewDungeon(root, rand.New(rand.NewSource(1)), tiles, world.DefaultConfig())
	if err != nil {
		t.Fatalf("NewDungeon: %v", err)
	}
	return d
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestRenderDrawsRoomAtWorldPosition(t *testing.T) {
	screen, sim := newSimScreen(t, 40, 20)
	renderer := NewRenderer(screen)

	// x [0,29], y [0,15]
	d := newDungeon(t, geom.Pt(15, 8), geom.Pt(30, 16))
	party := entity.NewParty(geom.Pt(15, 8))

	if err := renderer.Render(d, party, "rooms: 1"); err != nil {
		t.Fatalf("Render: %v", err)
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '╔'},
		{29, 0, '╗'},
		{0, 15, '╚'},
		{29, 15, '╝'},
		{10, 0, '═'},
		{0, 10, '║'},
		{15, 8, '&'},
		{0, 19, 'r'},
	}
	for _, tt := range tests {
		if got := runeAt(sim, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	if renderer.Camera() != geom.Pt(0, 0) {
		t.Errorf("camera = %v after render, want (0,0)", renderer.Camera())
	}
}

func TestRenderHonorsCamera(t *testing.T) {
	screen, sim := newSimScreen(t, 40, 20)
	renderer := NewRenderer(screen)
	renderer.SetCamera(geom.Pt(-5, -2))

	d := newDungeon(t, geom.Pt(15, 8), geom.Pt(30, 16))
	if err := renderer.Render(d, nil, ""); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := runeAt(sim, 5, 2); got != '╔' {
		t.Errorf("top-left corner at (5,2) = %q, want '╔'", got)
	}
}

func TestCenterOn(t *testing.T) {
	screen, _ := newSimScreen(t, 40, 20)
	renderer := NewRenderer(screen)

	renderer.CenterOn(geom.Pt(100, 50))
	if renderer.Camera() != geom.Pt(80, 40) {
		t.Errorf("camera = %v, want (80,40)", renderer.Camera())
	}
}

func TestDrawTileClipsOffscreen(t *testing.T) {
	screen, _ := newSimScreen(t, 10, 10)
	renderer := NewRenderer(screen)

	tile := &world.Tile{Pos: geom.Pt(-5, 40), Glyph: 'x'}
	if err := renderer.DrawTile(tile); err != nil {
		t.Errorf("offscreen tile should be skipped, got %v", err)
	}
}

func TestDrawTileWithoutScreen(t *testing.T) {
	renderer := NewRenderer(nil)
	if err := renderer.DrawTile(&world.Tile{Glyph: 'x'}); err == nil {
		t.Error("drawing without a screen should fail")
	}
}
