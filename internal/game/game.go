package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeontower/internal/entity"
	"github.com/samdwyer/dungeontower/internal/geom"
	"github.com/samdwyer/dungeontower/internal/telemetry"
	"github.com/samdwyer/dungeontower/internal/ui"
	"github.com/samdwyer/dungeontower/internal/world"
)

// Game holds the viewer state.
type Game struct {
	cfg      Config
	log      logr.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	tiles    world.TileFactory
	seed     int64
	dungeon  *world.Dungeon
	party    *entity.Party
	state    State
	message  string
	running  bool
}

// New creates a viewer on the terminal.
func New(cfg Config, log logr.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg, log)
}

// NewWithScreen creates a viewer drawing to an already created screen.
func NewWithScreen(screen *ui.Screen, cfg Config, log logr.Logger) (*Game, error) {
	tiles, err := world.DefaultTiles()
	if err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}

	return &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		tiles:    tiles,
		seed:     cfg.Seed,
		state:    StateExplore,
		running:  true,
	}, nil
}

// Run builds the first dungeon and executes the main loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	for g.running {
		g.renderer.CenterOn(g.party.Position())
		if err := g.renderer.Render(g.dungeon, g.party, g.statusLine()); err != nil {
			return err
		}

		// Blocking
		g.handleInput(ctx)
	}
	return nil
}

// init generates a dungeon for the current seed and places the party.
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	root, err := world.NewRoom(geom.Pt(0, 0), geom.Pt(world.DefaultRootWidth, world.DefaultRootHeight), g.tiles)
	if err != nil {
		return err
	}
	dungeon, err := world.NewDungeon(root, rand.New(rand.NewSource(g.seed)), g.tiles, g.cfg.WorldConfig())
	if err != nil {
		return err
	}
	dungeon.SetLogger(g.log.WithName("world"))

	g.dungeon = dungeon
	g.party = entity.NewParty(root.Center())
	g.state = StateExplore
	g.message = ""

	// A partial dungeon is still connected and overlap free, so keep it
	if err := dungeon.Generate(ctx, g.cfg.Rooms); err != nil {
		g.stall(err)
	}

	span.SetAttributes(
		attribute.Int64("dungeon.seed", g.seed),
		attribute.Int("dungeon.rooms", len(dungeon.Rooms())),
		attribute.String("game.state", g.state.String()),
	)
	return nil
}

func (g *Game) stall(err error) {
	g.state = StateStalled
	g.message = err.Error()
	g.log.Error(err, "dungeon stalled", "seed", g.seed)
}

// statusLine summarizes the dungeon and the available keys.
func (g *Game) statusLine() string {
	if g.state == StateStalled {
		return fmt.Sprintf("rooms: %d  seed: %d  stalled: %s  [r] regenerate  [q] quit",
			len(g.dungeon.Rooms()), g.seed, g.message)
	}
	return fmt.Sprintf("rooms: %d  seed: %d  [arrows] move  [a] add room  [r] regenerate  [q] quit",
		len(g.dungeon.Rooms()), g.seed)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(geom.Up)
	case tcell.KeyDown:
		g.tryMove(geom.Down)
	case tcell.KeyLeft:
		g.tryMove(geom.Left)
	case tcell.KeyRight:
		g.tryMove(geom.Right)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'a', 'A':
			g.addRoom(ctx)
		case 'r', 'R':
			g.regenerate(ctx)
		}
	}
}

// tryMove steps the party if the target tile is walkable.
func (g *Game) tryMove(dir geom.Direction) {
	if g.dungeon.IsPassable(g.party.Step(dir)) {
		g.party.Move(dir)
	}
}

// addRoom attaches one more random room.
func (g *Game) addRoom(ctx context.Context) {
	if g.state == StateStalled {
		return
	}
	if _, err := g.dungeon.AddRoom(ctx); err != nil {
		g.stall(err)
	}
}

// regenerate starts over with the next seed.
func (g *Game) regenerate(ctx context.Context) {
	g.seed++
	if err := g.init(ctx); err != nil {
		g.stall(err)
	}
}
