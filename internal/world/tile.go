// Package world provides the room graph and the generator that grows it.
package world

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeontower/internal/gamedata"
	"github.com/samdwyer/dungeontower/internal/geom"
)

// TileKind identifies which part of a room a tile forms.
type TileKind int

const (
	TileFloor TileKind = iota
	TileWallHorizontal
	TileWallVertical
	TileCornerTopLeft
	TileCornerTopRight
	TileCornerBottomLeft
	TileCornerBottomRight
	// TileDoorway marks the two ends of a branch. Rooms never contain it.
	TileDoorway
)

// ID returns the style identifier used in tiles.json.
func (k TileKind) ID() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileWallHorizontal:
		return "wall_horizontal"
	case TileWallVertical:
		return "wall_vertical"
	case TileCornerTopLeft:
		return "corner_top_left"
	case TileCornerTopRight:
		return "corner_top_right"
	case TileCornerBottomLeft:
		return "corner_bottom_left"
	case TileCornerBottomRight:
		return "corner_bottom_right"
	case TileDoorway:
		return "doorway"
	default:
		return "unknown"
	}
}

// Tile is a single background cell.
type Tile struct {
	Pos        geom.Point // Room-local for room tiles, world space for doorways
	Kind       TileKind
	Glyph      rune
	Foreground tcell.Color
	Background tcell.Color
	Blocking   bool
}

// IsPassable returns true if the tile can be walked on.
func (t *Tile) IsPassable() bool {
	return !t.Blocking
}

// TileFactory builds tiles for a position and kind.
type TileFactory interface {
	NewTile(pos geom.Point, kind TileKind) *Tile
}

// StyledTiles builds tiles from a tile style registry.
type StyledTiles struct {
	styles *gamedata.TileStyleRegistry
}

// NewStyledTiles creates a factory backed by the given registry.
func NewStyledTiles(styles *gamedata.TileStyleRegistry) *StyledTiles {
	return &StyledTiles{styles: styles}
}

// DefaultTiles creates a factory from the embedded tiles.json.
func DefaultTiles() (*StyledTiles, error) {
	styles, err := gamedata.LoadTileStyleRegistry()
	if err != nil {
		return nil, err
	}
	return NewStyledTiles(styles), nil
}

// NewTile implements TileFactory. Kinds missing from the registry render as
// '?' and block unless they are floor or doorway.
func (f *StyledTiles) NewTile(pos geom.Point, kind TileKind) *Tile {
	style := f.styles.GetByID(kind.ID())
	if style == nil {
		return &Tile{
			Pos:        pos,
			Kind:       kind,
			Glyph:      '?',
			Foreground: tcell.ColorWhite,
			Background: tcell.ColorBlack,
			Blocking:   kind != TileFloor && kind != TileDoorway,
		}
	}
	return &Tile{
		Pos:        pos,
		Kind:       kind,
		Glyph:      style.GlyphRune(),
		Foreground: style.ForegroundColor(),
		Background: style.BackgroundColor(),
		Blocking:   style.Blocking,
	}
}
