package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// TileStyleDef describes how one kind of background tile looks and behaves.
type TileStyleDef struct {
	ID         string `json:"id"`         // Matches world.TileKind.ID (e.g., "wall_vertical")
	Glyph      string `json:"glyph"`      // Single character, may be multi-byte (e.g., "║")
	Foreground string `json:"foreground"` // Hex color code
	Background string `json:"background"` // Hex color code
	Blocking   bool   `json:"blocking"`   // Impassable when true
}

// GlyphRune returns the first rune of the glyph, or '?' when empty.
func (s *TileStyleDef) GlyphRune() rune {
	r, size := utf8.DecodeRuneInString(s.Glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// ForegroundColor returns the foreground as a tcell.Color.
func (s *TileStyleDef) ForegroundColor() tcell.Color {
	color, err := ParseHexColor(s.Foreground)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// BackgroundColor returns the background as a tcell.Color.
func (s *TileStyleDef) BackgroundColor() tcell.Color {
	color, err := ParseHexColor(s.Background)
	if err != nil {
		return tcell.ColorBlack
	}
	return color
}

// TileStylesFile represents the structure of tiles.json.
type TileStylesFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

// LoadTileStyles loads tile style definitions from the embedded tiles.json file.
func LoadTileStyles() ([]TileStyleDef, error) {
	file, err := Load[TileStylesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
