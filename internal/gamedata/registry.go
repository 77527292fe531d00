package gamedata

import (
	"errors"
	"fmt"
)

// TileStyleRegistry holds loaded tile styles keyed by ID.
type TileStyleRegistry struct {
	styles map[string]*TileStyleDef
	all    []TileStyleDef
}

// NewTileStyleRegistry creates a registry from loaded style definitions.
// Later definitions win when IDs repeat.
func NewTileStyleRegistry(styles []TileStyleDef) *TileStyleRegistry {
	registry := &TileStyleRegistry{
		styles: make(map[string]*TileStyleDef, len(styles)),
		all:    styles,
	}
	for i := range styles {
		registry.styles[styles[i].ID] = &styles[i]
	}
	return registry
}

// LoadTileStyleRegistry loads tiles.json and checks every color parses.
func LoadTileStyleRegistry() (*TileStyleRegistry, error) {
	styles, err := LoadTileStyles()
	if err != nil {
		return nil, err
	}
	if len(styles) == 0 {
		return nil, errors.New("no tile styles loaded from tiles.json")
	}
	for _, s := range styles {
		if _, err := ParseHexColor(s.Foreground); err != nil {
			return nil, fmt.Errorf("tile style %s foreground: %w", s.ID, err)
		}
		if _, err := ParseHexColor(s.Background); err != nil {
			return nil, fmt.Errorf("tile style %s background: %w", s.ID, err)
		}
	}
	return NewTileStyleRegistry(styles), nil
}

// MustLoadTileStyleRegistry loads a registry, panicking on error.
func MustLoadTileStyleRegistry() *TileStyleRegistry {
	registry, err := LoadTileStyleRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the style with the given ID, or nil if not found.
func (r *TileStyleRegistry) GetByID(id string) *TileStyleDef {
	return r.styles[id]
}

// All returns all style definitions.
func (r *TileStyleRegistry) All() []TileStyleDef {
	return r.all
}

// Count returns the number of distinct style IDs.
func (r *TileStyleRegistry) Count() int {
	return len(r.styles)
}
