// Package entity provides the markers that move through a generated dungeon.
package entity

import "github.com/samdwyer/dungeontower/internal/geom"

// Party is the explorer walking the dungeon, drawn as a single symbol.
type Party struct {
	Pos    geom.Point // World position
	Symbol rune
}

// NewParty creates a new party at the given position.
func NewParty(pos geom.Point) *Party {
	return &Party{
		Pos:    pos,
		Symbol: '&',
	}
}

// Step returns the position one tile away in the given direction.
func (p *Party) Step(dir geom.Direction) geom.Point {
	return p.Pos.Add(dir.Vector())
}

// Move steps the party in the given direction.
func (p *Party) Move(dir geom.Direction) {
	p.Pos = p.Step(dir)
}

// Position returns the current world position.
func (p *Party) Position() geom.Point {
	return p.Pos
}
