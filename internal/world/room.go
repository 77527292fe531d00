package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeontower/internal/geom"
)

// MinRoomSide is the smallest width or height a room may have. Each wall
// needs at least one tile that is not a corner so a branch can leave through it.
const MinRoomSide = 3

// Painter draws tiles relative to a camera position it owns.
type Painter interface {
	Camera() geom.Point
	SetCamera(p geom.Point)
	DrawTile(t *Tile) error
}

// Room is a rectangular node in the dungeon graph.
type Room struct {
	ID uuid.UUID

	center geom.Point
	size   geom.Point

	tiles    [][]*Tile // [y][x], room-local
	branches [len(geom.Directions)]*Branch
}

// NewRoom creates an unattached room and builds its tile grid: floor inside,
// edge walls along the sides and a distinct tile for each corner.
func NewRoom(center, size geom.Point, factory TileFactory) (*Room, error) {
	if size.X < MinRoomSide || size.Y < MinRoomSide {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidDimensions, size.X, size.Y, MinRoomSide, MinRoomSide)
	}

	tiles := make([][]*Tile, size.Y)
	for y := range tiles {
		tiles[y] = make([]*Tile, size.X)
		for x := range tiles[y] {
			tiles[y][x] = factory.NewTile(geom.Pt(x, y), tileKindAt(x, y, size.X, size.Y))
		}
	}

	return &Room{
		ID:     uuid.New(),
		center: center,
		size:   size,
		tiles:  tiles,
	}, nil
}

// tileKindAt picks the kind for local position (x, y) in a w×h grid.
func tileKindAt(x, y, w, h int) TileKind {
	left, right := x == 0, x == w-1
	top, bottom := y == 0, y == h-1

	switch {
	case top && left:
		return TileCornerTopLeft
	case top && right:
		return TileCornerTopRight
	case bottom && left:
		return TileCornerBottomLeft
	case bottom && right:
		return TileCornerBottomRight
	case top || bottom:
		return TileWallHorizontal
	case left || right:
		return TileWallVertical
	default:
		return TileFloor
	}
}

// Center returns the room's center in world space.
func (r *Room) Center() geom.Point {
	return r.center
}

// Dimensions returns width and height.
func (r *Room) Dimensions() geom.Point {
	return r.size
}

// Width returns the room width in tiles.
func (r *Room) Width() int {
	return r.size.X
}

// Height returns the room height in tiles.
func (r *Room) Height() int {
	return r.size.Y
}

// Rect returns the room's world-space rectangle.
func (r *Room) Rect() geom.Rect {
	return geom.NewRect(r.center, r.size)
}

// Tile returns the tile at a room-local position.
func (r *Room) Tile(pos geom.Point) (*Tile, error) {
	if pos.X < 0 || pos.X >= r.size.X || pos.Y < 0 || pos.Y >= r.size.Y {
		return nil, fmt.Errorf("%w: %v in %dx%d room", ErrIndexOutOfBounds, pos, r.size.X, r.size.Y)
	}
	return r.tiles[pos.Y][pos.X], nil
}

// Branch returns the branch in the given slot, or nil when empty.
func (r *Room) Branch(d geom.Direction) *Branch {
	return r.branches[d]
}

// SetBranch replaces the branch in the given slot. Passing nil clears it.
func (r *Room) SetBranch(d geom.Direction, b *Branch) {
	r.branches[d] = b
}

// EmptyDirections returns the directions whose slots hold no branch.
func (r *Room) EmptyDirections() []geom.Direction {
	var dirs []geom.Direction
	for _, d := range geom.Directions {
		if r.branches[d] == nil {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// hasBranches reports whether any slot is populated.
func (r *Room) hasBranches() bool {
	for _, b := range r.branches {
		if b != nil {
			return true
		}
	}
	return false
}

// Intersects returns true if the two rooms' rectangles overlap.
func (r *Room) Intersects(other *Room) bool {
	return r.Rect().Intersects(other.Rect())
}

// Render draws every tile through p. The camera is shifted so local tile
// coordinates land at the room's world position, then restored on return.
func (r *Room) Render(p Painter) error {
	saved := p.Camera()
	defer p.SetCamera(saved)

	p.SetCamera(saved.Add(r.size.Half()).Sub(r.center))

	for _, row := range r.tiles {
		for _, t := range row {
			if t == nil {
				continue
			}
			if err := p.DrawTile(t); err != nil {
				return fmt.Errorf("draw tile %v of room %s: %w", t.Pos, r.ID, err)
			}
		}
	}
	return nil
}
