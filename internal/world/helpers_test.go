package world

import (
	"testing"

	"github.com/samdwyer/dungeontower/internal/geom"
)

func testTiles(t *testing.T) *StyledTiles {
	t.Helper()
	tiles, err := DefaultTiles()
	if err != nil {
		t.Fatalf("Failed to load tiles: %v", err)
	}
	return tiles
}

func mustRoom(t *testing.T, tiles TileFactory, center, size geom.Point) *Room {
	t.Helper()
	room, err := NewRoom(center, size, tiles)
	if err != nil {
		t.Fatalf("NewRoom(%v, %v): %v", center, size, err)
	}
	return room
}

// link fills a slot by hand without any geometry checks.
func link(from *Room, dir geom.Direction, to *Room) {
	b := NewBranch(dir)
	b.SetDestination(to)
	from.SetBranch(dir, b)
}

func containsRoom(rooms []*Room, room *Room) bool {
	for _, r := range rooms {
		if r == room {
			return true
		}
	}
	return false
}
