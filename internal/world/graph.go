package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeontower/internal/geom"
)

// CollectReachableRooms walks branch destinations depth-first from root and
// returns every room it finds, each once, in order of first visit.
func CollectReachableRooms(root *Room) []*Room {
	if root == nil {
		return nil
	}

	visited := mapset.New[*Room]()
	var rooms []*Room
	collectRooms(root, visited, &rooms)
	return rooms
}

func collectRooms(room *Room, visited mapset.Set[*Room], rooms *[]*Room) {
	if visited.Has(room) {
		return
	}
	visited.Put(room)
	*rooms = append(*rooms, room)

	for _, d := range geom.Directions {
		branch := room.Branch(d)
		if branch == nil || branch.Destination() == nil {
			continue
		}
		collectRooms(branch.Destination(), visited, rooms)
	}
}

// FindCollision returns the first pair of distinct reachable rooms that overlap.
func FindCollision(root *Room) (a, b *Room, found bool) {
	rooms := CollectReachableRooms(root)
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Intersects(rooms[j]) {
				return rooms[i], rooms[j], true
			}
		}
	}
	return nil, nil, false
}

// HasAnyCollision returns true if any two reachable rooms overlap.
func HasAnyCollision(root *Room) bool {
	_, _, found := FindCollision(root)
	return found
}
