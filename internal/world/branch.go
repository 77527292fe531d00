package world

import "github.com/samdwyer/dungeontower/internal/geom"

// Branch is a directed edge leaving a room through one of its walls.
//
// The room slot that holds a branch owns it. The destination is a plain
// reference to a room owned by the graph; a branch without one is open.
type Branch struct {
	direction   geom.Direction
	start       geom.Point
	destination *Room
}

// NewBranch creates an open branch heading in the given direction.
func NewBranch(direction geom.Direction) *Branch {
	return &Branch{direction: direction}
}

// Direction returns the direction the branch leaves its room.
func (b *Branch) Direction() geom.Direction {
	return b.direction
}

// Start returns the branch's anchor on the origin room's wall.
func (b *Branch) Start() geom.Point {
	return b.start
}

// SetStart moves the anchor.
func (b *Branch) SetStart(p geom.Point) {
	b.start = p
}

// DestinationPoint is the tile one step past the start along the direction.
func (b *Branch) DestinationPoint() geom.Point {
	return b.start.Add(b.direction.Vector())
}

// Destination returns the room the branch leads to, or nil when open.
func (b *Branch) Destination() *Room {
	return b.destination
}

// SetDestination links the branch to a room. Passing nil reopens it.
func (b *Branch) SetDestination(room *Room) {
	b.destination = room
}

// IsOpen returns true if the branch has no destination room yet.
func (b *Branch) IsOpen() bool {
	return b.destination == nil
}
