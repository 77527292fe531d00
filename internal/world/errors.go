package world

import "errors"

var (
	// ErrNoAttachableRoom means no reachable room has a free branch slot.
	ErrNoAttachableRoom = errors.New("no room with a free branch slot")
	// ErrPlacementRetriesExhausted means every placement attempt collided.
	ErrPlacementRetriesExhausted = errors.New("could not place room")
	// ErrIndexOutOfBounds means a tile lookup fell outside the room grid.
	ErrIndexOutOfBounds = errors.New("tile position out of bounds")
	// ErrInvalidDimensions means a room was too small to have walls with doors.
	ErrInvalidDimensions = errors.New("invalid room dimensions")

	// ErrCollision means a single placement overlapped an existing room.
	ErrCollision = errors.New("room placement collides")
	// ErrSlotOccupied means the chosen direction already holds a branch.
	ErrSlotOccupied = errors.New("branch slot occupied")
	// ErrInvalidAnchor means a branch start point is not on the wall it leaves from.
	ErrInvalidAnchor = errors.New("branch start point not on wall")
	// ErrRoomAttached means the candidate room is already part of a graph.
	ErrRoomAttached = errors.New("room already attached")
)
