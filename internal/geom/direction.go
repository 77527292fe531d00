package geom

import "fmt"

// Direction is one of the four cardinal directions a room can branch toward.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in slot order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Vector returns the unit displacement for the direction.
// Up is -y because y grows downward.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	}
	panic(fmt.Sprintf("geom: invalid direction %d", int(d)))
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	panic(fmt.Sprintf("geom: invalid direction %d", int(d)))
}

// Horizontal reports whether the direction runs along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}
