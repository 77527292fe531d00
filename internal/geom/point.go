// Package geom provides the integer geometry used to lay out dungeon rooms.
//
// Coordinates follow the terminal: x grows to the right and y grows downward.
package geom

import "fmt"

// Point is an integer pair used both as a position and as a displacement.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Half divides both components by two, truncating toward zero.
func (p Point) Half() Point {
	return Point{X: p.X / 2, Y: p.Y / 2}
}

// String returns the point formatted as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
