package geom

// Rect is an axis-aligned rectangle described by its center and size.
//
// Edges are inclusive tile coordinates: a rect of width 30 centered on x=0
// spans Left=-15 through Right=14.
type Rect struct {
	Center Point
	Size   Point
}

// NewRect creates a rect from a center and a size.
func NewRect(center, size Point) Rect {
	return Rect{Center: center, Size: size}
}

// Left returns the x-coordinate of the leftmost column.
func (r Rect) Left() int {
	return r.Center.X - r.Size.X/2
}

// Right returns the x-coordinate of the rightmost column.
func (r Rect) Right() int {
	return r.Left() + r.Size.X - 1
}

// Top returns the y-coordinate of the topmost row.
func (r Rect) Top() int {
	return r.Center.Y - r.Size.Y/2
}

// Bottom returns the y-coordinate of the bottommost row.
func (r Rect) Bottom() int {
	return r.Top() + r.Size.Y - 1
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.Left(), Y: r.Top()}
}

// Contains returns true if p lies inside the rect, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects returns true if the two rects share at least one tile.
// Rects on adjacent rows or columns only touch and do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Left() > other.Right() || other.Left() > r.Right() {
		return false
	}
	if r.Top() > other.Bottom() || other.Top() > r.Bottom() {
		return false
	}
	return true
}
