package gfx

// Point is a 2D integer coordinate or extent.
type Point struct {
	X, Y int32
}

// Pt is a shorthand Point constructor.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle given by its top-left position and size.
// Size components are never negative.
type Rect struct {
	Pos  Point
	Size Point
}

// Rct is a shorthand Rect constructor.
func Rct(x, y, w, h int32) Rect {
	return Rect{Pos: Point{X: x, Y: y}, Size: Point{X: w, Y: h}}
}

// Contains reports whether other's bounding box lies fully within r.
func (r Rect) Contains(other Rect) bool {
	br := r.Pos.Add(r.Size)
	obr := other.Pos.Add(other.Size)
	return r.Pos.X <= other.Pos.X && r.Pos.Y <= other.Pos.Y &&
		obr.X <= br.X && obr.Y <= br.Y
}

// MoveBy translates the rectangle in place.
func (r *Rect) MoveBy(dx, dy int32) {
	r.Pos.X += dx
	r.Pos.Y += dy
}
