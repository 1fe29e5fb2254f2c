package model

import "math"

// Rect represents a rectangular region in page coordinate units.
// Coordinates follow the extraction convention: the origin is the top-left
// corner of the page and Y grows downward. A valid Rect satisfies
// X1 >= X0 and Y1 >= Y0.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewRect creates a rectangle from two corner points, normalizing the
// coordinate order so the result is always valid.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Valid returns true if the corner coordinates are correctly ordered.
func (r Rect) Valid() bool {
	return r.X1 >= r.X0 && r.Y1 >= r.Y0
}

// IsDegenerate returns true if the rectangle has non-positive width or height.
// Degenerate regions cannot hold text and are rejected before fitting.
func (r Rect) IsDegenerate() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains checks whether the other rectangle lies entirely within this one.
// All four component-wise inequalities must hold.
func (r Rect) Contains(other Rect) bool {
	return r.X0 <= other.X0 && r.Y0 <= other.Y0 &&
		r.X1 >= other.X1 && r.Y1 >= other.Y1
}

// ContainsPoint checks whether a point is inside the rectangle.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Intersects checks whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 || r.X0 > other.X1 ||
		r.Y1 < other.Y0 || r.Y0 > other.Y1)
}

// Intersect returns the intersection of two rectangles. When the rectangles
// do not overlap the zero Rect is returned, which is degenerate. This is the
// single operation the table-cell containment invariant is built on: a box
// intersected with its cell constraint can never extend past the cell.
func (r Rect) Intersect(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	return Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Inset shrinks the rectangle by a margin on all sides. The result may be
// degenerate when the margin exceeds half the rectangle's extent.
func (r Rect) Inset(margin float64) Rect {
	return Rect{
		X0: r.X0 + margin,
		Y0: r.Y0 + margin,
		X1: r.X1 - margin,
		Y1: r.Y1 - margin,
	}
}
