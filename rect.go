package contour

import "math"

// Rect is an axis-aligned bounding rectangle expressed as its minimum and
// maximum corners. Unlike the Rectangle contour variant (see rectangle.go),
// a Rect never carries a sign: Min is always componentwise <= Max.
type Rect struct {
	Min, Max Point
}

// NewRect builds a Rect from two arbitrary corner points, normalizing so
// that Min <= Max componentwise.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectFromXYWH builds a Rect from an origin and (possibly negative) size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return NewRect(Point{X: x, Y: y}, Point{X: x + w, Y: y + h})
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area under the strict-positive
// width-and-height rule inherited from the source this package is modeled
// on: a degenerate rectangle (a point or an axis-aligned line) is "empty"
// even though it may still contain points on its boundary.
func (r Rect) Empty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// AddPoint extends r, if necessary, to contain p.
func (r Rect) AddPoint(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains reports whether p lies within the closed rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
