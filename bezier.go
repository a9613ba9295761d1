package contour

import (
	"math"
)

// Line, QuadBez and CubicBez mirror the plain-old-data curve primitives;
// StandardContour builds them on the fly from its op list to evaluate and
// split individual ops (internal/flatten works on its own point copies and
// does not use them). Conic is the rational quadratic Bezier named by the
// data model: three control points plus a weight on the middle one.

// Line represents a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

func NewLine(p0, p1 Point) Line { return Line{P0: p0, P1: p1} }

func (l Line) Eval(t float64) Point { return l.P0.Lerp(l.P1, t) }
func (l Line) Start() Point         { return l.P0 }
func (l Line) End() Point           { return l.P1 }

func (l Line) Tangent(float64) Vector2 {
	return PointVector(l.P0, l.P1).Normalize()
}

func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{P0: l.Eval(t0), P1: l.Eval(t1)}
}

func (l Line) BoundingBox() Rect { return NewRect(l.P0, l.P1) }
func (l Line) Length() float64   { return l.P0.Distance(l.P1) }
func (l Line) Reversed() Line    { return Line{P0: l.P1, P1: l.P0} }

// QuadBez is a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 Point
}

func NewQuadBez(p0, p1, p2 Point) QuadBez { return QuadBez{P0: p0, P1: p1, P2: p2} }

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) Deriv() Line {
	return Line{
		P0: Point{X: 2 * (q.P1.X - q.P0.X), Y: 2 * (q.P1.Y - q.P0.Y)},
		P1: Point{X: 2 * (q.P2.X - q.P1.X), Y: 2 * (q.P2.Y - q.P1.Y)},
	}
}

func (q QuadBez) Tangent(t float64) Vector2 {
	d := q.Deriv().Eval(t)
	return Vector2{X: d.X, Y: d.Y}.Normalize()
}

func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)

	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dt := t1 - t0

	tanDir := Point{X: d0.X + t0*(d1.X-d0.X), Y: d0.Y + t0*(d1.Y-d0.Y)}
	p1 := Point{X: p0.X + dt*tanDir.X, Y: p0.Y + dt*tanDir.Y}

	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// CubicBez is a cubic Bezier curve with control points P0, P1, P2, P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	scale := (t1 - t0) / 3.0

	mt0 := 1.0 - t0
	deriv0 := Point{
		X: 3 * (d0.X*mt0*mt0 + 2*d1.X*mt0*t0 + d2.X*t0*t0),
		Y: 3 * (d0.Y*mt0*mt0 + 2*d1.Y*mt0*t0 + d2.Y*t0*t0),
	}
	p1 := Point{X: p0.X + scale*deriv0.X, Y: p0.Y + scale*deriv0.Y}

	mt1 := 1.0 - t1
	deriv1 := Point{
		X: 3 * (d0.X*mt1*mt1 + 2*d1.X*mt1*t1 + d2.X*t1*t1),
		Y: 3 * (d0.Y*mt1*mt1 + 2*d1.Y*mt1*t1 + d2.Y*t1*t1),
	}
	p2 := Point{X: p3.X - scale*deriv1.X, Y: p3.Y - scale*deriv1.Y}

	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: Point{X: 3 * (c.P1.X - c.P0.X), Y: 3 * (c.P1.Y - c.P0.Y)},
		P1: Point{X: 3 * (c.P2.X - c.P1.X), Y: 3 * (c.P2.Y - c.P1.Y)},
		P2: Point{X: 3 * (c.P3.X - c.P2.X), Y: 3 * (c.P3.Y - c.P2.Y)},
	}
}

func (c CubicBez) Tangent(t float64) Vector2 {
	d := c.Deriv().Eval(t)
	return Vector2{X: d.X, Y: d.Y}.Normalize()
}

// Conic is a rational quadratic Bezier: three control points P0, P1, P2
// plus a weight W on the middle one. W == 1 degenerates to an ordinary
// QuadBez; W == sqrt(1/2) traces an exact quarter-circle arc, which is how
// RoundedRect corners are represented (see roundedrect.go).
//
// The rational evaluation formula and the subdivision weight updates follow
// the conic math used by production 2D rasterizers for exactly this
// purpose.
type Conic struct {
	P0, P1, P2 Point
	W          float64
}

// RootTwoOverTwo is the conic weight tracing an exact quarter-circle.
const RootTwoOverTwo = math.Sqrt2 / 2

func NewConic(p0, p1, p2 Point, w float64) Conic {
	c := Conic{P0: p0, P1: p1, P2: p2}
	c.SetWeight(w)
	return c
}

// SetWeight assigns w, substituting 1 (an ordinary quadratic) for any
// non-finite or non-positive value.
func (c *Conic) SetWeight(w float64) {
	if math.IsInf(w, 0) || math.IsNaN(w) || w <= 0 {
		w = 1
	}
	c.W = w
}

func (c Conic) Start() Point { return c.P0 }
func (c Conic) End() Point   { return c.P2 }

func (c Conic) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	tw := 2 * t * mt * c.W

	denom := mt2 + tw + t2
	return Point{
		X: (mt2*c.P0.X + tw*c.P1.X + t2*c.P2.X) / denom,
		Y: (mt2*c.P0.Y + tw*c.P1.Y + t2*c.P2.Y) / denom,
	}
}

// Tangent returns the unit tangent vector at t; it handles the
// degenerate cases where a control point coincides with an endpoint.
func (c Conic) Tangent(t float64) Vector2 {
	if (t == 0 && c.P0 == c.P1) || (t == 1 && c.P1 == c.P2) {
		return PointVector(c.P0, c.P2).Normalize()
	}

	p20 := c.P2.Sub(c.P0)
	p10 := c.P1.Sub(c.P0)

	cx := c.W * p10.X
	cy := c.W * p10.Y

	ax := c.W*p20.X - p20.X
	ay := c.W*p20.Y - p20.Y

	bx := p20.X - 2*cx
	by := p20.Y - 2*cy

	d := Point{X: (ax*t+bx)*t + cx, Y: (ay*t+by)*t + cy}
	return Vector2{X: d.X, Y: d.Y}.Normalize()
}

// Chop subdivides the conic at t=0.5 into two conics whose weights are
// updated to preserve the exact rational curve.
func (c Conic) Chop() (Conic, Conic) {
	scale := 1 / (1 + c.W)
	newW := math.Sqrt(0.5 + c.W*0.5)

	wp1 := Point{X: c.W * c.P1.X, Y: c.W * c.P1.Y}

	mid := Point{
		X: (c.P0.X + 2*wp1.X + c.P2.X) * scale * 0.5,
		Y: (c.P0.Y + 2*wp1.Y + c.P2.Y) * scale * 0.5,
	}

	first := Conic{
		P0: c.P0,
		P1: Point{X: (c.P0.X + wp1.X) * scale, Y: (c.P0.Y + wp1.Y) * scale},
		P2: mid,
		W:  newW,
	}
	second := Conic{
		P0: mid,
		P1: Point{X: (wp1.X + c.P2.X) * scale, Y: (wp1.Y + c.P2.Y) * scale},
		P2: c.P2,
		W:  newW,
	}
	return first, second
}

// Subsegment returns the portion of the conic between t0 and t1: chop at
// t1 and keep the head [0,t1], then chop that head where it reaches the
// original Eval(t0) and keep the tail. The head is in standard form (unit
// end weights), so that split parameter is not t0/t1 but its image under
// the head's rational reparameterization. The result is itself in
// standard form: its endpoints are Eval(t0) and Eval(t1), and its interior
// parameter maps onto [t0,t1] non-linearly whenever the rational
// denominators at t0 and t1 differ.
func (c Conic) Subsegment(t0, t1 float64) Conic {
	head, _ := c.chopAt(t1)
	if t0 <= 0 {
		return head
	}
	s := t0 / t1
	mt1 := 1 - t1
	sqrtD := math.Sqrt(mt1*mt1 + 2*t1*mt1*c.W + t1*t1)
	_, tail := head.chopAt(sqrtD * s / ((1 - s) + sqrtD*s))
	return tail
}

// chopAt splits the conic at an arbitrary parameter t into the two conics
// covering [0,t] and [t,1]. It is the closed-form, general-t counterpart of
// Chop: the split point is Eval(t), and each half's middle control point and
// weight come from projecting the corresponding first-level de Casteljau
// point by its own homogeneous weight, with the new weight rescaled by
// sqrt of the rational denominator at t so the half's own endpoints are
// unit-weighted. At t=0.5 this reduces exactly to Chop's formula.
func (c Conic) chopAt(t float64) (Conic, Conic) {
	if t == 0.5 {
		return c.Chop()
	}

	mt := 1 - t
	d := mt*mt + 2*t*mt*c.W + t*t
	sqrtD := math.Sqrt(d)

	wLeft := mt + t*c.W
	wRight := mt*c.W + t

	mid := c.Eval(t)

	p1Left := Point{
		X: (mt*c.P0.X + t*c.W*c.P1.X) / wLeft,
		Y: (mt*c.P0.Y + t*c.W*c.P1.Y) / wLeft,
	}
	p1Right := Point{
		X: (mt*c.W*c.P1.X + t*c.P2.X) / wRight,
		Y: (mt*c.W*c.P1.Y + t*c.P2.Y) / wRight,
	}

	first := Conic{P0: c.P0, P1: p1Left, P2: mid, W: wLeft / sqrtD}
	second := Conic{P0: mid, P1: p1Right, P2: c.P2, W: wRight / sqrtD}
	return first, second
}

func (c Conic) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P2)
	return bbox.AddPoint(c.P1)
}
