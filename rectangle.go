package contour

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/contour/internal/precond"
)

// RectContour is the axis-aligned rectangle variant. Width and height may
// be negative; a negative dimension reverses the traversal direction of
// the corresponding pair of sides while leaving the rectangle's bounds
// unchanged in area. Rectangle is always Flat and Closed.
type RectContour struct {
	X, Y, W, H float64
}

// NewRectContour builds a RectContour with origin (x, y) and signed size
// (w, h).
func NewRectContour(x, y, w, h float64) *RectContour {
	return &RectContour{X: x, Y: y, W: w, H: h}
}

func (r *RectContour) absW() float64 { return math.Abs(r.W) }
func (r *RectContour) absH() float64 { return math.Abs(r.H) }
func (r *RectContour) perimeter() float64 {
	return 2 * (r.absW() + r.absH())
}

type rectSide struct {
	from, to Point
	length   float64
	start    float64
}

func (r *RectContour) sides() [4]rectSide {
	absW, absH := r.absW(), r.absH()
	p0 := Point{X: r.X, Y: r.Y}
	p1 := Point{X: r.X + r.W, Y: r.Y}
	p2 := Point{X: r.X + r.W, Y: r.Y + r.H}
	p3 := Point{X: r.X, Y: r.Y + r.H}
	c1 := absW
	c2 := absW + absH
	c3 := 2*absW + absH
	return [4]rectSide{
		{from: p0, to: p1, length: absW, start: 0},
		{from: p1, to: p2, length: absH, start: c1},
		{from: p2, to: p3, length: absW, start: c2},
		{from: p3, to: p0, length: absH, start: c3},
	}
}

func (r *RectContour) Copy() Contour {
	cp := *r
	return &cp
}

func (r *RectContour) Size() int { return int(unsafeSizeofRect) }

func (r *RectContour) Flags() PathFlags { return FlagFlat | FlagClosed }

func (r *RectContour) Bounds() (Rect, bool) {
	bbox := NewRect(Point{X: r.X, Y: r.Y}, Point{X: r.X + r.W, Y: r.Y + r.H})
	return bbox, !bbox.Empty()
}

func (r *RectContour) StartEnd() (start, end Point) {
	start = Point{X: r.X, Y: r.Y}
	return start, start
}

func (r *RectContour) Print(w io.Writer) {
	fmt.Fprintf(w, "M %g %g h %g v %g h %g z", r.X, r.Y, r.W, r.H, -r.W)
}

func (r *RectContour) Foreach(tolerance float64, visit OpVisitor) bool {
	sides := r.sides()
	pts := []Point{sides[0].from}
	if !visit(OpMove, pts, 0) {
		return false
	}
	cur := sides[0].from
	for _, s := range sides {
		if !visit(OpLine, []Point{cur, s.to}, 0) {
			return false
		}
		cur = s.to
	}
	return visit(OpClose, []Point{cur, sides[0].from}, 0)
}

func (r *RectContour) Reverse() Contour {
	return &RectContour{X: r.X + r.W, Y: r.Y, W: -r.W, H: r.H}
}

type rectHandle struct{ owner *RectContour }

func (h *rectHandle) Release() {}

func (r *RectContour) InitMeasure(tolerance float64, opts ...MeasureOption) (MeasureHandle, float64) {
	return &rectHandle{owner: r}, r.perimeter()
}

// sideAndLocal resolves the (side index, local offset into that side) that
// distance d lands on, honoring the seam rule named in direction.
func (r *RectContour) sideAndLocal(d float64, direction Direction) (int, float64) {
	sides := r.sides()
	perim := r.perimeter()
	if perim <= 0 {
		return 0, 0
	}
	if d < 0 {
		d = 0
	}
	if d > perim {
		d = perim
	}

	if direction == DirEnd {
		idx := 3
		switch {
		case d < sides[1].start:
			idx = 0
		case d < sides[2].start:
			idx = 1
		case d < sides[3].start:
			idx = 2
		}
		return idx, d - sides[idx].start
	}

	// DirStart: boundary distances belong to the PRECEDING side, evaluated
	// at its own end.
	switch {
	case d <= 0:
		return 3, sides[3].length
	case d <= sides[1].start:
		return 0, d
	case d <= sides[2].start:
		return 1, d - sides[1].start
	case d <= sides[3].start:
		return 2, d - sides[2].start
	default:
		return 3, d - sides[3].start
	}
}

func (r *RectContour) Point(_ MeasureHandle, distance float64, direction Direction) (Point, Vector2) {
	precond.Require(distance >= 0, "contour: Point distance must be >= 0, got %g", distance)
	sides := r.sides()
	idx, local := r.sideAndLocal(distance, direction)
	s := sides[idx]
	if s.length == 0 {
		return s.from, Vector2{}
	}
	pos := s.from.Lerp(s.to, local/s.length)
	tangent := PointVector(s.from, s.to).Normalize()
	return pos, tangent
}

func (r *RectContour) Curvature(_ MeasureHandle, distance float64) (float64, Point) {
	return 0, Point{}
}

func (r *RectContour) ClosestPoint(_ MeasureHandle, tolerance, threshold float64, query Point) (bool, float64, float64, Point, Vector2) {
	if r.W == 0 || r.H == 0 {
		return false, 0, 0, Point{}, Vector2{}
	}
	u := (query.X - r.X) / r.W
	v := (query.Y - r.Y) / r.H
	absW, absH := r.absW(), r.absH()
	c1 := absW
	c2 := absW + absH

	type candidate struct {
		dist    float64
		offset  float64
		pos     Point
		tangent Vector2
	}

	if u > 0 && u < 1 && v > 0 && v < 1 {
		cands := [4]candidate{
			{math.Abs(v) * absH, u * absW, Point{X: r.X + u*r.W, Y: r.Y}, Vector2{X: math.Copysign(1, r.W)}},
			{math.Abs(1-u) * absW, c1 + v*absH, Point{X: r.X + r.W, Y: r.Y + v*r.H}, Vector2{Y: math.Copysign(1, r.H)}},
			{math.Abs(1-v) * absH, c2 + (1-u)*absW, Point{X: r.X + u*r.W, Y: r.Y + r.H}, Vector2{X: -math.Copysign(1, r.W)}},
			{math.Abs(u) * absW, 2*absW + absH + (1-v)*absH, Point{X: r.X, Y: r.Y + v*r.H}, Vector2{Y: -math.Copysign(1, r.H)}},
		}
		best := 0
		for i := 1; i < 4; i++ {
			if cands[i].dist < cands[best].dist {
				best = i
			}
		}
		c := cands[best]
		if c.dist > threshold {
			return false, 0, 0, Point{}, Vector2{}
		}
		return true, c.dist, c.offset, c.pos, c.tangent
	}

	uc := math.Max(0, math.Min(1, u))
	vc := math.Max(0, math.Min(1, v))
	pos := Point{X: r.X + uc*r.W, Y: r.Y + vc*r.H}
	dist := query.Distance(pos)
	if dist > threshold {
		return false, 0, 0, Point{}, Vector2{}
	}

	var offset float64
	var tangent Vector2
	switch {
	case vc == 0:
		offset = uc * absW
		tangent = Vector2{X: math.Copysign(1, r.W)}
	case uc == 1:
		offset = c1 + vc*absH
		tangent = Vector2{Y: math.Copysign(1, r.H)}
	case vc == 1:
		offset = c2 + (1-uc)*absW
		tangent = Vector2{X: -math.Copysign(1, r.W)}
	default:
		offset = 2*absW + absH + (1-vc)*absH
		tangent = Vector2{Y: -math.Copysign(1, r.H)}
	}
	return true, dist, offset, pos, tangent
}

func (r *RectContour) AddSegment(_ MeasureHandle, builder Builder, emitMove bool, start, end float64) {
	precond.Require(start >= 0, "contour: AddSegment start must be >= 0, got %g", start)
	precond.Require(end >= start, "contour: AddSegment end must be >= start, got end=%g start=%g", end, start)
	perim := r.perimeter()
	if emitMove {
		startPos, _ := r.Point(nil, start, DirEnd)
		builder.MoveTo(startPos)
	}
	sides := r.sides()
	corners := []float64{sides[1].start, sides[2].start, sides[3].start, perim}
	for _, co := range corners {
		if co > start && co < end {
			p, _ := r.Point(nil, co, DirEnd)
			builder.LineTo(p)
		}
	}
	const eps = 1e-9
	if start <= eps && end >= perim-eps {
		builder.Close()
		return
	}
	endPos, _ := r.Point(nil, end, DirStart)
	builder.LineTo(endPos)
}

func (r *RectContour) Winding(_ MeasureHandle, query Point) int {
	minX, maxX := r.X, r.X+r.W
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := r.Y, r.Y+r.H
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	if query.X > minX && query.X < maxX && query.Y > minY && query.Y < maxY {
		return -1
	}
	return 0
}

// unsafeSizeofRect is a fixed estimate of RectContour's footprint; the
// variant has no variable-length state so a constant suffices.
const unsafeSizeofRect = 32
