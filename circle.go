package contour

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/contour/internal/precond"
)

// CircleContour is the circular-arc variant: a center, radius, and start
// and end angles in degrees. |start - end| <= 360; the contour is closed
// iff that sweep is exactly 360 degrees. The sign of end-start encodes
// traversal direction.
type CircleContour struct {
	Center               Point
	Radius               float64
	StartAngle, EndAngle float64
}

// NewCircleContour builds a CircleContour. A full circle is expressed
// with endAngle - startAngle == ±360.
func NewCircleContour(center Point, radius, startAngle, endAngle float64) *CircleContour {
	precond.Require(math.Abs(endAngle-startAngle) <= 360+1e-9,
		"contour: circle arc sweep must satisfy |start - end| <= 360, got start=%g end=%g", startAngle, endAngle)
	return &CircleContour{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
}

func (c *CircleContour) sweep() float64 { return c.EndAngle - c.StartAngle }

func (c *CircleContour) isFullCircle() bool {
	return math.Abs(math.Abs(c.sweep())-360) < 1e-9
}

func (c *CircleContour) length() float64 {
	return c.Radius * (math.Pi / 180) * math.Abs(c.sweep())
}

func (c *CircleContour) angleToPoint(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: c.Center.X + c.Radius*math.Cos(rad), Y: c.Center.Y + c.Radius*math.Sin(rad)}
}

func (c *CircleContour) angleToTangent(deg float64) Vector2 {
	rad := deg * math.Pi / 180
	sign := 1.0
	if c.sweep() < 0 {
		sign = -1.0
	}
	return Vector2{X: -sign * math.Sin(rad), Y: sign * math.Cos(rad)}.Normalize()
}

func (c *CircleContour) Copy() Contour {
	cp := *c
	return &cp
}

func (c *CircleContour) Size() int { return 40 }

func (c *CircleContour) Flags() PathFlags {
	if c.isFullCircle() {
		return FlagClosed
	}
	return 0
}

func (c *CircleContour) Bounds() (Rect, bool) {
	sweep := c.sweep()
	bbox := NewRect(c.angleToPoint(c.StartAngle), c.angleToPoint(c.EndAngle))
	for _, extremum := range [4]float64{0, 90, 180, 270} {
		if c.angleWithinSweep(extremum) {
			bbox = bbox.AddPoint(c.angleToPoint(extremum))
		}
	}
	_ = sweep
	return bbox, !bbox.Empty()
}

// angleWithinSweep reports whether angleDeg lies on the swept arc,
// measured in the sweep's own direction starting at StartAngle.
func (c *CircleContour) angleWithinSweep(angleDeg float64) bool {
	delta := c.angularOffsetDeg(angleDeg)
	return delta <= math.Abs(c.sweep())+1e-9
}

// angularOffsetDeg returns, in [0, 360), how far angleDeg lies past
// StartAngle when walking in the sweep's direction.
func (c *CircleContour) angularOffsetDeg(angleDeg float64) float64 {
	raw := angleDeg - c.StartAngle
	if c.sweep() < 0 {
		raw = -raw
	}
	d := math.Mod(raw, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func (c *CircleContour) StartEnd() (Point, Point) {
	return c.angleToPoint(c.StartAngle), c.angleToPoint(c.EndAngle)
}

func (c *CircleContour) Print(w io.Writer) {
	start := c.angleToPoint(c.StartAngle)
	end := c.angleToPoint(c.EndAngle)
	sweepFlag := 0
	if c.sweep() > 0 {
		sweepFlag = 1
	}
	fmt.Fprintf(w, "M %g %g A %g %g 0 0 %d %g %g", start.X, start.Y, c.Radius, c.Radius, sweepFlag, end.X, end.Y)
	if c.isFullCircle() {
		fmt.Fprint(w, " Z")
	}
}

const maxArcSegmentDegrees = 90.0

func (c *CircleContour) Foreach(tolerance float64, visit OpVisitor) bool {
	sweep := c.sweep()
	numSegments := int(math.Ceil(math.Abs(sweep) / maxArcSegmentDegrees))
	if numSegments < 1 {
		numSegments = 1
	}
	segDeg := sweep / float64(numSegments)

	first := c.angleToPoint(c.StartAngle)
	if !visit(OpMove, []Point{first}, 0) {
		return false
	}

	cur := first
	a0 := c.StartAngle
	for i := 0; i < numSegments; i++ {
		a1 := a0 + segDeg
		p0 := c.angleToPoint(a0)
		p3 := c.angleToPoint(a1)

		thetaRad := segDeg * math.Pi / 180
		alpha := (4.0 / 3.0) * math.Tan(thetaRad/4)

		rad0 := a0 * math.Pi / 180
		rad1 := a1 * math.Pi / 180
		d0 := Point{X: -math.Sin(rad0), Y: math.Cos(rad0)}
		d1 := Point{X: -math.Sin(rad1), Y: math.Cos(rad1)}

		c1 := Point{X: p0.X + alpha*c.Radius*d0.X, Y: p0.Y + alpha*c.Radius*d0.Y}
		c2 := Point{X: p3.X - alpha*c.Radius*d1.X, Y: p3.Y - alpha*c.Radius*d1.Y}

		if !visit(OpCubic, []Point{cur, c1, c2, p3}, 0) {
			return false
		}
		cur = p3
		a0 = a1
	}

	if c.isFullCircle() {
		return visit(OpClose, []Point{cur, first}, 0)
	}
	return true
}

func (c *CircleContour) Reverse() Contour {
	return &CircleContour{Center: c.Center, Radius: c.Radius, StartAngle: c.EndAngle, EndAngle: c.StartAngle}
}

type circleHandle struct{}

func (circleHandle) Release() {}

func (c *CircleContour) InitMeasure(tolerance float64, opts ...MeasureOption) (MeasureHandle, float64) {
	return circleHandle{}, c.length()
}

func (c *CircleContour) Point(_ MeasureHandle, distance float64, direction Direction) (Point, Vector2) {
	precond.Require(distance >= 0, "contour: Point distance must be >= 0, got %g", distance)
	length := c.length()
	if length == 0 {
		return c.angleToPoint(c.StartAngle), Vector2{}
	}
	if distance > length {
		distance = length
	}
	frac := distance / length
	angle := c.StartAngle + frac*c.sweep()

	if direction == DirStart && distance == 0 && c.isFullCircle() {
		angle = c.EndAngle
	}
	return c.angleToPoint(angle), c.angleToTangent(angle)
}

func (c *CircleContour) Curvature(_ MeasureHandle, distance float64) (float64, Point) {
	if c.Radius == 0 {
		return 0, c.Center
	}
	return 1 / c.Radius, c.Center
}

func angularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func (c *CircleContour) ClosestPoint(_ MeasureHandle, tolerance, threshold float64, query Point) (bool, float64, float64, Point, Vector2) {
	rel := Point{X: query.X - c.Center.X, Y: query.Y - c.Center.Y}
	thetaDeg := math.Atan2(rel.Y, rel.X) * 180 / math.Pi

	var offset float64
	if c.angleWithinSweep(thetaDeg) {
		offset = c.angularOffsetDeg(thetaDeg) * c.Radius * math.Pi / 180
	} else if angularDistance(thetaDeg, c.StartAngle) <= angularDistance(thetaDeg, c.EndAngle) {
		offset = 0
	} else {
		offset = c.length()
	}

	pos, tangent := c.Point(nil, offset, DirEnd)
	dist := query.Distance(pos)
	if dist > threshold {
		return false, 0, 0, Point{}, Vector2{}
	}
	return true, dist, offset, pos, tangent
}

func (c *CircleContour) AddSegment(_ MeasureHandle, builder Builder, emitMove bool, start, end float64) {
	precond.Require(start >= 0, "contour: AddSegment start must be >= 0, got %g", start)
	precond.Require(end >= start, "contour: AddSegment end must be >= start, got end=%g start=%g", end, start)
	length := c.length()
	if length == 0 {
		return
	}
	startAngle := c.StartAngle + (start/length)*c.sweep()
	endAngle := c.StartAngle + (end/length)*c.sweep()
	sub := &CircleContour{Center: c.Center, Radius: c.Radius, StartAngle: startAngle, EndAngle: endAngle}

	first := true
	sub.Foreach(1e-3, func(kind OpKind, pts []Point, weight float64) bool {
		switch kind {
		case OpMove:
			if emitMove {
				builder.MoveTo(pts[0])
			}
		case OpCubic:
			if first && !emitMove {
				first = false
			}
			builder.CubicTo(pts[1], pts[2], pts[3])
		case OpClose:
			builder.Close()
		}
		return true
	})
}

func (c *CircleContour) Winding(_ MeasureHandle, query Point) int {
	dist := query.Distance(c.Center)
	if dist >= c.Radius {
		return 0
	}
	if c.isFullCircle() {
		return -1
	}

	p0 := c.angleToPoint(c.StartAngle)
	p1 := c.angleToPoint(c.EndAngle)
	midAngle := c.StartAngle + 0.5*c.sweep()
	mid := c.angleToPoint(midAngle)

	chord := PointVector(p0, p1)
	sideMid := chord.Cross(PointVector(p0, mid))
	sideQuery := chord.Cross(PointVector(p0, query))

	if sideMid == 0 {
		return 0
	}
	if (sideMid > 0) == (sideQuery > 0) {
		return -1
	}
	return 0
}
