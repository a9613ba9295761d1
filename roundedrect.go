package contour

import (
	"fmt"
	"io"

	"github.com/gogpu/contour/internal/precond"
)

// RoundedRectContour is the rounded-rectangle variant: an axis-aligned
// rectangle with an independent (width, height) corner radius at each of
// its four corners, traversed clockwise unless CCW is set. Each corner is
// an exact quarter-circle expressed as a Conic of weight RootTwoOverTwo;
// straight sides connect them. The contour is always closed.
//
// Unlike RectContour, W and H here are expected non-negative; radii
// exceeding half the adjacent side are clamped.
type RoundedRectContour struct {
	X, Y, W, H                                     float64
	RxTL, RyTL, RxTR, RyTR, RxBR, RyBR, RxBL, RyBL float64
	CCW                                             bool
}

// NewRoundedRectContour builds a RoundedRectContour with a single uniform
// corner radius (rx, ry) applied to all four corners.
func NewRoundedRectContour(x, y, w, h, rx, ry float64, ccw bool) *RoundedRectContour {
	return &RoundedRectContour{
		X: x, Y: y, W: w, H: h,
		RxTL: rx, RyTL: ry, RxTR: rx, RyTR: ry,
		RxBR: rx, RyBR: ry, RxBL: rx, RyBL: ry,
		CCW: ccw,
	}
}

func clampRadius(r, half float64) float64 {
	if r < 0 {
		return 0
	}
	if r > half {
		return half
	}
	return r
}

func (rr *RoundedRectContour) clampedRadii() (rxTL, ryTL, rxTR, ryTR, rxBR, ryBR, rxBL, ryBL float64) {
	halfW, halfH := rr.W/2, rr.H/2
	rxTL = clampRadius(rr.RxTL, halfW)
	ryTL = clampRadius(rr.RyTL, halfH)
	rxTR = clampRadius(rr.RxTR, halfW)
	ryTR = clampRadius(rr.RyTR, halfH)
	rxBR = clampRadius(rr.RxBR, halfW)
	ryBR = clampRadius(rr.RyBR, halfH)
	rxBL = clampRadius(rr.RxBL, halfW)
	ryBL = clampRadius(rr.RyBL, halfH)
	return
}

// rrGeometry holds the eight side-endpoints (p[0..7], clockwise starting
// just after the top-left corner) and the four corner control points
// (ctrl[0..3], for the TR, BR, BL and TL corners respectively).
type rrGeometry struct {
	p    [8]Point
	ctrl [4]Point
}

func (rr *RoundedRectContour) geometry() rrGeometry {
	rxTL, ryTL, rxTR, ryTR, rxBR, ryBR, rxBL, ryBL := rr.clampedRadii()
	x, y, w, h := rr.X, rr.Y, rr.W, rr.H
	var g rrGeometry
	g.p[0] = Point{X: x + rxTL, Y: y}
	g.p[1] = Point{X: x + w - rxTR, Y: y}
	g.p[2] = Point{X: x + w, Y: y + ryTR}
	g.p[3] = Point{X: x + w, Y: y + h - ryBR}
	g.p[4] = Point{X: x + w - rxBR, Y: y + h}
	g.p[5] = Point{X: x + rxBL, Y: y + h}
	g.p[6] = Point{X: x, Y: y + h - ryBL}
	g.p[7] = Point{X: x, Y: y + ryTL}
	g.ctrl[0] = Point{X: x + w, Y: y}
	g.ctrl[1] = Point{X: x + w, Y: y + h}
	g.ctrl[2] = Point{X: x, Y: y + h}
	g.ctrl[3] = Point{X: x, Y: y}
	return g
}

// rrSeg is one non-Move segment of the outline: either a straight side
// (ctrl unused) or a corner conic of weight RootTwoOverTwo.
type rrSeg struct {
	kind OpKind
	ctrl Point
	end  Point
}

func buildForwardSegs(g rrGeometry) []rrSeg {
	return []rrSeg{
		{kind: OpLine, end: g.p[1]},
		{kind: OpConic, ctrl: g.ctrl[0], end: g.p[2]},
		{kind: OpLine, end: g.p[3]},
		{kind: OpConic, ctrl: g.ctrl[1], end: g.p[4]},
		{kind: OpLine, end: g.p[5]},
		{kind: OpConic, ctrl: g.ctrl[2], end: g.p[6]},
		{kind: OpLine, end: g.p[7]},
		{kind: OpConic, ctrl: g.ctrl[3], end: g.p[0]},
	}
}

func buildBackwardSegs(g rrGeometry) []rrSeg {
	return []rrSeg{
		{kind: OpConic, ctrl: g.ctrl[3], end: g.p[7]},
		{kind: OpLine, end: g.p[6]},
		{kind: OpConic, ctrl: g.ctrl[2], end: g.p[5]},
		{kind: OpLine, end: g.p[4]},
		{kind: OpConic, ctrl: g.ctrl[1], end: g.p[3]},
		{kind: OpLine, end: g.p[2]},
		{kind: OpConic, ctrl: g.ctrl[0], end: g.p[1]},
		{kind: OpLine, end: g.p[0]},
	}
}

// buildSegs returns the outline's segments in traversal order. The CCW
// branch walks the clockwise corner/side geometry backwards and leaves out
// its final straight side, the one from p[1] back to p[0]. The shape still
// closes (Close always targets p[0] and redraws that side), so the
// omission only shows up as a missing straight segment in Print and
// Foreach output, not as a gap in the closed region.
func (rr *RoundedRectContour) buildSegs(g rrGeometry) []rrSeg {
	if !rr.CCW {
		return buildForwardSegs(g)
	}
	segs := buildBackwardSegs(g)
	return segs[:len(segs)-1]
}

func (rr *RoundedRectContour) Copy() Contour {
	cp := *rr
	return &cp
}

func (rr *RoundedRectContour) Size() int { return 96 }

func (rr *RoundedRectContour) Flags() PathFlags { return FlagClosed }

func (rr *RoundedRectContour) Bounds() (Rect, bool) {
	bbox := RectFromXYWH(rr.X, rr.Y, rr.W, rr.H)
	return bbox, !bbox.Empty()
}

func (rr *RoundedRectContour) StartEnd() (Point, Point) {
	g := rr.geometry()
	return g.p[0], g.p[0]
}

func (rr *RoundedRectContour) Foreach(tolerance float64, visit OpVisitor) bool {
	g := rr.geometry()
	segs := rr.buildSegs(g)

	cur := g.p[0]
	if !visit(OpMove, []Point{cur}, 0) {
		return false
	}
	for _, s := range segs {
		switch s.kind {
		case OpLine:
			if !visit(OpLine, []Point{cur, s.end}, 0) {
				return false
			}
		case OpConic:
			if !visit(OpConic, []Point{cur, s.ctrl, s.end}, RootTwoOverTwo) {
				return false
			}
		}
		cur = s.end
	}
	return visit(OpClose, []Point{cur, g.p[0]}, 0)
}

func (rr *RoundedRectContour) Print(w io.Writer) {
	rr.Foreach(0, func(kind OpKind, pts []Point, weight float64) bool {
		switch kind {
		case OpMove:
			fmt.Fprintf(w, "M %g %g", pts[0].X, pts[0].Y)
		case OpLine:
			fmt.Fprintf(w, " L %g %g", pts[1].X, pts[1].Y)
		case OpConic:
			fmt.Fprintf(w, " O %g %g, %g %g, %g", pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, weight)
		case OpClose:
			fmt.Fprint(w, " Z")
		}
		return true
	})
}

func (rr *RoundedRectContour) Reverse() Contour {
	cp := *rr
	cp.CCW = !rr.CCW
	return &cp
}

// roundedRectHandle owns the lazily built Standard contour every
// measurement, closest-point and segment-extraction query delegates to.
type roundedRectHandle struct {
	standard *StandardContour
	inner    MeasureHandle
}

func (h *roundedRectHandle) Release() {
	if h.inner != nil {
		h.inner.Release()
	}
}

func (rr *RoundedRectContour) InitMeasure(tolerance float64, opts ...MeasureOption) (MeasureHandle, float64) {
	std := buildStandardFromContour(rr, tolerance)
	inner, length := std.InitMeasure(tolerance, opts...)
	return &roundedRectHandle{standard: std, inner: inner}, length
}

func (rr *RoundedRectContour) Point(h MeasureHandle, distance float64, direction Direction) (Point, Vector2) {
	rh, ok := h.(*roundedRectHandle)
	precond.Require(ok, "contour: Point called with a measure handle not obtained from this RoundedRectContour's InitMeasure")
	return rh.standard.Point(rh.inner, distance, direction)
}

func (rr *RoundedRectContour) Curvature(h MeasureHandle, distance float64) (float64, Point) {
	rh, ok := h.(*roundedRectHandle)
	precond.Require(ok, "contour: Curvature called with a measure handle not obtained from this RoundedRectContour's InitMeasure")
	return rh.standard.Curvature(rh.inner, distance)
}

func (rr *RoundedRectContour) ClosestPoint(h MeasureHandle, tolerance, threshold float64, query Point) (bool, float64, float64, Point, Vector2) {
	rh, ok := h.(*roundedRectHandle)
	precond.Require(ok, "contour: ClosestPoint called with a measure handle not obtained from this RoundedRectContour's InitMeasure")
	return rh.standard.ClosestPoint(rh.inner, tolerance, threshold, query)
}

func (rr *RoundedRectContour) AddSegment(h MeasureHandle, builder Builder, emitMove bool, start, end float64) {
	rh, ok := h.(*roundedRectHandle)
	precond.Require(ok, "contour: AddSegment called with a measure handle not obtained from this RoundedRectContour's InitMeasure")
	rh.standard.AddSegment(rh.inner, builder, emitMove, start, end)
}

func (rr *RoundedRectContour) Winding(h MeasureHandle, query Point) int {
	rh, ok := h.(*roundedRectHandle)
	precond.Require(ok, "contour: Winding called with a measure handle not obtained from this RoundedRectContour's InitMeasure")
	return rh.standard.Winding(rh.inner, query)
}
