package contour

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/contour/internal/flatten"
	"github.com/gogpu/contour/internal/precond"
)

// StandardContour is the general variant: an arbitrary sequence of curve
// operations over a shared point pool. Points and Ops are stored as two
// independent slices rather than one pointer-linked buffer; each op
// records the index of its first control point, which must equal the
// previous op's last point index (see curveop.go).
type StandardContour struct {
	Points   []Point
	Ops      []CurveOp
	flagsVal PathFlags
}

// NewStandardContour builds a StandardContour from already-assembled
// points and ops. ops[0] must be Move; this is a precondition, not a
// recoverable error (§7).
func NewStandardContour(points []Point, ops []CurveOp, flags PathFlags) *StandardContour {
	precond.Require(len(ops) > 0 && ops[0].Kind == OpMove, "contour: first op must be Move, got %d ops", len(ops))
	return &StandardContour{Points: points, Ops: ops, flagsVal: flags}
}

func (s *StandardContour) Copy() Contour {
	points := append([]Point(nil), s.Points...)
	ops := append([]CurveOp(nil), s.Ops...)
	return &StandardContour{Points: points, Ops: ops, flagsVal: s.flagsVal}
}

func (s *StandardContour) Size() int {
	return len(s.Points)*16 + len(s.Ops)*24
}

func (s *StandardContour) Flags() PathFlags { return s.flagsVal }

func (s *StandardContour) Bounds() (Rect, bool) {
	if len(s.Points) == 0 {
		return Rect{}, false
	}
	bbox := NewRect(s.Points[0], s.Points[0])
	for _, p := range s.Points[1:] {
		bbox = bbox.AddPoint(p)
	}
	return bbox, !bbox.Empty()
}

func (s *StandardContour) StartEnd() (Point, Point) {
	if len(s.Points) == 0 {
		return Point{}, Point{}
	}
	return s.Points[0], s.Points[len(s.Points)-1]
}

func (s *StandardContour) Print(w io.Writer) {
	for _, op := range s.Ops {
		pts := s.Points[op.Index : op.Index+op.Kind.PointCount()]
		switch op.Kind {
		case OpMove:
			fmt.Fprintf(w, "M %g %g", pts[0].X, pts[0].Y)
		case OpLine:
			fmt.Fprintf(w, " L %g %g", pts[1].X, pts[1].Y)
		case OpQuad:
			fmt.Fprintf(w, " Q %g %g, %g %g", pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case OpCubic:
			fmt.Fprintf(w, " C %g %g, %g %g, %g %g", pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, pts[3].X, pts[3].Y)
		case OpConic:
			fmt.Fprintf(w, " O %g %g, %g %g, %g", pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, op.Weight)
		case OpClose:
			fmt.Fprint(w, " Z")
		}
	}
}

func (s *StandardContour) Foreach(tolerance float64, visit OpVisitor) bool {
	for _, op := range s.Ops {
		pts := s.Points[op.Index : op.Index+op.Kind.PointCount()]
		if !visit(op.Kind, pts, op.Weight) {
			return false
		}
	}
	return true
}

// reversedSegPoints returns, for a non-Move op, the points that follow
// the shared leading point once the segment's direction is flipped —
// i.e. everything needed to continue a reversed op list from a new
// shared start equal to the segment's original end.
func reversedSegPoints(kind OpKind, pts []Point) []Point {
	switch kind {
	case OpLine, OpClose:
		return []Point{pts[0]}
	case OpQuad, OpConic:
		return []Point{pts[1], pts[0]}
	case OpCubic:
		return []Point{pts[2], pts[1], pts[0]}
	default:
		return nil
	}
}

func (s *StandardContour) Reverse() Contour {
	if len(s.Ops) == 0 {
		return &StandardContour{}
	}

	type seg struct {
		kind OpKind
		pts  []Point
	}
	var segs []seg
	for _, op := range s.Ops[1:] {
		pts := append([]Point(nil), s.Points[op.Index:op.Index+op.Kind.PointCount()]...)
		segs = append(segs, seg{kind: op.Kind, pts: pts})
	}

	newPoints := []Point{s.Points[len(s.Points)-1]}
	newOps := []CurveOp{{Kind: OpMove, Index: 0}}

	for i := len(segs) - 1; i >= 0; i-- {
		sg := segs[i]
		kind := sg.kind
		if kind == OpClose {
			// The closing edge becomes an ordinary line; once the loop
			// completes, the last reversed edge (the one returning to the
			// new start point) is turned into the contour's Close.
			kind = OpLine
		}
		rest := reversedSegPoints(sg.kind, sg.pts)
		if sg.kind == OpClose {
			rest = rest[:1]
		}
		idx := len(newPoints) - 1
		newOps = append(newOps, CurveOp{Kind: kind, Index: idx})
		newPoints = append(newPoints, rest...)
	}

	if s.flagsVal.Closed() {
		last := len(newOps) - 1
		if newOps[last].Kind == OpLine && newPoints[len(newPoints)-1] == newPoints[0] {
			newOps[last].Kind = OpClose
		} else {
			idx := len(newPoints) - 1
			newOps = append(newOps, CurveOp{Kind: OpClose, Index: idx})
			newPoints = append(newPoints, newPoints[0])
		}
	}

	return &StandardContour{Points: newPoints, Ops: newOps, flagsVal: s.flagsVal}
}

// standardHandle owns the measure table built by InitMeasure.
type standardHandle struct {
	records []MeasureRecord
	length  float64
}

func (h *standardHandle) Release() { h.records = nil }

func (s *StandardContour) InitMeasure(tolerance float64, opts ...MeasureOption) (MeasureHandle, float64) {
	o := defaultMeasureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	records, total := buildMeasureTable(s.Ops, s.Points, tolerance, o)
	return &standardHandle{records: records, length: total}, total
}

func (s *StandardContour) evalOpAt(opIndex int, t float64) (Point, Vector2) {
	op := s.Ops[opIndex]
	pts := s.Points[op.Index : op.Index+op.Kind.PointCount()]
	switch op.Kind {
	case OpLine, OpClose:
		l := Line{P0: pts[0], P1: pts[1]}
		return l.Eval(t), l.Tangent(t)
	case OpQuad:
		q := QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}
		return q.Eval(t), q.Tangent(t)
	case OpCubic:
		c := CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}
		return c.Eval(t), c.Tangent(t)
	case OpConic:
		co := NewConic(pts[0], pts[1], pts[2], op.Weight)
		return co.Eval(t), co.Tangent(t)
	default:
		return Point{}, Vector2{}
	}
}

func (s *StandardContour) Point(h MeasureHandle, distance float64, direction Direction) (Point, Vector2) {
	sh, ok := h.(*standardHandle)
	precond.Require(ok, "contour: Point called with a measure handle not obtained from this StandardContour's InitMeasure")
	precond.Require(distance >= 0, "contour: Point distance must be >= 0, got %g", distance)
	if len(sh.records) == 0 {
		if len(s.Points) == 0 {
			return Point{}, Vector2{}
		}
		return s.Points[0], Vector2{}
	}
	records := sh.records

	if distance > sh.length {
		distance = sh.length
	}

	idx := findRecord(records, distance)
	rec := records[idx]

	if direction == DirStart && distance == rec.Start {
		if idx > 0 {
			pr := records[idx-1]
			return s.evalOpAt(pr.OpIndex, pr.EndParam)
		}
		if s.flagsVal.Closed() {
			last := records[len(records)-1]
			return s.evalOpAt(last.OpIndex, last.EndParam)
		}
	}

	u := 0.0
	if d := rec.End - rec.Start; d > 0 {
		u = (distance - rec.Start) / d
	}
	t := rec.StartParam + u*(rec.EndParam-rec.StartParam)
	return s.evalOpAt(rec.OpIndex, t)
}

func (s *StandardContour) Curvature(h MeasureHandle, distance float64) (float64, Point) {
	sh, ok := h.(*standardHandle)
	precond.Require(ok, "contour: Curvature called with a measure handle not obtained from this StandardContour's InitMeasure")
	precond.Require(distance >= 0, "contour: Curvature distance must be >= 0, got %g", distance)
	if len(sh.records) == 0 {
		return 0, Point{}
	}
	if distance > sh.length {
		distance = sh.length
	}
	idx := findRecord(sh.records, distance)
	rec := sh.records[idx]
	u := 0.0
	if d := rec.End - rec.Start; d > 0 {
		u = (distance - rec.Start) / d
	}
	t := rec.StartParam + u*(rec.EndParam-rec.StartParam)

	op := s.Ops[rec.OpIndex]
	pts := s.Points[op.Index : op.Index+op.Kind.PointCount()]

	var d1, d2 Point
	switch op.Kind {
	case OpQuad:
		q := QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}
		vel := q.Deriv()
		d1 = vel.Eval(t)
		d2 = Point{X: vel.P1.X - vel.P0.X, Y: vel.P1.Y - vel.P0.Y}
	case OpCubic:
		c := CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}
		vel := c.Deriv()
		d1 = vel.Eval(t)
		acc := vel.Deriv()
		d2 = acc.Eval(t)
	case OpConic:
		co := NewConic(pts[0], pts[1], pts[2], op.Weight)
		const h2 = 1e-4
		tc := math.Min(math.Max(t, h2), 1-h2)
		pm, p0, pp := co.Eval(tc-h2), co.Eval(tc), co.Eval(tc+h2)
		d1 = Point{X: (pp.X - pm.X) / (2 * h2), Y: (pp.Y - pm.Y) / (2 * h2)}
		d2 = Point{X: (pp.X - 2*p0.X + pm.X) / (h2 * h2), Y: (pp.Y - 2*p0.Y + pm.Y) / (h2 * h2)}
	default:
		return 0, Point{}
	}

	cross := d1.X*d2.Y - d1.Y*d2.X
	speed := d1.Length()
	if speed == 0 {
		return 0, Point{}
	}
	kappa := cross / (speed * speed * speed)
	if kappa == 0 {
		return 0, Point{}
	}
	pos, tangent := s.evalOpAt(rec.OpIndex, t)
	normal := tangent.Perp()
	r := 1 / kappa
	center := Point{X: pos.X + normal.X*r, Y: pos.Y + normal.Y*r}
	return kappa, center
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func footProgress(a, b, query Point) float64 {
	ab := PointVector(a, b)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return 0
	}
	t := ab.Dot(PointVector(a, query)) / lenSq
	return clamp01(t)
}

func (s *StandardContour) refineClosest(rec MeasureRecord, progress float64, query Point) (float64, Point, Vector2, float64) {
	evalAt := func(p float64) (Point, Vector2) {
		t := rec.StartParam + p*(rec.EndParam-rec.StartParam)
		return s.evalOpAt(rec.OpIndex, t)
	}

	pos, _ := evalAt(progress)
	dist := pos.Distance(query)
	p := progress

	const step = 1.0 / 1024.0
	for {
		next := p + step
		if next > 1 {
			break
		}
		np, _ := evalAt(next)
		nd := np.Distance(query)
		if nd < dist {
			dist, p, pos = nd, next, np
		} else {
			break
		}
	}
	for {
		prev := p - step
		if prev < 0 {
			break
		}
		pp, _ := evalAt(prev)
		pd := pp.Distance(query)
		if pd < dist {
			dist, p, pos = pd, prev, pp
		} else {
			break
		}
	}

	_, tangent := evalAt(p)
	return p, pos, tangent, dist
}

func (s *StandardContour) ClosestPoint(h MeasureHandle, tolerance, threshold float64, query Point) (bool, float64, float64, Point, Vector2) {
	sh, ok := h.(*standardHandle)
	precond.Require(ok, "contour: ClosestPoint called with a measure handle not obtained from this StandardContour's InitMeasure")
	if len(sh.records) == 0 || len(s.Points) == 0 {
		return false, 0, 0, Point{}, Vector2{}
	}

	lastPoint := s.Points[0]
	found := false
	var bestDist, bestOffset float64
	var bestPos Point
	var bestTangent Vector2
	curThreshold := threshold

	for _, rec := range sh.records {
		progress := footProgress(lastPoint, rec.EndPoint, query)
		candidate := lastPoint.Lerp(rec.EndPoint, progress)
		chordDist := candidate.Distance(query)

		if chordDist <= curThreshold+1.0 {
			refinedProgress, refinedPos, refinedTangent, refinedDist := s.refineClosest(rec, progress, query)
			if refinedDist <= curThreshold {
				found = true
				bestDist = refinedDist
				bestOffset = rec.Start + (rec.End-rec.Start)*refinedProgress
				bestPos = refinedPos
				bestTangent = refinedTangent
				if refinedDist <= tolerance {
					return true, bestDist, bestOffset, bestPos, bestTangent
				}
				curThreshold = refinedDist - tolerance
			}
		}
		lastPoint = rec.EndPoint
	}

	if curThreshold == threshold {
		Logger().Warn("contour: closest_point scanned entire measure table without tightening threshold",
			"threshold", threshold, "records", len(sh.records))
	}

	return found, bestDist, bestOffset, bestPos, bestTangent
}

func (s *StandardContour) emitOpRange(builder Builder, opIndex int, t0, t1 float64) {
	op := s.Ops[opIndex]
	pts := s.Points[op.Index : op.Index+op.Kind.PointCount()]
	switch op.Kind {
	case OpLine, OpClose:
		l := Line{P0: pts[0], P1: pts[1]}.Subsegment(t0, t1)
		builder.LineTo(l.P1)
	case OpQuad:
		q := QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}.Subsegment(t0, t1)
		builder.QuadTo(q.P1, q.P2)
	case OpCubic:
		c := CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}.Subsegment(t0, t1)
		builder.CubicTo(c.P1, c.P2, c.P3)
	case OpConic:
		co := NewConic(pts[0], pts[1], pts[2], op.Weight).Subsegment(t0, t1)
		builder.ConicTo(co.P1, co.P2, co.W)
	}
}

func (s *StandardContour) emitWholeOp(builder Builder, opIndex int) {
	op := s.Ops[opIndex]
	pts := s.Points[op.Index : op.Index+op.Kind.PointCount()]
	switch op.Kind {
	case OpLine:
		builder.LineTo(pts[1])
	case OpQuad:
		builder.QuadTo(pts[1], pts[2])
	case OpCubic:
		builder.CubicTo(pts[1], pts[2], pts[3])
	case OpConic:
		builder.ConicTo(pts[1], pts[2], op.Weight)
	case OpClose:
		builder.Close()
	}
}

func (s *StandardContour) paramAt(rec MeasureRecord, distance float64) float64 {
	u := 0.0
	if d := rec.End - rec.Start; d > 0 {
		u = (distance - rec.Start) / d
	}
	return rec.StartParam + u*(rec.EndParam-rec.StartParam)
}

func (s *StandardContour) AddSegment(h MeasureHandle, builder Builder, emitMove bool, start, end float64) {
	sh, ok := h.(*standardHandle)
	precond.Require(ok, "contour: AddSegment called with a measure handle not obtained from this StandardContour's InitMeasure")
	precond.Require(start >= 0, "contour: AddSegment start must be >= 0, got %g", start)
	precond.Require(end >= start, "contour: AddSegment end must be >= start, got end=%g start=%g", end, start)
	if len(sh.records) == 0 {
		return
	}
	records := sh.records

	if end > sh.length {
		end = sh.length
	}

	startIdx := findRecord(records, start)
	endIdx := findRecord(records, end)
	startRec := records[startIdx]
	endRec := records[endIdx]

	startT := s.paramAt(startRec, start)
	endT := s.paramAt(endRec, end)

	if emitMove {
		p, _ := s.Point(h, start, DirEnd)
		builder.MoveTo(p)
	}

	const eps = 1e-9
	isFullRange := start <= eps && end >= sh.length-eps

	if startRec.OpIndex == endRec.OpIndex {
		op := s.Ops[startRec.OpIndex]
		if op.Kind == OpClose {
			if isFullRange {
				builder.Close()
				return
			}
			pts := s.Points[op.Index : op.Index+2]
			l := Line{P0: pts[0], P1: pts[1]}.Subsegment(startT, endT)
			builder.LineTo(l.P1)
			return
		}
		if startRec.Reason == flatten.Straight {
			builder.LineTo(startRec.StartPoint.Lerp(startRec.EndPoint, endT))
			return
		}
		s.emitOpRange(builder, startRec.OpIndex, startT, endT)
		return
	}

	if startRec.Reason == flatten.Straight {
		builder.LineTo(startRec.EndPoint)
	} else {
		s.emitOpRange(builder, startRec.OpIndex, startT, 1.0)
	}
	for i := startRec.OpIndex + 1; i < endRec.OpIndex; i++ {
		s.emitWholeOp(builder, i)
	}

	if endT <= 0 {
		return
	}
	endOp := s.Ops[endRec.OpIndex]
	if endOp.Kind == OpClose {
		if isFullRange {
			builder.Close()
			return
		}
		pts := s.Points[endOp.Index : endOp.Index+2]
		l := Line{P0: pts[0], P1: pts[1]}.Subsegment(0, endT)
		builder.LineTo(l.P1)
		return
	}
	if endRec.Reason == flatten.Straight {
		builder.LineTo(endRec.StartPoint.Lerp(endRec.EndPoint, endT))
		return
	}
	s.emitOpRange(builder, endRec.OpIndex, 0, endT)
}

func crossingContribution(a, b, query Point) int {
	if a.Y <= query.Y && b.Y > query.Y {
		if PointVector(a, b).Cross(PointVector(a, query)) > 0 {
			return -1
		}
		return 0
	}
	if b.Y <= query.Y && a.Y > query.Y {
		if PointVector(a, b).Cross(PointVector(a, query)) < 0 {
			return 1
		}
		return 0
	}
	return 0
}

func (s *StandardContour) Winding(h MeasureHandle, query Point) int {
	sh, ok := h.(*standardHandle)
	precond.Require(ok, "contour: Winding called with a measure handle not obtained from this StandardContour's InitMeasure")
	if len(sh.records) == 0 || len(s.Points) == 0 {
		return 0
	}

	poly := make([]Point, 0, len(sh.records)+1)
	poly = append(poly, s.Points[0])
	for _, r := range sh.records {
		poly = append(poly, r.EndPoint)
	}

	total := 0
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		total += crossingContribution(a, b, query)
	}
	return total
}

// buildStandardFromContour runs any Contour's Foreach decomposition
// through a fresh op/point pool, producing an equivalent StandardContour.
// This is how the closed-form RoundedRect variant obtains measurement,
// closest-point and add-segment behavior: it builds (and caches) a
// Standard contour once and delegates to it.
func buildStandardFromContour(src Contour, tolerance float64) *StandardContour {
	var points []Point
	var ops []CurveOp

	src.Foreach(tolerance, func(kind OpKind, pts []Point, weight float64) bool {
		if kind == OpMove {
			points = append(points, pts[0])
			ops = append(ops, CurveOp{Kind: OpMove, Index: 0})
			return true
		}
		idx := len(points) - 1
		points = append(points, pts[1:]...)
		ops = append(ops, CurveOp{Kind: kind, Index: idx, Weight: weight})
		return true
	})

	return &StandardContour{Points: points, Ops: ops, flagsVal: src.Flags()}
}
