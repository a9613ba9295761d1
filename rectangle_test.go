package contour

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsClose(a, b Point, eps float64) bool { return a.Distance(b) <= eps }

func TestRectContourUnitSquare(t *testing.T) {
	r := NewRectContour(0, 0, 1, 1)
	h, length := r.InitMeasure(0.1)
	defer h.Release()

	if math.Abs(length-4) > epsilon {
		t.Fatalf("length = %g, want 4", length)
	}

	pos, tangent := r.Point(h, 0.5, DirEnd)
	if !pointsClose(pos, Pt(0.5, 0), epsilon) {
		t.Errorf("Point(0.5) = %v, want (0.5, 0)", pos)
	}
	if !pointsClose(tangent.ToPoint(), Pt(1, 0), epsilon) {
		t.Errorf("tangent at 0.5 = %v, want (1, 0)", tangent)
	}

	pos, tangent = r.Point(h, 2.5, DirEnd)
	if !pointsClose(pos, Pt(0.5, 1), epsilon) {
		t.Errorf("Point(2.5) = %v, want (0.5, 1)", pos)
	}
	if !pointsClose(tangent.ToPoint(), Pt(-1, 0), epsilon) {
		t.Errorf("tangent at 2.5 = %v, want (-1, 0)", tangent)
	}

	if w := r.Winding(h, Pt(0.25, 0.25)); w != -1 {
		t.Errorf("Winding(0.25,0.25) = %d, want -1", w)
	}

	ok, dist, offset, pos, _ := r.ClosestPoint(h, 1e-6, 2, Pt(2, 0.5))
	if !ok {
		t.Fatal("ClosestPoint should succeed within threshold 2")
	}
	if !pointsClose(pos, Pt(1, 0.5), 1e-6) {
		t.Errorf("closest pos = %v, want (1, 0.5)", pos)
	}
	if math.Abs(dist-1.0) > 1e-6 {
		t.Errorf("closest dist = %g, want 1.0", dist)
	}
	if math.Abs(offset-1.5) > 1e-6 {
		t.Errorf("closest offset = %g, want 1.5", offset)
	}
}

func TestRectContourReversed(t *testing.T) {
	r := NewRectContour(1, 0, -1, 1)
	h, length := r.InitMeasure(0.1)
	defer h.Release()

	if math.Abs(length-4) > epsilon {
		t.Fatalf("length = %g, want 4", length)
	}

	pos, tangent := r.Point(h, 0, DirEnd)
	if !pointsClose(pos, Pt(1, 0), epsilon) {
		t.Errorf("Point(0) = %v, want (1, 0)", pos)
	}
	if !pointsClose(tangent.ToPoint(), Pt(-1, 0), epsilon) {
		t.Errorf("tangent at 0 = %v, want (-1, 0)", tangent)
	}
}

func TestRectContourBounds(t *testing.T) {
	r := NewRectContour(1, 2, 3, 4)
	b, ok := r.Bounds()
	if !ok {
		t.Fatal("Bounds() should report success for a non-degenerate rect")
	}
	if b.Min != (Point{1, 2}) || b.Max != (Point{4, 6}) {
		t.Errorf("Bounds() = %v, want Min={1 2} Max={4 6}", b)
	}
}

func TestRectContourFlags(t *testing.T) {
	r := NewRectContour(0, 0, 1, 1)
	f := r.Flags()
	if !f.Flat() || !f.Closed() {
		t.Errorf("RectContour flags = %v, want Flat|Closed", f)
	}
}

func TestRectContourWindingOutside(t *testing.T) {
	r := NewRectContour(0, 0, 1, 1)
	h, _ := r.InitMeasure(0.1)
	defer h.Release()
	if w := r.Winding(h, Pt(2, 2)); w != 0 {
		t.Errorf("Winding(outside) = %d, want 0", w)
	}
}

func TestRectContourStartEnd(t *testing.T) {
	r := NewRectContour(3, 4, 5, 6)
	start, end := r.StartEnd()
	if start != (Point{3, 4}) || end != (Point{3, 4}) {
		t.Errorf("StartEnd() = (%v, %v), want both (3, 4)", start, end)
	}
}

func TestRectContourReverseInvolution(t *testing.T) {
	r := NewRectContour(1, 2, 3, -4)
	back := r.Reverse().Reverse().(*RectContour)
	if *back != *r {
		t.Errorf("Reverse().Reverse() = %+v, want %+v", *back, *r)
	}
}

func TestRectContourAddSegmentFullRangeRoundTrip(t *testing.T) {
	r := NewRectContour(0, 0, 2, 3)
	h, length := r.InitMeasure(0.1)
	defer h.Release()

	b := NewBuilder()
	r.AddSegment(h, b, true, 0, length)
	built, err := b.(*builderImpl).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	bh, blen := built.InitMeasure(0.1)
	defer bh.Release()
	if math.Abs(blen-length) > 1e-6 {
		t.Errorf("round-tripped length = %g, want %g", blen, length)
	}
	bbox, _ := built.Bounds()
	origBbox, _ := r.Bounds()
	if bbox != origBbox {
		t.Errorf("round-tripped bounds = %v, want %v", bbox, origBbox)
	}
}

func TestRectContourPointMonotonicity(t *testing.T) {
	r := NewRectContour(0, 0, 3, 5)
	h, length := r.InitMeasure(0.1)
	defer h.Release()

	samples := []float64{0, 0.5, 1, 2, 3.2, 4.9, 6, 8.5, length}
	var prev Point
	var prevSet bool
	var prevD float64
	for _, d := range samples {
		p, _ := r.Point(h, d, DirEnd)
		if prevSet {
			if p.Distance(prev) > (d-prevD)+1e-9 {
				t.Errorf("point(%g)-point(%g) distance exceeds arc-length gap", d, prevD)
			}
		}
		prev, prevSet, prevD = p, true, d
	}
}
