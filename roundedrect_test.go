package contour

import (
	"bytes"
	"math"
	"testing"
)

func TestRoundedRectContourBoundsAndFlags(t *testing.T) {
	rr := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	b, ok := rr.Bounds()
	if !ok {
		t.Fatal("Bounds() should report success")
	}
	if b.Min != (Point{0, 0}) || b.Max != (Point{10, 6}) {
		t.Errorf("Bounds() = %v, want Min={0 0} Max={10 6}", b)
	}
	if !rr.Flags().Closed() {
		t.Error("RoundedRectContour should always be Closed")
	}
}

func TestRoundedRectContourRadiusClamping(t *testing.T) {
	rr := NewRoundedRectContour(0, 0, 4, 4, 100, 100, false)
	rxTL, ryTL, _, _, _, _, _, _ := rr.clampedRadii()
	if rxTL != 2 || ryTL != 2 {
		t.Errorf("clampedRadii() TL = (%g, %g), want (2, 2)", rxTL, ryTL)
	}
}

// TestRoundedRectContourCCWDropsConnectingSegment replicates the documented
// latent behavior of buildSegs: the CCW traversal drops its final straight
// side (the one returning to the start point, which Close redraws), so a
// CCW outline has one fewer Line command than its CW counterpart.
func TestRoundedRectContourCCWDropsConnectingSegment(t *testing.T) {
	cw := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	ccw := NewRoundedRectContour(0, 0, 10, 6, 2, 2, true)

	countOps := func(rr *RoundedRectContour) (lines, conics int) {
		rr.Foreach(0.1, func(kind OpKind, pts []Point, weight float64) bool {
			switch kind {
			case OpLine:
				lines++
			case OpConic:
				conics++
			}
			return true
		})
		return
	}

	cwLines, cwConics := countOps(cw)
	ccwLines, ccwConics := countOps(ccw)

	if cwLines != 4 || cwConics != 4 {
		t.Fatalf("CW outline = %d lines, %d conics, want 4 and 4", cwLines, cwConics)
	}
	if ccwConics != 4 {
		t.Errorf("CCW outline = %d conics, want 4 (corners are unaffected)", ccwConics)
	}
	if ccwLines != cwLines-1 {
		t.Errorf("CCW outline = %d lines, want %d (one fewer than CW, per the documented dropped segment)", ccwLines, cwLines-1)
	}
}

func TestRoundedRectContourPrintGolden(t *testing.T) {
	rr := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	var buf bytes.Buffer
	rr.Print(&buf)
	got := buf.String()
	if got == "" {
		t.Fatal("Print() produced no output")
	}
	if got[0] != 'M' {
		t.Errorf("Print() = %q, want it to start with M", got)
	}
	if got[len(got)-1] != 'Z' {
		t.Errorf("Print() = %q, want it to end with Z", got)
	}
}

func TestRoundedRectContourReverseTogglesCCW(t *testing.T) {
	rr := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	r := rr.Reverse().(*RoundedRectContour)
	if !r.CCW {
		t.Error("Reverse() should toggle CCW from false to true")
	}
	back := r.Reverse().(*RoundedRectContour)
	if back.CCW {
		t.Error("Reverse().Reverse() should restore CCW to false")
	}
}

func TestRoundedRectContourMeasureDelegatesToStandard(t *testing.T) {
	rr := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	h, length := rr.InitMeasure(0.01)
	defer h.Release()

	if length <= 0 {
		t.Fatalf("length = %g, want > 0", length)
	}
	straightPerimeter := 2.0 * (10 + 6)
	if length >= straightPerimeter {
		t.Errorf("rounded perimeter %g should be shorter than the sharp-corner perimeter %g", length, straightPerimeter)
	}

	start, _ := rr.Point(h, 0, DirEnd)
	wantStart := Point{X: 2, Y: 0}
	if start.Distance(wantStart) > 1e-6 {
		t.Errorf("Point(0) = %v, want %v", start, wantStart)
	}
}

func TestRoundedRectContourWindingInsideOutside(t *testing.T) {
	rr := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	h, _ := rr.InitMeasure(0.01)
	defer h.Release()

	if w := rr.Winding(h, Pt(5, 3)); w != -1 {
		t.Errorf("Winding(center) = %d, want -1", w)
	}
	if w := rr.Winding(h, Pt(-1, -1)); w != 0 {
		t.Errorf("Winding(outside) = %d, want 0", w)
	}
}

func TestRoundedRectContourClosestPointOnFlatSide(t *testing.T) {
	rr := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	h, _ := rr.InitMeasure(0.01)
	defer h.Release()

	ok, dist, _, pos, _ := rr.ClosestPoint(h, 1e-4, 5, Pt(5, -3))
	if !ok {
		t.Fatal("ClosestPoint should succeed")
	}
	if math.Abs(dist-3) > 0.05 {
		t.Errorf("closest dist = %g, want ~3", dist)
	}
	if math.Abs(pos.Y) > 0.05 {
		t.Errorf("closest pos = %v, want y ~ 0 (on the top flat side)", pos)
	}
}

func TestRoundedRectContourMismatchedHandlePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Point() with a foreign handle should panic")
		}
	}()
	rr := NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)
	other := NewRectContour(0, 0, 1, 1)
	oh, _ := other.InitMeasure(0.1)
	defer oh.Release()
	rr.Point(oh, 0, DirEnd)
}
