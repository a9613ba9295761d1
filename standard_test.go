package contour

import (
	"bytes"
	"math"
	"testing"
)

func buildTriangle(t *testing.T) *StandardContour {
	t.Helper()
	b := NewBuilder()
	if err := b.MoveTo(Pt(0, 0)); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := b.LineTo(Pt(2, 0)); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := b.LineTo(Pt(1, 2)); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	sc, err := b.(*builderImpl).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return sc
}

func TestStandardContourTriangleLengthWindingBounds(t *testing.T) {
	tri := buildTriangle(t)
	h, length := tri.InitMeasure(0.01)
	defer h.Release()

	want := 2 + math.Sqrt(5) + math.Sqrt(5)
	if math.Abs(length-want) > 1e-9 {
		t.Errorf("length = %g, want %g", length, want)
	}

	if w := tri.Winding(h, Pt(1, 0.5)); w != -1 {
		t.Errorf("Winding((1,0.5)) = %d, want -1", w)
	}
	if w := tri.Winding(h, Pt(1, 2.5)); w != 0 {
		t.Errorf("Winding((1,2.5)) = %d, want 0", w)
	}

	bbox, ok := tri.Bounds()
	if !ok {
		t.Fatal("Bounds() should report success")
	}
	if bbox.Min != (Point{0, 0}) || bbox.Max != (Point{2, 2}) {
		t.Errorf("Bounds() = %v, want Min={0 0} Max={2 2}", bbox)
	}
}

// TestStandardContourTriangleSegmentExtraction exercises add_segment across
// an op boundary: offset 1 lands mid-way along the first side, and offset
// 2+sqrt(5) lands exactly on the vertex ending the second side.
func TestStandardContourTriangleSegmentExtraction(t *testing.T) {
	tri := buildTriangle(t)
	h, _ := tri.InitMeasure(0.01)
	defer h.Release()

	end := 2 + math.Sqrt(5)
	b := NewBuilder()
	tri.AddSegment(h, b, true, 1, end)
	out, err := b.(*builderImpl).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(out.Ops) != 3 {
		t.Fatalf("AddSegment produced %d ops, want 3 (Move, Line, Line)", len(out.Ops))
	}
	if out.Ops[0].Kind != OpMove || out.Ops[1].Kind != OpLine || out.Ops[2].Kind != OpLine {
		t.Fatalf("AddSegment op kinds = %v, want [Move Line Line]", out.Ops)
	}

	start, _ := tri.Point(h, 1, DirEnd)
	if !pointsClose(start, Pt(1, 0), 1e-9) {
		t.Errorf("segment start = %v, want (1, 0)", start)
	}

	finalPoint := out.Points[len(out.Points)-1]
	if !pointsClose(finalPoint, Pt(1, 2), 1e-9) {
		t.Errorf("segment end = %v, want (1, 2) (the vertex ending the second side)", finalPoint)
	}
}

func TestStandardContourReverseInvolution(t *testing.T) {
	tri := buildTriangle(t)
	back := tri.Reverse().Reverse().(*StandardContour)

	if len(back.Points) != len(tri.Points) || len(back.Ops) != len(tri.Ops) {
		t.Fatalf("Reverse().Reverse() shape mismatch: %d pts/%d ops vs %d pts/%d ops",
			len(back.Points), len(back.Ops), len(tri.Points), len(tri.Ops))
	}
	for i := range tri.Points {
		if !pointsClose(back.Points[i], tri.Points[i], 1e-9) {
			t.Errorf("point[%d] = %v, want %v", i, back.Points[i], tri.Points[i])
		}
	}
}

func TestStandardContourPrint(t *testing.T) {
	tri := buildTriangle(t)
	var buf bytes.Buffer
	tri.Print(&buf)
	got := buf.String()
	want := "M 0 0 L 2 0 L 1 2 Z"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestStandardContourFirstOpMustBeMove(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewStandardContour with a non-Move first op should panic")
		}
	}()
	NewStandardContour([]Point{{0, 0}, {1, 0}}, []CurveOp{{Kind: OpLine, Index: 0}}, 0)
}

func TestStandardContourPointRejectsNegativeDistance(t *testing.T) {
	tri := buildTriangle(t)
	h, _ := tri.InitMeasure(0.01)
	defer h.Release()

	defer func() {
		if recover() == nil {
			t.Error("Point() with a negative distance should panic")
		}
	}()
	tri.Point(h, -1, DirEnd)
}

func TestStandardContourMismatchedHandlePanics(t *testing.T) {
	tri := buildTriangle(t)
	other := NewRectContour(0, 0, 1, 1)
	oh, _ := other.InitMeasure(0.1)
	defer oh.Release()

	defer func() {
		if recover() == nil {
			t.Error("Point() with a foreign handle should panic")
		}
	}()
	tri.Point(oh, 0, DirEnd)
}

func TestStandardContourClosestPointOnEdge(t *testing.T) {
	tri := buildTriangle(t)
	h, _ := tri.InitMeasure(0.01)
	defer h.Release()

	ok, dist, _, pos, _ := tri.ClosestPoint(h, 1e-6, 5, Pt(1, -1))
	if !ok {
		t.Fatal("ClosestPoint should succeed")
	}
	if math.Abs(dist-1) > 1e-6 {
		t.Errorf("closest dist = %g, want 1", dist)
	}
	if !pointsClose(pos, Pt(1, 0), 1e-6) {
		t.Errorf("closest pos = %v, want (1, 0)", pos)
	}
}
