package contour

import (
	"errors"
	"testing"
)

func TestBuilderRequiresMoveBeforeLine(t *testing.T) {
	b := NewBuilder()
	if err := b.LineTo(Pt(1, 0)); !errors.Is(err, ErrNoCurrentPoint) {
		t.Errorf("LineTo before MoveTo = %v, want ErrNoCurrentPoint", err)
	}
}

func TestBuilderRequiresMoveBeforeClose(t *testing.T) {
	b := NewBuilder()
	if err := b.Close(); !errors.Is(err, ErrNoCurrentPoint) {
		t.Errorf("Close before MoveTo = %v, want ErrNoCurrentPoint", err)
	}
}

func TestBuilderBuildEmptyFails(t *testing.T) {
	b := NewBuilder().(*builderImpl)
	if _, err := b.Build(); !errors.Is(err, ErrEmptyContour) {
		t.Errorf("Build() on an empty builder = %v, want ErrEmptyContour", err)
	}
}

func TestBuilderBuildFlagsClosedAndFlat(t *testing.T) {
	b := NewBuilder()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	must(b.MoveTo(Pt(0, 0)))
	must(b.LineTo(Pt(1, 0)))
	must(b.LineTo(Pt(1, 1)))
	must(b.Close())

	sc, err := b.(*builderImpl).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !sc.Flags().Closed() {
		t.Error("a builder ending in Close() should produce a Closed contour")
	}
	if !sc.Flags().Flat() {
		t.Error("a builder with only lines should produce a Flat contour")
	}
}

func TestBuilderBuildNotFlatWithCurve(t *testing.T) {
	b := NewBuilder()
	_ = b.MoveTo(Pt(0, 0))
	_ = b.QuadTo(Pt(1, 1), Pt(2, 0))
	sc, err := b.(*builderImpl).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sc.Flags().Flat() {
		t.Error("a builder containing a Quad should not produce a Flat contour")
	}
	if sc.Flags().Closed() {
		t.Error("a builder with no trailing Close should not produce a Closed contour")
	}
}

func TestBuilderAddContourRoundTrips(t *testing.T) {
	rect := NewRectContour(0, 0, 2, 3)
	b := NewBuilder()
	if err := b.AddContour(rect); err != nil {
		t.Fatalf("AddContour: %v", err)
	}
	sc, err := b.(*builderImpl).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	origBounds, _ := rect.Bounds()
	gotBounds, _ := sc.Bounds()
	if origBounds != gotBounds {
		t.Errorf("round-tripped bounds = %v, want %v", gotBounds, origBounds)
	}
}

func TestBuilderAddContourNilFails(t *testing.T) {
	b := NewBuilder()
	if err := b.AddContour(nil); !errors.Is(err, ErrEmptyContour) {
		t.Errorf("AddContour(nil) = %v, want ErrEmptyContour", err)
	}
}

func TestPathBuilderFluentChainAndErr(t *testing.T) {
	pb := NewPathBuilder().
		MoveTo(Pt(0, 0)).
		LineTo(Pt(1, 0)).
		LineTo(Pt(1, 1)).
		Close()
	if pb.Err() != nil {
		t.Fatalf("Err() = %v, want nil", pb.Err())
	}
	sc, err := pb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sc.Ops) != 4 {
		t.Errorf("built contour has %d ops, want 4", len(sc.Ops))
	}
}

func TestPathBuilderFluentChainSticksOnFirstError(t *testing.T) {
	pb := NewPathBuilder().
		LineTo(Pt(1, 0)). // no MoveTo yet: should latch ErrNoCurrentPoint
		MoveTo(Pt(0, 0)). // should be ignored once err is set
		Close()

	if !errors.Is(pb.Err(), ErrNoCurrentPoint) {
		t.Errorf("Err() = %v, want ErrNoCurrentPoint", pb.Err())
	}
	if _, err := pb.Build(); !errors.Is(err, ErrNoCurrentPoint) {
		t.Errorf("Build() = %v, want ErrNoCurrentPoint", err)
	}
}
