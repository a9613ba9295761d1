package contour

import "io"

// Contour is the common contract every contour variant (Standard,
// Rectangle, RoundedRect, Circle/Arc) implements. A Contour value is
// constructed once — by a Builder, by Reverse, or by a variant
// constructor — and is logically immutable and safely shared by
// read-only reference thereafter; see the package doc for the
// concurrency model.
//
// Methods that take a MeasureHandle require one obtained from this same
// Contour's InitMeasure and not yet released. The Standard and
// RoundedRect variants check only the handle's concrete type, through
// internal/precond (a handle of another variant panics); a handle from
// another contour of the same variant, or one already released, is not
// detected. The Rectangle and Circle variants ignore the handle.
type Contour interface {
	// Copy returns a deep, independent copy of the contour.
	Copy() Contour

	// Size reports the contour's approximate memory footprint in bytes,
	// for callers that need to budget duplication of variable-sized
	// variants.
	Size() int

	// Flags returns the contour's PathFlags.
	Flags() PathFlags

	// Bounds writes the minimum axis-aligned rectangle containing the
	// contour (for the Standard variant: containing every control point)
	// and reports whether one exists; it returns false for a degenerate
	// contour with zero width or zero height (see the Rect.Empty design
	// note on strict positivity).
	Bounds() (Rect, bool)

	// StartEnd returns the contour's first and last point.
	StartEnd() (start, end Point)

	// Print appends an SVG-style textual description of the contour to w
	// (see doc.go for the format).
	Print(w io.Writer)

	// Foreach enumerates the contour as a sequence of Move, Line, Quad,
	// Cubic, Conic and Close operations, calling visit once per
	// operation with the operation's control points (including the
	// shared leading point) and, for Conic, its weight. Closed-form
	// variants synthesize an equivalent sequence; Circle/Arc decomposes
	// its arc into cubic Beziers of at most 90 degrees each, a split that
	// does not depend on tolerance (tolerance is not used). Foreach
	// returns false, stopping early, iff visit itself returns false.
	Foreach(tolerance float64, visit OpVisitor) bool

	// Reverse returns a new contour of the same variant traversed in the
	// opposite direction.
	Reverse() Contour

	// InitMeasure builds a measure handle for this contour and returns
	// the contour's total arc length. The handle must be released via
	// handle.Release when no longer needed. For closed-form variants
	// (Rectangle, Circle) the handle carries no measurement state;
	// RoundedRect's handle owns a lazily built Standard contour and its
	// handle.
	InitMeasure(tolerance float64, opts ...MeasureOption) (MeasureHandle, float64)

	// Point returns the position and unit tangent at arc length distance.
	// direction selects which incident tangent is reported at a seam
	// (see the seam rule in the Standard variant's measurement design).
	Point(h MeasureHandle, distance float64, direction Direction) (pos Point, tangent Vector2)

	// Curvature returns the signed curvature at arc length distance and,
	// when non-zero, the center of the osculating circle.
	Curvature(h MeasureHandle, distance float64) (kappa float64, center Point)

	// ClosestPoint finds the nearest point on the contour to query,
	// succeeding only when that distance does not exceed threshold. On
	// success it reports the distance, arc-length offset, position and
	// tangent of the match.
	ClosestPoint(h MeasureHandle, tolerance, threshold float64, query Point) (ok bool, distance, offset float64, pos Point, tangent Vector2)

	// AddSegment appends to builder the sub-contour covering arc-length
	// range [start, end]. If emitMove, the segment begins with a move;
	// otherwise it continues from the builder's current pen position.
	AddSegment(h MeasureHandle, builder Builder, emitMove bool, start, end float64)

	// Winding returns the signed crossing number of a horizontal ray from
	// query through the contour, for non-zero fill rule evaluation.
	Winding(h MeasureHandle, query Point) int
}

// MeasureHandle is the opaque, exclusively-owned state produced by
// InitMeasure. It is never shared across goroutines and must be released
// exactly once.
type MeasureHandle interface {
	// Release frees resources owned by the handle. Release is idempotent.
	Release()
}

// OpVisitor receives one curve operation from Foreach. pts holds the
// operation's control points, including the point carried over from the
// previous operation's endpoint, sized per kind.PointCount(). weight is
// meaningful only when kind == OpConic.
type OpVisitor func(kind OpKind, pts []Point, weight float64) bool

// Builder is the minimal external collaborator this core needs to emit
// curve data: an assembler for paths, fed by AddSegment and by
// AddContour's Foreach-driven decomposition.
type Builder interface {
	MoveTo(p Point) error
	LineTo(p Point) error
	QuadTo(ctrl, end Point) error
	CubicTo(c1, c2, end Point) error
	ConicTo(ctrl, end Point, weight float64) error
	Close() error

	// AddContour appends an entire contour as a new subpath: the op
	// sequence its Foreach produces at DefaultFlattenTolerance.
	AddContour(c Contour) error

	// PathopTo appends an existing CurveOp (and its already-resolved
	// points) verbatim, without re-deriving it from a position/control
	// point triple.
	PathopTo(op CurveOp, pts []Point) error
}
