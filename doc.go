// Package contour represents and queries 2D vector-graphics outlines.
//
// # Overview
//
// A Contour is one closed or open outline: a run of straight and curved
// segments sharing endpoints. Four variants implement the same interface
// — Standard (an arbitrary op sequence), Rectangle, RoundedRect and
// Circle/Arc — each trading generality for closed-form measurement and
// hit-testing where the shape allows it. A Path is an ordered collection
// of Contours, the unit a renderer actually fills or strokes.
//
// # Quick Start
//
//	import "github.com/gogpu/contour"
//
//	c := contour.NewRectContour(0, 0, 10, 10)
//	handle, length := c.InitMeasure(0.1)
//	defer handle.Release()
//
//	pos, tangent := c.Point(handle, length/2, contour.DirEnd)
//
// Arbitrary outlines go through a PathBuilder:
//
//	tri, err := contour.NewPathBuilder().
//	    MoveTo(contour.Pt(0, 0)).
//	    LineTo(contour.Pt(2, 0)).
//	    LineTo(contour.Pt(1, 2)).
//	    Close().
//	    Build()
//
// # Measurement
//
// InitMeasure builds an arc-length parameterization: Point, Curvature,
// ClosestPoint and Winding all take the resulting MeasureHandle. Handles
// are exclusively owned and never shared across goroutines; release one
// exactly once, the way the handle's owning Contour expects. The
// Standard variant does this by flattening each curve op into chords at
// the requested tolerance (see internal/flatten) and binary-searching the
// resulting table; the closed-form variants compute directly from their
// parameters and ignore most of that machinery.
//
// # Seams
//
// At a join between two segments, Point's direction argument picks which
// side's tangent to report: DirEnd (the default most callers want) asks
// for the outgoing tangent of the segment starting there, DirStart asks
// for the incoming tangent of the segment ending there.
//
// # Errors and panics
//
// The contour core itself is total: Bounds and ClosestPoint report
// failure with a boolean rather than an error, and a malformed handle or
// op list is a precondition violation (internal/precond) that panics
// rather than propagating an error value. errors.go's sentinels belong
// to the Builder collaborator only, whose callers are ordinary
// application code assembling a path incrementally.
//
// # Coordinate system
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Angles in degrees, 0 along +X, increasing clockwise (matching the
//     Y-down convention)
package contour
