// Package flatten adaptively subdivides curve primitives into chord
// segments tagged with why the flattener stopped refining them. It plays
// the role of the external curve decomposer the contour core's measure
// table builder consumes: given a curve and a tolerance, it reports a
// sequence of (from, to, fromParam, toParam, reason) chords covering the
// curve end to end.
//
// Point below is an internal copy of the package contour equivalent, to
// avoid an import cycle (measure.go, in package contour, is this package's
// only caller); curves are passed as plain control points.
//
// The recursive subdivision itself follows the same distance-to-chord
// termination test used elsewhere in this codebase for path flattening;
// this package generalizes it to also flatten rational quadratics (conics)
// and to report curve-parameter ranges per chord instead of only points.
package flatten

import "math"

// Point is a minimal 2D point, independent of package contour's Point.
type Point struct{ X, Y float64 }

func (p Point) sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64     { return math.Hypot(p.X, p.Y) }
func (p Point) distance(q Point) float64 { return p.sub(q).length() }
func lerp(a, b Point, t float64) Point { return a.add(b.sub(a).mul(t)) }

// Reason explains why a chord was not subdivided further.
type Reason uint8

const (
	// Short: the flattener subdivided until the chord was within
	// tolerance of the true curve.
	Short Reason = iota
	// Straight: the underlying curve is (effectively) a straight line on
	// this sub-range, so no subdivision was needed at all.
	Straight
)

// Chord is one flattened segment of a curve.
type Chord struct {
	From, To           Point
	FromParam, ToParam float64
	Reason             Reason
}

// DefaultMaxDepth bounds recursive subdivision so a pathological curve
// (e.g. one with control points far outside the float64 range) cannot
// recurse indefinitely.
const DefaultMaxDepth = 32

func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-12 {
		return p.distance(a)
	}
	ap := p.sub(a)
	t := ap.dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.distance(a)
	}
	if t > 1 {
		return p.distance(b)
	}
	return p.distance(lerp(a, b, t))
}

// Line returns the single chord representing a straight segment; a line
// is trivially and exactly straight over its whole range.
func Line(p0, p1 Point) []Chord {
	return []Chord{{From: p0, To: p1, FromParam: 0, ToParam: 1, Reason: Straight}}
}

// Quad flattens a quadratic Bezier given by its three control points.
// maxDepth bounds the recursive subdivision; hitMaxDepth reports whether
// any branch terminated because it exhausted that depth rather than
// because it met tolerance, a signal callers use to log a diagnostic.
func Quad(p0, p1, p2 Point, tolerance float64, maxDepth int) (chords []Chord, hitMaxDepth bool) {
	if distanceToLine(p1, p0, p2) < tolerance {
		return []Chord{{From: p0, To: p2, FromParam: 0, ToParam: 1, Reason: Straight}}, false
	}
	var out []Chord
	capped := false
	flattenQuad(p0, p1, p2, 0, 1, tolerance, maxDepth, &out, &capped)
	return out, capped
}

func flattenQuad(p0, p1, p2 Point, t0, t1, tolerance float64, depth int, out *[]Chord, capped *bool) {
	dist := distanceToLine(p1, p0, p2)
	if dist < tolerance || depth <= 0 {
		if dist >= tolerance {
			*capped = true
		}
		*out = append(*out, Chord{From: p0, To: p2, FromParam: t0, ToParam: t1, Reason: Short})
		return
	}
	p01 := lerp(p0, p1, 0.5)
	p12 := lerp(p1, p2, 0.5)
	mid := lerp(p01, p12, 0.5)
	tm := (t0 + t1) / 2
	flattenQuad(p0, p01, mid, t0, tm, tolerance, depth-1, out, capped)
	flattenQuad(mid, p12, p2, tm, t1, tolerance, depth-1, out, capped)
}

// Cubic flattens a cubic Bezier given by its four control points.
func Cubic(p0, p1, p2, p3 Point, tolerance float64, maxDepth int) (chords []Chord, hitMaxDepth bool) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		return []Chord{{From: p0, To: p3, FromParam: 0, ToParam: 1, Reason: Straight}}, false
	}
	var out []Chord
	capped := false
	flattenCubic(p0, p1, p2, p3, 0, 1, tolerance, maxDepth, &out, &capped)
	return out, capped
}

func flattenCubic(p0, p1, p2, p3 Point, t0, t1, tolerance float64, depth int, out *[]Chord, capped *bool) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)
	if dist < tolerance || depth <= 0 {
		if dist >= tolerance {
			*capped = true
		}
		*out = append(*out, Chord{From: p0, To: p3, FromParam: t0, ToParam: t1, Reason: Short})
		return
	}
	p01 := lerp(p0, p1, 0.5)
	p12 := lerp(p1, p2, 0.5)
	p23 := lerp(p2, p3, 0.5)
	p012 := lerp(p01, p12, 0.5)
	p123 := lerp(p12, p23, 0.5)
	mid := lerp(p012, p123, 0.5)
	tm := (t0 + t1) / 2
	flattenCubic(p0, p01, p012, mid, t0, tm, tolerance, depth-1, out, capped)
	flattenCubic(mid, p123, p23, p3, tm, t1, tolerance, depth-1, out, capped)
}

// chopConic performs the weight-preserving midpoint split a rational
// quadratic requires (de Casteljau on the weighted points, each new point
// projected back by its own weight, plus the w' = sqrt(0.5 + w*0.5)
// weight update used on both halves).
func chopConic(p0, p1, p2 Point, w float64) (lp0, lp1, lp2 Point, lw float64, rp0, rp1, rp2 Point, rw float64) {
	newW := math.Sqrt(0.5 + w*0.5)
	p01 := p0.add(p1.mul(w)).mul(1 / (1 + w))
	p12 := p1.mul(w).add(p2).mul(1 / (1 + w))
	mid := Point{
		X: (p0.X + 2*w*p1.X + p2.X) / (2 + 2*w),
		Y: (p0.Y + 2*w*p1.Y + p2.Y) / (2 + 2*w),
	}
	return p0, p01, mid, newW, mid, p12, p2, newW
}

// Conic flattens a rational quadratic Bezier with weight w, chopping with
// its own weight-preserving subdivision rather than plain de Casteljau.
func Conic(p0, p1, p2 Point, w, tolerance float64, maxDepth int) (chords []Chord, hitMaxDepth bool) {
	if distanceToLine(p1, p0, p2) < tolerance {
		return []Chord{{From: p0, To: p2, FromParam: 0, ToParam: 1, Reason: Straight}}, false
	}
	var out []Chord
	capped := false
	flattenConic(p0, p1, p2, w, w, 0, 1, tolerance, maxDepth, &out, &capped)
	return out, capped
}

func flattenConic(p0, p1, p2 Point, w, w0, t0, t1, tolerance float64, depth int, out *[]Chord, capped *bool) {
	dist := distanceToLine(p1, p0, p2)
	if dist < tolerance || depth <= 0 {
		if dist >= tolerance {
			*capped = true
		}
		*out = append(*out, Chord{From: p0, To: p2, FromParam: t0, ToParam: t1, Reason: Short})
		return
	}
	lp0, lp1, lp2, lw, rp0, rp1, rp2, rw := chopConic(p0, p1, p2, w)
	// Each piece is in standard form, so its own midpoint lies at the
	// original (weight w0) conic's parameter t0 + (t1-t0)*k/(1+k), where k
	// is the square root of the ratio of its rational denominators at t0
	// and t1.
	den := func(t float64) float64 { return (1-t)*(1-t) + 2*t*(1-t)*w0 + t*t }
	k := math.Sqrt(den(t0) / den(t1))
	tm := t0 + (t1-t0)*k/(1+k)
	flattenConic(lp0, lp1, lp2, lw, w0, t0, tm, tolerance, depth-1, out, capped)
	flattenConic(rp0, rp1, rp2, rw, w0, tm, t1, tolerance, depth-1, out, capped)
}
