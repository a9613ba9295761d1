package contour

import "io"

// Path is an ordered collection of independent Contours — the unit a
// renderer or hit-tester actually fills or strokes, as distinct from a
// single Contour's own operations. Subpaths are evaluated in order;
// nothing in this package requires them to be disjoint or non-crossing.
type Path struct {
	contours []Contour
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// NewPathFromContours wraps an existing slice of contours, in order.
func NewPathFromContours(contours ...Contour) *Path {
	return &Path{contours: append([]Contour(nil), contours...)}
}

// AddContour appends c as the path's next subpath.
func (p *Path) AddContour(c Contour) error {
	if c == nil {
		return ErrEmptyContour
	}
	p.contours = append(p.contours, c)
	return nil
}

// Contours returns the path's subpaths in order. The returned slice
// aliases the path's own storage and must not be mutated.
func (p *Path) Contours() []Contour { return p.contours }

// Empty reports whether the path has no subpaths.
func (p *Path) Empty() bool { return len(p.contours) == 0 }

// Bounds returns the union of every subpath's bounds.
func (p *Path) Bounds() (Rect, bool) {
	var result Rect
	has := false
	for _, c := range p.contours {
		b, ok := c.Bounds()
		if !ok {
			continue
		}
		if !has {
			result, has = b, true
		} else {
			result = result.Union(b)
		}
	}
	return result, has
}

// Print writes every subpath's SVG-style description to w, in order,
// separated by a single space.
func (p *Path) Print(w io.Writer) {
	for i, c := range p.contours {
		if i > 0 {
			io.WriteString(w, " ")
		}
		c.Print(w)
	}
}

// Copy returns a path with independent copies of every subpath.
func (p *Path) Copy() *Path {
	out := &Path{contours: make([]Contour, len(p.contours))}
	for i, c := range p.contours {
		out.contours[i] = c.Copy()
	}
	return out
}

// Reverse returns a path in which every subpath is individually reversed
// and subpath order is reversed, matching how a renderer would retrace
// the whole path backwards.
func (p *Path) Reverse() *Path {
	out := &Path{contours: make([]Contour, len(p.contours))}
	n := len(p.contours)
	for i, c := range p.contours {
		out.contours[n-1-i] = c.Reverse()
	}
	return out
}

// WindingAt evaluates the non-zero winding number of the whole path at
// query, summing each subpath's independent contribution. It builds and
// releases a measure handle per subpath at the given tolerance; callers
// evaluating many points against the same path should instead drive
// Contour.Winding directly against handles obtained once up front.
func (p *Path) WindingAt(query Point, tolerance float64) int {
	total := 0
	for _, c := range p.contours {
		h, _ := c.InitMeasure(tolerance)
		total += c.Winding(h, query)
		h.Release()
	}
	return total
}

// Contains reports whether query lies inside the path under the
// non-zero fill rule.
func (p *Path) Contains(query Point, tolerance float64) bool {
	return p.WindingAt(query, tolerance) != 0
}
