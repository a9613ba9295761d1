package contour

// DefaultFlattenTolerance is the curve-decomposition tolerance used where
// no caller-supplied value is available, such as Builder.AddContour.
const DefaultFlattenTolerance = 0.1

// builderImpl is the concrete, stateful Builder: it accumulates a single
// Standard contour's points and ops as MoveTo/LineTo/... calls arrive, the
// same incremental-append discipline StandardContour itself is stored
// under.
type builderImpl struct {
	points   []Point
	ops      []CurveOp
	start    Point
	hasStart bool
}

// NewBuilder returns a fresh Builder with no current point.
func NewBuilder() Builder { return &builderImpl{} }

func (b *builderImpl) requireCurrent() error {
	if !b.hasStart {
		return ErrNoCurrentPoint
	}
	return nil
}

func (b *builderImpl) appendAfterShared(kind OpKind, newPts ...Point) {
	idx := len(b.points) - 1
	b.points = append(b.points, newPts...)
	b.ops = append(b.ops, CurveOp{Kind: kind, Index: idx})
}

func (b *builderImpl) MoveTo(p Point) error {
	b.points = append(b.points, p)
	b.ops = append(b.ops, CurveOp{Kind: OpMove, Index: len(b.points) - 1})
	b.start = p
	b.hasStart = true
	return nil
}

func (b *builderImpl) LineTo(p Point) error {
	if err := b.requireCurrent(); err != nil {
		return err
	}
	b.appendAfterShared(OpLine, p)
	return nil
}

func (b *builderImpl) QuadTo(ctrl, end Point) error {
	if err := b.requireCurrent(); err != nil {
		return err
	}
	b.appendAfterShared(OpQuad, ctrl, end)
	return nil
}

func (b *builderImpl) CubicTo(c1, c2, end Point) error {
	if err := b.requireCurrent(); err != nil {
		return err
	}
	b.appendAfterShared(OpCubic, c1, c2, end)
	return nil
}

func (b *builderImpl) ConicTo(ctrl, end Point, weight float64) error {
	if err := b.requireCurrent(); err != nil {
		return err
	}
	idx := len(b.points) - 1
	b.points = append(b.points, ctrl, end)
	b.ops = append(b.ops, CurveOp{Kind: OpConic, Index: idx, Weight: weight})
	return nil
}

func (b *builderImpl) Close() error {
	if err := b.requireCurrent(); err != nil {
		return err
	}
	b.appendAfterShared(OpClose, b.start)
	return nil
}

func (b *builderImpl) AddContour(c Contour) error {
	if c == nil {
		return ErrEmptyContour
	}
	var innerErr error
	c.Foreach(DefaultFlattenTolerance, func(kind OpKind, pts []Point, weight float64) bool {
		innerErr = b.PathopTo(CurveOp{Kind: kind, Weight: weight}, pts)
		return innerErr == nil
	})
	return innerErr
}

func (b *builderImpl) PathopTo(op CurveOp, pts []Point) error {
	switch op.Kind {
	case OpMove:
		return b.MoveTo(pts[0])
	case OpLine:
		return b.LineTo(pts[1])
	case OpQuad:
		return b.QuadTo(pts[1], pts[2])
	case OpCubic:
		return b.CubicTo(pts[1], pts[2], pts[3])
	case OpConic:
		return b.ConicTo(pts[1], pts[2], op.Weight)
	case OpClose:
		return b.Close()
	default:
		return ErrUnsupportedOp
	}
}

// Build finalizes the accumulated ops into a StandardContour, deriving
// FlagClosed from a trailing Close and FlagFlat from the absence of any
// curved op.
func (b *builderImpl) Build() (*StandardContour, error) {
	if len(b.ops) == 0 {
		return nil, ErrEmptyContour
	}
	var flags PathFlags
	if b.ops[len(b.ops)-1].Kind == OpClose {
		flags |= FlagClosed
	}
	flat := true
	for _, op := range b.ops {
		if op.Kind == OpQuad || op.Kind == OpCubic || op.Kind == OpConic {
			flat = false
			break
		}
	}
	if flat {
		flags |= FlagFlat
	}
	points := append([]Point(nil), b.points...)
	ops := append([]CurveOp(nil), b.ops...)
	return NewStandardContour(points, ops, flags), nil
}

// PathBuilder is a fluent wrapper over Builder: each call returns the
// receiver so callers can chain MoveTo/LineTo/.../Close, checking Err
// once at the end instead of after every step.
type PathBuilder struct {
	inner *builderImpl
	err   error
}

// NewPathBuilder returns an empty fluent builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{inner: &builderImpl{}}
}

func (p *PathBuilder) MoveTo(pt Point) *PathBuilder {
	if p.err == nil {
		p.err = p.inner.MoveTo(pt)
	}
	return p
}

func (p *PathBuilder) LineTo(pt Point) *PathBuilder {
	if p.err == nil {
		p.err = p.inner.LineTo(pt)
	}
	return p
}

func (p *PathBuilder) QuadTo(ctrl, end Point) *PathBuilder {
	if p.err == nil {
		p.err = p.inner.QuadTo(ctrl, end)
	}
	return p
}

func (p *PathBuilder) CubicTo(c1, c2, end Point) *PathBuilder {
	if p.err == nil {
		p.err = p.inner.CubicTo(c1, c2, end)
	}
	return p
}

func (p *PathBuilder) ConicTo(ctrl, end Point, weight float64) *PathBuilder {
	if p.err == nil {
		p.err = p.inner.ConicTo(ctrl, end, weight)
	}
	return p
}

func (p *PathBuilder) Close() *PathBuilder {
	if p.err == nil {
		p.err = p.inner.Close()
	}
	return p
}

func (p *PathBuilder) AddContour(c Contour) *PathBuilder {
	if p.err == nil {
		p.err = p.inner.AddContour(c)
	}
	return p
}

// Err returns the first error encountered by any chained call.
func (p *PathBuilder) Err() error { return p.err }

// Build finalizes the chain into a StandardContour, or returns the first
// error the chain encountered.
func (p *PathBuilder) Build() (*StandardContour, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.inner.Build()
}
