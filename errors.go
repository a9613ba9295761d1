package contour

import "errors"

// The contour core itself is total: bounds, closest_point and foreach
// report success with a boolean, and precondition violations panic via
// internal/precond rather than returning an error (see that package's
// doc comment). These sentinels belong to the builder collaborator (§6),
// whose callers are ordinary application code and deserve a normal error
// return rather than a crash when, for instance, a path is drawn without
// first moving the pen.
var (
	// ErrNoCurrentPoint is returned by a Builder segment method
	// (LineTo, QuadTo, CubicTo, ConicTo, Close) invoked before any MoveTo;
	// a PathBuilder latches it and reports it from Err and Build.
	ErrNoCurrentPoint = errors.New("contour: no current point; call MoveTo first")

	// ErrEmptyContour is returned when a contour is added to a Path or a
	// builder in a state that would produce zero ops.
	ErrEmptyContour = errors.New("contour: contour has no operations")

	// ErrUnsupportedOp is returned by PathopTo for an OpKind it does not
	// recognize.
	ErrUnsupportedOp = errors.New("contour: unsupported op kind")
)
