package contour

// MeasureOption configures a measure handle during init_measure.
// Use functional options to customize the flattener and search behavior
// without widening InitMeasure's signature for every knob.
//
// Example:
//
//	h, length := c.InitMeasure(0.1, contour.WithMaxDepth(48))
type MeasureOption func(*measureOptions)

// measureOptions holds optional configuration for measure-table
// construction.
type measureOptions struct {
	maxDepth      int
	recordReasons bool
}

func defaultMeasureOptions() measureOptions {
	return measureOptions{
		maxDepth:      32,
		recordReasons: true,
	}
}

// WithMaxDepth caps the recursive subdivision depth used when flattening
// each curve op. The default (32) is far beyond what any tolerance
// reachable in float64 precision requires; lowering it trades measurement
// fidelity for a hard bound on flattening cost.
func WithMaxDepth(depth int) MeasureOption {
	return func(o *measureOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithoutReasonTracking disables the Short/Straight bookkeeping used by
// AddSegment's fast paths, for callers who only need point/winding
// queries and want to skip the bookkeeping cost. AddSegment still
// functions when reasons are untracked; it simply loses its Straight-case
// shortcuts and always falls back to curve splitting.
func WithoutReasonTracking() MeasureOption {
	return func(o *measureOptions) {
		o.recordReasons = false
	}
}
