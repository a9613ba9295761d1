package contour

import "github.com/gogpu/contour/internal/flatten"

// MeasureRecord is one entry of a Standard contour's measure table: the
// arc-length interval [Start, End) covered by a single flattened chord,
// together with the native curve parameter range it corresponds to and
// the op it was cut from.
type MeasureRecord struct {
	Start, End           float64
	StartParam, EndParam float64
	StartPoint, EndPoint Point
	OpIndex              int
	Reason               flatten.Reason
}

// findRecord returns the index of the measure record containing distance,
// using the predicate from the measurement design: a record is too low if
// its End is <= distance, too high if its Start is > distance. distance
// values beyond the last record clamp to it; records is assumed non-empty
// and sorted with record[i].End == record[i+1].Start.
func findRecord(records []MeasureRecord, distance float64) int {
	lo, hi := 0, len(records)-1
	for lo < hi {
		mid := (lo + hi) / 2
		r := records[mid]
		if r.End <= distance {
			lo = mid + 1
		} else if r.Start > distance {
			hi = mid - 1
		} else {
			return mid
		}
	}
	if lo >= len(records) {
		return len(records) - 1
	}
	return lo
}

// buildMeasureTable runs the external flattener over every non-Move op of
// a Standard contour's op list and accumulates measure records, dropping
// zero-length chords. It returns the table and the total arc length.
//
// When o.recordReasons is false, every record's Reason is forced to Short:
// AddSegment still functions but loses its Straight-case line shortcut and
// always falls back to splitting the underlying curve.
func buildMeasureTable(ops []CurveOp, points []Point, tolerance float64, o measureOptions) ([]MeasureRecord, float64) {
	var records []MeasureRecord
	var total float64
	anyCapped := false

	for opIndex, op := range ops {
		if op.Kind == OpMove {
			continue
		}
		chords, capped := flattenOp(op, points, tolerance, o.maxDepth)
		anyCapped = anyCapped || capped
		for _, ch := range chords {
			from := Point{X: ch.From.X, Y: ch.From.Y}
			to := Point{X: ch.To.X, Y: ch.To.Y}
			length := from.Distance(to)
			if length <= 0 {
				continue
			}
			reason := ch.Reason
			if !o.recordReasons {
				reason = flatten.Short
			}
			records = append(records, MeasureRecord{
				Start:      total,
				End:        total + length,
				StartParam: ch.FromParam,
				EndParam:   ch.ToParam,
				StartPoint: from,
				EndPoint:   to,
				OpIndex:    opIndex,
				Reason:     reason,
			})
			total += length
		}
	}

	if anyCapped {
		Logger().Debug("contour: flattening hit max subdivision depth before meeting tolerance",
			"tolerance", tolerance, "max_depth", o.maxDepth, "ops", len(ops))
	}

	return records, total
}

// flattenOp dispatches a single op to the appropriate flattener, resolving
// its control points (including the shared leading point) from the
// contour's points pool.
func toFlattenPoint(p Point) flatten.Point { return flatten.Point{X: p.X, Y: p.Y} }

func flattenOp(op CurveOp, points []Point, tolerance float64, maxDepth int) ([]flatten.Chord, bool) {
	switch op.Kind {
	case OpLine, OpClose:
		return flatten.Line(toFlattenPoint(points[op.Index]), toFlattenPoint(points[op.Index+1])), false
	case OpQuad:
		return flatten.Quad(
			toFlattenPoint(points[op.Index]), toFlattenPoint(points[op.Index+1]), toFlattenPoint(points[op.Index+2]),
			tolerance, maxDepth)
	case OpCubic:
		return flatten.Cubic(
			toFlattenPoint(points[op.Index]), toFlattenPoint(points[op.Index+1]),
			toFlattenPoint(points[op.Index+2]), toFlattenPoint(points[op.Index+3]),
			tolerance, maxDepth)
	case OpConic:
		return flatten.Conic(
			toFlattenPoint(points[op.Index]), toFlattenPoint(points[op.Index+1]), toFlattenPoint(points[op.Index+2]),
			op.Weight, tolerance, maxDepth)
	default:
		return nil, false
	}
}
