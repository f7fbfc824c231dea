package anchors

import (
	"errors"
	"slices"
)

var (
	// ErrEmptySegment is returned when converting a segment without points.
	ErrEmptySegment = errors.New("anchors: segment has no points")
	// ErrSyntax is wrapped by errors from parsing points, kinds and segments.
	ErrSyntax = errors.New("anchors: syntax error")
)

// Convert converts a path segment to a flattened sequence of Bézier anchors, choosing
// the conversion by the segment's kind:
//
//   - [LinearKind] segments are converted with [LinearAnchors].
//   - [PerfectCircleKind] segments are converted with [CircleAnchors].
//   - [CatmullKind] segments are converted with [CatmullAnchors].
//   - [BezierKind] segments, and segments of unknown kind, already are anchors and are
//     copied unchanged.
//
// The returned slice never aliases seg.Points. The only error is [ErrEmptySegment];
// geometric degeneracies degrade to simpler output instead of failing.
func Convert(seg Segment) ([]Point, error) {
	return ConvertOpt(seg, DefaultArcOptions)
}

// ConvertOpt is like [Convert] but reshapes circular arcs with the given options.
func ConvertOpt(seg Segment, opts ArcOptions) ([]Point, error) {
	if len(seg.Points) == 0 {
		return nil, ErrEmptySegment
	}
	switch seg.Kind {
	case LinearKind:
		return LinearAnchors(seg.Points), nil
	case PerfectCircleKind:
		out, _ := CircleAnchorsOpt(seg.Points, opts)
		return out, nil
	case CatmullKind:
		return CatmullAnchors(seg.Points), nil
	default:
		return slices.Clone(seg.Points), nil
	}
}
