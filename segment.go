package anchors

import (
	"fmt"
	"strings"
)

// Segment is a piece of a path whose points are all interpreted the same way.
type Segment struct {
	Kind   Kind
	Points []Point
}

// Anchors converts the segment. It is shorthand for Convert(seg).
func (seg Segment) Anchors() ([]Point, error) {
	return Convert(seg)
}

// ParseSegment parses a segment in the form "K|x:y|x:y|...", where K is one of the
// kind letters B, L, P and C, as used by osu! slider curves. If the leading kind is
// omitted, the segment is a [BezierKind] segment. Errors wrap [ErrSyntax].
func ParseSegment(s string) (Segment, error) {
	s = strings.TrimSpace(s)
	head, rest, _ := strings.Cut(s, "|")
	if !strings.Contains(head, ":") {
		kind, err := ParseKind(head)
		if err != nil {
			return Segment{}, err
		}
		if strings.TrimSpace(rest) == "" {
			return Segment{}, fmt.Errorf("%w: segment %q has no points", ErrSyntax, s)
		}
		pts, err := ParsePoints(rest)
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: kind, Points: pts}, nil
	}
	pts, err := ParsePoints(s)
	if err != nil {
		return Segment{}, err
	}
	return Segment{Kind: BezierKind, Points: pts}, nil
}

// String returns the segment in the form accepted by [ParseSegment].
func (seg Segment) String() string {
	if len(seg.Points) == 0 {
		return seg.Kind.Letter()
	}
	return seg.Kind.Letter() + "|" + formatPoints(seg.Points)
}
