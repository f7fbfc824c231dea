package anchors

import "fmt"

// Path is a sequence of segments, each usually starting where the previous one ended.
type Path []Segment

// ParsePath parses one segment string per element of curves, see [ParseSegment].
func ParsePath(curves []string) (Path, error) {
	p := make(Path, 0, len(curves))
	for i, s := range curves {
		seg, err := ParseSegment(s)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		p = append(p, seg)
	}
	return p, nil
}

// Anchors converts every segment and concatenates the results. Each segment stays at
// least one separate Bézier piece: where a segment starts on the previous segment's
// last anchor, that anchor ends up doubled. Where it starts elsewhere, the gap is
// bridged by a straight piece.
//
// Errors are annotated with the index of the failing segment.
func (p Path) Anchors() ([]Point, error) {
	return p.AnchorsOpt(DefaultArcOptions)
}

// AnchorsOpt is like [Path.Anchors] but reshapes circular arcs with the given options.
func (p Path) AnchorsOpt(opts ArcOptions) ([]Point, error) {
	var out []Point
	for i, seg := range p {
		anchors, err := ConvertOpt(seg, opts)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if len(out) > 0 {
			last := out[len(out)-1]
			if last != anchors[0] {
				out = append(out, last, anchors[0])
			}
		}
		out = append(out, anchors...)
	}
	return out, nil
}
